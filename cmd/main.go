package main

import (
	"log"
	"os"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/config"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/routes"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
