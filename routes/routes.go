package routes

import (
	"log"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/config"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/controllers"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/middlewares"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
		push = nil
	}
	services.InitAlertDeps(config.DB, hub, push)

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register/", controllers.Register)
		auth.POST("/verify/", controllers.VerifyEmail)
		auth.POST("/login/", controllers.Login)
		auth.POST("/refresh/", controllers.Refresh)
		auth.POST("/forgot-password/", controllers.ForgotPassword)
		auth.POST("/reset-password/", controllers.ResetPassword)
	}

	// Everything below requires a bearer access token.
	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		// Logout needs a valid session: the refresh token to revoke comes
		// in the body, the access token proves the caller owns it.
		protected.POST("/auth/logout/", controllers.Logout)

		user := protected.Group("/user")
		{
			user.GET("/profile", controllers.GetProfile)
			user.PUT("/profile", controllers.UpdateProfile)
			user.DELETE("/", controllers.DeactivateAccount)
		}

		workouts := protected.Group("/workouts")
		{
			workouts.GET("/", controllers.ListWorkouts)
			workouts.POST("/", controllers.CreateWorkout)
			workouts.GET("/:id", controllers.GetWorkout)
			workouts.PUT("/:id", controllers.UpdateWorkout)
			workouts.DELETE("/:id", controllers.DeleteWorkout)
		}

		meals := protected.Group("/meals")
		{
			meals.GET("/", controllers.ListMeals)
			meals.POST("/", controllers.LogMeal)
			meals.GET("/favorites", controllers.ListFavoriteMeals)
			meals.GET("/daily-goal", controllers.GetDailyNutritionGoal)
			meals.PUT("/daily-goal", controllers.UpdateDailyNutritionGoal)
			meals.GET("/:id", controllers.GetMeal)
			meals.PUT("/:id", controllers.UpdateMeal)
			meals.DELETE("/:id", controllers.DeleteMeal)
			meals.POST("/:id/favorite", controllers.ToggleFavoriteMeal)
		}

		steps := protected.Group("/steps")
		{
			steps.GET("/", controllers.ListSteps)
			steps.POST("/", controllers.UpsertSteps)
			steps.GET("/summary/", controllers.StepsSummary)
			steps.GET("/streak", controllers.GetStepStreak)
			steps.GET("/goal", controllers.GetStepGoal)
			steps.PUT("/goal", controllers.UpdateStepGoal)
		}

		protected.GET("/alerts/", controllers.ListAlerts)
		protected.POST("/devices/", controllers.RegisterDevice(push))
	}

	// Websocket handshake authenticates via query token, not the middleware.
	api.GET("/realtime/ws", controllers.AlertsWS(hub))

	return r
}
