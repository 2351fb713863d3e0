package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/config"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/services"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

// parseDateQuery reads an optional YYYY-MM-DD query param. The bool reports
// whether parsing failed (a response has already been written).
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, false
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{name: "invalid date, use YYYY-MM-DD"}})
		return nil, true
	}
	return &t, false
}

func CreateWorkout(c *gin.Context) {
	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewWorkoutService(config.DB)
	workout, err := svc.Create(currentUserID(c), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func ListWorkouts(c *gin.Context) {
	from, bad := parseDateQuery(c, "start_date")
	if bad {
		return
	}
	to, bad := parseDateQuery(c, "end_date")
	if bad {
		return
	}

	svc := services.NewWorkoutService(config.DB)
	workouts, err := svc.List(currentUserID(c), services.WorkoutFilter{
		From:   from,
		To:     to,
		Type:   c.Query("type"),
		Status: c.Query("status"),
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func GetWorkout(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	svc := services.NewWorkoutService(config.DB)
	workout, err := svc.Get(currentUserID(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

func UpdateWorkout(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewWorkoutService(config.DB)
	workout, err := svc.Update(currentUserID(c), id, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

func DeleteWorkout(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	svc := services.NewWorkoutService(config.DB)
	if err := svc.Delete(currentUserID(c), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
