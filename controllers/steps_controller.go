package controllers

import (
	"net/http"
	"time"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/config"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/services"

	"github.com/gin-gonic/gin"
)

type StepEntryInput struct {
	Date       string  `json:"date" binding:"required"` // YYYY-MM-DD
	Steps      int     `json:"steps"`
	DistanceKM float64 `json:"distance_km"`
	Goal       int     `json:"goal"`
}

// UpsertSteps logs steps for a date. Writing the same date again overwrites
// the existing entry (200) instead of creating a duplicate (201).
func UpsertSteps(c *gin.Context) {
	var input StepEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"date": "invalid date, use YYYY-MM-DD"}})
		return
	}

	svc := services.NewStepsService(config.DB)
	entry, created, err := svc.Upsert(currentUserID(c), date, input.Steps, input.DistanceKM, input.Goal)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, entry)
}

func ListSteps(c *gin.Context) {
	from, bad := parseDateQuery(c, "start_date")
	if bad {
		return
	}
	to, bad := parseDateQuery(c, "end_date")
	if bad {
		return
	}

	svc := services.NewStepsService(config.DB)
	entries, err := svc.List(currentUserID(c), from, to)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func StepsSummary(c *gin.Context) {
	start, bad := parseDateQuery(c, "start_date")
	if bad {
		return
	}
	end, bad := parseDateQuery(c, "end_date")
	if bad {
		return
	}
	if start == nil || end == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date parameters are required"})
		return
	}

	svc := services.NewStepsService(config.DB)
	summary, err := svc.Summary(currentUserID(c), *start, *end)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func GetStepGoal(c *gin.Context) {
	svc := services.NewStepsService(config.DB)
	goal, err := svc.GetGoal(currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_goal": goal.DailyGoal})
}

func UpdateStepGoal(c *gin.Context) {
	var req struct {
		DailyGoal int `json:"daily_goal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewStepsService(config.DB)
	if err := svc.SetGoal(currentUserID(c), req.DailyGoal); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func GetStepStreak(c *gin.Context) {
	svc := services.NewStepsService(config.DB)
	streak, err := svc.GetStreak(currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"current_streak":      streak.CurrentStreak,
		"longest_streak":      streak.LongestStreak,
		"total_days_goal_met": streak.TotalDaysGoalMet,
	})
}
