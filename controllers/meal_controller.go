package controllers

import (
	"net/http"
	"time"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/config"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/services"

	"github.com/gin-gonic/gin"
)

func LogMeal(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewMealService(config.DB)
	meal, err := svc.Create(currentUserID(c), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func ListMeals(c *gin.Context) {
	from, bad := parseDateQuery(c, "start_date")
	if bad {
		return
	}
	to, bad := parseDateQuery(c, "end_date")
	if bad {
		return
	}

	svc := services.NewMealService(config.DB)
	meals, err := svc.List(currentUserID(c), from, to)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func GetMeal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	svc := services.NewMealService(config.DB)
	meal, err := svc.Get(currentUserID(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func UpdateMeal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewMealService(config.DB)
	meal, err := svc.Update(currentUserID(c), id, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func DeleteMeal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	svc := services.NewMealService(config.DB)
	if err := svc.Delete(currentUserID(c), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func ToggleFavoriteMeal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	svc := services.NewMealService(config.DB)
	meal, err := svc.ToggleFavorite(currentUserID(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func ListFavoriteMeals(c *gin.Context) {
	svc := services.NewMealService(config.DB)
	meals, err := svc.ListFavorites(currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func GetDailyNutritionGoal(c *gin.Context) {
	date := time.Now().UTC()
	if d, bad := parseDateQuery(c, "date"); bad {
		return
	} else if d != nil {
		date = *d
	}

	svc := services.NewDailyGoalService(config.DB)
	goal, progress, err := svc.Progress(currentUserID(c), date)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goal, "progress": progress})
}

func UpdateDailyNutritionGoal(c *gin.Context) {
	var req struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewDailyGoalService(config.DB)
	if err := svc.UpsertGoals(currentUserID(c), req.Calories, req.Protein, req.Carbs, req.Fat); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
