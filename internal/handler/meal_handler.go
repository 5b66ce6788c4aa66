package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hidden-1992/ai-healthy-menu/internal/models"
	"github.com/hidden-1992/ai-healthy-menu/internal/storage"
)

const dateLayout = "2006-01-02"

// Defaults applied when a logged meal came from an incomplete model estimate.
// These are diary-boundary conveniences, not guarantees of the analysis core.
const (
	defaultMealWeight      = 100
	defaultMealHealthLevel = "yellow"
)

func bucketDate(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if _, err := time.Parse(dateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return "", false
	}
	return date, true
}

// MealsResponse wraps one date bucket.
type MealsResponse struct {
	Records []models.MealRecord `json:"records"`
}

// GetMeals godoc
// @Summary      List meal records for a date
// @Tags         Meals
// @Produce      json
// @Param        date path string true "Calendar date (YYYY-MM-DD)"
// @Success      200 {object} handler.MealsResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/meals/{date} [get]
func GetMeals(c *gin.Context) {
	date, ok := bucketDate(c)
	if !ok {
		return
	}

	records, err := storage.GetMealRecords(date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to fetch meal records")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal records"})
		return
	}
	c.JSON(http.StatusOK, MealsResponse{Records: records})
}

// AddMeal godoc
// @Summary      Log a meal for a date
// @Description  Appends a record to the date bucket. The record id and createdAt are assigned by the server.
// @Tags         Meals
// @Accept       json
// @Produce      json
// @Param        date path string true "Calendar date (YYYY-MM-DD)"
// @Param        request body models.MealRecord true "Meal to log (id and createdAt ignored)"
// @Success      200 {object} models.MealRecord
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/meals/{date} [post]
func AddMeal(c *gin.Context) {
	date, ok := bucketDate(c)
	if !ok {
		return
	}

	var rec models.MealRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if rec.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meal name is required"})
		return
	}
	if rec.Weight == 0 {
		rec.Weight = defaultMealWeight
	}
	if rec.HealthLevel == "" {
		rec.HealthLevel = defaultMealHealthLevel
	}

	saved, err := storage.AddMealRecord(date, rec)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to add meal record")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add meal record"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteMeal godoc
// @Summary      Delete a meal record
// @Tags         Meals
// @Produce      json
// @Param        date path string true "Calendar date (YYYY-MM-DD)"
// @Param        id   path string true "Record id"
// @Success      200 {object} map[string]string
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/meals/{date}/{id} [delete]
func DeleteMeal(c *gin.Context) {
	date, ok := bucketDate(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := storage.DeleteMealRecord(date, id); err != nil {
		if errors.Is(err, storage.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal record not found"})
			return
		}
		log.Error().Err(err).Str("date", date).Str("id", id).Msg("failed to delete meal record")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal record"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal record deleted"})
}
