package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hidden-1992/ai-healthy-menu/internal/models"
	"github.com/hidden-1992/ai-healthy-menu/internal/nutrition"
	"github.com/hidden-1992/ai-healthy-menu/internal/storage"
)

// HealthMetrics are the profile-derived values shown on the assessment page.
// All three are 0 when the profile lacks the required fields.
type HealthMetrics struct {
	BMI  float64 `json:"bmi"`
	BMR  int     `json:"bmr"`
	TDEE int     `json:"tdee"`
}

// AssessmentResponse combines the day's aggregated intake with the stored
// profile's derived metrics.
type AssessmentResponse struct {
	Date        string                `json:"date"`
	Totals      models.Nutrition      `json:"totals"`
	Percentages nutrition.Percentages `json:"percentages"`
	Metrics     HealthMetrics         `json:"metrics"`
}

// GetAssessment godoc
// @Summary      Daily nutrition assessment
// @Description  Sums the date bucket's meal records, reports percentage-of-daily-reference per axis (display-clamped to 100), and derives BMI/BMR/TDEE from the stored profile.
// @Tags         Assessment
// @Produce      json
// @Param        date path string true "Calendar date (YYYY-MM-DD)"
// @Success      200 {object} handler.AssessmentResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/assessment/{date} [get]
func GetAssessment(c *gin.Context) {
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

	sources := make([]*models.Nutrition, 0, len(records))
	for i := range records {
		n := records[i].Nutrition()
		sources = append(sources, &n)
	}
	summary := nutrition.Aggregate(sources)

	var metrics HealthMetrics
	profile, err := storage.GetUserProfile()
	if err != nil {
		log.Error().Err(err).Msg("failed to load profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	if profile != nil {
		metrics.BMI = nutrition.BMI(profile.Weight, profile.Height)
		metrics.BMR = nutrition.BMR(profile.Weight, profile.Height, profile.Age, profile.Gender)
		metrics.TDEE = nutrition.TDEE(metrics.BMR, profile.ActivityLevel)
	}

	c.JSON(http.StatusOK, AssessmentResponse{
		Date:        date,
		Totals:      summary.Totals,
		Percentages: summary.Percentages,
		Metrics:     metrics,
	})
}
