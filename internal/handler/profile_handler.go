package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hidden-1992/ai-healthy-menu/internal/models"
	"github.com/hidden-1992/ai-healthy-menu/internal/storage"
)

// GetProfile godoc
// @Summary      Read the stored health profile
// @Description  Returns the saved profile, or JSON null if none was saved yet.
// @Tags         Profile
// @Produce      json
// @Success      200 {object} models.UserProfile
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/profile [get]
func GetProfile(c *gin.Context) {
	profile, err := storage.GetUserProfile()
	if err != nil {
		log.Error().Err(err).Msg("failed to load profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfile godoc
// @Summary      Save the health profile
// @Description  Replaces the stored profile. Numeric fields must be positive when provided.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        request body models.UserProfile true "Profile to store"
// @Success      200 {object} models.UserProfile
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/profile [put]
func SaveProfile(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if profile.Age < 0 || profile.Height < 0 || profile.Weight < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Age, height and weight must be positive"})
		return
	}

	saved, err := storage.SaveUserProfile(profile)
	if err != nil {
		log.Error().Err(err).Msg("failed to save profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, saved)
}
