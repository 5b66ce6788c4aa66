// Package handler wires the HTTP surface: the three analysis operations
// relayed to the model provider, plus profile, meal-diary and assessment
// endpoints backed by local storage.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hidden-1992/ai-healthy-menu/internal/llm"
	"github.com/hidden-1992/ai-healthy-menu/internal/models"
	"github.com/hidden-1992/ai-healthy-menu/internal/prompt"
)

// Completer is the slice of the LLM client the handlers need.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// AnalysisHandler relays analysis requests to the model provider.
type AnalysisHandler struct {
	client Completer
}

func NewAnalysisHandler(client Completer) *AnalysisHandler {
	return &AnalysisHandler{client: client}
}

// AnalyzeRequest is the body of the two image analysis endpoints.
type AnalyzeRequest struct {
	Image       string              `json:"image"`
	UserProfile *models.UserProfile `json:"userProfile"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"请提供图片"`
}

// analyzeImage runs one prompt+image round trip and unmarshals the extracted
// JSON into result. Caller passes a pointer.
func (h *AnalysisHandler) analyzeImage(c *gin.Context, image, promptText string, result any) bool {
	mediaType, data := llm.ParseImageData(image)

	content, err := h.client.Complete(c.Request.Context(), []llm.Message{
		llm.ImageMessage(promptText, mediaType, data),
	})
	if err != nil {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("provider call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return false
	}

	if err := llm.ExtractInto(content, result); err != nil {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("failed to extract result")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// Analyze godoc
// @Summary      Ingredient recognition
// @Description  Recognizes the ingredients in a food photo and recommends 3-4 home-style recipes with nutrition estimates, filtered by the user's health profile.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request body handler.AnalyzeRequest true "Base64 or data-URI image plus optional user profile"
// @Success      200 {object} models.IngredientAnalysis
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/analyze [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请提供图片"})
		return
	}

	var result models.IngredientAnalysis
	if h.analyzeImage(c, req.Image, prompt.Ingredient(req.UserProfile), &result) {
		c.JSON(http.StatusOK, result)
	}
}

// AnalyzeFood godoc
// @Summary      Prepared-dish estimation
// @Description  Estimates weight, calories and macros for a prepared dish and classifies its suitability (green/yellow/red) for the user.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request body handler.AnalyzeRequest true "Base64 or data-URI image plus optional user profile"
// @Success      200 {object} models.DishEstimate
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/analyze-food [post]
func (h *AnalysisHandler) AnalyzeFood(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请提供图片"})
		return
	}

	var result models.DishEstimate
	if h.analyzeImage(c, req.Image, prompt.Dish(req.UserProfile), &result) {
		c.JSON(http.StatusOK, result)
	}
}
