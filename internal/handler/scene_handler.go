package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hidden-1992/ai-healthy-menu/internal/llm"
	"github.com/hidden-1992/ai-healthy-menu/internal/models"
	"github.com/hidden-1992/ai-healthy-menu/internal/prompt"
)

// SceneRecommendRequest is the body of the scenario-recommendation endpoint.
type SceneRecommendRequest struct {
	Scene       *models.Scene       `json:"scene"`
	UserProfile *models.UserProfile `json:"userProfile"`
}

// SceneRecommend godoc
// @Summary      Scenario-based dietary recommendation
// @Description  Recommends 5 foods and lists 3 forbidden foods for the user's current state (post-exercise, cold, hangover, ...), plus combined tips.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request body handler.SceneRecommendRequest true "Scene descriptor plus optional user profile"
// @Success      200 {object} models.SceneRecommendation
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/scene-recommend [post]
func (h *AnalysisHandler) SceneRecommend(c *gin.Context) {
	var req SceneRecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Scene == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请提供场景信息"})
		return
	}

	content, err := h.client.Complete(c.Request.Context(), []llm.Message{
		llm.TextMessage(prompt.Scene(*req.Scene, req.UserProfile)),
	})
	if err != nil {
		log.Error().Err(err).Str("scene", req.Scene.ID).Msg("provider call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var result models.SceneRecommendation
	if err := llm.ExtractInto(content, &result); err != nil {
		log.Error().Err(err).Str("scene", req.Scene.ID).Msg("failed to extract result")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
