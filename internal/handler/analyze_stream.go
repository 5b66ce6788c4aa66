package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/hidden-1992/ai-healthy-menu/internal/llm"
	"github.com/hidden-1992/ai-healthy-menu/internal/models"
	"github.com/hidden-1992/ai-healthy-menu/internal/prompt"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// AnalyzeStream godoc
// @Summary      Ingredient recognition with progress
// @Description  **Not a standard HTTP API.** Connect with ws:// and send one AnalyzeRequest frame; the server replies with {"stage": ...} progress frames followed by a final {"result": ...} or {"error": ...} frame.
// @Tags         WebSocket
// @Success      101 {string} string "Switching Protocols"
// @Router       /ws/analyze [get]
func (h *AnalysisHandler) AnalyzeStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	var req AnalyzeRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(gin.H{"error": "Invalid request"})
		return
	}
	if req.Image == "" {
		conn.WriteJSON(gin.H{"error": "请提供图片"})
		return
	}

	conn.WriteJSON(gin.H{"stage": "正在上传图片..."})

	mediaType, data := llm.ParseImageData(req.Image)
	promptText := prompt.Ingredient(req.UserProfile)

	conn.WriteJSON(gin.H{"stage": "AI正在分析食材..."})

	content, err := h.client.Complete(c.Request.Context(), []llm.Message{
		llm.ImageMessage(promptText, mediaType, data),
	})
	if err != nil {
		log.Error().Err(err).Msg("provider call failed")
		conn.WriteJSON(gin.H{"error": err.Error()})
		return
	}

	conn.WriteJSON(gin.H{"stage": "正在生成菜谱推荐..."})

	var result models.IngredientAnalysis
	if err := llm.ExtractInto(content, &result); err != nil {
		log.Error().Err(err).Msg("failed to extract result")
		conn.WriteJSON(gin.H{"error": err.Error()})
		return
	}

	conn.WriteJSON(gin.H{"result": result})
}
