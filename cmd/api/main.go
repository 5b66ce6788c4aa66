package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hidden-1992/ai-healthy-menu/docs"
	"github.com/hidden-1992/ai-healthy-menu/internal/config"
	"github.com/hidden-1992/ai-healthy-menu/internal/handler"
	"github.com/hidden-1992/ai-healthy-menu/internal/llm"
	"github.com/hidden-1992/ai-healthy-menu/internal/middleware"
	"github.com/hidden-1992/ai-healthy-menu/internal/storage"
)

// @title        AI Healthy Menu API
// @version      1.0
// @description  Diet-tracking backend: food-photo analysis via a multimodal model, scenario recommendations, and a local meal diary with health metrics.
// @BasePath     /
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	if err := storage.InitDB(cfg.DBPath); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	analysis := handler.NewAnalysisHandler(llm.NewClient(cfg.Provider))

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	analysisLimit := middleware.AnalysisRateLimit()

	api := router.Group("/api")
	{
		api.POST("/analyze", analysisLimit, analysis.Analyze)
		api.POST("/analyze-food", analysisLimit, analysis.AnalyzeFood)
		api.POST("/scene-recommend", analysisLimit, analysis.SceneRecommend)

		api.GET("/profile", handler.GetProfile)
		api.PUT("/profile", handler.SaveProfile)

		api.GET("/meals/:date", handler.GetMeals)
		api.POST("/meals/:date", handler.AddMeal)
		api.DELETE("/meals/:date/:id", handler.DeleteMeal)

		api.GET("/assessment/:date", handler.GetAssessment)
	}

	router.GET("/ws/analyze", analysis.AnalyzeStream)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().Str("port", cfg.Port).Msg("starting server")
	log.Fatal().Err(router.Run(":" + cfg.Port)).Msg("server exited")
}
