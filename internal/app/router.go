package app

import (
	"mindmate_backend/docs"
	"mindmate_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/dashboard", c.dashboard.GetDashboard)
	}

	a.registerAssessmentRoutes(api, c)
	a.registerCatalogRoutes(api, c)
}

func (a *App) registerAssessmentRoutes(rg *gin.RouterGroup, c *controllers) {
	as := rg.Group("/assessment")
	{
		as.GET("/questions", c.assessment.ListQuestions)
		as.POST("/score", c.assessment.Score)

		// 会话式作答
		as.POST("/sessions", c.assessment.StartSession)
		as.GET("/sessions/:id", c.assessment.GetSession)
		as.POST("/sessions/:id/answer", c.assessment.SubmitAnswer)
		as.POST("/sessions/:id/back", c.assessment.GoBack)
	}
}

func (a *App) registerCatalogRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/audiobooks", c.catalog.ListAudiobooks)
	rg.GET("/audiobooks/:id", c.catalog.GetAudiobook)
	rg.GET("/exercises", c.catalog.ListExercises)
	rg.GET("/exercises/:id", c.catalog.GetExercise)
	rg.GET("/games", c.catalog.ListGames)
	rg.GET("/games/:id", c.catalog.GetGame)
}
