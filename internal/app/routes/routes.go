package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yigit/majorpath/internal/app/controllers"
	"github.com/yigit/majorpath/internal/middleware"
)

// ClassifierStatus reports the classifier circuit breaker state
type ClassifierStatus interface {
	BreakerState() string
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
	classifierStatus ClassifierStatus,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "API is running",
			"classifier": classifierStatus.BreakerState(),
		})
	})

	// --- Public routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	predict := api.Group("/predict")
	{
		predict.POST("", ctrl.Predict.Predict)
		predict.GET("/major", ctrl.Major.ListMajors)
		predict.GET("/major/:majorName", ctrl.Major.GetMajor)
	}
	api.GET("/major/:name", ctrl.Major.GetMajorRaw)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	user := authenticated.Group("/user")
	{
		user.GET("/me", ctrl.User.GetProfile)
		user.GET("/profile", ctrl.User.GetProfile)
	}

	sessions := authenticated.Group("/predict")
	{
		sessions.POST("/save-result", ctrl.Session.SaveResult)
		sessions.GET("/history/:userId", ctrl.Session.GetHistory)
		sessions.DELETE("/history/:sessionId", ctrl.Session.DeleteSession)
		sessions.GET("/session/:sessionId", ctrl.Session.GetSession)
		sessions.DELETE("/session/:sessionId", ctrl.Session.DeleteSession)
	}
}
