package api

import (
	"net/http"

	authDelivery "github.com/kranuabs13/Emailtrackmaster/internal/auth/delivery"
	authUsecase "github.com/kranuabs13/Emailtrackmaster/internal/auth/usecase"
	trackingDelivery "github.com/kranuabs13/Emailtrackmaster/internal/tracking/delivery"
	trackingUsecase "github.com/kranuabs13/Emailtrackmaster/internal/tracking/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, trackingUc trackingUsecase.TrackingUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	trackingHandler := trackingDelivery.NewTrackingHandler(trackingUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Session bootstrap for the taskpane
		auth := api.Group("/auth")
		{
			auth.POST("/session", authHandler.CreateSession)
		}

		// Mail-client event routes (protected)
		events := api.Group("/events")
		events.Use(authDelivery.AuthMiddleware(authUc))
		{
			events.POST("/selection", trackingHandler.HandleSelectionChanged)
			events.POST("/send", trackingHandler.HandleSend)
		}

		// Read side for the taskpane poll loop (protected)
		protected := api.Group("")
		protected.Use(authDelivery.AuthMiddleware(authUc))
		{
			protected.GET("/dashboard", trackingHandler.GetDashboard)
			protected.GET("/conversations/:id/timer", trackingHandler.GetTimer)
			protected.GET("/conversations/:id/timer/stream", trackingHandler.StreamTimer)
		}
	}
}
