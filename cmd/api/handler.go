package api

import (
	authUsecase "github.com/kranuabs13/Emailtrackmaster/internal/auth/usecase"
	trackingUsecase "github.com/kranuabs13/Emailtrackmaster/internal/tracking/usecase"
	"github.com/kranuabs13/Emailtrackmaster/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	trackingUsecase trackingUsecase.TrackingUsecase
	config          *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, trackingUc trackingUsecase.TrackingUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:     authUc,
		trackingUsecase: trackingUc,
		config:          cfg,
	}
}

// Start runs the HTTP server on the given address
func (h *Handler) Start(addr string) error {
	r := gin.Default()
	SetupRoutes(r, h.authUsecase, h.trackingUsecase)
	return r.Run(addr)
}
