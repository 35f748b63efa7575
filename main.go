package main

import (
	"log"

	api "github.com/kranuabs13/Emailtrackmaster/cmd/api"
	authUsecase "github.com/kranuabs13/Emailtrackmaster/internal/auth/usecase"
	trackingdomain "github.com/kranuabs13/Emailtrackmaster/internal/tracking/domain"
	trackingRepo "github.com/kranuabs13/Emailtrackmaster/internal/tracking/repository"
	trackingUsecase "github.com/kranuabs13/Emailtrackmaster/internal/tracking/usecase"
	"github.com/kranuabs13/Emailtrackmaster/pkg/config"
	"github.com/kranuabs13/Emailtrackmaster/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&trackingdomain.EmailRecord{}, &trackingdomain.VipRule{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	recordRepo := trackingRepo.NewEmailRecordRepository(db)
	vipRepo := trackingRepo.NewVipRuleRepository(db)

	// Initialize use cases
	resolver := trackingUsecase.NewSLAResolver(vipRepo)
	trackingUsecaseInstance := trackingUsecase.NewTrackingUsecase(recordRepo, resolver)
	authUsecaseInstance := authUsecase.NewAuthUsecase(cfg)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, trackingUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
