package app

import (
	"fmt"
	"log"

	"winshirt/app/controller"
	"winshirt/app/router"
	"winshirt/config"
	"winshirt/db"
	"winshirt/repository"
	"winshirt/service"
)

// Initialize initializes the application
func Initialize() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Shared upload client for both capture paths
	mediaClient := service.NewMediaClient(cfg.MediaUploadURL)

	// Client-side capture path: headless Chrome over the customizer page
	captureService := service.NewCaptureService(mediaClient, cfg.ChromePath)
	defaultRenderURL := cfg.CustomizerBaseURL + "/customizer/render"
	orchestrator := service.NewCaptureOrchestrator(captureService, defaultRenderURL)

	// Server-side compositor path
	compositor := service.NewCompositorService(mediaClient)

	// Repositories
	customizationRepo := repository.NewCustomizationRepository()
	mockupRepo := repository.NewMockupRepository()

	// Mockup library sync is optional: capture must keep working on
	// deployments without Drive credentials
	var mockupController *controller.MockupController
	if cfg.GoogleCredentialsPath != "" {
		driveService, err := service.NewMockupDriveService(cfg.GoogleCredentialsPath)
		if err != nil {
			return err
		}
		syncService := service.NewMockupSyncService(driveService, mockupRepo)
		mockupController = controller.NewMockupController(syncService)
	} else {
		log.Printf("⚠️ GOOGLE_APPLICATION_CREDENTIALS not set, mockup sync endpoints disabled")
	}

	// Create controllers
	controllers := &router.Controllers{
		Capture: controller.NewCaptureController(orchestrator),
		Compose: controller.NewComposeController(compositor),
		Order:   controller.NewOrderController(customizationRepo, mockupRepo, compositor),
		Mockup:  mockupController,
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
