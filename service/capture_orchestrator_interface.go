package service

import (
	"context"

	"winshirt/models"
)

// CaptureOrchestratorInterface defines the contract for orchestrated capture passes
type CaptureOrchestratorInterface interface {
	CaptureAll(ctx context.Context, c models.UnifiedCustomization, renderURL string) models.SideResults
	CaptureForProduction(ctx context.Context, c models.UnifiedCustomization, renderURL string) models.UnifiedCustomization
	IsCapturing() bool
}
