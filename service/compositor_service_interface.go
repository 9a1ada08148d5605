package service

import (
	"context"

	"winshirt/models"
)

// CompositorServiceInterface defines the contract for the headless compositor,
// the capture path that does not depend on a live customizer page
type CompositorServiceInterface interface {
	Compose(ctx context.Context, c models.UnifiedCustomization, mockups models.MockupURLs, product models.ProductInfo) models.SideResults
}
