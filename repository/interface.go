package repository

import (
	"context"

	"github.com/google/uuid"

	"winshirt/models"
)

// CustomizationRepositoryInterface defines the contract for persisted order customizations
type CustomizationRepositoryInterface interface {
	Insert(ctx context.Context, order *models.OrderCustomization) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.OrderCustomization, error)
	ListMissingArtifacts(ctx context.Context) ([]models.OrderCustomization, error)
	UpdateArtifactURLs(ctx context.Context, id uuid.UUID, c models.UnifiedCustomization) error
}

// MockupRepositoryInterface defines the contract for mockup asset storage
type MockupRepositoryInterface interface {
	ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error)
	Insert(ctx context.Context, asset *models.MockupAsset) error
	GetByProductSlug(ctx context.Context, slug string) ([]models.MockupAsset, error)
}
