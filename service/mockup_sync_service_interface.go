package service

import (
	"context"

	"winshirt/models"
)

// MockupSyncServiceInterface defines the contract for mockup library synchronization
type MockupSyncServiceInterface interface {
	SyncMockups(ctx context.Context, folderID string) (assets []models.MockupAsset, inserted int, skipped int, total int, err error)
}
