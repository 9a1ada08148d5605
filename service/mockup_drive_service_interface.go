package service

import "winshirt/models"

// MockupDriveServiceInterface defines the contract for Google Drive mockup operations
type MockupDriveServiceInterface interface {
	ListMockupAssets(folderID string) ([]models.MockupAsset, error)
}
