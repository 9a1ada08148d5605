package service

import (
	"context"
	"fmt"
	"log"

	"winshirt/models"
	"winshirt/repository"
)

// MockupSyncService synchronizes the mockup library between Google Drive and
// PostgreSQL. Implements MockupSyncServiceInterface.
type MockupSyncService struct {
	driveService MockupDriveServiceInterface
	repository   repository.MockupRepositoryInterface
}

// NewMockupSyncService creates a new MockupSyncService
func NewMockupSyncService(driveService MockupDriveServiceInterface, repo repository.MockupRepositoryInterface) *MockupSyncService {
	return &MockupSyncService{
		driveService: driveService,
		repository:   repo,
	}
}

// Ensure MockupSyncService implements MockupSyncServiceInterface
var _ MockupSyncServiceInterface = (*MockupSyncService)(nil)

// SyncMockups synchronizes mockup assets from Google Drive to PostgreSQL.
// inserted = new rows created, skipped = already existed (by drive_file_id),
// total = total assets seen in Drive.
func (s *MockupSyncService) SyncMockups(ctx context.Context, folderID string) (assets []models.MockupAsset, inserted int, skipped int, total int, err error) {
	log.Printf("🔄 Starting mockup synchronization for folder: %s", folderID)

	driveAssets, err := s.driveService.ListMockupAssets(folderID)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("failed to list mockup assets from Drive: %w", err)
	}

	log.Printf("📦 Processing %d mockup assets from Google Drive", len(driveAssets))
	total = len(driveAssets)

	for _, asset := range driveAssets {
		exists, err := s.repository.ExistsByDriveFileID(ctx, asset.DriveFileID)
		if err != nil {
			log.Printf("❌ Error checking existence for drive_file_id: %s: %v", asset.DriveFileID, err)
			continue
		}

		if exists {
			skipped++
			continue
		}

		if err := s.repository.Insert(ctx, &asset); err != nil {
			log.Printf("❌ Error inserting drive_file_id %s into database: %v", asset.DriveFileID, err)
			continue
		}

		log.Printf("✅ New mockup synced: %s (%s/%s)", asset.DriveFileID, asset.ProductSlug, asset.Side)
		inserted++
	}

	log.Printf("🎉 Mockup synchronization completed: %d inserted, %d skipped, %d total", inserted, skipped, total)
	return driveAssets, inserted, skipped, total, nil
}
