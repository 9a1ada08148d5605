package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"winshirt/db"
	"winshirt/models"
)

// MockupRepository handles database operations for mockup assets
// Implements MockupRepositoryInterface
type MockupRepository struct{}

// NewMockupRepository creates a new MockupRepository
func NewMockupRepository() *MockupRepository {
	return &MockupRepository{}
}

// Ensure MockupRepository implements MockupRepositoryInterface
var _ MockupRepositoryInterface = (*MockupRepository)(nil)

// ExistsByDriveFileID checks if a mockup asset exists by drive_file_id
func (r *MockupRepository) ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM mockup_assets WHERE drive_file_id = $1)`
	err := db.DB.QueryRowContext(ctx, query, driveFileID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}

// Insert inserts a new mockup asset
func (r *MockupRepository) Insert(ctx context.Context, asset *models.MockupAsset) error {
	query := `
		INSERT INTO mockup_assets (
			drive_file_id, file_name, product_slug, side, image_url, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (drive_file_id) DO NOTHING
	`
	_, err := db.DB.ExecContext(ctx, query,
		asset.DriveFileID,
		asset.FileName,
		asset.ProductSlug,
		string(asset.Side),
		asset.ImageURL,
		time.Now(),
	)
	if err != nil {
		log.Printf("❌ Database INSERT error for mockup drive_file_id %s: %v", asset.DriveFileID, err)
		return fmt.Errorf("failed to insert mockup asset: %w", err)
	}
	return nil
}

// GetByProductSlug returns the mockup assets of a product, one per side at most
func (r *MockupRepository) GetByProductSlug(ctx context.Context, slug string) ([]models.MockupAsset, error) {
	query := `
		SELECT drive_file_id, file_name, product_slug, side, image_url
		FROM mockup_assets
		WHERE product_slug = $1
		ORDER BY side
	`
	rows, err := db.DB.QueryContext(ctx, query, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get mockup assets: %w", err)
	}
	defer rows.Close()

	var assets []models.MockupAsset
	for rows.Next() {
		var asset models.MockupAsset
		var side string
		if err := rows.Scan(&asset.DriveFileID, &asset.FileName, &asset.ProductSlug, &side, &asset.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan mockup asset: %w", err)
		}
		asset.Side = models.Side(side)
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}
