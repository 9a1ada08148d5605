package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"winshirt/db"
	"winshirt/models"
)

// CustomizationRepository handles database operations for order customizations
// Implements CustomizationRepositoryInterface
type CustomizationRepository struct{}

// NewCustomizationRepository creates a new CustomizationRepository
func NewCustomizationRepository() *CustomizationRepository {
	return &CustomizationRepository{}
}

// Ensure CustomizationRepository implements CustomizationRepositoryInterface
var _ CustomizationRepositoryInterface = (*CustomizationRepository)(nil)

// Insert persists an enriched customization as part of an order line item.
// The full customization object is stored as JSONB; the artifact URLs are
// mirrored into dedicated columns so backfill candidates can be queried
// without unpacking JSON.
func (r *CustomizationRepository) Insert(ctx context.Context, order *models.OrderCustomization) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	payload, err := json.Marshal(order.Customization)
	if err != nil {
		return fmt.Errorf("failed to marshal customization: %w", err)
	}

	query := `
		INSERT INTO order_customizations (
			id, order_ref, product_name, product_id, product_slug, customization,
			mockup_recto_url, mockup_verso_url, hd_recto_url, hd_verso_url,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = db.DB.ExecContext(ctx, query,
		order.ID,
		order.OrderRef,
		order.ProductName,
		order.ProductID,
		order.ProductSlug,
		payload,
		order.Customization.MockupRectoURL,
		order.Customization.MockupVersoURL,
		order.Customization.HDRectoURL,
		order.Customization.HDVersoURL,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		log.Printf("❌ Database INSERT error for order %s: %v", order.OrderRef, err)
		return fmt.Errorf("failed to insert order customization: %w", err)
	}

	log.Printf("💾 Order customization persisted: id=%s order_ref=%s", order.ID, order.OrderRef)
	return nil
}

func scanOrder(scan func(dest ...any) error) (*models.OrderCustomization, error) {
	var order models.OrderCustomization
	var payload []byte
	err := scan(
		&order.ID,
		&order.OrderRef,
		&order.ProductName,
		&order.ProductID,
		&order.ProductSlug,
		&payload,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &order.Customization); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customization: %w", err)
	}
	return &order, nil
}

// GetByID returns a persisted order customization
func (r *CustomizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.OrderCustomization, error) {
	query := `
		SELECT id, order_ref, product_name, product_id, product_slug, customization, created_at, updated_at
		FROM order_customizations
		WHERE id = $1
	`
	row := db.DB.QueryRowContext(ctx, query, id)
	order, err := scanOrder(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order customization not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order customization: %w", err)
	}
	return order, nil
}

// ListMissingArtifacts returns orders with at least one absent artifact URL,
// candidates for backfill through the server-side compositor
func (r *CustomizationRepository) ListMissingArtifacts(ctx context.Context) ([]models.OrderCustomization, error) {
	query := `
		SELECT id, order_ref, product_name, product_id, product_slug, customization, created_at, updated_at
		FROM order_customizations
		WHERE mockup_recto_url IS NULL OR mockup_verso_url IS NULL
		   OR hd_recto_url IS NULL OR hd_verso_url IS NULL
		ORDER BY created_at
	`
	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders with missing artifacts: %w", err)
	}
	defer rows.Close()

	var orders []models.OrderCustomization
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order customization: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// UpdateArtifactURLs stores a backfilled customization. Only the artifact
// URL columns and the JSONB payload change; the placements are immutable
// after persistence.
func (r *CustomizationRepository) UpdateArtifactURLs(ctx context.Context, id uuid.UUID, c models.UnifiedCustomization) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal customization: %w", err)
	}

	query := `
		UPDATE order_customizations
		SET customization = $2,
		    mockup_recto_url = $3,
		    mockup_verso_url = $4,
		    hd_recto_url = $5,
		    hd_verso_url = $6,
		    updated_at = $7
		WHERE id = $1
	`
	result, err := db.DB.ExecContext(ctx, query,
		id, payload, c.MockupRectoURL, c.MockupVersoURL, c.HDRectoURL, c.HDVersoURL, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update artifact urls: %w", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("order customization not found: %s", id)
	}

	log.Printf("💾 Artifact URLs updated for order customization %s", id)
	return nil
}
