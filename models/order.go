package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderCustomization is the persisted form of an enriched customization,
// attached to an order line item. Immutable after persistence except for
// artifact URL backfill through the reprocess endpoint.
type OrderCustomization struct {
	ID            uuid.UUID            `json:"id"`
	OrderRef      string               `json:"orderRef"`
	ProductName   string               `json:"productName"`
	ProductID     string               `json:"productId"`
	ProductSlug   string               `json:"productSlug"`
	Customization UnifiedCustomization `json:"customization"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// CreateOrderCustomizationRequest is the request body for persisting a
// customization on an order line
// Example: {"orderRef": "WS-2024-0042", "productInfo": {"name": "Tee Classic", "id": "17"}, "productSlug": "tee-classic", "customization": {...}}
type CreateOrderCustomizationRequest struct {
	OrderRef      string               `json:"orderRef"`
	ProductInfo   ProductInfo          `json:"productInfo"`
	ProductSlug   string               `json:"productSlug"`
	Customization UnifiedCustomization `json:"customization"`
}

// ReprocessRequest optionally overrides the mockup backgrounds used when
// regenerating artifacts through the server-side compositor
type ReprocessRequest struct {
	MockupURLs *MockupURLs `json:"mockupUrls,omitempty"`
}

// ReprocessResponse reports which artifact fields were backfilled
type ReprocessResponse struct {
	Order    OrderCustomization `json:"order"`
	Filled   []string           `json:"filled"`
	Results  SideResults        `json:"results"`
}
