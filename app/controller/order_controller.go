package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"winshirt/models"
	"winshirt/repository"
	"winshirt/service"
)

// OrderController handles HTTP requests for persisted order customizations
type OrderController struct {
	repository repository.CustomizationRepositoryInterface
	mockupRepo repository.MockupRepositoryInterface
	compositor service.CompositorServiceInterface
}

// NewOrderController creates a new OrderController
func NewOrderController(
	repo repository.CustomizationRepositoryInterface,
	mockupRepo repository.MockupRepositoryInterface,
	compositor service.CompositorServiceInterface,
) *OrderController {
	return &OrderController{
		repository: repo,
		mockupRepo: mockupRepo,
		compositor: compositor,
	}
}

// CreateOrder handles POST /admin/orders
// Persists an enriched customization on an order line item
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateOrderCustomizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.OrderRef == "" {
		http.Error(w, "orderRef is required", http.StatusBadRequest)
		return
	}
	if !service.IsValid(req.Customization) {
		http.Error(w, "customization has no placements", http.StatusUnprocessableEntity)
		return
	}

	order := &models.OrderCustomization{
		OrderRef:      req.OrderRef,
		ProductName:   req.ProductInfo.Name,
		ProductID:     req.ProductInfo.ID,
		ProductSlug:   req.ProductSlug,
		Customization: req.Customization,
	}

	if err := c.repository.Insert(r.Context(), order); err != nil {
		http.Error(w, fmt.Sprintf("Failed to persist order customization: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// GetOrder handles GET /admin/orders/:id
func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := orderIDFromPath(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get order customization: %v", err), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// ListMissingArtifacts handles GET /admin/orders/missing-artifacts
// Returns the orders whose artifact set is incomplete, candidates for backfill
func (c *OrderController) ListMissingArtifacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orders, err := c.repository.ListMissingArtifacts(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list orders: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"orders": orders,
	})
}

// Reprocess handles POST /admin/orders/:id/reprocess
// Regenerates the order's artifacts through the server-side compositor and
// fills only the URL fields that are currently missing. Artifacts already
// referenced by production are never overwritten.
func (c *OrderController) Reprocess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := orderIDFromPath(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Body is optional; an empty body means "use the stored mockup library"
	var req models.ReprocessRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	order, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get order customization: %v", err), http.StatusNotFound)
		return
	}

	mockups := c.resolveMockups(r.Context(), order, req.MockupURLs)
	results := c.compositor.Compose(r.Context(), order.Customization,
		mockups, models.ProductInfo{Name: order.ProductName, ID: order.ProductID})

	merged, filled := service.FillMissing(order.Customization, results)
	if len(filled) > 0 {
		if err := c.repository.UpdateArtifactURLs(r.Context(), order.ID, merged); err != nil {
			http.Error(w, fmt.Sprintf("Failed to store backfilled artifacts: %v", err), http.StatusInternalServerError)
			return
		}
		order.Customization = merged
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ReprocessResponse{
		Order:   *order,
		Filled:  filled,
		Results: results,
	})
}

// resolveMockups picks the mockup backgrounds for a reprocess pass: an
// explicit override wins, then the synced mockup library by product slug
func (c *OrderController) resolveMockups(ctx context.Context, order *models.OrderCustomization, override *models.MockupURLs) models.MockupURLs {
	if override != nil {
		return *override
	}
	var mockups models.MockupURLs
	if order.ProductSlug == "" {
		return mockups
	}
	assets, err := c.mockupRepo.GetByProductSlug(ctx, order.ProductSlug)
	if err != nil {
		// Compose proceeds blank; the mockup background is best-effort
		return mockups
	}
	for _, asset := range assets {
		switch asset.Side {
		case models.SideFront:
			mockups.Front = asset.ImageURL
		case models.SideBack:
			mockups.Back = asset.ImageURL
		}
	}
	return mockups
}

// orderIDFromPath extracts the order customization id from
// /admin/orders/{id} or /admin/orders/{id}/reprocess
func orderIDFromPath(path string) (uuid.UUID, error) {
	trimmed := strings.TrimPrefix(path, "/admin/orders/")
	trimmed = strings.TrimSuffix(trimmed, "/reprocess")
	trimmed = strings.TrimSuffix(trimmed, "/")
	if trimmed == "" {
		return uuid.Nil, fmt.Errorf("order id is required")
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid order id: %s", trimmed)
	}
	return id, nil
}
