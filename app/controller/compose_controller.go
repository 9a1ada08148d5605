package controller

import (
	"encoding/json"
	"net/http"

	"winshirt/models"
	"winshirt/service"
)

// ComposeController handles HTTP requests for the server-side compositor,
// the capture path that works without a live customizer page
type ComposeController struct {
	compositor service.CompositorServiceInterface
}

// NewComposeController creates a new ComposeController
func NewComposeController(compositor service.CompositorServiceInterface) *ComposeController {
	return &ComposeController{
		compositor: compositor,
	}
}

// Compose handles POST /api/compose
func (c *ComposeController) Compose(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ComposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !service.IsValid(req.Customization) {
		http.Error(w, "customization has no placements", http.StatusUnprocessableEntity)
		return
	}

	results := c.compositor.Compose(r.Context(), req.Customization, req.MockupURLs, req.ProductInfo)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
