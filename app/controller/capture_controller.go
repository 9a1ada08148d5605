package controller

import (
	"encoding/json"
	"net/http"

	"winshirt/models"
	"winshirt/service"
)

// CaptureController handles HTTP requests for the client-side capture path
type CaptureController struct {
	orchestrator service.CaptureOrchestratorInterface
}

// NewCaptureController creates a new CaptureController
func NewCaptureController(orchestrator service.CaptureOrchestratorInterface) *CaptureController {
	return &CaptureController{
		orchestrator: orchestrator,
	}
}

// CaptureUnified handles POST /api/capture
// Runs one orchestrated pass over the customizer page: both sides at both
// fidelities, failures isolated per operation. The response always has the
// full artifact set shape; absent URLs mean that capture degraded.
func (c *CaptureController) CaptureUnified(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	results := c.orchestrator.CaptureAll(r.Context(), req.Customization, req.RenderURL)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// CaptureForProduction handles POST /api/capture/production
// Validates, waits for the customizer to settle, orchestrates and enriches.
// Always answers 200 with a customization: on any capture failure the
// original object is returned unchanged so the add-to-cart flow is never
// blocked.
func (c *CaptureController) CaptureForProduction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	enriched := c.orchestrator.CaptureForProduction(r.Context(), req.Customization, req.RenderURL)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(enriched); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// Status handles GET /api/capture/status
func (c *CaptureController) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.CaptureStatusResponse{
		IsCapturing: c.orchestrator.IsCapturing(),
	})
}
