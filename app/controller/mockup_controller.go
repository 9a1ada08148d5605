package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"winshirt/models"
	"winshirt/service"
)

// MockupController handles HTTP requests for the mockup library
type MockupController struct {
	syncService service.MockupSyncServiceInterface
}

// NewMockupController creates a new MockupController
func NewMockupController(syncService service.MockupSyncServiceInterface) *MockupController {
	return &MockupController{
		syncService: syncService,
	}
}

// LoadMockups handles GET /admin/mockups/load
// Fetches mockup backgrounds from Google Drive, syncs them to the database,
// and returns them
func (c *MockupController) LoadMockups(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	folderID := r.URL.Query().Get("folderId")
	if folderID == "" {
		http.Error(w, "folderId parameter is required", http.StatusBadRequest)
		return
	}

	assets, inserted, skipped, total, err := c.syncService.SyncMockups(r.Context(), folderID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to sync mockup assets: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(models.MockupSyncResponse{
		Assets:   assets,
		Inserted: inserted,
		Skipped:  skipped,
		Total:    total,
	}); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
