package router

import (
	"net/http"
	"strings"

	"winshirt/app/controller"
)

type Controllers struct {
	Capture *controller.CaptureController
	Compose *controller.ComposeController
	Order   *controller.OrderController
	Mockup  *controller.MockupController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Client-side capture path (headless Chrome over the customizer page)
	http.HandleFunc("/api/capture", controllers.Capture.CaptureUnified)
	http.HandleFunc("/api/capture/production", controllers.Capture.CaptureForProduction)
	http.HandleFunc("/api/capture/status", controllers.Capture.Status)

	// Server-side compositor path (no browser dependency)
	http.HandleFunc("/api/compose", controllers.Compose.Compose)

	// Mockup library sync (disabled when Drive credentials are absent)
	if controllers.Mockup != nil {
		http.HandleFunc("/admin/mockups/load", controllers.Mockup.LoadMockups)
	}

	// Order customization persistence
	http.HandleFunc("/admin/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Order.CreateOrder(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Backfill candidates (must be before the generic /:id route)
	http.HandleFunc("/admin/orders/missing-artifacts", controllers.Order.ListMissingArtifacts)

	http.HandleFunc("/admin/orders/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/admin/orders/")

		// Route to specific actions first
		if strings.HasSuffix(path, "/reprocess") {
			controllers.Order.Reprocess(w, r)
			return
		}

		// Otherwise, treat as GET /admin/orders/:id
		if r.Method == http.MethodGet {
			controllers.Order.GetOrder(w, r)
			return
		}

		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
}
