package service

import (
	"context"

	"winshirt/models"
)

// SurfaceCaptorInterface defines the contract for rasterizing a rendering
// surface into an uploaded artifact. Side and Kind on the returned outcome
// are filled in by the orchestrator.
type SurfaceCaptorInterface interface {
	CaptureSurface(ctx context.Context, renderURL, elementID string, fidelity Fidelity) models.CaptureOutcome
}
