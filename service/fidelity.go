package service

import "winshirt/models"

// Fidelity selects the rasterization preset for a capture or composition
type Fidelity string

const (
	// FidelityPreview renders a small opaque composite meant to sit over a
	// product mockup for user-facing display
	FidelityPreview Fidelity = "preview"
	// FidelityProduction renders a large transparent standalone layer meant
	// for DTF print transfer
	FidelityProduction Fidelity = "production"
)

// Canvas dimensions per fidelity. The preview size doubles as the native
// coordinate space of the customizer: production placements are scaled by the
// ratio between the two.
const (
	PreviewWidth  = 400
	PreviewHeight = 500

	ProductionWidth  = 3500
	ProductionHeight = 3500
)

// CanvasSize returns the canvas dimensions for a fidelity preset
func CanvasSize(fidelity Fidelity) (int, int) {
	if fidelity == FidelityProduction {
		return ProductionWidth, ProductionHeight
	}
	return PreviewWidth, PreviewHeight
}

// ArtifactKind returns the filename/result prefix for a fidelity preset
func ArtifactKind(fidelity Fidelity) string {
	if fidelity == FidelityProduction {
		return "hd"
	}
	return "mockup"
}

// Rendering surface ids populated by the customization renderer. Preview
// surfaces hold the full composite over the product mockup; production
// surfaces hold only the isolated design/text layers.
const (
	SurfacePreviewFront    = "preview-front-complete"
	SurfaceProductionFront = "production-front-only"
	SurfacePreviewBack     = "preview-back-complete"
	SurfaceProductionBack  = "production-back-only"
)

// SurfaceID returns the rendering surface id for a side/fidelity pair
func SurfaceID(side models.Side, fidelity Fidelity) string {
	if side == models.SideBack {
		if fidelity == FidelityProduction {
			return SurfaceProductionBack
		}
		return SurfacePreviewBack
	}
	if fidelity == FidelityProduction {
		return SurfaceProductionFront
	}
	return SurfacePreviewFront
}
