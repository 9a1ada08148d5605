package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"net/http"
	"time"

	"winshirt/models"
	"winshirt/utils"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

const (
	// Footprint of a design image in local preview units; production scales
	// it up by the canvas ratio
	designBaseFootprint = 200.0
	// Font size of a text placement in local preview units
	textBaseFontSize = 24.0

	imageFetchTimeout = 15 * time.Second
)

// CompositorService renders the equivalent of the client-side capture using a
// headless 2D canvas, for regenerating production files after the fact or
// guaranteeing a capture path independent of client rendering quirks.
// Implements CompositorServiceInterface.
type CompositorService struct {
	media      MediaClientInterface
	httpClient *http.Client
}

// NewCompositorService creates a new CompositorService
func NewCompositorService(media MediaClientInterface) *CompositorService {
	return &CompositorService{
		media: media,
		httpClient: &http.Client{
			Timeout: imageFetchTimeout,
		},
	}
}

// Ensure CompositorService implements CompositorServiceInterface
var _ CompositorServiceInterface = (*CompositorService)(nil)

// loadImage fetches and decodes an image from a URL
func (s *CompositorService) loadImage(ctx context.Context, imageURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// scaleToFootprint resizes a design so its longest edge matches the footprint,
// preserving aspect ratio. Upscales small images too: the footprint is the
// size contract, not a maximum, so a design keeps the same relative size at
// every fidelity.
func scaleToFootprint(img image.Image, footprint float64) image.Image {
	size := int(math.Round(footprint))
	b := img.Bounds()
	if b.Dx() >= b.Dy() {
		return imaging.Resize(img, size, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, size, imaging.Lanczos)
}

// renderSide draws one side at one fidelity. Deterministic: identical inputs
// produce pixel-equivalent output, so regenerated artifacts are stable.
// Preview composites over the mockup background on opaque white; production
// draws only the customization layers on a transparent canvas. Placement
// positions are expressed in the customizer's native 400x500 space and scaled
// by the canvas ratio, so relative placement is preserved across fidelities.
func (s *CompositorService) renderSide(design *models.DesignPlacement, designImg image.Image, text *models.TextPlacement, mockupImg image.Image, fidelity Fidelity) image.Image {
	w, h := CanvasSize(fidelity)
	dc := gg.NewContext(w, h)

	ratioX := float64(w) / PreviewWidth
	ratioY := float64(h) / PreviewHeight
	cx, cy := float64(w)/2, float64(h)/2

	if fidelity == FidelityPreview {
		dc.SetRGB(1, 1, 1)
		dc.Clear()
		if mockupImg != nil {
			scaled := imaging.Resize(mockupImg, w, h, imaging.Lanczos)
			dc.DrawImage(scaled, 0, 0)
		}
	}

	if design != nil && designImg != nil {
		t := design.Transform
		dc.Push()
		dc.Translate(cx+t.Position.X*ratioX, cy+t.Position.Y*ratioY)
		dc.Rotate(gg.Radians(t.Rotation))
		if t.Scale > 0 {
			dc.Scale(t.Scale, t.Scale)
		}
		dc.DrawImageAnchored(scaleToFootprint(designImg, designBaseFootprint*ratioX), 0, 0, 0.5, 0.5)
		dc.Pop()
	}

	if text != nil && text.Content != "" {
		face, err := textFace(text.Styles.Bold, text.Styles.Italic, textBaseFontSize*ratioX)
		if err != nil {
			log.Printf("⚠️ Failed to load font face, skipping text layer: %v", err)
			return dc.Image()
		}
		t := text.Transform
		dc.Push()
		dc.Translate(cx+t.Position.X*ratioX, cy+t.Position.Y*ratioY)
		dc.Rotate(gg.Radians(t.Rotation))
		if t.Scale > 0 {
			dc.Scale(t.Scale, t.Scale)
		}
		dc.SetFontFace(face)

		// Drop shadow keeps the text legible over variable backgrounds
		shadowOffset := 1.5 * ratioX
		dc.SetRGBA(0, 0, 0, 0.35)
		dc.DrawStringAnchored(text.Content, shadowOffset, shadowOffset, 0.5, 0.5)

		dc.SetHexColor(text.Color)
		dc.DrawStringAnchored(text.Content, 0, 0, 0.5, 0.5)

		if text.Styles.Underline {
			textWidth, _ := dc.MeasureString(text.Content)
			underlineY := textBaseFontSize * ratioX * 0.55
			dc.SetLineWidth(math.Max(1, textBaseFontSize*ratioX/16))
			dc.DrawLine(-textWidth/2, underlineY, textWidth/2, underlineY)
			dc.Stroke()
		}
		dc.Pop()
	}

	return dc.Image()
}

// encodeArtifact encodes a rendered canvas as PNG. Previews trade encode size
// for a little compression time; production layers keep the default level.
func encodeArtifact(img image.Image, fidelity Fidelity) ([]byte, error) {
	level := png.DefaultCompression
	if fidelity == FidelityPreview {
		level = png.BestCompression
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(level)); err != nil {
		return nil, fmt.Errorf("failed to encode artifact: %w", err)
	}
	return buf.Bytes(), nil
}

// Compose renders both sides at both fidelities and uploads the artifacts.
// Sides without content yield null URLs, matching the client capture path
// where an empty surface never reaches readiness. Every per-layer failure
// (mockup load, design load, upload) is logged and skipped; composition
// always returns a well-formed result.
func (s *CompositorService) Compose(ctx context.Context, c models.UnifiedCustomization, mockups models.MockupURLs, product models.ProductInfo) models.SideResults {
	log.Printf("🎨 Composing artifacts for product %q (id=%s)", product.Name, product.ID)

	var results models.SideResults
	sides := []struct {
		side      models.Side
		design    *models.DesignPlacement
		text      *models.TextPlacement
		mockupURL string
		target    *models.CaptureResult
	}{
		{models.SideFront, c.FrontDesign, c.FrontText, mockups.Front, &results.Front},
		{models.SideBack, c.BackDesign, c.BackText, mockups.Back, &results.Back},
	}

	for _, sd := range sides {
		if sd.design == nil && sd.text == nil {
			continue
		}

		var designImg image.Image
		if sd.design != nil && sd.design.DesignURL != "" {
			img, err := s.loadImage(ctx, sd.design.DesignURL)
			if err != nil {
				// Continue to the text layer; a missing design must not
				// abort the side
				log.Printf("⚠️ Failed to load design image for %s side: %v", sd.side, err)
			} else {
				designImg = img
			}
		}

		var mockupImg image.Image
		if sd.mockupURL != "" {
			img, err := s.loadImage(ctx, sd.mockupURL)
			if err != nil {
				log.Printf("⚠️ Failed to load mockup background for %s side, composing blank: %v", sd.side, err)
			} else {
				mockupImg = img
			}
		}

		for _, fidelity := range []Fidelity{FidelityPreview, FidelityProduction} {
			img := s.renderSide(sd.design, designImg, sd.text, mockupImg, fidelity)
			data, err := encodeArtifact(img, fidelity)
			if err != nil {
				log.Printf("⚠️ Failed to encode %s/%s artifact: %v", sd.side, fidelity, err)
				continue
			}

			filename := utils.BuildArtifactFilename(ArtifactKind(fidelity), string(sd.side), time.Now())
			url, err := s.media.Upload(ctx, data, filename)
			if err != nil {
				log.Printf("⚠️ Failed to upload %s/%s artifact: %v", sd.side, fidelity, err)
				continue
			}

			if fidelity == FidelityProduction {
				sd.target.HDURL = &url
			} else {
				sd.target.MockupURL = &url
			}
		}
	}

	return results
}
