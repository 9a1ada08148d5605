package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winshirt/models"
)

// fakeUploader records uploads and mints deterministic URLs
type fakeUploader struct {
	mu        sync.Mutex
	filenames []string
	err       error
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.filenames = append(f.filenames, filename)
	return "https://media.winshirt.fr/uploads/" + filename, nil
}

func solidImage(w, h int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// coloredCenter returns the centroid of the bounding box of pixels matching
// the predicate, and whether any matched
func coloredCenter(img image.Image, match func(color.NRGBA) bool) (float64, float64, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if !match(c) {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX {
		return 0, 0, false
	}
	return float64(minX+maxX) / 2, float64(minY+maxY) / 2, true
}

func isRed(c color.NRGBA) bool {
	return c.A > 25 && c.R > 200 && c.G < 80 && c.B < 80
}

func TestRenderSideCanvasDimensions(t *testing.T) {
	s := NewCompositorService(&fakeUploader{})

	preview := s.renderSide(nil, nil, nil, nil, FidelityPreview)
	assert.Equal(t, image.Rect(0, 0, PreviewWidth, PreviewHeight), preview.Bounds())

	production := s.renderSide(nil, nil, nil, nil, FidelityProduction)
	assert.Equal(t, image.Rect(0, 0, ProductionWidth, ProductionHeight), production.Bounds())
}

// The same placement must land at canvas-center plus the position scaled by
// the per-axis canvas ratio, at every fidelity
func TestRenderSidePlacementScalesAcrossFidelities(t *testing.T) {
	s := NewCompositorService(&fakeUploader{})
	design := &models.DesignPlacement{
		DesignID:  "d1",
		DesignURL: "https://example.com/d1.png",
		Transform: models.Transform{
			Position: models.Point{X: 100, Y: 150},
			Scale:    0.2,
		},
	}
	designImg := solidImage(10, 10, color.NRGBA{R: 255, A: 255})

	preview := s.renderSide(design, designImg, nil, nil, FidelityPreview)
	x, y, found := coloredCenter(preview, isRed)
	require.True(t, found)
	assert.InDelta(t, 300.0, x, 3) // 400/2 + 100*1
	assert.InDelta(t, 400.0, y, 3) // 500/2 + 150*1

	production := s.renderSide(design, designImg, nil, nil, FidelityProduction)
	x, y, found = coloredCenter(production, isRed)
	require.True(t, found)
	assert.InDelta(t, 2625.0, x, 3) // 3500/2 + 100*8.75
	assert.InDelta(t, 2800.0, y, 3) // 3500/2 + 150*7
}

func TestRenderSideProductionBackgroundTransparent(t *testing.T) {
	s := NewCompositorService(&fakeUploader{})
	design := &models.DesignPlacement{
		DesignID:  "d1",
		Transform: models.Transform{Scale: 0.2},
	}
	designImg := solidImage(10, 10, color.NRGBA{R: 255, A: 255})

	img := s.renderSide(design, designImg, nil, nil, FidelityProduction)

	corner := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	assert.Equal(t, uint8(0), corner.A)
}

func TestRenderSidePreviewBackgroundOpaqueWhite(t *testing.T) {
	s := NewCompositorService(&fakeUploader{})

	img := s.renderSide(nil, nil, nil, nil, FidelityPreview)

	corner := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, corner)
}

func TestRenderSidePreviewUsesMockupBackground(t *testing.T) {
	s := NewCompositorService(&fakeUploader{})
	mockup := solidImage(40, 50, color.NRGBA{R: 0, G: 0, B: 255, A: 255})

	img := s.renderSide(nil, nil, nil, mockup, FidelityPreview)

	// Mockup is stretched over the full preview canvas
	corner := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	assert.Equal(t, uint8(255), corner.B)
	assert.Equal(t, uint8(0), corner.R)
}

func TestRenderSideDeterministic(t *testing.T) {
	s := NewCompositorService(&fakeUploader{})
	design := &models.DesignPlacement{
		DesignID:  "d1",
		Transform: models.Transform{Position: models.Point{X: -30, Y: 20}, Scale: 0.5, Rotation: 45},
	}
	designImg := solidImage(10, 10, color.NRGBA{R: 255, A: 255})
	text := &models.TextPlacement{
		Content:   "WinShirt",
		Font:      "Arial",
		Color:     "#00ff00",
		Transform: models.Transform{Position: models.Point{X: 0, Y: 120}, Scale: 1},
		Styles:    models.TextStyles{Bold: true, Underline: true},
	}

	first := s.renderSide(design, designImg, text, nil, FidelityPreview)
	second := s.renderSide(design, designImg, text, nil, FidelityPreview)

	a, err := encodeArtifact(first, FidelityPreview)
	require.NoError(t, err)
	b, err := encodeArtifact(second, FidelityPreview)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b))
}

func TestRenderSideTextLayer(t *testing.T) {
	s := NewCompositorService(&fakeUploader{})
	text := &models.TextPlacement{
		Content:   "Hello",
		Font:      "Arial",
		Color:     "#ff0000",
		Transform: models.Transform{Scale: 1},
	}

	img := s.renderSide(nil, nil, text, nil, FidelityProduction)

	x, y, found := coloredCenter(img, isRed)
	require.True(t, found, "text layer should produce colored pixels")
	// Glyph bbox sits around the anchor at canvas center
	assert.InDelta(t, float64(ProductionWidth)/2, x, 120)
	assert.InDelta(t, float64(ProductionHeight)/2, y, 120)
}

func TestRenderSideUnderlineChangesOutput(t *testing.T) {
	s := NewCompositorService(&fakeUploader{})
	base := models.TextPlacement{
		Content:   "Hello",
		Font:      "Arial",
		Color:     "#ff0000",
		Transform: models.Transform{Scale: 1},
	}
	underlined := base
	underlined.Styles.Underline = true

	plain := s.renderSide(nil, nil, &base, nil, FidelityPreview)
	withLine := s.renderSide(nil, nil, &underlined, nil, FidelityPreview)

	a, err := encodeArtifact(plain, FidelityPreview)
	require.NoError(t, err)
	b, err := encodeArtifact(withLine, FidelityPreview)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(a, b))
}

func TestEncodeArtifactProducesDecodablePNG(t *testing.T) {
	img := solidImage(32, 32, color.NRGBA{R: 255, A: 255})

	data, err := encodeArtifact(img, FidelityProduction)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 32), decoded.Bounds())
}

func TestComposeTextOnlyFront(t *testing.T) {
	uploader := &fakeUploader{}
	s := NewCompositorService(uploader)

	c := models.UnifiedCustomization{
		FrontText: &models.TextPlacement{Content: "Hi", Font: "Arial", Color: "#fff", Transform: models.Transform{Scale: 1}},
	}

	results := s.Compose(context.Background(), c, models.MockupURLs{}, models.ProductInfo{Name: "Tee Classic", ID: "p1"})

	require.NotNil(t, results.Front.MockupURL)
	require.NotNil(t, results.Front.HDURL)
	assert.Contains(t, *results.Front.MockupURL, "mockup-front-")
	assert.Contains(t, *results.Front.HDURL, "hd-front-")

	// Empty back side is skipped entirely: null URLs, no uploads
	assert.Nil(t, results.Back.MockupURL)
	assert.Nil(t, results.Back.HDURL)
	assert.Len(t, uploader.filenames, 2)
}

func TestComposeLoadsDesignAndMockup(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solidImage(10, 10, color.NRGBA{R: 255, A: 255})))
	imageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(buf.Bytes())
	}))
	defer imageServer.Close()

	uploader := &fakeUploader{}
	s := NewCompositorService(uploader)

	c := models.UnifiedCustomization{
		FrontDesign: &models.DesignPlacement{
			DesignID:  "d1",
			DesignURL: imageServer.URL + "/design.png",
			Transform: models.Transform{Scale: 0.5},
		},
	}
	mockups := models.MockupURLs{Front: imageServer.URL + "/mockup.png"}

	results := s.Compose(context.Background(), c, mockups, models.ProductInfo{Name: "Tee Classic"})

	require.NotNil(t, results.Front.MockupURL)
	require.NotNil(t, results.Front.HDURL)
	assert.Len(t, uploader.filenames, 2)
}

func TestComposeMissingDesignImageDegrades(t *testing.T) {
	imageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer imageServer.Close()

	uploader := &fakeUploader{}
	s := NewCompositorService(uploader)

	c := models.UnifiedCustomization{
		FrontDesign: &models.DesignPlacement{
			DesignID:  "d1",
			DesignURL: imageServer.URL + "/gone.png",
			Transform: models.Transform{Scale: 1},
		},
		FrontText: &models.TextPlacement{Content: "Hi", Font: "Arial", Color: "#fff", Transform: models.Transform{Scale: 1}},
	}

	results := s.Compose(context.Background(), c, models.MockupURLs{}, models.ProductInfo{})

	// The text layer still composes even though the design never loaded
	require.NotNil(t, results.Front.MockupURL)
	require.NotNil(t, results.Front.HDURL)
}

func TestComposeUploadFailureYieldsNullURLs(t *testing.T) {
	uploader := &fakeUploader{err: context.DeadlineExceeded}
	s := NewCompositorService(uploader)

	c := models.UnifiedCustomization{
		FrontText: &models.TextPlacement{Content: "Hi", Font: "Arial", Color: "#fff", Transform: models.Transform{Scale: 1}},
	}

	results := s.Compose(context.Background(), c, models.MockupURLs{}, models.ProductInfo{})

	assert.Equal(t, models.SideResults{}, results)
}
