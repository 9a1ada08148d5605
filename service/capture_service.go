package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"winshirt/models"
	"winshirt/utils"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
)

const (
	surfaceMaxAttempts  = 15
	surfacePollInterval = 300 * time.Millisecond
	captureSettleDelay  = 200 * time.Millisecond

	// Worst case per operation: navigation + 15 polls + settle + 30s upload
	captureOpTimeout = 60 * time.Second
)

// surfaceInfo is the readiness snapshot of a rendering surface, evaluated
// inside the customizer page
type surfaceInfo struct {
	Exists     bool    `json:"exists"`
	ChildCount int     `json:"childCount"`
	TextLength int     `json:"textLength"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// surfaceReady reports whether a surface is safe to rasterize: present,
// carrying rendered content (children or text), with nonzero layout size.
// The design/text layers are injected by a separate rendering pass whose
// completion is not otherwise observable, so this content+size heuristic is
// the only reliable readiness signal.
func surfaceReady(info surfaceInfo) bool {
	if !info.Exists {
		return false
	}
	if info.ChildCount == 0 && info.TextLength == 0 {
		return false
	}
	return info.Width > 0 && info.Height > 0
}

// waitForSurface polls the probe until the surface is ready, up to
// maxAttempts tries spaced surfacePollInterval apart. Exhausting the attempts
// is a soft failure: logged by the caller, never an error.
func waitForSurface(ctx context.Context, probe func(context.Context) (surfaceInfo, error), maxAttempts int) bool {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		info, err := probe(ctx)
		if err == nil && surfaceReady(info) {
			return true
		}
		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(surfacePollInterval):
		}
	}
	return false
}

// CaptureService rasterizes rendering surfaces of the customizer page through
// headless Chrome. Implements SurfaceCaptorInterface.
type CaptureService struct {
	media      MediaClientInterface
	chromePath string
}

// NewCaptureService creates a new CaptureService. chromePath may be empty to
// auto-detect the browser executable.
func NewCaptureService(media MediaClientInterface, chromePath string) *CaptureService {
	if chromePath == "" {
		chromePath = detectChromePath()
	}
	return &CaptureService{
		media:      media,
		chromePath: chromePath,
	}
}

// Ensure CaptureService implements SurfaceCaptorInterface
var _ SurfaceCaptorInterface = (*CaptureService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

const surfaceProbeScript = `
	(function() {
		const el = document.getElementById(%q);
		if (!el) {
			return {exists: false, childCount: 0, textLength: 0, width: 0, height: 0};
		}
		return {
			exists: true,
			childCount: el.children.length,
			textLength: el.textContent.trim().length,
			width: el.offsetWidth,
			height: el.offsetHeight
		};
	})()
`

// probeSurface evaluates the readiness snapshot of one surface in the page
func probeSurface(tabCtx context.Context, elementID string) (surfaceInfo, error) {
	var info surfaceInfo
	script := fmt.Sprintf(surfaceProbeScript, elementID)
	if err := chromedp.Run(tabCtx, chromedp.Evaluate(script, &info)); err != nil {
		return surfaceInfo{}, err
	}
	return info, nil
}

// CaptureSurface rasterizes one rendering surface at the given fidelity and
// uploads the PNG. Every stage failure (surface never ready, surface vanished,
// screenshot error, upload error) degrades to a non-ok outcome: this function
// never propagates an error, so one artifact going missing cannot abort its
// siblings.
func (s *CaptureService) CaptureSurface(ctx context.Context, renderURL, elementID string, fidelity Fidelity) models.CaptureOutcome {
	outcome := models.CaptureOutcome{ElementID: elementID}
	fail := func(reason string) models.CaptureOutcome {
		log.Printf("⚠️ Capture failed for %s (%s): %s", elementID, fidelity, reason)
		outcome.Status = models.CaptureTransientFailure
		outcome.Reason = reason
		return outcome
	}

	select {
	case <-ctx.Done():
		outcome.Status = models.CaptureSkipped
		outcome.Reason = "capture canceled before start"
		return outcome
	default:
	}

	ctx, cancel := context.WithTimeout(ctx, captureOpTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if s.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(s.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	defer tabCancel()

	width, height := CanvasSize(fidelity)

	// Production captures are standalone print layers: force a fully
	// transparent page background so the PNG keeps its alpha channel.
	// Preview captures sit over a mockup graphic and stay opaque white.
	bg := &cdp.RGBA{R: 255, G: 255, B: 255, A: 1}
	if fidelity == FidelityProduction {
		bg = &cdp.RGBA{R: 0, G: 0, B: 0, A: 0}
	}

	err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(int64(width), int64(height)),
		emulation.SetDefaultBackgroundColorOverride().WithColor(bg),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
	)
	if err != nil {
		return fail(fmt.Sprintf("failed to open customizer page: %v", err))
	}

	probe := func(pc context.Context) (surfaceInfo, error) {
		return probeSurface(tabCtx, elementID)
	}
	if !waitForSurface(ctx, probe, surfaceMaxAttempts) {
		return fail(fmt.Sprintf("surface not ready after %d attempts", surfaceMaxAttempts))
	}

	// Brief settle for any final paint, then re-verify the surface is still
	// attached: the renderer may have unmounted it between wait and capture
	if err := chromedp.Run(tabCtx, chromedp.Sleep(captureSettleDelay)); err != nil {
		return fail(fmt.Sprintf("settle interrupted: %v", err))
	}
	info, err := probeSurface(tabCtx, elementID)
	if err != nil || !info.Exists {
		return fail("surface detached before capture")
	}

	var buf []byte
	if err := chromedp.Run(tabCtx, chromedp.Screenshot(elementID, &buf, chromedp.ByID)); err != nil {
		return fail(fmt.Sprintf("screenshot failed: %v", err))
	}
	if len(buf) == 0 {
		return fail("screenshot produced no data")
	}

	filename := utils.BuildArtifactFilename(ArtifactKind(fidelity), elementID, time.Now())
	url, err := s.media.Upload(ctx, buf, filename)
	if err != nil {
		return fail(fmt.Sprintf("upload failed: %v", err))
	}

	log.Printf("✓ Captured %s at %s fidelity: %s", elementID, fidelity, url)
	outcome.Status = models.CaptureOK
	outcome.URL = url
	return outcome
}
