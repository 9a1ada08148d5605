package service

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"winshirt/models"
)

// Delay before an orchestrated production pass, letting the customizer
// finish its layout after the add-to-cart interaction
const productionSettleDelay = 1 * time.Second

// CaptureOrchestrator runs the per-side, per-fidelity captures concurrently
// and merges their outcomes. Implements CaptureOrchestratorInterface.
type CaptureOrchestrator struct {
	captor           SurfaceCaptorInterface
	defaultRenderURL string
	capturing        atomic.Bool
}

// NewCaptureOrchestrator creates a new CaptureOrchestrator
func NewCaptureOrchestrator(captor SurfaceCaptorInterface, defaultRenderURL string) *CaptureOrchestrator {
	return &CaptureOrchestrator{
		captor:           captor,
		defaultRenderURL: defaultRenderURL,
	}
}

// Ensure CaptureOrchestrator implements CaptureOrchestratorInterface
var _ CaptureOrchestratorInterface = (*CaptureOrchestrator)(nil)

// IsCapturing reports whether an orchestrated pass is in flight. UI
// affordance only: overlapping passes are not guarded against and will race
// on the rendering surfaces.
func (o *CaptureOrchestrator) IsCapturing() bool {
	return o.capturing.Load()
}

// captureOp describes one of the four operations of an orchestrated pass
type captureOp struct {
	side     models.Side
	fidelity Fidelity
}

var captureOps = [4]captureOp{
	{models.SideFront, FidelityPreview},
	{models.SideFront, FidelityProduction},
	{models.SideBack, FidelityPreview},
	{models.SideBack, FidelityProduction},
}

// captureAllOutcomes launches the four capture operations concurrently and
// collects their tagged outcomes. Both sides are always attempted, even when
// a side has no user content: the production system gets a consistent
// artifact set shape, and a misconfigured rendering surface is caught
// independent of content presence. Each operation's failure is isolated;
// completion order is irrelevant.
func (o *CaptureOrchestrator) captureAllOutcomes(ctx context.Context, renderURL string) [4]models.CaptureOutcome {
	if renderURL == "" {
		renderURL = o.defaultRenderURL
	}

	var outcomes [4]models.CaptureOutcome
	var wg sync.WaitGroup
	for i, op := range captureOps {
		wg.Add(1)
		go func(i int, op captureOp) {
			defer wg.Done()
			elementID := SurfaceID(op.side, op.fidelity)
			outcome := o.captor.CaptureSurface(ctx, renderURL, elementID, op.fidelity)
			outcome.Side = op.side
			outcome.Kind = ArtifactKind(op.fidelity)
			outcomes[i] = outcome
		}(i, op)
	}
	wg.Wait()
	return outcomes
}

// foldOutcomes merges tagged outcomes into per-side capture results,
// populating only the URLs whose operation succeeded
func foldOutcomes(outcomes [4]models.CaptureOutcome) models.SideResults {
	var results models.SideResults
	for _, outcome := range outcomes {
		if outcome.Status != models.CaptureOK {
			continue
		}
		url := outcome.URL
		target := &results.Front
		if outcome.Side == models.SideBack {
			target = &results.Back
		}
		if outcome.Kind == "hd" {
			target.HDURL = &url
		} else {
			target.MockupURL = &url
		}
	}
	return results
}

// CaptureAll runs one orchestrated pass: four capture operations, both sides
// at both fidelities. There is no overall failure state; callers inspect
// which URLs are present.
func (o *CaptureOrchestrator) CaptureAll(ctx context.Context, c models.UnifiedCustomization, renderURL string) models.SideResults {
	o.capturing.Store(true)
	defer o.capturing.Store(false)

	log.Printf("📸 Starting capture pass (front design=%v text=%v, back design=%v text=%v)",
		c.FrontDesign != nil, c.FrontText != nil, c.BackDesign != nil, c.BackText != nil)

	outcomes := o.captureAllOutcomes(ctx, renderURL)
	for _, outcome := range outcomes {
		if outcome.Status != models.CaptureOK {
			log.Printf("⚠️ Capture %s/%s: %s (%s)", outcome.Side, outcome.Kind, outcome.Status, outcome.Reason)
		}
	}
	return foldOutcomes(outcomes)
}

// CaptureForProduction validates, waits for the customizer to settle, runs an
// orchestrated pass and enriches the customization with the results. On any
// failure the original customization is returned unchanged: capture is
// best-effort and must never block the purchase flow.
func (o *CaptureOrchestrator) CaptureForProduction(ctx context.Context, c models.UnifiedCustomization, renderURL string) (enriched models.UnifiedCustomization) {
	enriched = c
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Capture pass panicked, keeping original customization: %v", r)
			enriched = c
		}
	}()

	if !IsValid(c) {
		log.Printf("⏭️ Skipping capture: customization has no placements")
		return c
	}

	select {
	case <-ctx.Done():
		return c
	case <-time.After(productionSettleDelay):
	}

	results := o.CaptureAll(ctx, c, renderURL)
	return Enrich(c, results)
}
