package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"winshirt/models"
)

func TestSurfaceReady(t *testing.T) {
	cases := []struct {
		name  string
		info  surfaceInfo
		ready bool
	}{
		{"missing element", surfaceInfo{}, false},
		{"present but empty", surfaceInfo{Exists: true, Width: 400, Height: 500}, false},
		{"children but zero size", surfaceInfo{Exists: true, ChildCount: 2}, false},
		{"children and size", surfaceInfo{Exists: true, ChildCount: 2, Width: 400, Height: 500}, true},
		{"text only", surfaceInfo{Exists: true, TextLength: 5, Width: 400, Height: 500}, true},
		{"zero height", surfaceInfo{Exists: true, ChildCount: 1, Width: 400}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ready, surfaceReady(tc.info))
		})
	}
}

func TestWaitForSurfaceExhaustsAttempts(t *testing.T) {
	attempts := 0
	probe := func(context.Context) (surfaceInfo, error) {
		attempts++
		return surfaceInfo{Exists: true}, nil // never carries content
	}

	ok := waitForSurface(context.Background(), probe, 3)

	assert.False(t, ok)
	assert.Equal(t, 3, attempts)
}

func TestWaitForSurfaceStopsOnFirstReady(t *testing.T) {
	attempts := 0
	probe := func(context.Context) (surfaceInfo, error) {
		attempts++
		if attempts < 2 {
			return surfaceInfo{Exists: true}, nil
		}
		return surfaceInfo{Exists: true, ChildCount: 1, Width: 400, Height: 500}, nil
	}

	ok := waitForSurface(context.Background(), probe, surfaceMaxAttempts)

	assert.True(t, ok)
	assert.Equal(t, 2, attempts)
}

func TestWaitForSurfaceProbeErrorCountsAsNotReady(t *testing.T) {
	probe := func(context.Context) (surfaceInfo, error) {
		return surfaceInfo{}, errors.New("target crashed")
	}
	assert.False(t, waitForSurface(context.Background(), probe, 1))
}

func TestWaitForSurfaceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	probe := func(context.Context) (surfaceInfo, error) {
		attempts++
		return surfaceInfo{}, nil
	}

	start := time.Now()
	ok := waitForSurface(ctx, probe, surfaceMaxAttempts)

	assert.False(t, ok)
	assert.Equal(t, 1, attempts)
	assert.Less(t, time.Since(start), surfacePollInterval)
}

func TestCaptureSurfaceSkippedWhenCanceled(t *testing.T) {
	s := NewCaptureService(nil, "/usr/bin/chromium")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome := s.CaptureSurface(ctx, "http://localhost:3000/customizer/render", SurfacePreviewFront, FidelityPreview)

	assert.Equal(t, models.CaptureSkipped, outcome.Status)
	assert.Equal(t, SurfacePreviewFront, outcome.ElementID)
	assert.Empty(t, outcome.URL)
}
