package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winshirt/models"
)

// fakeOrchestrator implements service.CaptureOrchestratorInterface
type fakeOrchestrator struct {
	results   models.SideResults
	enriched  models.UnifiedCustomization
	capturing bool
	renderURL string
}

func (f *fakeOrchestrator) CaptureAll(ctx context.Context, c models.UnifiedCustomization, renderURL string) models.SideResults {
	f.renderURL = renderURL
	return f.results
}

func (f *fakeOrchestrator) CaptureForProduction(ctx context.Context, c models.UnifiedCustomization, renderURL string) models.UnifiedCustomization {
	f.renderURL = renderURL
	return f.enriched
}

func (f *fakeOrchestrator) IsCapturing() bool {
	return f.capturing
}

func TestCaptureUnified(t *testing.T) {
	url := "https://media.winshirt.fr/uploads/mockup-front.png"
	fake := &fakeOrchestrator{
		results: models.SideResults{Front: models.CaptureResult{MockupURL: &url}},
	}
	c := NewCaptureController(fake)

	body := `{"customization":{"frontText":{"content":"Hi","font":"Arial","color":"#fff"}},"renderUrl":"https://winshirt.fr/render"}`
	r := httptest.NewRequest(http.MethodPost, "/api/capture", strings.NewReader(body))
	w := httptest.NewRecorder()
	c.CaptureUnified(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://winshirt.fr/render", fake.renderURL)

	var results models.SideResults
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.NotNil(t, results.Front.MockupURL)
	assert.Equal(t, url, *results.Front.MockupURL)
	assert.Nil(t, results.Back.MockupURL)
}

func TestCaptureUnifiedRejectsBadInput(t *testing.T) {
	c := NewCaptureController(&fakeOrchestrator{})

	r := httptest.NewRequest(http.MethodGet, "/api/capture", nil)
	w := httptest.NewRecorder()
	c.CaptureUnified(w, r)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	r = httptest.NewRequest(http.MethodPost, "/api/capture", strings.NewReader("{not json"))
	w = httptest.NewRecorder()
	c.CaptureUnified(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// The production endpoint must answer 200 with a customization no matter how
// the capture pass went: the add-to-cart flow on the other end cannot handle
// an error
func TestCaptureForProductionAlwaysAnswers200(t *testing.T) {
	original := models.UnifiedCustomization{
		FrontText: &models.TextPlacement{Content: "Hi", Font: "Arial", Color: "#fff"},
	}
	fake := &fakeOrchestrator{enriched: original}
	c := NewCaptureController(fake)

	body, err := json.Marshal(models.CaptureRequest{Customization: original})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/capture/production", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	c.CaptureForProduction(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.UnifiedCustomization
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, original, got)

	// Artifact fields are serialized as explicit nulls
	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &keys))
	assert.Equal(t, "null", string(keys["hdRectoUrl"]))
}

func TestCaptureStatus(t *testing.T) {
	c := NewCaptureController(&fakeOrchestrator{capturing: true})

	r := httptest.NewRequest(http.MethodGet, "/api/capture/status", nil)
	w := httptest.NewRecorder()
	c.Status(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var status models.CaptureStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.IsCapturing)
}
