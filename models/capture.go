package models

// Side identifies one of the two printable faces of a garment
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// CaptureStatus tags the outcome of a single capture operation
type CaptureStatus string

const (
	CaptureOK               CaptureStatus = "ok"
	CaptureTransientFailure CaptureStatus = "transient_failure"
	CaptureSkipped          CaptureStatus = "skipped"
)

// CaptureOutcome is the tagged result of one surface capture. Tests and
// callers can inspect the failure reason instead of scraping logs.
type CaptureOutcome struct {
	Side      Side          `json:"side"`
	Kind      string        `json:"kind"` // "mockup" or "hd"
	Status    CaptureStatus `json:"status"`
	URL       string        `json:"url,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	ElementID string        `json:"elementId,omitempty"`
}

// CaptureResult holds the artifact URLs produced for one side. A null field
// means "production file unavailable", not an error: downstream consumers
// proceed with whatever artifacts exist.
type CaptureResult struct {
	MockupURL *string `json:"mockupUrl"`
	HDURL     *string `json:"hdUrl"`
}

// SideResults pairs the capture results of both sides
type SideResults struct {
	Front CaptureResult `json:"front"`
	Back  CaptureResult `json:"back"`
}

// MockupURLs carries the product mockup background for each side
type MockupURLs struct {
	Front string `json:"front,omitempty"`
	Back  string `json:"back,omitempty"`
}

// ProductInfo identifies the product a composition belongs to
type ProductInfo struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// CaptureRequest is the body for the client-side capture endpoints
type CaptureRequest struct {
	Customization UnifiedCustomization `json:"customization"`
	// Optional override of the customizer page hosting the rendering surfaces
	RenderURL string `json:"renderUrl,omitempty"`
}

// ComposeRequest is the body for the server-side compositor endpoint
type ComposeRequest struct {
	Customization UnifiedCustomization `json:"customization"`
	MockupURLs    MockupURLs           `json:"mockupUrls"`
	ProductInfo   ProductInfo          `json:"productInfo"`
}

// CaptureStatusResponse reports whether an orchestrated pass is running
type CaptureStatusResponse struct {
	IsCapturing bool `json:"isCapturing"`
}
