package models

// Point is a 2D position in the customizer's coordinate space
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Transform describes how a placed element sits on a garment side.
// It is replaced wholesale on edit; never mutated field by field.
type Transform struct {
	Position Point   `json:"position"`
	Scale    float64 `json:"scale"`    // uniform, > 0, typically 0.1-2.0
	Rotation float64 `json:"rotation"` // degrees, -360..360
}

// TextStyles holds the style flags for a text placement
type TextStyles struct {
	Bold      bool `json:"bold"`
	Italic    bool `json:"italic"`
	Underline bool `json:"underline"`
}

// DesignPlacement is an image or recolorable vector asset anchored at a garment side
type DesignPlacement struct {
	DesignID   string    `json:"designId"`
	DesignURL  string    `json:"designUrl"`
	Transform  Transform `json:"transform"`
	SVGColor   string    `json:"svgColor,omitempty"`
	SVGContent string    `json:"svgContent,omitempty"`
}

// TextPlacement is a text element anchored at a garment side
type TextPlacement struct {
	Content   string     `json:"content"`
	Font      string     `json:"font"`
	Color     string     `json:"color"` // hex, e.g. "#ffffff"
	Styles    TextStyles `json:"styles"`
	Transform Transform  `json:"transform"`
}

// SideCustomization is the design/text pair for one garment side
type SideCustomization struct {
	Design *DesignPlacement `json:"design,omitempty"`
	Text   *TextPlacement   `json:"text,omitempty"`
}

// UnifiedCustomization is the canonical customization object attached to an
// order line item. Placement fields are omitted (not null-filled) when absent
// so the validity check stays simple. The artifact URL fields are always
// serialized: enrichment sets them to explicit null when a capture produced
// nothing, so downstream persistence never keeps a stale prior value.
type UnifiedCustomization struct {
	FrontDesign *DesignPlacement `json:"frontDesign,omitempty"`
	BackDesign  *DesignPlacement `json:"backDesign,omitempty"`
	FrontText   *TextPlacement   `json:"frontText,omitempty"`
	BackText    *TextPlacement   `json:"backText,omitempty"`

	MockupRectoURL *string `json:"mockupRectoUrl"`
	MockupVersoURL *string `json:"mockupVersoUrl"`
	HDRectoURL     *string `json:"hdRectoUrl"`
	HDVersoURL     *string `json:"hdVersoUrl"`

	// Legacy field names kept in sync with the hd urls for existing consumers
	VisualFrontURL *string `json:"visual_front_url"`
	VisualBackURL  *string `json:"visual_back_url"`
}

// HasContent reports whether at least one placement exists. An all-empty
// customization is invalid and must short-circuit the capture pipeline.
func (c UnifiedCustomization) HasContent() bool {
	return c.FrontDesign != nil || c.BackDesign != nil || c.FrontText != nil || c.BackText != nil
}
