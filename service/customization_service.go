package service

import (
	"winshirt/models"
)

// Assemble merges the per-side design/text state into the canonical
// customization object. Pure function, no I/O. Absent placements are omitted
// rather than null-filled so the validity check stays trivial; an all-empty
// input simply yields an empty object the caller validates separately.
func Assemble(front, back models.SideCustomization) models.UnifiedCustomization {
	var c models.UnifiedCustomization
	if front.Design != nil {
		c.FrontDesign = front.Design
	}
	if front.Text != nil {
		c.FrontText = front.Text
	}
	if back.Design != nil {
		c.BackDesign = back.Design
	}
	if back.Text != nil {
		c.BackText = back.Text
	}
	return c
}

// IsValid reports whether a customization carries at least one placement.
// This gate must run before any capture attempt is scheduled to avoid wasted
// surface polling and network calls.
func IsValid(c models.UnifiedCustomization) bool {
	return c.HasContent()
}

// FillMissing backfills only the artifact URL fields that are currently
// absent, from a fresh composition pass. Existing URLs always win over
// regenerated ones, so reprocessing after a partial failure never clobbers
// artifacts already referenced by production. Returns the merged
// customization and the names of the fields that were filled.
func FillMissing(c models.UnifiedCustomization, results models.SideResults) (models.UnifiedCustomization, []string) {
	var filled []string
	fill := func(target **string, candidate *string, name string) {
		if *target == nil && candidate != nil {
			*target = candidate
			filled = append(filled, name)
		}
	}
	fill(&c.MockupRectoURL, results.Front.MockupURL, "mockupRectoUrl")
	fill(&c.MockupVersoURL, results.Back.MockupURL, "mockupVersoUrl")
	fill(&c.HDRectoURL, results.Front.HDURL, "hdRectoUrl")
	fill(&c.HDVersoURL, results.Back.HDURL, "hdVersoUrl")
	fill(&c.VisualFrontURL, results.Front.HDURL, "visual_front_url")
	fill(&c.VisualBackURL, results.Back.HDURL, "visual_back_url")
	return c, filled
}

// Enrich folds capture results back into the customization under the stable
// field names consumed by the order/production system. All six URL fields are
// always assigned: missing results become explicit nulls so persistence never
// silently keeps a stale prior value. The legacy visual_* mirrors track the
// hd urls.
func Enrich(c models.UnifiedCustomization, results models.SideResults) models.UnifiedCustomization {
	c.MockupRectoURL = results.Front.MockupURL
	c.MockupVersoURL = results.Back.MockupURL
	c.HDRectoURL = results.Front.HDURL
	c.HDVersoURL = results.Back.HDURL
	c.VisualFrontURL = results.Front.HDURL
	c.VisualBackURL = results.Back.HDURL
	return c
}
