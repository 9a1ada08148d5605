package utils

import (
	"fmt"
	"regexp"
	"strings"

	"winshirt/models"
)

var mockupNameRegex = regexp.MustCompile(`^([a-z0-9][a-z0-9-]*)_(front|back|recto|verso)$`)

// ParseMockupFileName parses a mockup filename following the pattern:
// PRODUCTSLUG_SIDE.PNG
// Example: tee-classic_front.png
// The side token accepts the legacy recto/verso naming used by older uploads.
func ParseMockupFileName(filename string) (*models.MockupAsset, error) {
	// Remove extension (case-insensitive)
	extRegex := regexp.MustCompile(`\.(png|jpg|jpeg)$`)
	nameWithoutExt := extRegex.ReplaceAllString(strings.ToLower(filename), "")

	matches := mockupNameRegex.FindStringSubmatch(nameWithoutExt)
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid mockup filename: expected PRODUCTSLUG_SIDE, got %s", filename)
	}

	side := models.SideFront
	if matches[2] == "back" || matches[2] == "verso" {
		side = models.SideBack
	}

	return &models.MockupAsset{
		FileName:    filename,
		ProductSlug: matches[1],
		Side:        side,
	}, nil
}
