package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winshirt/models"
)

func TestParseMockupFileName(t *testing.T) {
	cases := []struct {
		filename string
		slug     string
		side     models.Side
	}{
		{"tee-classic_front.png", "tee-classic", models.SideFront},
		{"tee-classic_back.png", "tee-classic", models.SideBack},
		{"Hoodie-Premium_FRONT.PNG", "hoodie-premium", models.SideFront},
		{"sweat2024_verso.jpg", "sweat2024", models.SideBack},
		{"sweat2024_recto.jpeg", "sweat2024", models.SideFront},
	}
	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			asset, err := ParseMockupFileName(tc.filename)
			require.NoError(t, err)
			assert.Equal(t, tc.slug, asset.ProductSlug)
			assert.Equal(t, tc.side, asset.Side)
			assert.Equal(t, tc.filename, asset.FileName)
		})
	}
}

func TestParseMockupFileNameInvalid(t *testing.T) {
	invalid := []string{
		"tee-classic.png",        // no side token
		"tee-classic_side.png",   // unknown side token
		"tee classic_front.png",  // spaces in slug
		"_front.png",             // empty slug
		"tee-classic_front.webp", // unsupported extension
	}
	for _, filename := range invalid {
		t.Run(filename, func(t *testing.T) {
			_, err := ParseMockupFileName(filename)
			assert.Error(t, err)
		})
	}
}
