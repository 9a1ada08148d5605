package service

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// The compositor runs without the browser's font stack, so requested font
// families are mapped onto the embedded Go fonts and bold/italic are
// synthesized by face selection.
var (
	fontOnce   sync.Once
	fontErr    error
	parsedFont map[string]*sfnt.Font
)

func fontKey(bold, italic bool) string {
	switch {
	case bold && italic:
		return "bolditalic"
	case bold:
		return "bold"
	case italic:
		return "italic"
	default:
		return "regular"
	}
}

func loadFonts() {
	sources := map[string][]byte{
		"regular":    goregular.TTF,
		"bold":       gobold.TTF,
		"italic":     goitalic.TTF,
		"bolditalic": gobolditalic.TTF,
	}
	parsedFont = make(map[string]*sfnt.Font, len(sources))
	for key, ttf := range sources {
		f, err := opentype.Parse(ttf)
		if err != nil {
			fontErr = fmt.Errorf("failed to parse embedded font %s: %w", key, err)
			return
		}
		parsedFont[key] = f
	}
}

// textFace returns a font face matching the style flags at the given size
func textFace(bold, italic bool, size float64) (font.Face, error) {
	fontOnce.Do(loadFonts)
	if fontErr != nil {
		return nil, fontErr
	}
	return opentype.NewFace(parsedFont[fontKey(bold, italic)], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
