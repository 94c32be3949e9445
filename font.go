package main

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFontFace resolves the typeface for the instruction text. It prefers
// the system font at path; when that file is missing or unparseable it
// falls back to the embedded Go Regular face, and as a last resort to the
// fixed 7x13 face. Font trouble never surfaces as an error.
func loadFontFace(path string, points float64) font.Face {
	if data, err := os.ReadFile(path); err == nil {
		if face, err := newFace(data, points); err == nil {
			return face
		}
	}
	if face, err := newFace(goregular.TTF, points); err == nil {
		return face
	}
	return basicfont.Face7x13
}

func newFace(data []byte, points float64) (font.Face, error) {
	// Collections (.ttc) parse too; the parser takes the first font.
	ttfFont, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(ttfFont, &truetype.Options{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
