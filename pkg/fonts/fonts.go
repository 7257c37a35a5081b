// Package fonts provides text faces for raster rendering.
//
// Faces are built from the Go font family embedded in golang.org/x/image,
// so rendering needs no font files on disk. Parsed fonts are cached after
// first use; faces are built per size and cached too.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontDPI matches the 72 points-per-inch convention used by the drawing
// backend, so a face's point size equals its pixel size.
const fontDPI = 72

var (
	parseOnce sync.Once
	parsed    *opentype.Font
	parseErr  error

	mu    sync.Mutex
	faces = map[float64]font.Face{}
)

// Regular returns a font face of the given point size.
// Faces are cached and safe for concurrent use.
func Regular(size float64) (font.Face, error) {
	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
	})
	if parseErr != nil {
		return nil, fmt.Errorf("parse embedded font: %w", parseErr)
	}

	mu.Lock()
	defer mu.Unlock()
	if face, ok := faces[size]; ok {
		return face, nil
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build %gpt face: %w", size, err)
	}
	faces[size] = face
	return face, nil
}

// FontFamily is the CSS font-family name for the embedded font, used by
// the SVG sink so vector output matches the raster output.
const FontFamily = "Go"

// FallbackFontFamily provides fallbacks for viewers without the Go font.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Helvetica, Arial, sans-serif`
