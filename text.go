package inkbutton

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the size of the default title face.
const DefaultFontSize = 16

// TTFFont wraps Ebitengine's text/v2 for TrueType title rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("inkbutton: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// WithSize returns a font sharing the same source at another size.
func (f *TTFFont) WithSize(size float64) *TTFFont {
	face := &text.GoTextFace{Source: f.source, Size: size}
	m := face.Metrics()
	return &TTFFont{
		face:   face,
		source: f.source,
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 {
	return f.size
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

var (
	defaultTTF       *TTFFont
	defaultTTFFailed bool
)

// defaultFont lazily loads Go Regular at DefaultFontSize. A parse failure is
// logged once and titles are skipped afterwards.
func defaultFont() *TTFFont {
	if defaultTTF != nil || defaultTTFFailed {
		return defaultTTF
	}
	f, err := LoadTTFFont(goregular.TTF, DefaultFontSize)
	if err != nil {
		log.Printf("inkbutton: default font unavailable: %v", err)
		defaultTTFFailed = true
		return nil
	}
	defaultTTF = f
	return defaultTTF
}
