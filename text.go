package scrollkit

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rivo/uniseg"
)

// Font is the interface for text measurement.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// Ellipsis is inserted where a truncated label loses its middle.
const Ellipsis = "…"

// --- TextBlock ---

// TextBlock holds single-line label content, formatting, and cached
// measurements.
type TextBlock struct {
	Content  string
	Font     Font
	Align    TextAlign
	Color    Color
	MaxWidth float64 // 0 = unlimited; wider content is truncated in the middle

	layoutDirty bool
	display     string
	measuredW   float64
	measuredH   float64
}

// SetContent replaces the label text and invalidates cached measurements.
func (tb *TextBlock) SetContent(s string) {
	if tb.Content == s {
		return
	}
	tb.Content = s
	tb.layoutDirty = true
}

// SetMaxWidth changes the truncation width and invalidates cached measurements.
func (tb *TextBlock) SetMaxWidth(w float64) {
	if tb.MaxWidth == w {
		return
	}
	tb.MaxWidth = w
	tb.layoutDirty = true
}

// Invalidate forces the next Measure to recompute. Call after mutating
// Content, Font or MaxWidth directly.
func (tb *TextBlock) Invalidate() {
	tb.layoutDirty = true
}

// Measure returns the width and height of the displayed (possibly truncated)
// text. Without a font both are zero.
func (tb *TextBlock) Measure() (width, height float64) {
	tb.layout()
	return tb.measuredW, tb.measuredH
}

// DisplayText returns the text as it would be drawn after truncation.
func (tb *TextBlock) DisplayText() string {
	tb.layout()
	return tb.display
}

func (tb *TextBlock) layout() {
	if !tb.layoutDirty {
		return
	}
	tb.layoutDirty = false

	if tb.Font == nil {
		tb.display = tb.Content
		tb.measuredW, tb.measuredH = 0, 0
		return
	}
	tb.display = truncateMiddle(tb.Content, tb.Font, tb.MaxWidth)
	w, _ := tb.Font.MeasureString(tb.display)
	tb.measuredW = w
	tb.measuredH = tb.Font.LineHeight()
}

// truncateMiddle drops grapheme clusters from the middle of s until it fits
// within maxWidth. The first and last clusters are kept as long as anything
// is kept at all.
func truncateMiddle(s string, f Font, maxWidth float64) string {
	if maxWidth <= 0 {
		return s
	}
	if w, _ := f.MeasureString(s); w <= maxWidth {
		return s
	}

	var clusters []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	var b strings.Builder
	for keep := len(clusters) - 1; keep > 0; keep-- {
		head := (keep + 1) / 2
		tail := keep - head
		b.Reset()
		for _, c := range clusters[:head] {
			b.WriteString(c)
		}
		b.WriteString(Ellipsis)
		for _, c := range clusters[len(clusters)-tail:] {
			b.WriteString(c)
		}
		candidate := b.String()
		if w, _ := f.MeasureString(candidate); w <= maxWidth {
			return candidate
		}
	}
	if w, _ := f.MeasureString(Ellipsis); w <= maxWidth {
		return Ellipsis
	}
	return ""
}

// --- MonospaceFont ---

// MonospaceFont measures every grapheme cluster with the same advance.
// It needs no font data, which makes it the font of choice for headless
// tools and tests.
type MonospaceFont struct {
	Advance float64
	Line    float64
}

// MeasureString returns the width of s in cluster advances and one line height.
func (f MonospaceFont) MeasureString(s string) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	return float64(uniseg.GraphemeClusterCount(s)) * f.Advance, f.Line
}

// LineHeight returns the configured line height.
func (f MonospaceFont) LineHeight() float64 {
	return f.Line
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font measurement.
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
		return nil, fmt.Errorf("scrollkit: failed to parse TTF data: %w", err)
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

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}
