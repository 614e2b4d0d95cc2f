// Package layouttest provides a recording Canvas for builder tests.
// Text placement is asserted against recorded draw calls instead of
// parsing PDF output.
package layouttest

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/lumenpos/caisse/internal/layout"
)

// Text is one recorded DrawText call.
type Text struct {
	Page int
	X, Y float64
	Text string
	Font layout.Font
}

// Line is one recorded DrawLine call.
type Line struct {
	Page           int
	X1, Y1, X2, Y2 float64
}

// Recorder implements layout.Canvas by recording every draw call.
type Recorder struct {
	W, H  float64
	Texts []Text
	Lines []Line
	pages int
}

// New returns a Recorder of the given size with one page.
func New(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, pages: 1}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

// TextWidth approximates rendered width from the rune count: fixed
// advance for Courier, a narrower average for Helvetica. Deterministic,
// which is all alignment assertions need.
func (r *Recorder) TextWidth(text string, f layout.Font) float64 {
	factor := 0.5
	if f.Family == layout.FamilyCourier {
		factor = 0.6
	}
	return float64(utf8.RuneCountInString(text)) * f.Size * factor * 25.4 / 72
}

func (r *Recorder) DrawText(x, y float64, text string, f layout.Font) {
	r.Texts = append(r.Texts, Text{Page: r.pages, X: x, Y: y, Text: text, Font: f})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.Lines = append(r.Lines, Line{Page: r.pages, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (r *Recorder) AddPage() { r.pages++ }

func (r *Recorder) PageCount() int { return r.pages }

// Output writes a fake payload naming page count and text volume so
// export tests can assert non-empty bodies.
func (r *Recorder) Output(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%%recorded pages=%d texts=%d\n%s", r.pages, len(r.Texts), r.Rendered())
	return err
}

// Rendered joins all recorded text in draw order, one call per line.
func (r *Recorder) Rendered() string {
	parts := make([]string, 0, len(r.Texts))
	for _, t := range r.Texts {
		parts = append(parts, t.Text)
	}
	return strings.Join(parts, "\n")
}

// Contains reports whether any recorded text contains s.
func (r *Recorder) Contains(s string) bool {
	for _, t := range r.Texts {
		if strings.Contains(t.Text, s) {
			return true
		}
	}
	return false
}

// Find returns the first recorded text containing s.
func (r *Recorder) Find(s string) (Text, bool) {
	for _, t := range r.Texts {
		if strings.Contains(t.Text, s) {
			return t, true
		}
	}
	return Text{}, false
}
