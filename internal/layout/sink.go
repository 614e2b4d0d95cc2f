package layout

import (
	"math"
	"strings"
)

// Align selects the horizontal placement of a line.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// mmPerPt converts font points to millimetres.
const mmPerPt = 25.4 / 72

// courierAdvance is the per-character advance of Courier relative to
// the font size.
const courierAdvance = 0.6

// Sink places lines of text on a canvas while advancing a vertical
// cursor. The same section code runs against a throwaway measuring
// canvas and the final one, so measured heights cannot drift from what
// is actually drawn.
type Sink struct {
	canvas  Canvas
	margin  float64
	top     float64
	gap     float64
	breakAt float64 // 0 disables pagination
	y       float64
}

// NewSink returns a Sink drawing on c with the given horizontal margin,
// top margin and inter-line gap. The cursor starts at the top margin.
func NewSink(c Canvas, margin, top, gap float64) *Sink {
	return &Sink{canvas: c, margin: margin, top: top, gap: gap, y: top}
}

// EnablePageBreak turns on pagination: EnsureRoom starts a new page
// once the cursor passes limit.
func (s *Sink) EnablePageBreak(limit float64) { s.breakAt = limit }

// EnsureRoom starts a new page when the cursor has passed the break
// threshold. Callers invoke it before each block that must not start
// at the very bottom of a page; it is never called implicitly.
func (s *Sink) EnsureRoom() {
	if s.breakAt > 0 && s.y > s.breakAt {
		s.canvas.AddPage()
		s.y = s.top
	}
}

// Y reports the current vertical cursor.
func (s *Sink) Y() float64 { return s.y }

// Line draws one line of text at the cursor and advances it by
// size/2 plus the configured gap.
func (s *Sink) Line(text string, f Font, align Align) {
	w, _ := s.canvas.Size()
	var x float64
	switch align {
	case AlignCenter:
		x = (w - s.canvas.TextWidth(text, f)) / 2
	case AlignRight:
		x = w - s.canvas.TextWidth(text, f) - s.margin
	default:
		x = s.margin
	}
	s.canvas.DrawText(x, s.y, text, f)
	s.advance(f)
}

// Row draws a left-aligned and a right-aligned text on the same
// baseline, then advances the cursor once.
func (s *Sink) Row(left, right string, f Font) {
	w, _ := s.canvas.Size()
	s.canvas.DrawText(s.margin, s.y, left, f)
	s.canvas.DrawText(w-s.canvas.TextWidth(right, f)-s.margin, s.y, right, f)
	s.advance(f)
}

// Separator draws a centered dashed rule spanning roughly two thirds
// of the usable content width.
func (s *Sink) Separator() {
	f := Courier(sepFontSize)
	w, _ := s.canvas.Size()
	target := (w - 2*s.margin) * 2 / 3
	charW := f.Size * courierAdvance * mmPerPt
	n := int(math.Max(1, target/charW))
	s.Line(strings.Repeat("-", n), f, AlignCenter)
}

const sepFontSize = 7

// Rule draws a full-content-width horizontal line at the cursor and
// advances by the gap.
func (s *Sink) Rule() {
	w, _ := s.canvas.Size()
	s.canvas.DrawLine(s.margin, s.y, w-s.margin, s.y)
	s.y += s.gap
}

// Space advances the cursor by h without drawing.
func (s *Sink) Space(h float64) { s.y += h }

func (s *Sink) advance(f Font) {
	s.y += f.Size/2 + s.gap
}
