package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenpos/caisse/internal/layout"
	"github.com/lumenpos/caisse/internal/layout/layouttest"
)

func TestSinkAlignment(t *testing.T) {
	rec := layouttest.New(80, 200)
	s := layout.NewSink(rec, 5, 8, 1)

	f := layout.Helvetica(10)
	s.Line("left", f, layout.AlignLeft)
	s.Line("center", f, layout.AlignCenter)
	s.Line("right", f, layout.AlignRight)

	require.Len(t, rec.Texts, 3)

	left, center, right := rec.Texts[0], rec.Texts[1], rec.Texts[2]
	assert.Equal(t, 5.0, left.X)

	wantCenter := (80 - rec.TextWidth("center", f)) / 2
	assert.InDelta(t, wantCenter, center.X, 0.001)

	wantRight := 80 - rec.TextWidth("right", f) - 5
	assert.InDelta(t, wantRight, right.X, 0.001)
}

func TestSinkCursorAdvance(t *testing.T) {
	rec := layouttest.New(80, 200)
	s := layout.NewSink(rec, 5, 8, 1)

	f := layout.Helvetica(10)
	s.Line("a", f, layout.AlignLeft)
	s.Line("b", f, layout.AlignLeft)

	// each line advances by size/2 + gap
	assert.InDelta(t, 8.0, rec.Texts[0].Y, 0.001)
	assert.InDelta(t, 14.0, rec.Texts[1].Y, 0.001)
	assert.InDelta(t, 20.0, s.Y(), 0.001)
}

func TestSinkRowSharesBaseline(t *testing.T) {
	rec := layouttest.New(80, 200)
	s := layout.NewSink(rec, 5, 8, 1)

	s.Row("Qty x Price", "2.500 FCFA", layout.Courier(8))

	require.Len(t, rec.Texts, 2)
	assert.Equal(t, rec.Texts[0].Y, rec.Texts[1].Y)
	assert.Equal(t, 5.0, rec.Texts[0].X)
	assert.Greater(t, rec.Texts[1].X, rec.Texts[0].X)
}

func TestSinkSeparatorWidth(t *testing.T) {
	rec := layouttest.New(80, 200)
	s := layout.NewSink(rec, 5, 8, 1)

	s.Separator()

	require.Len(t, rec.Texts, 1)
	sep := rec.Texts[0]
	assert.True(t, strings.Count(sep.Text, "-") == len(sep.Text) && len(sep.Text) > 0)

	// roughly two thirds of the usable width
	target := (80.0 - 2*5) * 2 / 3
	assert.InDelta(t, target, rec.TextWidth(sep.Text, sep.Font), 2.0)
}

func TestSinkPageBreak(t *testing.T) {
	rec := layouttest.New(210, 297)
	s := layout.NewSink(rec, 14, 15, 1)
	s.EnablePageBreak(280)

	f := layout.Courier(9)
	for i := 0; i < 100; i++ {
		s.EnsureRoom()
		s.Line("row", f, layout.AlignLeft)
	}

	assert.Greater(t, rec.PageCount(), 1)
	for _, txt := range rec.Texts {
		assert.LessOrEqual(t, txt.Y, 280.0+f.Size/2+1)
	}
}

func TestSinkNoBreakWhenDisabled(t *testing.T) {
	rec := layouttest.New(80, 500)
	s := layout.NewSink(rec, 5, 8, 1)

	for i := 0; i < 100; i++ {
		s.EnsureRoom()
		s.Line("row", layout.Courier(8), layout.AlignLeft)
	}
	assert.Equal(t, 1, rec.PageCount())
}
