// Package layout implements the line-oriented page layout engine behind
// receipt and report rendering. A Canvas is a fixed-size drawing surface
// (the PDF backend in production, a recorder in tests); a Sink places
// aligned lines of text onto it while tracking the vertical cursor.
package layout

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// Font families available on every canvas. Courier is used wherever
// column alignment relies on fixed-width padding.
const (
	FamilyHelvetica = "Helvetica"
	FamilyCourier   = "Courier"
)

// Font describes the face used for a single draw call.
type Font struct {
	Family string
	Style  string // "" or "B"
	Size   float64
}

// Helvetica returns a regular Helvetica font at the given size.
func Helvetica(size float64) Font { return Font{Family: FamilyHelvetica, Size: size} }

// HelveticaBold returns a bold Helvetica font at the given size.
func HelveticaBold(size float64) Font { return Font{Family: FamilyHelvetica, Style: "B", Size: size} }

// Courier returns a regular Courier font at the given size.
func Courier(size float64) Font { return Font{Family: FamilyCourier, Size: size} }

// CourierBold returns a bold Courier font at the given size.
func CourierBold(size float64) Font { return Font{Family: FamilyCourier, Style: "B", Size: size} }

// Canvas is a fixed-size drawing surface. Dimensions are supplied at
// construction and cannot change afterwards, which is why callers that
// need a content-sized page measure on a throwaway canvas first.
type Canvas interface {
	// Size reports the page dimensions in millimetres.
	Size() (w, h float64)
	// TextWidth measures the rendered width of text in millimetres.
	TextWidth(text string, f Font) float64
	// DrawText draws text with its baseline at (x, y).
	DrawText(x, y float64, text string, f Font)
	// DrawLine draws a straight line between two points.
	DrawLine(x1, y1, x2, y2 float64)
	// AddPage appends a fresh page and makes it current.
	AddPage()
	// PageCount reports the number of pages added so far.
	PageCount() int
	// Output writes the rendered document.
	Output(w io.Writer) error
}

// CanvasFunc constructs a Canvas of the given size. Builders take one
// so tests can substitute a recording canvas.
type CanvasFunc func(w, h float64) Canvas

// NewPDFCanvas returns a Canvas backed by a PDF page of the given size.
func NewPDFCanvas(w, h float64) Canvas {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &pdfCanvas{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		w:   w,
		h:   h,
	}
}

type pdfCanvas struct {
	pdf  *fpdf.Fpdf
	tr   func(string) string
	w, h float64
}

func (c *pdfCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *pdfCanvas) TextWidth(text string, f Font) float64 {
	c.pdf.SetFont(f.Family, f.Style, f.Size)
	return c.pdf.GetStringWidth(c.tr(text))
}

func (c *pdfCanvas) DrawText(x, y float64, text string, f Font) {
	c.pdf.SetFont(f.Family, f.Style, f.Size)
	c.pdf.Text(x, y, c.tr(text))
}

func (c *pdfCanvas) DrawLine(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *pdfCanvas) AddPage() { c.pdf.AddPage() }

func (c *pdfCanvas) PageCount() int { return c.pdf.PageCount() }

func (c *pdfCanvas) Output(w io.Writer) error { return c.pdf.Output(w) }
