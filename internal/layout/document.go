package layout

import (
	"bytes"
	"io"
)

// Document wraps a fully drawn canvas ready for export.
type Document struct {
	canvas Canvas
}

// NewDocument wraps a drawn canvas.
func NewDocument(c Canvas) *Document { return &Document{canvas: c} }

// PageCount reports the number of pages in the document.
func (d *Document) PageCount() int { return d.canvas.PageCount() }

// Output writes the rendered document to w.
func (d *Document) Output(w io.Writer) error { return d.canvas.Output(w) }

// Bytes renders the document into memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
