// Package receipt renders single-transaction receipts (retail sales and
// game sessions) on receipt-paper width. Page height is not fixed: the
// section sequence runs once on a throwaway oversized canvas to measure
// the content, then replays on a canvas cut to the measured height.
package receipt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lumenpos/caisse/internal/format"
	"github.com/lumenpos/caisse/internal/layout"
	"github.com/lumenpos/caisse/internal/money"
	"github.com/lumenpos/caisse/internal/pos"
)

const (
	pageWidth     = 80.0 // receipt paper, mm
	margin        = 5.0
	topMargin     = 8.0
	lineGap       = 1.0
	bottomMargin  = 8.0
	measureHeight = 2000.0
)

// Config carries the venue identity printed on every receipt.
type Config struct {
	VenueName  string
	VenuePhone string
	Money      money.Formatter
}

// Builder renders receipts.
type Builder struct {
	cfg       Config
	newCanvas layout.CanvasFunc
}

// NewBuilder returns a Builder rendering onto PDF pages.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg, newCanvas: layout.NewPDFCanvas}
}

// Build renders a retail sale receipt. Totals are displayed exactly as
// supplied, never recomputed from the line items.
func (b *Builder) Build(r pos.Receipt) (*layout.Document, error) {
	return b.twoPass(func(s *layout.Sink) { b.renderSale(s, r) })
}

// BuildSession renders a game-session receipt.
func (b *Builder) BuildSession(sess pos.GameSession) (*layout.Document, error) {
	return b.twoPass(func(s *layout.Sink) { b.renderSession(s, sess) })
}

// twoPass measures the section sequence on an oversized canvas, then
// replays the identical sequence on a canvas sized to the content. Both
// passes share one render function so they cannot drift apart.
func (b *Builder) twoPass(render func(*layout.Sink)) (*layout.Document, error) {
	probe := layout.NewSink(b.newCanvas(pageWidth, measureHeight), margin, topMargin, lineGap)
	render(probe)

	canvas := b.newCanvas(pageWidth, probe.Y()+bottomMargin)
	render(layout.NewSink(canvas, margin, topMargin, lineGap))
	return layout.NewDocument(canvas), nil
}

func (b *Builder) renderSale(s *layout.Sink, r pos.Receipt) {
	b.header(s)
	b.meta(s, "Reçu N°", r.ID, format.Stamp(r.IssuedAt), r.CashierName)

	items := 0
	for _, it := range r.Items {
		items += it.Quantity
		s.Line(it.Name, layout.Courier(8), layout.AlignLeft)
		s.Row(
			fmt.Sprintf("  %d x %s", it.Quantity, b.cfg.Money.Format(it.UnitPrice)),
			b.cfg.Money.Format(it.LineTotal),
			layout.Courier(8),
		)
	}
	s.Separator()

	s.Row("Articles", strconv.Itoa(items), layout.Courier(8))
	s.Row("TOTAL", b.cfg.Money.Format(r.Total), layout.CourierBold(10))

	b.footer(s, r.Notes)
}

func (b *Builder) renderSession(s *layout.Sink, sess pos.GameSession) {
	b.header(s)
	b.meta(s, "Session N°", sess.ID, format.Stamp(sess.StartedAt), sess.CashierName)

	s.Row("Jeu", sess.GameName, layout.Courier(8))
	if sess.PricingLabel != "" {
		s.Line(sess.PricingLabel, layout.Courier(8), layout.AlignLeft)
	}
	s.Row("Mode", sess.PricingMode, layout.Courier(8))
	s.Row("Joueurs", strconv.Itoa(sess.Players), layout.Courier(8))
	s.Separator()

	s.Row(unitPriceLabel(sess.PricingMode), b.cfg.Money.Format(sess.UnitPrice), layout.Courier(8))
	s.Row("TOTAL", b.cfg.Money.Format(sess.Total), layout.CourierBold(10))

	b.footer(s, sess.Notes)
}

func (b *Builder) header(s *layout.Sink) {
	s.Line(b.cfg.VenueName, layout.HelveticaBold(12), layout.AlignCenter)
	s.Line(b.cfg.VenuePhone, layout.Helvetica(8), layout.AlignCenter)
	s.Separator()
}

func (b *Builder) meta(s *layout.Sink, idLabel, id, stamp, cashier string) {
	s.Row(idLabel, format.ShortID(id), layout.Courier(8))
	s.Row("Date", stamp, layout.Courier(8))
	s.Row("Caissier(ère)", cashier, layout.Courier(8))
	s.Separator()
}

func (b *Builder) footer(s *layout.Sink, notes string) {
	s.Separator()
	if n := strings.TrimSpace(notes); n != "" {
		s.Line("Note: "+n, layout.Courier(7), layout.AlignLeft)
		s.Space(2)
	}
	s.Line("Merci de votre visite !", layout.Helvetica(9), layout.AlignCenter)
	s.Line("À bientôt", layout.Helvetica(8), layout.AlignCenter)
}

func unitPriceLabel(mode string) string {
	if mode == "par_joueur" {
		return "Prix par joueur"
	}
	return "Prix unitaire"
}
