package report

import (
	"fmt"
	"time"

	"github.com/lumenpos/caisse/internal/format"
	"github.com/lumenpos/caisse/internal/layout"
	"github.com/lumenpos/caisse/internal/money"
	"github.com/lumenpos/caisse/internal/pos"
)

const (
	pageWidth  = 210.0 // A4, mm
	pageHeight = 297.0
	margin     = 14.0
	topMargin  = 15.0
	lineGap    = 1.0
	// breakAt is the near-bottom threshold: blocks check it before
	// drawing and move to a fresh page once the cursor passes it.
	breakAt = 277.0
	// footerOffset positions the end marker from the page bottom. The
	// footer is deliberately not break-checked.
	footerOffset = 12.0

	maxTopProducts = 10
)

// Config labels the report header.
type Config struct {
	Title          string
	VenueName      string
	VenuePhone     string
	DateRangeLabel string
	FilterLabel    string
}

// Builder renders paginated sales reports.
type Builder struct {
	money     money.Formatter
	newCanvas layout.CanvasFunc
	now       func() time.Time
}

// NewBuilder returns a Builder rendering onto PDF pages.
func NewBuilder(m money.Formatter) *Builder {
	return &Builder{money: m, newCanvas: layout.NewPDFCanvas, now: time.Now}
}

// Build renders the report for a batch of sales. Statistics are derived
// fresh from the batch; an empty batch produces a report with zeroed
// summary lines and header-only tables.
func (b *Builder) Build(sales []pos.Sale, catalog pos.Catalog, cfg Config) (*layout.Document, error) {
	canvas := b.newCanvas(pageWidth, pageHeight)
	s := layout.NewSink(canvas, margin, topMargin, lineGap)
	s.EnablePageBreak(breakAt)

	stats := BuildStats(sales)

	b.renderHeader(s, cfg)
	b.renderSummary(s, stats)
	b.renderTopProducts(s, stats, catalog)
	b.renderCashiers(s, stats)
	b.renderSales(s, sales, catalog)

	// end marker at a fixed offset from the bottom of the final page;
	// overlap with trailing content is an accepted cosmetic case
	f := layout.Helvetica(9)
	const marker = "--- Fin du rapport ---"
	canvas.DrawText((pageWidth-canvas.TextWidth(marker, f))/2, pageHeight-footerOffset, marker, f)

	return layout.NewDocument(canvas), nil
}

func (b *Builder) renderHeader(s *layout.Sink, cfg Config) {
	s.Line(cfg.VenueName, layout.HelveticaBold(16), layout.AlignCenter)
	s.Line(cfg.VenuePhone, layout.Helvetica(10), layout.AlignCenter)
	s.Space(3)
	s.Line(cfg.Title, layout.HelveticaBold(13), layout.AlignCenter)
	s.Line(cfg.DateRangeLabel, layout.Helvetica(10), layout.AlignCenter)
	s.Line(cfg.FilterLabel, layout.Helvetica(10), layout.AlignCenter)
	s.Line("Généré le "+format.Stamp(b.now()), layout.Helvetica(9), layout.AlignCenter)
	s.Rule()
	s.Space(3)
}

func (b *Builder) renderSummary(s *layout.Sink, stats Stats) {
	f := layout.HelveticaBold(11)
	s.Line(fmt.Sprintf("Nombre de ventes : %d", stats.SalesCount), f, layout.AlignLeft)
	s.Line("Montant total : "+b.money.Format(stats.TotalAmount), f, layout.AlignLeft)
	s.Line(fmt.Sprintf("Articles vendus : %d", stats.ItemsSold), f, layout.AlignLeft)
	s.Line("Vente moyenne : "+b.money.Format(stats.AverageSale), f, layout.AlignLeft)
	s.Space(4)
}

func (b *Builder) renderTopProducts(s *layout.Sink, stats Stats, catalog pos.Catalog) {
	s.EnsureRoom()
	s.Line("Top produits", layout.HelveticaBold(12), layout.AlignLeft)
	s.Line(fmt.Sprintf("%-32s %6s %18s", "Produit", "Qté", "Montant"), layout.CourierBold(9), layout.AlignLeft)
	s.Rule()

	rows := stats.TopProducts
	if len(rows) > maxTopProducts {
		rows = rows[:maxTopProducts]
	}
	for _, p := range rows {
		s.EnsureRoom()
		// names are padded to the column width but never truncated
		s.Line(fmt.Sprintf("%-32s %6d %18s", catalog.Resolve(p.ProductID), p.Quantity, b.money.Format(p.Revenue)),
			layout.Courier(9), layout.AlignLeft)
	}
	s.Space(4)
}

func (b *Builder) renderCashiers(s *layout.Sink, stats Stats) {
	s.EnsureRoom()
	s.Line("Ventes par caissier(ère)", layout.HelveticaBold(12), layout.AlignLeft)
	s.Line(fmt.Sprintf("%-32s %6s %18s", "Caissier(ère)", "Ventes", "Montant"), layout.CourierBold(9), layout.AlignLeft)
	s.Rule()

	for _, c := range stats.Cashiers {
		s.EnsureRoom()
		s.Line(fmt.Sprintf("%-32s %6d %18s", c.Name, c.SaleCount, b.money.Format(c.Revenue)),
			layout.Courier(9), layout.AlignLeft)
	}
	s.Space(4)
}

func (b *Builder) renderSales(s *layout.Sink, sales []pos.Sale, catalog pos.Catalog) {
	if len(sales) == 0 {
		return
	}
	s.EnsureRoom()
	s.Line("Détail des ventes", layout.HelveticaBold(12), layout.AlignLeft)
	s.Space(1)

	for i, sale := range sales {
		s.EnsureRoom()
		s.Row(
			fmt.Sprintf("%d. Vente %s  %s  %s", i+1, format.ShortID(sale.ID), format.Stamp(sale.SoldAt), sale.CashierName),
			b.money.Format(sale.Total),
			layout.HelveticaBold(10),
		)
		for _, it := range sale.Items {
			s.EnsureRoom()
			name := it.Name
			if name == "" {
				name = catalog.Resolve(it.ProductID)
			}
			s.Line(fmt.Sprintf("   %-30s x%-4d %14s", name, it.Quantity, b.money.Format(it.UnitPrice)),
				layout.Courier(9), layout.AlignLeft)
		}
		s.Space(2)
	}
}
