// Package pos holds the point-of-sale records consumed by the document
// builders, plus the JSON loaders and validation applied at the
// boundary. The builders themselves trust these records as given.
package pos

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lumenpos/caisse/internal/format"
)

// LineItem is one product line on a sale or receipt. Receipts carry the
// display name directly; report inputs carry the product id and rely on
// the catalog for display names.
type LineItem struct {
	ProductID string          `json:"product_id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity" validate:"gte=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gte=0"`
	LineTotal decimal.Decimal `json:"line_total" validate:"gte=0"`
}

// Receipt is a single completed retail sale.
type Receipt struct {
	ID          string          `json:"id" validate:"required"`
	IssuedAt    time.Time       `json:"issued_at" validate:"required"`
	CashierName string          `json:"cashier_name" validate:"required"`
	Items       []LineItem      `json:"items" validate:"dive"`
	Total       decimal.Decimal `json:"total" validate:"gte=0"`
	Notes       string          `json:"notes,omitempty"`
}

// GameSession is a completed game-table session billed per player or at
// a flat rate.
type GameSession struct {
	ID           string          `json:"id" validate:"required"`
	StartedAt    time.Time       `json:"started_at" validate:"required"`
	CashierName  string          `json:"cashier_name" validate:"required"`
	GameName     string          `json:"game_name" validate:"required"`
	PricingMode  string          `json:"pricing_mode" validate:"required"`
	PricingLabel string          `json:"pricing_label,omitempty"`
	Players      int             `json:"players" validate:"gte=1"`
	UnitPrice    decimal.Decimal `json:"unit_price" validate:"gte=0"`
	Total        decimal.Decimal `json:"total" validate:"gte=0"`
	Notes        string          `json:"notes,omitempty"`
}

// Sale is one sale record inside a report input batch.
type Sale struct {
	ID          string          `json:"id" validate:"required"`
	SoldAt      time.Time       `json:"sold_at" validate:"required"`
	CashierName string          `json:"cashier_name" validate:"required"`
	Total       decimal.Decimal `json:"total" validate:"gte=0"`
	Items       []LineItem      `json:"items" validate:"dive"`
}

// Catalog maps product ids to display names.
type Catalog map[string]string

// Resolve returns the display name for a product id, falling back to
// the truncated id when the catalog has no entry.
func (c Catalog) Resolve(id string) string {
	if name, ok := c[id]; ok && name != "" {
		return name
	}
	return format.ShortID(id)
}
