package pos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sample data for the demo subcommand and documentation screenshots.

// SampleReceipt returns a plausible retail receipt with fresh ids.
func SampleReceipt() Receipt {
	return Receipt{
		ID:          uuid.NewString(),
		IssuedAt:    time.Now(),
		CashierName: "Marie",
		Items: []LineItem{
			{Name: "Coca-Cola 50cl", Quantity: 2, UnitPrice: decimal.NewFromInt(500), LineTotal: decimal.NewFromInt(1000)},
			{Name: "Chips paprika", Quantity: 1, UnitPrice: decimal.NewFromInt(750), LineTotal: decimal.NewFromInt(750)},
			{Name: "Eau minérale 1L", Quantity: 3, UnitPrice: decimal.NewFromInt(400), LineTotal: decimal.NewFromInt(1200)},
		},
		Total: decimal.NewFromInt(2950),
		Notes: "Client fidèle",
	}
}

// SampleSession returns a plausible game-session receipt.
func SampleSession() GameSession {
	return GameSession{
		ID:           uuid.NewString(),
		StartedAt:    time.Now(),
		CashierName:  "Ibrahim",
		GameName:     "FIFA 24",
		PricingMode:  "par_joueur",
		PricingLabel: "Tarif par joueur",
		Players:      4,
		UnitPrice:    decimal.NewFromInt(500),
		Total:        decimal.NewFromInt(2000),
	}
}

// SampleSales returns n synthetic sales cycling over a small product
// set, paired with SampleCatalog.
func SampleSales(n int) []Sale {
	products := []struct {
		id    string
		price int64
	}{
		{"p-cola", 500},
		{"p-chips", 750},
		{"p-eau", 400},
		{"p-jus", 600},
	}
	cashiers := []string{"Marie", "Ibrahim", "Awa"}

	sales := make([]Sale, 0, n)
	base := time.Now().Add(-time.Duration(n) * time.Hour)
	for i := 0; i < n; i++ {
		p := products[i%len(products)]
		qty := 1 + i%4
		total := decimal.NewFromInt(p.price * int64(qty))
		sales = append(sales, Sale{
			ID:          uuid.NewString(),
			SoldAt:      base.Add(time.Duration(i) * time.Hour),
			CashierName: cashiers[i%len(cashiers)],
			Total:       total,
			Items: []LineItem{{
				ProductID: p.id,
				Quantity:  qty,
				UnitPrice: decimal.NewFromInt(p.price),
				LineTotal: total,
			}},
		})
	}
	return sales
}

// SampleCatalog resolves the SampleSales product ids.
func SampleCatalog() Catalog {
	return Catalog{
		"p-cola":  "Coca-Cola 50cl",
		"p-chips": "Chips paprika",
		"p-eau":   "Eau minérale 1L",
		"p-jus":   "Jus d'orange",
	}
}
