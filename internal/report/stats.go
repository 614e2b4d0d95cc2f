// Package report aggregates sale batches into summary statistics and
// renders the paginated sales report.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lumenpos/caisse/internal/pos"
)

// ProductStat aggregates one product across the batch.
type ProductStat struct {
	ProductID string
	Quantity  int
	Revenue   decimal.Decimal
}

// CashierStat aggregates one cashier display name across the batch.
type CashierStat struct {
	Name      string
	SaleCount int
	Revenue   decimal.Decimal
}

// Stats is the derived summary over a batch, built fresh per report.
type Stats struct {
	SalesCount  int
	TotalAmount decimal.Decimal
	ItemsSold   int
	AverageSale decimal.Decimal
	// TopProducts is sorted by descending quantity, ties keeping
	// first-appearance order. All products are listed; rendering caps
	// the table at ten.
	TopProducts []ProductStat
	// Cashiers preserves first-appearance order. Cashiers are keyed by
	// display name exactly as it appears on each sale.
	Cashiers []CashierStat
}

// BuildStats computes the derived statistics for a batch of sales.
// An empty batch yields zero counts and a zero average.
func BuildStats(sales []pos.Sale) Stats {
	s := Stats{
		TotalAmount: decimal.Zero,
		AverageSale: decimal.Zero,
	}
	productAt := map[string]int{}
	cashierAt := map[string]int{}

	for _, sale := range sales {
		s.SalesCount++
		s.TotalAmount = s.TotalAmount.Add(sale.Total)

		ci, ok := cashierAt[sale.CashierName]
		if !ok {
			ci = len(s.Cashiers)
			cashierAt[sale.CashierName] = ci
			s.Cashiers = append(s.Cashiers, CashierStat{Name: sale.CashierName, Revenue: decimal.Zero})
		}
		s.Cashiers[ci].SaleCount++
		s.Cashiers[ci].Revenue = s.Cashiers[ci].Revenue.Add(sale.Total)

		for _, it := range sale.Items {
			s.ItemsSold += it.Quantity

			pi, ok := productAt[it.ProductID]
			if !ok {
				pi = len(s.TopProducts)
				productAt[it.ProductID] = pi
				s.TopProducts = append(s.TopProducts, ProductStat{ProductID: it.ProductID, Revenue: decimal.Zero})
			}
			s.TopProducts[pi].Quantity += it.Quantity
			s.TopProducts[pi].Revenue = s.TopProducts[pi].Revenue.Add(it.LineTotal)
		}
	}

	if s.SalesCount > 0 {
		s.AverageSale = s.TotalAmount.Div(decimal.NewFromInt(int64(s.SalesCount)))
	}

	sort.SliceStable(s.TopProducts, func(i, j int) bool {
		return s.TopProducts[i].Quantity > s.TopProducts[j].Quantity
	})
	return s
}
