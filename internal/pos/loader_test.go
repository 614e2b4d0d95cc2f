package pos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadReceipt(t *testing.T) {
	path := writeFile(t, "receipt.json", `{
		"id": "a1b2c3d4e5f6",
		"issued_at": "2024-01-05T09:03:00Z",
		"cashier_name": "Marie",
		"items": [
			{"name": "Coca-Cola", "quantity": 5, "unit_price": 500, "line_total": 2500}
		],
		"total": 2500
	}`)

	r, err := LoadReceipt(path)
	require.NoError(t, err)
	assert.Equal(t, "Marie", r.CashierName)
	require.Len(t, r.Items, 1)
	assert.Equal(t, 5, r.Items[0].Quantity)
	assert.True(t, r.Total.Equal(r.Items[0].LineTotal))
}

func TestLoadReceiptRejectsZeroQuantity(t *testing.T) {
	path := writeFile(t, "receipt.json", `{
		"id": "x",
		"issued_at": "2024-01-05T09:03:00Z",
		"cashier_name": "Marie",
		"items": [{"name": "Coca-Cola", "quantity": 0, "unit_price": 500, "line_total": 0}],
		"total": 0
	}`)

	_, err := LoadReceipt(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid receipt")
}

func TestLoadReceiptRejectsNegativeAmount(t *testing.T) {
	path := writeFile(t, "receipt.json", `{
		"id": "x",
		"issued_at": "2024-01-05T09:03:00Z",
		"cashier_name": "Marie",
		"items": [],
		"total": -100
	}`)

	_, err := LoadReceipt(path)
	require.Error(t, err)
}

func TestLoadSessionRequiresGameName(t *testing.T) {
	path := writeFile(t, "session.json", `{
		"id": "s1",
		"started_at": "2024-01-05T09:03:00Z",
		"cashier_name": "Ibrahim",
		"pricing_mode": "par_joueur",
		"players": 2,
		"unit_price": 500,
		"total": 1000
	}`)

	_, err := LoadSession(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GameName")
}

func TestLoadSalesEmptyBatch(t *testing.T) {
	path := writeFile(t, "sales.json", `[]`)
	sales, err := LoadSales(path)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestLoadSalesMissingFile(t *testing.T) {
	_, err := LoadSales(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestCatalogResolve(t *testing.T) {
	c := Catalog{"p-cola": "Coca-Cola 50cl"}
	assert.Equal(t, "Coca-Cola 50cl", c.Resolve("p-cola"))
	// unknown ids fall back to the truncated id
	assert.Equal(t, "deadbeef", c.Resolve("deadbeef-cafe"))
	assert.Equal(t, "p-x", c.Resolve("p-x"))
}

func TestLoadCatalogEmptyPath(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Empty(t, c)
}
