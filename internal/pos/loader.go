package pos

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Validate decimal amounts through their float value so numeric
	// tags (gte, ...) apply.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// LoadReceipt reads and validates a sale receipt record.
func LoadReceipt(path string) (Receipt, error) {
	var r Receipt
	if err := loadJSON(path, &r); err != nil {
		return Receipt{}, err
	}
	if err := validate.Struct(r); err != nil {
		return Receipt{}, fmt.Errorf("invalid receipt %s: %w", path, err)
	}
	return r, nil
}

// LoadSession reads and validates a game-session record.
func LoadSession(path string) (GameSession, error) {
	var s GameSession
	if err := loadJSON(path, &s); err != nil {
		return GameSession{}, err
	}
	if err := validate.Struct(s); err != nil {
		return GameSession{}, fmt.Errorf("invalid session %s: %w", path, err)
	}
	return s, nil
}

// LoadSales reads and validates a batch of sale records for reporting.
// An empty batch is valid.
func LoadSales(path string) ([]Sale, error) {
	var sales []Sale
	if err := loadJSON(path, &sales); err != nil {
		return nil, err
	}
	for i, s := range sales {
		if err := validate.Struct(s); err != nil {
			return nil, fmt.Errorf("invalid sale #%d in %s: %w", i+1, path, err)
		}
	}
	return sales, nil
}

// LoadCatalog reads a product id to display name mapping. A missing
// path yields an empty catalog rather than an error.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return Catalog{}, nil
	}
	var c Catalog
	if err := loadJSON(path, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
