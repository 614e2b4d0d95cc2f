package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatGroupsThousands(t *testing.T) {
	f := NewFormatter("FCFA")
	cases := map[int64]string{
		0:        "0 FCFA",
		500:      "500 FCFA",
		2000:     "2.000 FCFA",
		2500:     "2.500 FCFA",
		12500:    "12.500 FCFA",
		1234567:  "1.234.567 FCFA",
		10000000: "10.000.000 FCFA",
	}
	for in, want := range cases {
		got := f.Format(decimal.NewFromInt(in))
		if got != want {
			t.Fatalf("format %d: got %q want %q", in, got, want)
		}
	}
}

func TestFormatRoundsToUnit(t *testing.T) {
	f := NewFormatter("FCFA")
	got := f.Format(decimal.NewFromFloat(1499.6))
	if got != "1.500 FCFA" {
		t.Fatalf("got %q", got)
	}
	if strings.Contains(got, ",") {
		t.Fatalf("decimal separator leaked into %q", got)
	}
}

func TestFormatterDefaultsCurrency(t *testing.T) {
	var f Formatter
	if got := f.Format(decimal.NewFromInt(100)); got != "100 FCFA" {
		t.Fatalf("got %q", got)
	}
	if NewFormatter("").Currency() != DefaultCurrency {
		t.Fatal("empty label should fall back to default")
	}
}
