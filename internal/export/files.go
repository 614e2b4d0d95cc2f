// Package export writes built documents out: to deterministically named
// files, or served to the operator's browser for preview and printing.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lumenpos/caisse/internal/layout"
)

// File naming is part of the observable contract: receipts embed the
// transaction identifier, reports the ISO date.

// SaleReceiptName is the download name for a retail sale receipt.
func SaleReceiptName(id string) string { return fmt.Sprintf("recu_vente_%s.pdf", id) }

// SessionReceiptName is the download name for a game-session receipt.
func SessionReceiptName(id string) string { return fmt.Sprintf("recu_session_%s.pdf", id) }

// ReportName is the default download name for a sales report.
func ReportName(at time.Time) string {
	return fmt.Sprintf("rapport_ventes_%s.pdf", at.Format("2006-01-02"))
}

// Download writes the document under dir with the given name, creating
// the directory when needed, and returns the written path.
func Download(doc *layout.Document, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := doc.Output(f); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
