// Command caisse builds and exports point-of-sale documents: single
// sale receipts, game-session receipts and aggregate sales reports.
// Records are loaded from JSON files and validated before rendering.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/lumenpos/caisse/internal/app"
	"github.com/lumenpos/caisse/internal/export"
	"github.com/lumenpos/caisse/internal/format"
	"github.com/lumenpos/caisse/internal/layout"
	"github.com/lumenpos/caisse/internal/money"
	"github.com/lumenpos/caisse/internal/pos"
	"github.com/lumenpos/caisse/internal/receipt"
	"github.com/lumenpos/caisse/internal/report"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runErr error
	switch os.Args[1] {
	case "receipt":
		runErr = runReceipt(ctx, cfg, logger, os.Args[2:])
	case "session":
		runErr = runSession(ctx, cfg, logger, os.Args[2:])
	case "report":
		runErr = runReport(ctx, cfg, logger, os.Args[2:])
	case "demo":
		runErr = runDemo(ctx, cfg, logger, os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if runErr != nil {
		logger.Error("command failed", slog.Any("error", runErr))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: caisse <command> [flags]

commands:
  receipt   build a sale receipt from a JSON record
  session   build a game-session receipt from a JSON record
  report    build a sales report from a JSON batch
  demo      build a document from generated sample data

common flags:
  -mode     export mode: download, preview or print (default download)
  -out      output directory for download mode
  -name     override the output file name
`)
}

func receiptBuilder(cfg *app.Config) *receipt.Builder {
	return receipt.NewBuilder(receipt.Config{
		VenueName:  cfg.VenueName,
		VenuePhone: cfg.VenuePhone,
		Money:      money.NewFormatter(cfg.Currency),
	})
}

func reportConfig(cfg *app.Config, title, rangeLabel, filterLabel string) report.Config {
	return report.Config{
		Title:          title,
		VenueName:      cfg.VenueName,
		VenuePhone:     cfg.VenuePhone,
		DateRangeLabel: rangeLabel,
		FilterLabel:    filterLabel,
	}
}

func runReceipt(ctx context.Context, cfg *app.Config, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("receipt", flag.ExitOnError)
	in := fs.String("in", "", "path to the receipt JSON record")
	mode := fs.String("mode", "download", "export mode")
	out := fs.String("out", cfg.OutputDir, "output directory")
	name := fs.String("name", "", "override the output file name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("receipt: -in is required")
	}

	rec, err := pos.LoadReceipt(*in)
	if err != nil {
		return err
	}
	doc, err := receiptBuilder(cfg).Build(rec)
	if err != nil {
		return err
	}
	fileName := orDefault(*name, export.SaleReceiptName(rec.ID))
	return exportDoc(ctx, cfg, logger, doc, *mode, *out, fileName, "Reçu "+format.ShortID(rec.ID))
}

func runSession(ctx context.Context, cfg *app.Config, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("session", flag.ExitOnError)
	in := fs.String("in", "", "path to the session JSON record")
	mode := fs.String("mode", "download", "export mode")
	out := fs.String("out", cfg.OutputDir, "output directory")
	name := fs.String("name", "", "override the output file name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("session: -in is required")
	}

	sess, err := pos.LoadSession(*in)
	if err != nil {
		return err
	}
	doc, err := receiptBuilder(cfg).BuildSession(sess)
	if err != nil {
		return err
	}
	fileName := orDefault(*name, export.SessionReceiptName(sess.ID))
	return exportDoc(ctx, cfg, logger, doc, *mode, *out, fileName, "Session "+format.ShortID(sess.ID))
}

func runReport(ctx context.Context, cfg *app.Config, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	in := fs.String("in", "", "path to the sales JSON batch")
	catalogPath := fs.String("catalog", "", "path to the product catalog JSON mapping")
	mode := fs.String("mode", "download", "export mode")
	out := fs.String("out", cfg.OutputDir, "output directory")
	name := fs.String("name", "", "override the output file name")
	title := fs.String("title", "Rapport des ventes", "report title")
	rangeLabel := fs.String("range", "", "date range label")
	filterLabel := fs.String("filter", "Toutes les ventes", "filter description label")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("report: -in is required")
	}

	sales, err := pos.LoadSales(*in)
	if err != nil {
		return err
	}
	catalog, err := pos.LoadCatalog(*catalogPath)
	if err != nil {
		return err
	}

	builder := report.NewBuilder(money.NewFormatter(cfg.Currency))
	doc, err := builder.Build(sales, catalog, reportConfig(cfg, *title, *rangeLabel, *filterLabel))
	if err != nil {
		return err
	}
	fileName := orDefault(*name, export.ReportName(time.Now()))
	return exportDoc(ctx, cfg, logger, doc, *mode, *out, fileName, *title)
}

func runDemo(ctx context.Context, cfg *app.Config, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	kind := fs.String("kind", "receipt", "document kind: receipt, session or report")
	count := fs.Int("count", 25, "sample sale count for report demos")
	mode := fs.String("mode", "preview", "export mode")
	out := fs.String("out", cfg.OutputDir, "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch *kind {
	case "receipt":
		rec := pos.SampleReceipt()
		doc, err := receiptBuilder(cfg).Build(rec)
		if err != nil {
			return err
		}
		return exportDoc(ctx, cfg, logger, doc, *mode, *out, export.SaleReceiptName(rec.ID), "Reçu "+format.ShortID(rec.ID))
	case "session":
		sess := pos.SampleSession()
		doc, err := receiptBuilder(cfg).BuildSession(sess)
		if err != nil {
			return err
		}
		return exportDoc(ctx, cfg, logger, doc, *mode, *out, export.SessionReceiptName(sess.ID), "Session "+format.ShortID(sess.ID))
	case "report":
		builder := report.NewBuilder(money.NewFormatter(cfg.Currency))
		demoCfg := reportConfig(cfg, "Rapport des ventes", "Échantillon "+strconv.Itoa(*count)+" ventes", "Toutes les ventes")
		doc, err := builder.Build(pos.SampleSales(*count), pos.SampleCatalog(), demoCfg)
		if err != nil {
			return err
		}
		return exportDoc(ctx, cfg, logger, doc, *mode, *out, export.ReportName(time.Now()), "Rapport des ventes")
	default:
		return fmt.Errorf("demo: unknown kind %q", *kind)
	}
}

func exportDoc(ctx context.Context, cfg *app.Config, logger *slog.Logger, doc *layout.Document, mode, dir, name, title string) error {
	switch mode {
	case "download":
		path, err := export.Download(doc, dir, name)
		if err != nil {
			return err
		}
		logger.Info("document written",
			slog.String("path", path),
			slog.Int("pages", doc.PageCount()))
		return nil
	case "preview", "print":
		v := &export.Viewer{
			Addr:        cfg.ViewerAddr,
			OpenBrowser: cfg.OpenBrowser,
			Linger:      cfg.ViewerLinger,
			Logger:      logger,
		}
		if mode == "print" {
			return v.Print(ctx, doc, title)
		}
		return v.Preview(ctx, doc, title)
	default:
		return fmt.Errorf("unknown export mode %q", mode)
	}
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
