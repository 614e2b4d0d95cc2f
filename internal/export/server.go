package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/lumenpos/caisse/internal/layout"
	"github.com/lumenpos/caisse/web"
)

// Viewer serves a rendered document to the operator's browser on a
// loopback listener. Preview shows the document; Print additionally
// invokes the browser print dialog once the page loads. The listener is
// one-shot: it shuts down shortly after the document has been fetched.
type Viewer struct {
	// Addr is the listen address, typically 127.0.0.1:0.
	Addr string
	// OpenBrowser launches the platform browser at the viewer URL.
	OpenBrowser bool
	// Linger is how long the server stays up after the document has
	// been fetched, leaving the browser time to render it.
	Linger time.Duration
	Logger *slog.Logger
	// Ready, when non-nil, receives the viewer URL once listening.
	Ready chan<- string
}

// Preview serves the document until fetched or the context ends.
func (v *Viewer) Preview(ctx context.Context, doc *layout.Document, title string) error {
	return v.serve(ctx, doc, title, false)
}

// Print serves the document with the print dialog invoked on load.
func (v *Viewer) Print(ctx context.Context, doc *layout.Document, title string) error {
	return v.serve(ctx, doc, title, true)
}

func (v *Viewer) serve(ctx context.Context, doc *layout.Document, title string, print bool) error {
	pdf, err := doc.Bytes()
	if err != nil {
		return fmt.Errorf("render document: %w", err)
	}

	page, err := viewerPage(title, print)
	if err != nil {
		return err
	}

	var once sync.Once
	fetched := make(chan struct{})

	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})
	r.Get("/document.pdf", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "inline; filename=document.pdf")
		_, _ = w.Write(pdf)
		once.Do(func() { close(fetched) })
	})

	addr := v.Addr
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	url := "http://" + ln.Addr().String() + "/"

	srv := &http.Server{Handler: r}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
		case <-fetched:
			linger := v.Linger
			if linger <= 0 {
				linger = 3 * time.Second
			}
			select {
			case <-gctx.Done():
			case <-time.After(linger):
			}
		}
		shutCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if v.Logger != nil {
		v.Logger.Info("serving document", slog.String("url", url), slog.Bool("print", print))
	}
	if v.Ready != nil {
		v.Ready <- url
	}
	if v.OpenBrowser {
		if err := openBrowser(url); err != nil && v.Logger != nil {
			v.Logger.Warn("open browser", slog.Any("error", err), slog.String("url", url))
		}
	}

	return g.Wait()
}

func viewerPage(title string, print bool) ([]byte, error) {
	tpl, err := template.ParseFS(web.Templates, "templates/viewer/viewer.html")
	if err != nil {
		return nil, fmt.Errorf("parse viewer template: %w", err)
	}
	var buf bytes.Buffer
	data := struct {
		Title string
		Print bool
	}{Title: title, Print: print}
	if err := tpl.ExecuteTemplate(&buf, "viewer.html", data); err != nil {
		return nil, fmt.Errorf("render viewer page: %w", err)
	}
	return buf.Bytes(), nil
}
