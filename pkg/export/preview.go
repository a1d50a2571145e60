package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// RenderFunc writes a fresh contact sheet to w.
type RenderFunc func(ctx context.Context, w io.Writer) (SheetStats, error)

// PreviewServer serves a contact sheet locally, re-rendering it on every
// request so asset changes on disk show up on reload.
type PreviewServer struct {
	render RenderFunc
	port   int
	logger *log.Logger
	server *http.Server

	mu      sync.Mutex
	last    SheetStats
	renders int
}

// NewPreviewServer creates a preview server for render on port.
func NewPreviewServer(render RenderFunc, port int, logger *log.Logger) *PreviewServer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &PreviewServer{render: render, port: port, logger: logger}
	p.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           p.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return p
}

// Handler returns the server's routes: an HTML page at "/", the sheet at
// "/sheet.svg" and a JSON status at "/__preview__/status".
func (p *PreviewServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", p.indexHandler)
	mux.HandleFunc("/sheet.svg", p.sheetHandler)
	mux.HandleFunc("/__preview__/status", p.statusHandler)
	return noCacheMiddleware(mux)
}

// Start serves until the server is stopped.
func (p *PreviewServer) Start() error {
	p.logger.Info("preview server running", "url", p.URL())
	return p.server.ListenAndServe()
}

// Run serves until ctx is done, then shuts down gracefully.
func (p *PreviewServer) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		if err := p.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		p.logger.Info("shutting down preview server")
		return p.Stop()
	case err := <-errChan:
		return err
	}
}

// Stop gracefully stops the preview server.
func (p *PreviewServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.server.Shutdown(ctx)
}

// Port returns the port the server listens on.
func (p *PreviewServer) Port() int {
	return p.port
}

// URL returns the full URL of the preview server.
func (p *PreviewServer) URL() string {
	return fmt.Sprintf("http://localhost:%d", p.port)
}

const indexPage = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>lv preview</title>
<style>body{margin:0;background:#000}img{display:block;margin:0 auto}</style>
</head><body><img src="/sheet.svg" alt="icons"></body></html>
`

func (p *PreviewServer) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, indexPage)
}

func (p *PreviewServer) sheetHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	stats, err := p.render(r.Context(), &buf)
	if err != nil {
		p.logger.Error("render sheet", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	p.mu.Lock()
	p.last = stats
	p.renders++
	p.mu.Unlock()

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

// statusHandler returns the preview server status as JSON.
func (p *PreviewServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	p.mu.Lock()
	stats, renders := p.last, p.renders
	p.mu.Unlock()

	fmt.Fprintf(w, `{"status":"running","port":%d,"renders":%d,"icons":%d,"missing":%d}`,
		p.port, renders, stats.Icons, stats.Missing)
}

// noCacheMiddleware adds headers to prevent browser caching.
func noCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// FindAvailablePort finds an available port in the given range.
func FindAvailablePort(start, end int) (int, error) {
	for port := start; port <= end; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", start, end)
}

// Ports tried when no port is given.
const (
	PreviewPortRangeStart = 9000
	PreviewPortRangeEnd   = 9100
)
