// Package server hosts a built output directory for local preview.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// Preview serves one output directory over plain HTTP. It is authoring
// tooling: the published page never needs it.
type Preview struct {
	Dir  string
	Port int
}

// Router builds the gin engine: a health probe, a no-store header on every
// response so reloads always pick up fresh builds, and the directory itself
// behind a file server.
func (p *Preview) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Cache-Control", "no-store")
		c.Next()
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(p.Dir))))
	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (p *Preview) Run(ctx context.Context) error {
	if _, err := os.Stat(filepath.Join(p.Dir, "index.html")); err != nil {
		return fmt.Errorf("server: no index.html in %s (run 'cnotes build' first)", p.Dir)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", p.Port),
		Handler: p.Router(),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
