// Package devserver previews the rendered site over HTTP while writing docs.
package devserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taurgis/aegis-docsite/internal/domain"
	"github.com/taurgis/aegis-docsite/internal/infra/logger"
	"github.com/taurgis/aegis-docsite/internal/ports"
)

type Server struct {
	addr   string
	site   domain.Site
	engine *gin.Engine

	// Pages are rendered once at startup; the preview serves from memory.
	rendered map[string]string
	home     string
}

type Option func(*Server)

func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

func New(site domain.Site, pages []domain.Page, renderer ports.PageRenderer, opts ...Option) (*Server, error) {
	s := &Server{
		addr:     ":8080",
		site:     site,
		rendered: make(map[string]string, len(pages)),
	}
	for _, opt := range opts {
		opt(s)
	}

	resolver := domain.NewVarResolver().NewRuntime(site.Vars)
	for _, p := range pages {
		body, err := resolver.ResolveNode(p.Body())
		if err != nil {
			return nil, err
		}
		html, err := renderer.RenderDocument(site, p.Title(), body)
		if err != nil {
			return nil, err
		}
		s.rendered[p.Slug()] = html
		if s.home == "" {
			s.home = p.Slug()
		}
	}

	gin.SetMode(gin.ReleaseMode)
	s.engine = gin.New()
	s.engine.Use(gin.Recovery())
	s.registerRoutes()

	return s, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.L().Info("devserver.started", "addr", s.addr, "pages", len(s.rendered))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
