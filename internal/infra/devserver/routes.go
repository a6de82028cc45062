package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taurgis/aegis-docsite/internal/buildinfo"
)

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"site":    s.site.Name,
			"pages":   len(s.rendered),
			"version": buildinfo.Version,
		})
	})

	s.engine.GET("/", func(c *gin.Context) {
		html, ok := s.rendered[s.home]
		if !ok {
			c.String(http.StatusNotFound, "no pages rendered")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	})

	s.engine.GET("/:slug", func(c *gin.Context) {
		slug := c.Param("slug")
		html, ok := s.rendered[slug]
		if !ok {
			c.String(http.StatusNotFound, "page %q not found", slug)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	})
}
