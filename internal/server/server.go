// Package server exposes the quote service over HTTP.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tsxwatch/internal/provider"
	"tsxwatch/internal/quote"
)

// Server holds the request handlers and their dependencies. One instance is
// constructed at startup and passed to the router; there is no shared mutable
// state across requests.
type Server struct {
	fetcher provider.Fetcher
	log     *slog.Logger
}

func New(fetcher provider.Fetcher, log *slog.Logger) *Server {
	return &Server{fetcher: fetcher, log: log}
}

// Router builds the gin engine with CORS open to all origins.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"*"}
	r.Use(cors.New(corsCfg))

	r.GET("/", s.handleRoot)
	r.GET("/health", s.handleHealth)
	r.POST("/stock", s.handleStock)

	return r
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"message": "tsxwatch quote service is running",
	})
}

// handleHealth answers immediately and never touches the provider.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleStock(c *gin.Context) {
	var req quote.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	symbol := strings.TrimSpace(req.Symbol)
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "symbol must not be empty"})
		return
	}

	data, err := s.fetcher.Fetch(c.Request.Context(), symbol)
	if err != nil {
		s.log.Error("quote lookup failed", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": fmt.Sprintf("error fetching stock data: %v", err),
		})
		return
	}

	// The response echoes the caller's symbol, not the suffixed lookup form.
	c.JSON(http.StatusOK, quote.Response{Symbol: symbol, Data: *data})
}
