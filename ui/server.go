package ui

import (
	"fmt"
	"net/http"

	"gobasket/internal"
	"gobasket/internal/container"

	"github.com/gin-gonic/gin"
)

// Server is the JSON API over the catalog, transactions, and the mining
// services
type Server struct {
	router    *gin.Engine
	container *container.Container
	logger    *internal.Logger
}

// NewServer creates the API server and registers all routes
func NewServer(c *container.Container) *Server {
	gin.SetMode(c.Config.Server.GinMode)
	s := &Server{
		router:    gin.New(),
		container: c,
		logger:    c.Logger.With("http"),
	}
	s.router.Use(gin.Recovery())
	s.router.Use(s.requestLogger())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	if token := s.container.Config.Server.APIToken; token != "" {
		api.Use(s.tokenAuth(token))
	}

	api.GET("/items", s.handleListItems)
	api.POST("/items", s.handleCreateItem)
	api.GET("/items/:id", s.handleGetItem)
	api.PUT("/items/:id", s.handleUpdateItem)
	api.DELETE("/items/:id", s.handleDeleteItem)

	api.GET("/transactions", s.handleListTransactions)
	api.POST("/transactions", s.handleCreateTransaction)
	api.GET("/transactions/:id", s.handleGetTransaction)
	api.DELETE("/transactions/:id", s.handleDeleteTransaction)
	api.POST("/transactions/import", s.handleImportTransactions)

	api.POST("/mining/run", s.handleMiningRun)
	api.POST("/mining/compare", s.handleMiningCompare)
	api.POST("/mining/benchmark", s.handleMiningBenchmark)
	api.GET("/mining/results", s.handleListResults)
	api.GET("/mining/results/:id", s.handleGetResult)
	api.GET("/mining/results/:id/report", s.handleResultReport)
	api.DELETE("/mining/results/:id", s.handleDeleteResult)
}

// Run starts the server on the configured port
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.container.Config.Server.Port)
	s.logger.Info("API server listening on %s", addr)
	return s.router.Run(addr)
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}
