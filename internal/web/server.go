// Package web hosts the browser-facing surface of the application: the
// dashboard page and the JSON API the page talks to. It stays thin; all
// domain behavior lives in the store, summary, insights and report packages.
package web

import (
	_ "embed"
	"html/template"
	"net/http"
	"sync/atomic"

	"rupeewise/internal/insights"
	"rupeewise/internal/report"
	"rupeewise/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

//go:embed index.html
var indexHTML string

// Server wires the HTTP routes to the domain components.
type Server struct {
	store    *store.Store
	insights *insights.Requester
	exporter *report.Exporter
	log      *logrus.Logger
	engine   *gin.Engine

	// insightBusy serializes insight requests: the design defines no
	// behavior for overlapping calls, so a second request is refused
	// while one is outstanding.
	insightBusy atomic.Bool
}

// New creates a Server with all routes registered.
func New(st *store.Store, requester *insights.Requester, exporter *report.Exporter, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		store:    st,
		insights: requester,
		exporter: exporter,
		log:      logger,
		engine:   engine,
	}

	engine.SetHTMLTemplate(template.Must(template.New("index").Parse(indexHTML)))

	engine.GET("/", s.index)
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	{
		api.GET("/transactions", s.listTransactions)
		api.POST("/transactions", s.createTransaction)
		api.DELETE("/transactions/:id", s.deleteTransaction)
		api.DELETE("/transactions", s.clearTransactions)
		api.GET("/summary", s.getSummary)
		api.GET("/categories", s.getCategories)
		api.POST("/insights", s.requestInsights)
		api.GET("/report", s.downloadReport)
	}

	return s
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP on the given address until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.WithField("addr", addr).Info("Starting RupeeWise web application")
	return s.engine.Run(addr)
}
