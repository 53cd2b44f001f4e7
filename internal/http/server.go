package http

import (
	"net/http"

	"github.com/mpedersen/courtside/internal/config"
	"github.com/mpedersen/courtside/internal/league"
	"github.com/mpedersen/courtside/internal/metrics"
	"github.com/mpedersen/courtside/internal/scoreboard"
	"github.com/mpedersen/courtside/internal/view"
)

func NewServer(registry *league.Registry, fetcher *scoreboard.Fetcher, viewCtrl *view.Controller, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Registry:       registry,
		Fetcher:        fetcher,
		View:           viewCtrl,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/leagues", Chain(s.LeaguesHandler(), paramsMiddleware))
	s.Router.Handle("/scores", Chain(s.ScoresHandler(), paramsMiddleware))
	s.Router.Handle("/filter", Chain(s.FilterHandler(), paramsMiddleware))
	s.Router.Handle("/sort", Chain(s.SortHandler(), paramsMiddleware))
	s.Router.Handle("/boxscore", Chain(s.BoxScoreHandler(), paramsMiddleware))
	s.Router.Handle("/view", Chain(s.ViewHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
