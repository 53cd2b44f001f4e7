package http

import (
	"net/http"

	"github.com/mpedersen/courtside/internal/config"
	"github.com/mpedersen/courtside/internal/league"
	"github.com/mpedersen/courtside/internal/metrics"
	"github.com/mpedersen/courtside/internal/scoreboard"
	"github.com/mpedersen/courtside/internal/view"
)

type Server struct {
	Registry       *league.Registry
	Fetcher        *scoreboard.Fetcher
	View           *view.Controller
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
