package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/cricket-score/internal/config"
	"github.com/mauv0809/cricket-score/internal/metrics"
	"github.com/mauv0809/cricket-score/internal/stats"
)

type Server struct {
	Store          stats.StatsStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         chi.Router
	// Now is the clock used to split upcoming from completed matches.
	Now func() time.Time
}
