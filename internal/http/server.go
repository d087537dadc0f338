package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mauv0809/cricket-score/internal/config"
	"github.com/mauv0809/cricket-score/internal/http/handlers"
	"github.com/mauv0809/cricket-score/internal/metrics"
	"github.com/mauv0809/cricket-score/internal/stats"
)

func NewServer(store stats.StatsStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         chi.NewRouter(),
		Now:            time.Now,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	origins := s.Cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s.Router.Use(chimiddleware.Recoverer)
	s.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))
	s.Router.NotFound(s.appendSlash(handlers.NotFoundHandler()))

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Group(func(r chi.Router) {
		r.Use(requestMiddleware(s.Metrics), paramsMiddleware)

		r.Get("/health", handlers.HealthCheckHandler())
		r.Get("/", handlers.HomeHandler(s.Store, s.Metrics, s.now))
		r.Get("/teams/", handlers.ListTeamsHandler(s.Store, s.Metrics))
		r.Get("/team/{id:[0-9]+}/", handlers.TeamDetailHandler(s.Store, s.Metrics))
		r.Get("/matches/", handlers.ListMatchesHandler(s.Store, s.Metrics))
		r.Get("/match/{id:[0-9]+}/", handlers.MatchDetailHandler(s.Store, s.Metrics))
		r.Get("/player/{id:[0-9]+}/", handlers.PlayerStatsHandler(s.Store, s.Metrics))
		r.Get("/player/{id:[0-9]+}/matches/", handlers.PlayerHistoryHandler(s.Store, s.Metrics))
	})
}

// appendSlash permanently redirects GET and HEAD requests for a path missing
// its trailing slash when the slashed path is a route. Anything else falls
// through to notFound.
func (s *Server) appendSlash(notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if (r.Method == http.MethodGet || r.Method == http.MethodHead) &&
			!strings.HasSuffix(path, "/") &&
			s.Router.Match(chi.NewRouteContext(), r.Method, path+"/") {
			target := path + "/"
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusMovedPermanently)
			return
		}
		notFound(w, r)
	}
}

func (s *Server) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
