package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/radiusdt/wellwave-hub/internal/config"
	"github.com/radiusdt/wellwave-hub/internal/database"
	"github.com/radiusdt/wellwave-hub/internal/hub"
	"github.com/radiusdt/wellwave-hub/internal/metrics"
	"github.com/radiusdt/wellwave-hub/internal/middleware"
	"github.com/radiusdt/wellwave-hub/internal/notion"
)

// Dependencies holds all external dependencies for the server.
type Dependencies struct {
	Services *hub.Services
	Redis    *database.RedisDB
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
}

// Server wraps HTTP handlers and hub services.
type Server struct {
	brands      *hub.BrandService
	influencers *hub.InfluencerService
	campaigns   *hub.CampaignService
	reports     *hub.ReportService
	dashboard   *hub.DashboardService
	redis       *database.RedisDB
	logger      *zap.Logger
	config      *config.Config
}

// NewServer constructs a new http.Handler with all routes registered.
// Cross-cutting middleware (recovery, logging, rate limiting) is applied
// by the caller.
func NewServer(deps *Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		brands:      deps.Services.Brands,
		influencers: deps.Services.Influencers,
		campaigns:   deps.Services.Campaigns,
		reports:     deps.Services.Reports,
		dashboard:   deps.Services.Dashboard,
		redis:       deps.Redis,
		logger:      logger,
		config:      deps.Config,
	}

	r := chi.NewRouter()
	// Inside the router so route patterns are known when recording.
	r.Use(middleware.NewMetricsMiddleware(deps.Metrics).Handler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	if deps.Config.Metrics.Enabled {
		r.Handle(deps.Config.Metrics.Path, metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/brands", func(r chi.Router) {
			r.Get("/", s.handleListBrands)
			r.Post("/", s.handleCreateBrand)
			r.Get("/{id}", s.handleGetBrand)
			r.Put("/{id}", s.handleUpdateBrand)
			r.Delete("/{id}", s.handleDeleteBrand)
		})
		r.Route("/influencers", func(r chi.Router) {
			r.Get("/", s.handleListInfluencers)
			r.Post("/", s.handleCreateInfluencer)
			r.Get("/{id}", s.handleGetInfluencer)
			r.Put("/{id}", s.handleUpdateInfluencer)
			r.Delete("/{id}", s.handleDeleteInfluencer)
		})
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", s.handleListCampaigns)
			r.Post("/", s.handleCreateCampaign)
			r.Get("/{id}", s.handleCampaignDetail)
			r.Put("/{id}", s.handleUpdateCampaign)
			r.Delete("/{id}", s.handleDeleteCampaign)
		})

		r.Get("/dashboard", s.handleDashboard)
		r.Get("/stats/daily", s.handleDailyStats)
		r.Get("/stats/monthly", s.handleMonthlyStats)
		r.Get("/stats/brands", s.handleBrandStats)
		r.Get("/mentions", s.handleMentions)
		r.Get("/daily-report", s.handleDailyReport)
		r.Get("/options", s.handleOptions)
	})

	r.NotFound(s.notFoundHandler(deps.Config.Server.StaticDir))

	return r
}

// notFoundHandler serves the dashboard frontend for non-API paths when
// dir exists.
func (s *Server) notFoundHandler(dir string) http.HandlerFunc {
	var files http.Handler
	if dir != "" {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			files = http.FileServer(http.Dir(dir))
		} else {
			s.logger.Info("static directory not found, frontend disabled", zap.String("dir", dir))
		}
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if files == nil || strings.HasPrefix(r.URL.Path, "/api/") {
			s.errorResponse(w, "not found", http.StatusNotFound)
			return
		}
		files.ServeHTTP(w, r)
	}
}

// ---- Health Check ----

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.redis != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.redis.Health(ctx); err != nil {
			s.logger.Warn("redis health check failed", zap.Error(err))
			s.jsonStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "redis": err.Error()})
			return
		}
	}
	s.jsonResponse(w, map[string]string{"status": "ok"})
}

// ---- Helper Methods ----

func (s *Server) jsonResponse(w http.ResponseWriter, data interface{}) {
	s.jsonStatus(w, http.StatusOK, data)
}

func (s *Server) jsonStatus(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) errorResponse(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// upstreamError logs a failed operation and answers 500 with the
// hosted database's own message when there is one.
func (s *Server) upstreamError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.logger.Error(op+" failed",
		zap.Error(err),
		zap.String("path", r.URL.Path),
	)
	msg := err.Error()
	var apiErr *notion.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	}
	s.errorResponse(w, msg, http.StatusInternalServerError)
}

// decodeJSON reads a request body. An empty body decodes to the zero value.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// queryInt parses an integer query parameter; anything else yields 0.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(name)))
	if err != nil {
		return 0
	}
	return v
}
