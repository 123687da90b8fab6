package api

import (
	"context"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jasonacox/vibescape/internal/imagegen"
	"github.com/jasonacox/vibescape/internal/metrics"
	"github.com/jasonacox/vibescape/internal/season"
	"github.com/jasonacox/vibescape/internal/store"
	"github.com/jasonacox/vibescape/internal/viewer"
)

// Config carries the server settings surfaced through the version and
// stats endpoints and the viewer page.
type Config struct {
	Port     string
	Version  string
	Provider string // "swarmui" or "openai"
	Model    string
	Endpoint string // provider base URL

	// RefreshSeconds is how long a generated scene stays fresh.
	// PollSeconds is how often the page asks for a new one.
	RefreshSeconds int
	PollSeconds    int
}

type Server struct {
	blender *season.Blender
	svc     *imagegen.Service
	tracker *viewer.Tracker
	store   *store.Store
	icons   *imagegen.Icons
	cfg     Config
	tmpl    *template.Template
}

// NewServer wires the HTTP surface. The store and icons may be nil;
// the affected endpoints degrade rather than fail.
func NewServer(blender *season.Blender, svc *imagegen.Service, tracker *viewer.Tracker, st *store.Store, icons *imagegen.Icons, cfg Config) *Server {
	return &Server{
		blender: blender,
		svc:     svc,
		tracker: tracker,
		store:   st,
		icons:   icons,
		cfg:     cfg,
		tmpl:    newTemplates(),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(countRequests)

	r.Get("/", s.handleIndex)
	r.Get("/image", s.handleImage)
	r.Get("/image/status", s.handleImageStatus)
	r.Get("/season", s.handleSeason)
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Get("/stats", s.handleStats)
	r.Get("/viewers", s.handleViewers)
	r.Post("/connect", s.handleConnect)
	r.Post("/disconnect", s.handleDisconnect)
	r.Get("/favicon.ico", s.handleFaviconICO)
	r.Get("/favicon-32x32.png", s.handleFavicon32)
	r.Get("/apple-touch-icon.png", s.handleAppleTouchIcon)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// countRequests records one counter increment per request, labeled by
// the matched route pattern so path cardinality stays bounded.
func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := chi.RouteContext(r.Context()).RoutePattern()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(path, strconv.Itoa(ww.Status())).Inc()
	})
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
