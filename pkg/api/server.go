package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/tabgrid/pkg/core/editor"
	"github.com/matzehuels/tabgrid/pkg/errors"
	"github.com/matzehuels/tabgrid/pkg/observability"
	"github.com/matzehuels/tabgrid/pkg/render/css"
	"github.com/matzehuels/tabgrid/pkg/settings"
)

// Options configures a Server. Zero values select the defaults.
type Options struct {
	Logger *log.Logger
	// QueueSize bounds each session's pending writes.
	QueueSize int
}

// Server holds the open editing sessions of one settings store.
//
// Each session keeps its own copy of the settings; when two sessions edit
// the same document, the last write wins.
type Server struct {
	store  settings.Store
	logger *log.Logger
	queue  int

	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
}

type entry struct {
	session *editor.Session
	sheet   *css.Sheet
}

// NewServer returns a server editing the document in store.
func NewServer(store settings.Store, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:    store,
		logger:   logger,
		queue:    opts.QueueSize,
		sessions: make(map[uuid.UUID]*entry),
	}
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/layout", s.handleLayout)
		r.Get("/layout.css", s.handleLayoutCSS)

		r.Post("/sessions", s.handleOpen)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.withSession(s.handleView))
			r.Delete("/", s.handleClose)
			r.Get("/layout.css", s.withSession(s.handleSessionCSS))

			r.Put("/selection", s.withSession(s.handleSelect))
			r.Delete("/selection", s.withSession(s.handleDeselect))
			r.Post("/move", s.withSession(s.handleMove))
			r.Post("/span", s.withSession(s.handleSpan))
			r.Put("/align", s.withSession(s.handleAlign))
			r.Put("/density", s.withSession(s.handleDensity))
			r.Put("/widgets/{widget}", s.withSession(s.handleWidget))
			r.Post("/reset", s.withSession(s.handleReset))
		})
	})
	return r
}

// Len returns the number of open sessions.
func (s *Server) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Shutdown closes every open session, flushing their pending writes, and
// returns the first failure.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	open := s.sessions
	s.sessions = make(map[uuid.UUID]*entry)
	s.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	for id, e := range open {
		g.Go(func() error {
			if err := e.session.Close(ctx); err != nil {
				return errors.Wrap(errors.ErrCodeStorage, err, "flush session %s", id)
			}
			return nil
		})
	}
	return g.Wait()
}

// open starts a session in editing mode and registers it.
func (s *Server) open(ctx context.Context) (uuid.UUID, *entry, error) {
	id := uuid.New()
	sheet := css.NewSheet()
	sess, err := editor.Open(ctx, s.store, editor.Options{
		Surface:   sheet,
		Logger:    s.logger.With("session", id.String()),
		QueueSize: s.queue,
	})
	if err != nil {
		return uuid.Nil, nil, err
	}
	sess.StartEditing()

	e := &entry{session: sess, sheet: sheet}
	s.mu.Lock()
	s.sessions[id] = e
	s.mu.Unlock()
	s.logger.Info("opened session", "session", id)
	return id, e, nil
}

func (s *Server) lookup(raw string) (*entry, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %q not found", raw)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %q not found", raw)
	}
	return e, nil
}

// remove unregisters the session and flushes it.
func (s *Server) remove(ctx context.Context, raw string) error {
	id, err := uuid.Parse(raw)
	if err != nil {
		return errors.New(errors.ErrCodeSessionNotFound, "session %q not found", raw)
	}
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return errors.New(errors.ErrCodeSessionNotFound, "session %q not found", raw)
	}

	if err := e.session.Close(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "flush session %s", id)
	}
	s.logger.Info("closed session", "session", id)
	return nil
}

// observe reports every request to the HTTP hooks and logs it at debug
// level. The route is the matched pattern, so session ids do not explode
// metric cardinality.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.HTTP()

		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		dur := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, route, status, dur)
		s.logger.Debug("request", "method", r.Method, "route", route, "status", status, "duration", dur)
	})
}
