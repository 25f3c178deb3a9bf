package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/tabgrid/pkg/buildinfo"
	"github.com/matzehuels/tabgrid/pkg/core/editor"
	"github.com/matzehuels/tabgrid/pkg/core/grid"
	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
	"github.com/matzehuels/tabgrid/pkg/errors"
	"github.com/matzehuels/tabgrid/pkg/render/css"
)

// OpenResponse is returned when a session is created.
type OpenResponse struct {
	ID   string      `json:"id"`
	View editor.View `json:"view"`
}

// LayoutResponse describes the stored active layout.
type LayoutResponse struct {
	Density layout.Density             `json:"density"`
	Areas   string                     `json:"areas"`
	Grid    grid.Grid                  `json:"grid"`
	Items   map[widget.ID]layout.Align `json:"items"`
	Enabled []widget.ID                `json:"enabled"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

type (
	selectRequest struct {
		Widget string `json:"widget"`
	}
	moveRequest struct {
		DX int `json:"dx"`
		DY int `json:"dy"`
	}
	spanRequest struct {
		Axis string `json:"axis"`
	}
	alignRequest struct {
		Box  *string `json:"box"`
		Text *string `json:"text"`
	}
	densityRequest struct {
		Density string `json:"density"`
	}
	widgetRequest struct {
		Enabled bool `json:"enabled"`
	}
)

// sessionHandler handles a request addressed to an open session.
type sessionHandler func(w http.ResponseWriter, r *http.Request, e *entry)

func (s *Server) withSession(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := s.lookup(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		h(w, r, e)
	}
}

// =============================================================================
// Sessions
// =============================================================================

func (s *Server) handleOpen(w http.ResponseWriter, r *http.Request) {
	id, e, err := s.open(r.Context())
	if err != nil {
		s.logger.Error("open session", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OpenResponse{ID: id.String(), View: e.session.View()})
}

func (s *Server) handleView(w http.ResponseWriter, _ *http.Request, e *entry) {
	writeJSON(w, http.StatusOK, e.session.View())
}

func (s *Server) handleClose(w http.ResponseWriter, r *http.Request) {
	if err := s.remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSessionCSS(w http.ResponseWriter, _ *http.Request, e *entry) {
	writeCSS(w, e.sheet)
}

// =============================================================================
// Edits
// =============================================================================

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request, e *entry) {
	var req selectRequest
	if !decode(w, r, &req) {
		return
	}
	respond(w, e, e.session.Select(widget.ID(req.Widget)))
}

func (s *Server) handleDeselect(w http.ResponseWriter, _ *http.Request, e *entry) {
	e.session.Deselect()
	respond(w, e, nil)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request, e *entry) {
	var req moveRequest
	if !decode(w, r, &req) {
		return
	}
	respond(w, e, e.session.Move(req.DX, req.DY))
}

func (s *Server) handleSpan(w http.ResponseWriter, r *http.Request, e *entry) {
	var req spanRequest
	if !decode(w, r, &req) {
		return
	}
	respond(w, e, e.session.ToggleSpan(grid.Axis(req.Axis)))
}

func (s *Server) handleAlign(w http.ResponseWriter, r *http.Request, e *entry) {
	var req alignRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Box == nil && req.Text == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "align needs box or text"))
		return
	}
	if req.Box != nil {
		if err := e.session.AlignBox(*req.Box); err != nil {
			writeError(w, err)
			return
		}
	}
	if req.Text != nil {
		if err := e.session.AlignText(*req.Text); err != nil {
			writeError(w, err)
			return
		}
	}
	respond(w, e, nil)
}

func (s *Server) handleDensity(w http.ResponseWriter, r *http.Request, e *entry) {
	var req densityRequest
	if !decode(w, r, &req) {
		return
	}
	respond(w, e, e.session.SetDensity(layout.Density(req.Density)))
}

func (s *Server) handleWidget(w http.ResponseWriter, r *http.Request, e *entry) {
	var req widgetRequest
	if !decode(w, r, &req) {
		return
	}
	id := widget.ID(chi.URLParam(r, "widget"))
	respond(w, e, e.session.ToggleWidget(id, req.Enabled))
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request, e *entry) {
	respond(w, e, e.session.ResetLayout())
}

// =============================================================================
// Stored layout
// =============================================================================

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	l := doc.Move.Layout()
	writeJSON(w, http.StatusOK, LayoutResponse{
		Density: doc.Move.Selection,
		Areas:   grid.String(l.Grid),
		Grid:    l.Grid,
		Items:   l.Items,
		Enabled: doc.Enabled(),
	})
}

func (s *Server) handleLayoutCSS(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeCSS(w, css.FromLayout(doc.Move.Layout()))
}

// HealthResponse is the body of /healthz.
type HealthResponse struct {
	Status   string         `json:"status"`
	Sessions int            `json:"sessions"`
	Build    buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Sessions: s.Len(), Build: buildinfo.Get()})
}

// =============================================================================
// Encoding
// =============================================================================

// decode reads a JSON body into v. An empty body leaves v unchanged.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || err == io.EOF {
		return true
	}
	writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
	return false
}

// respond writes the session view, or err when the edit failed.
func respond(w http.ResponseWriter, e *entry, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e.session.View())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeCSS(w http.ResponseWriter, sheet *css.Sheet) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = sheet.WriteTo(w)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, StatusFor(code), ErrorResponse{Code: code, Message: errors.UserMessage(err)})
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeNoSelection, errors.ErrCodeNotEditing:
		return http.StatusConflict
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidWidget, errors.ErrCodeInvalidDensity,
		errors.ErrCodeInvalidAxis, errors.ErrCodeInvalidAlign, errors.ErrCodeMalformedGrid:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
