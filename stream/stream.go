// SPDX-License-Identifier: MIT

package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/dsaviz/catalog"
	"github.com/katalvlaran/dsaviz/engine"
)

const (
	defaultWriteWait  = 10 * time.Second
	defaultPongWait   = 60 * time.Second
	defaultPingPeriod = 54 * time.Second
	defaultRetention  = 10 * time.Minute

	maxControlSize = 1 << 12
	maxStartSize   = 1 << 20
)

// Control operations accepted on the WebSocket.
const (
	OpCancel  = "cancel"
	OpPacing  = "pacing"
	OpPause   = "pause"
	OpResume  = "resume"
	OpAdvance = "advance"
)

// ErrUnknownOp reports a control frame with an unsupported op.
var ErrUnknownOp = errors.New("stream: unknown control op")

// Control is a client to server frame.
type Control struct {
	Op string `json:"op"`
	Ms int    `json:"ms,omitempty"`
}

// Final is the last frame of a stream.
type Final struct {
	Status engine.Status   `json:"status"`
	Steps  int             `json:"steps"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Notice reports a rejected control frame without closing the stream.
type Notice struct {
	Error string `json:"error"`
}

// Summary describes one run in listings.
type Summary struct {
	ID        string        `json:"id"`
	Algorithm string        `json:"algorithm"`
	Status    engine.Status `json:"status"`
	Steps     int           `json:"steps"`
}

// StartRequest is the body of POST /runs. Input is decoded by the catalog
// entry; JSON is accepted as YAML.
type StartRequest struct {
	Algorithm   string          `json:"algorithm"`
	Input       json.RawMessage `json:"input,omitempty"`
	PacingMs    *int            `json:"pacing_ms,omitempty"`
	Manual      bool            `json:"manual,omitempty"`
	AnimateOnly bool            `json:"animate_only,omitempty"`
}

// Option configures a Handler.
type Option func(*Handler)

// WithCatalog enables POST /runs.
func WithCatalog(c *catalog.Catalog) Option {
	return func(h *Handler) {
		h.cat = c
	}
}

// WithLogger sets the handler logger. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithKeepalive sets the ping period and the pong deadline.
// Panics unless 0 < ping < pong.
func WithKeepalive(ping, pong time.Duration) Option {
	if ping <= 0 || pong <= ping {
		panic("stream: WithKeepalive requires 0 < ping < pong")
	}
	return func(h *Handler) {
		h.pingPeriod, h.pongWait = ping, pong
	}
}

// WithRetention sets how long finished runs stay addressable. Older runs
// are dropped from the Runner on the next request. Panics unless d > 0.
func WithRetention(d time.Duration) Option {
	if d <= 0 {
		panic("stream: WithRetention requires d > 0")
	}
	return func(h *Handler) {
		h.retention = d
	}
}

// Handler serves the run bridge.
type Handler struct {
	rn     *engine.Runner
	cat    *catalog.Catalog
	logger *slog.Logger
	mux    *http.ServeMux

	upgrader   websocket.Upgrader
	writeWait  time.Duration
	pongWait   time.Duration
	pingPeriod time.Duration
	retention  time.Duration
}

// NewHandler returns a Handler serving the runs of rn.
func NewHandler(rn *engine.Runner, opts ...Option) *Handler {
	h := &Handler{
		rn:         rn,
		logger:     slog.Default(),
		mux:        http.NewServeMux(),
		writeWait:  defaultWriteWait,
		pongWait:   defaultPongWait,
		pingPeriod: defaultPingPeriod,
		retention:  defaultRetention,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(h)
	}

	h.mux.HandleFunc("GET /runs", h.list)
	h.mux.HandleFunc("POST /runs", h.start)
	h.mux.HandleFunc("GET /runs/{id}", h.get)
	h.mux.HandleFunc("GET /runs/{id}/ws", h.ws)

	return h
}

// ServeHTTP implements http.Handler. Each request first drops runs that
// finished longer ago than the retention.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if n := h.rn.Prune(h.retention); n > 0 {
		h.logger.Debug("stream: pruned finished runs", "count", n)
	}
	h.mux.ServeHTTP(w, r)
}

func summarize(run *engine.Run) Summary {
	return Summary{ID: run.ID(), Algorithm: run.Algorithm(), Status: run.Status(), Steps: run.Len()}
}

func (h *Handler) list(w http.ResponseWriter, _ *http.Request) {
	runs := h.rn.Runs()
	out := make([]Summary, len(runs))
	for i, run := range runs {
		out[i] = summarize(run)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	run, ok := h.rn.Get(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, Notice{Error: engine.ErrRunNotFound.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summarize(run))
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	if h.cat == nil {
		writeJSON(w, http.StatusNotImplemented, Notice{Error: "stream: no catalog configured"})
		return
	}
	var req StartRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxStartSize)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Notice{Error: err.Error()})
		return
	}
	in, err := h.cat.Decode(req.Algorithm, req.Input)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Notice{Error: err.Error()})
		return
	}

	var opts []engine.Option
	if req.PacingMs != nil {
		opts = append(opts, engine.WithPacingMs(*req.PacingMs))
	}
	if req.Manual {
		opts = append(opts, engine.WithManual())
	}
	if req.AnimateOnly {
		opts = append(opts, engine.WithAnimateOnly())
	}

	// Runs outlive the request; they end by completion or an explicit cancel.
	run, err := h.cat.Run(context.WithoutCancel(r.Context()), h.rn, req.Algorithm, in, opts...)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Notice{Error: err.Error()})
		return
	}
	h.logger.Info("stream: run started", "run", run.ID(), "algorithm", run.Algorithm())
	writeJSON(w, http.StatusCreated, summarize(run))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// apply executes one control frame against run.
func apply(run *engine.Run, c Control) error {
	switch c.Op {
	case OpCancel:
		run.Cancel()
	case OpPacing:
		return run.SetPacing(time.Duration(c.Ms) * time.Millisecond)
	case OpPause:
		run.Pause()
	case OpResume:
		run.Resume()
	case OpAdvance:
		run.Advance()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, c.Op)
	}

	return nil
}

func final(run *engine.Run) Final {
	f := Final{Status: run.Status(), Steps: run.Len()}
	if err := run.Err(); err != nil {
		f.Error = err.Error()
	}
	if res, err := run.Result(); err == nil && res != nil {
		if raw, err := json.Marshal(res); err == nil {
			f.Result = raw
		}
	}

	return f
}
