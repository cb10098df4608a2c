// Package app wires the frame, query server and HTTP API together.
package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/frudas24/dropzone/internal/frame"
	"github.com/frudas24/dropzone/internal/geom"
	"github.com/frudas24/dropzone/internal/query"
)

// RegisterRoutes wires API and websocket handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/visible", a.handleVisible)
	mux.HandleFunc("/api/query", a.handleQuery)
	mux.Handle("/ws/query", a.Query())
}

type stateResponse struct {
	Droppables   []string      `json:"droppables"`
	HasDraggable bool          `json:"hasDraggable"`
	Padding      geom.Position `json:"padding"`
	Tolerance    float64       `json:"tolerance"`
}

// handleState summarizes the current frame.
func (a *App) handleState(w http.ResponseWriter, _ *http.Request) {
	snap := a.frame.Snapshot()
	resp := stateResponse{
		Droppables:   snap.IDs(),
		HasDraggable: snap.Draggable != nil,
		Padding:      a.cfg.Padding(),
		Tolerance:    a.frame.Tolerance(),
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleVisible returns the visible bounds of ?id=, optionally padded by ?padx= and ?pady=.
func (a *App) handleVisible(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	msg := query.Message{T: query.TypeVisible, ID: q.Get("id")}
	if q.Has("padx") || q.Has("pady") {
		padding, err := parsePadding(q.Get("padx"), q.Get("pady"))
		if err != nil {
			http.Error(w, "bad padding", http.StatusBadRequest)
			return
		}
		msg.Padding = &padding
	}
	a.answer(w, msg)
}

// handleQuery answers a single query message sent over plain HTTP.
func (a *App) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var msg query.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	a.answer(w, msg)
}

// answer dispatches msg and maps failures onto HTTP status codes.
func (a *App) answer(w http.ResponseWriter, msg query.Message) {
	reply, err := a.query.Dispatch(msg)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, frame.ErrUnknownDroppable) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, query.Reply{T: query.ReplyError, Seq: msg.Seq, ID: msg.ID, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

// parsePadding reads a padding vector; empty components are zero.
func parsePadding(rawX, rawY string) (geom.Position, error) {
	var p geom.Position
	if rawX != "" {
		x, err := strconv.ParseFloat(rawX, 64)
		if err != nil {
			return p, err
		}
		p.X = x
	}
	if rawY != "" {
		y, err := strconv.ParseFloat(rawY, 64)
		if err != nil {
			return p, err
		}
		p.Y = y
	}
	return p, nil
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
