// Package app wires the frame, query server and HTTP API together.
package app

import (
	"errors"
	"log"

	"github.com/frudas24/dropzone/internal/config"
	"github.com/frudas24/dropzone/internal/dimension"
	"github.com/frudas24/dropzone/internal/frame"
	"github.com/frudas24/dropzone/internal/query"
)

// App coordinates the HTTP API and the query websocket.
type App struct {
	cfg   config.Config
	frame *frame.Frame
	query *query.Server
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, f *frame.Frame) (*App, error) {
	if f == nil {
		return nil, errors.New("frame is required")
	}

	app := &App{
		cfg:   cfg,
		frame: f,
	}

	var save query.SnapshotSaver
	if cfg.PersistSnapshots && cfg.SnapshotPath != "" {
		save = app.saveSnapshot
	}
	app.query = query.NewServer(f, cfg.Padding(), save)

	return app, nil
}

// Start loads the last persisted snapshot into the frame.
func (a *App) Start() error {
	if a.cfg.SnapshotPath == "" {
		return nil
	}
	snap, err := dimension.Load(a.cfg.SnapshotPath)
	if err != nil {
		return err
	}
	a.frame.Set(snap)
	log.Printf("snapshot: loaded %d droppables from %s", len(snap.Droppables), a.cfg.SnapshotPath)
	return nil
}

// Stop writes the current frame back to disk when persistence is enabled.
func (a *App) Stop() error {
	if !a.cfg.PersistSnapshots || a.cfg.SnapshotPath == "" {
		return nil
	}
	return a.saveSnapshot(a.frame.Snapshot())
}

// saveSnapshot persists a snapshot to the configured path.
func (a *App) saveSnapshot(s dimension.Snapshot) error {
	return dimension.Save(a.cfg.SnapshotPath, s)
}

// Query returns the query websocket handler.
func (a *App) Query() *query.Server {
	return a.query
}
