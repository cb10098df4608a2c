// Package main starts the dropzone query server.
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/frudas24/dropzone/internal/app"
	"github.com/frudas24/dropzone/internal/config"
	"github.com/frudas24/dropzone/internal/frame"
	"github.com/frudas24/dropzone/internal/query"
)

// run wires the application and blocks until shutdown.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	query.SetDebugLogging(debug)
	if debug {
		log.Printf("debug: enabled")
	}
	logStartup(cfg)

	appInstance, err := app.New(cfg, frame.New(cfg.Tolerance))
	if err != nil {
		return err
	}
	if err := appInstance.Start(); err != nil {
		return err
	}
	defer func() {
		if err := appInstance.Stop(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux)
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("dropzone starting")
	logEnvStatus(cfg)
	logSnapshotStatus(cfg)
	log.Printf("padding: (%g,%g) tolerance: %g", cfg.PaddingX, cfg.PaddingY, cfg.Tolerance)
	logListenStatus(cfg.ListenAddr)
}

// logEnvStatus reports whether a .env file was found.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
}

// logSnapshotStatus reports where snapshots are read from and whether they are persisted.
func logSnapshotStatus(cfg config.Config) {
	state := "missing, starting empty"
	if fileExists(cfg.SnapshotPath) {
		state = "ok"
	}
	log.Printf("snapshot check: %s (%s)", state, cfg.SnapshotPath)
	if !cfg.PersistSnapshots {
		log.Printf("env PERSIST_SNAPSHOTS: disabled")
	}
}

// logListenStatus reports the listen address and the query endpoint.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("query url: ws://%s/ws/query", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
