// Package main sends a single containment query to a running dropzone server.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/frudas24/dropzone/internal/geom"
	"github.com/frudas24/dropzone/internal/probe"
	"github.com/frudas24/dropzone/internal/query"
)

// main is the entrypoint for the probe CLI.
func main() {
	url := flag.String("url", "ws://localhost:8790/ws/query", "Query websocket URL")
	kind := flag.String("t", query.TypePoint, "Query type: point or visible")
	id := flag.String("id", "", "Droppable id; empty finds the droppable under the point")
	x := flag.Float64("x", 0, "Point x")
	y := flag.Float64("y", 0, "Point y")
	padX := flag.Float64("padx", 0, "Padding x")
	padY := flag.Float64("pady", 0, "Padding y")
	timeout := flag.Duration("timeout", 5*time.Second, "Overall timeout")
	flag.Parse()

	msg, err := buildMessage(*kind, *id, geom.Position{X: *x, Y: *y}, geom.Position{X: *padX, Y: *padY})
	if err != nil {
		fmt.Fprintf(os.Stderr, "dropprobe: %v\n", err)
		os.Exit(2)
	}
	if err := run(*url, msg, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "dropprobe: %v\n", err)
		os.Exit(1)
	}
}

// buildMessage turns the flags into a query. Only point and visible can be
// expressed with flags.
func buildMessage(kind, id string, point, padding geom.Position) (query.Message, error) {
	if kind != query.TypePoint && kind != query.TypeVisible {
		return query.Message{}, fmt.Errorf("unsupported query type %q (use point or visible)", kind)
	}
	return query.Message{
		T:       kind,
		ID:      id,
		Point:   &point,
		Padding: &padding,
	}, nil
}

// run sends msg and prints the reply as JSON.
func run(url string, msg query.Message, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c, err := probe.Dial(ctx, url)
	if err != nil {
		return err
	}
	defer c.Close()

	reply, err := c.Query(ctx, msg)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reply); err != nil {
		return err
	}
	if reply.T == query.ReplyError {
		return errors.New(reply.Error)
	}
	return nil
}
