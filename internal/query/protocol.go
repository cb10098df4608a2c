// Package query serves containment queries to a drag orchestrator.
package query

import (
	"github.com/frudas24/dropzone/internal/dimension"
	"github.com/frudas24/dropzone/internal/geom"
)

// Message types sent by the orchestrator.
const (
	// TypeSnapshot replaces the measured frame.
	TypeSnapshot = "snapshot"
	// TypeScroll updates the current scroll of one droppable's container.
	TypeScroll = "scroll"
	// TypeVisible asks for a droppable's visible bounds.
	TypeVisible = "visible"
	// TypePoint asks whether a point is over a droppable, or which one.
	TypePoint = "point"
	// TypeDraggable asks whether a draggable is fully inside a droppable.
	TypeDraggable = "draggable"
)

// Reply types sent back.
const (
	ReplyOK      = "ok"
	ReplyBounds  = "bounds"
	ReplyVerdict = "verdict"
	ReplyError   = "error"
)

// Message is a query websocket payload.
type Message struct {
	T         string               `json:"t"`
	Seq       int                  `json:"seq,omitempty"`
	ID        string               `json:"id,omitempty"`
	Point     *geom.Position       `json:"point,omitempty"`
	Padding   *geom.Position       `json:"padding,omitempty"`
	Scroll    *geom.Position       `json:"scroll,omitempty"`
	Snapshot  *dimension.Snapshot  `json:"snapshot,omitempty"`
	Draggable *dimension.Draggable `json:"draggable,omitempty"`
}

// Reply answers a single Message. Seq echoes the request.
type Reply struct {
	T      string        `json:"t"`
	Seq    int           `json:"seq,omitempty"`
	ID     string        `json:"id,omitempty"`
	Within bool          `json:"within"`
	Bounds *geom.Spacing `json:"bounds,omitempty"`
	Count  int           `json:"count,omitempty"`
	Error  string        `json:"error,omitempty"`
}
