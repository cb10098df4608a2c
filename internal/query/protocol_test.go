package query

import (
	"encoding/json"
	"testing"

	"github.com/frudas24/dropzone/internal/bounds"
	"github.com/frudas24/dropzone/internal/frame"
	"github.com/frudas24/dropzone/internal/geom"
)

// TestProtocol_Point verifies decoding a point message.
func TestProtocol_Point(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"point","seq":7,"id":"alpha","point":{"x":50,"y":12.5}}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != TypePoint || msg.Seq != 7 || msg.ID != "alpha" || msg.Point == nil || msg.Point.X != 50 || msg.Point.Y != 12.5 {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if msg.Padding != nil {
		t.Fatalf("expected no padding, got %+v", msg.Padding)
	}
}

// TestProtocol_Scroll verifies decoding a scroll message.
func TestProtocol_Scroll(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"scroll","id":"alpha","scroll":{"x":0,"y":50}}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != TypeScroll || msg.Scroll == nil || msg.Scroll.Y != 50 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Snapshot verifies decoding a snapshot with flattened fragment edges.
func TestProtocol_Snapshot(t *testing.T) {
	payload := `{"t":"snapshot","snapshot":{"droppables":[{"id":"alpha",
		"page":{"withMargin":{"top":0,"right":100,"bottom":200,"left":0}},
		"container":{"scroll":{"initial":{"x":0,"y":0},"current":{"x":0,"y":0}},
		"bounds":{"top":0,"right":100,"bottom":100,"left":0}}}]}}`
	var msg Message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.Snapshot == nil || len(msg.Snapshot.Droppables) != 1 {
		t.Fatalf("unexpected message: %+v", msg)
	}
	d := msg.Snapshot.Droppables[0]
	if d.Page.WithMargin.Bottom != 200 || d.Container.Bounds.Bottom != 100 {
		t.Fatalf("unexpected droppable: %+v", d)
	}
}

// TestProtocol_ReplyWithinAlwaysPresent verifies a false verdict is still encoded.
func TestProtocol_ReplyWithinAlwaysPresent(t *testing.T) {
	data, err := json.Marshal(Reply{T: ReplyVerdict, ID: "alpha"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"t":"verdict","id":"alpha","within":false}` {
		t.Fatalf("unexpected encoding: %s", data)
	}
}

// TestProtocol_SnapshotWithoutContainer verifies a droppable sent without a
// container accepts points inside its own box.
func TestProtocol_SnapshotWithoutContainer(t *testing.T) {
	payload := `{"t":"snapshot","snapshot":{"droppables":[{"id":"beta",
		"page":{"withMargin":{"top":0,"right":300,"bottom":200,"left":200}}}]}}`
	var msg Message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	s := NewServer(frame.New(bounds.BoundaryTolerance), bounds.NoPadding, nil)
	if _, err := s.Dispatch(msg); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	reply, err := s.Dispatch(Message{T: TypeVisible, ID: "beta"})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	want := geom.Spacing{Top: 0, Right: 300, Bottom: 200, Left: 200}
	if reply.Bounds == nil || *reply.Bounds != want || !reply.Within {
		t.Fatalf("expected visible %+v, got %+v", want, reply)
	}

	reply, err = s.Dispatch(Message{T: TypePoint, ID: "beta", Point: &geom.Position{X: 250, Y: 100}})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if !reply.Within {
		t.Fatalf("expected (250,100) inside beta, got %+v", reply)
	}
}
