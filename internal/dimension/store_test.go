package dimension

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/frudas24/dropzone/internal/geom"
)

// sampleSnapshot returns a snapshot with a scrolled container and a draggable.
func sampleSnapshot() Snapshot {
	container := Container{
		Scroll: ScrollState{Current: geom.Position{X: 0, Y: 50}},
		Bounds: geom.Spacing{Top: 0, Right: 100, Bottom: 100, Left: 0},
	}
	drag := NewDraggable("item-1", "alpha", geom.Spacing{Top: 0, Right: 100, Bottom: 50, Left: 0}, geom.Spacing{})
	return Snapshot{
		Droppables: []Droppable{
			NewDroppable("alpha", geom.Spacing{Top: 0, Right: 100, Bottom: 200, Left: 0}, geom.Spacing{}, &container),
			NewDroppable("beta", geom.Spacing{Top: 0, Right: 300, Bottom: 200, Left: 200}, geom.Spacing{Top: 2, Right: 2, Bottom: 2, Left: 2}, nil),
		},
		Draggable: &drag,
	}
}

// TestSaveLoad_RoundTripJSON verifies saving and loading JSON preserves the snapshot.
func TestSaveLoad_RoundTripJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshot.json")
	in := sampleSnapshot()

	if err := Save(path, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

// TestSaveLoad_RoundTripYAML verifies the .yaml extension selects the YAML codec.
func TestSaveLoad_RoundTripYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	in := sampleSnapshot()

	if err := Save(path, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

// TestLoad_HandWrittenYAML verifies edge-only fragments get their derived fields.
func TestLoad_HandWrittenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yml")
	doc := `droppables:
  - id: alpha
    page:
      withMargin: {top: 0, right: 100, bottom: 200, left: 0}
    container:
      scroll:
        initial: {x: 0, y: 0}
        current: {x: 0, y: 50}
      bounds: {top: 0, right: 100, bottom: 100, left: 0}
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	d, ok := out.Droppable("alpha")
	if !ok {
		t.Fatalf("expected alpha droppable, got %+v", out)
	}
	if d.Page.WithMargin.Height != 200 || d.Page.WithMargin.Center != (geom.Position{X: 50, Y: 100}) {
		t.Fatalf("unexpected fragment: %+v", d.Page.WithMargin)
	}
	if d.Container.Scroll.Current.Y != 50 {
		t.Fatalf("expected current scroll 50, got %+v", d.Container.Scroll)
	}
}

// TestLoad_MissingFile_ReturnsEmpty verifies missing files return an empty snapshot.
func TestLoad_MissingFile_ReturnsEmpty(t *testing.T) {
	out, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(out.Droppables) != 0 || out.Draggable != nil {
		t.Fatalf("expected empty snapshot, got %+v", out)
	}
}

// TestLoad_InvalidJSON verifies decode failures are reported.
func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"droppables":`), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

// TestLoad_MissingContainerHasNoScrollParent verifies a droppable without a
// container is clipped to its own margin box.
func TestLoad_MissingContainerHasNoScrollParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	doc := `{"droppables":[{"id":"beta","page":{"withMargin":{"top":0,"right":300,"bottom":200,"left":200}}}]}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	d, ok := out.Droppable("beta")
	if !ok {
		t.Fatalf("expected beta droppable, got %+v", out)
	}
	want := NoScrollParent(geom.Spacing{Top: 0, Right: 300, Bottom: 200, Left: 200})
	if d.Container != want {
		t.Fatalf("expected %+v, got %+v", want, d.Container)
	}
}

// TestNormalize_KeepsMeasuredContainer verifies a measured container is not replaced.
func TestNormalize_KeepsMeasuredContainer(t *testing.T) {
	in := sampleSnapshot()
	out := in.Normalize()
	if out.Droppables[0].Container != in.Droppables[0].Container {
		t.Fatalf("expected %+v, got %+v", in.Droppables[0].Container, out.Droppables[0].Container)
	}
}
