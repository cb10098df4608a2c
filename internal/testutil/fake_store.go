package testutil

import (
	"sync"

	"github.com/frudas24/dropzone/internal/dimension"
)

// FakeStore records saved snapshots instead of writing them to disk.
type FakeStore struct {
	mu    sync.Mutex
	Saved []dimension.Snapshot
	Err   error
}

// Save records the snapshot and returns the configured error.
func (f *FakeStore) Save(s dimension.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Saved = append(f.Saved, s)
	return nil
}

// Count returns the number of saved snapshots.
func (f *FakeStore) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Saved)
}
