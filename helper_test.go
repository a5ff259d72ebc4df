package ithub

import (
	"path/filepath"
	"testing"
	"time"
)

// fixedNow is an arbitrary reference instant used to seed deterministic
// fixtures.
func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)
}

// newTestStore returns a store backed by a fresh file in a temp
// directory. The file does not exist yet; the first Load seeds it.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "data.json"))
}
