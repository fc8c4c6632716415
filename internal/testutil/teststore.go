package testutil

import (
	"path/filepath"
	"testing"

	"github.com/alexanderramin/enjaz/internal/store"
)

// NewTestStore creates a file-backed persistence manager in a per-test temp
// directory. The handle is closed when the test completes.
func NewTestStore(t *testing.T) *store.Manager {
	t.Helper()
	m := store.NewManager(filepath.Join(t.TempDir(), "enjaz.db"))
	t.Cleanup(func() {
		_ = m.Close()
	})
	return m
}
