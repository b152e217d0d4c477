package testutil

import (
	"path/filepath"
	"testing"

	"github.com/receiptvault/receiptvault/internal/storage"
	"github.com/receiptvault/receiptvault/internal/storage/bolt"
)

// SetupTestStorage opens a throwaway bolt-backed vault for a test.
func SetupTestStorage(t *testing.T) storage.Storage {
	t.Helper()

	s, err := bolt.New(filepath.Join(t.TempDir(), "vault.db"))
	if err != nil {
		t.Fatalf("Failed to open test storage: %v", err)
	}

	t.Cleanup(func() {
		if closeErr := s.Close(); closeErr != nil {
			t.Errorf("Failed to close test storage: %v", closeErr)
		}
	})

	return s
}
