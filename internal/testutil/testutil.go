// Package testutil provides helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/tobisalami/studia/store"
)

// NewDB opens a throwaway BoltDB client in a temporary directory that
// is closed and removed when the test finishes.
func NewDB(t *testing.T) *store.Client {
	t.Helper()

	pathToDB := filepath.Join(t.TempDir(), "studia_test.db")

	client, err := store.NewClient(pathToDB)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}
