// Package dbtest opens throwaway stores for package tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"alqualis/database"
)

// Open returns an initialized store in a temp dir, closed when the test ends.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	return OpenStore(t, false).DB
}

// OpenStore is Open with the Store handle and optional face seed.
func OpenStore(t *testing.T, seed bool) *database.Store {
	t.Helper()
	st, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.InitializeSchema(context.Background(), seed))
	return st
}
