package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alqualis/entities"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.db")
	st, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st, path
}

func TestInitializeSchemaCreatesAllTables(t *testing.T) {
	st, _ := openTemp(t)
	ctx := context.Background()

	missing, err := MissingTables(ctx, st.DB)
	require.NoError(t, err)
	assert.Len(t, missing, len(Tables))

	require.NoError(t, st.InitializeSchema(ctx, false))
	missing, err = MissingTables(ctx, st.DB)
	require.NoError(t, err)
	assert.Empty(t, missing)

	var idx int64
	require.NoError(t, st.DB.Raw(`SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name LIKE 'idx_%'`).Scan(&idx).Error)
	assert.EqualValues(t, 8, idx)
}

func TestInitializeSchemaIsIdempotent(t *testing.T) {
	st, _ := openTemp(t)
	ctx := context.Background()
	require.NoError(t, st.InitializeSchema(ctx, true))
	require.NoError(t, st.DB.Exec(`INSERT INTO cooperativa (nome_cooperativa) VALUES ('COOPAGRI')`).Error)

	require.NoError(t, st.InitializeSchema(ctx, true))

	var coops, faces int64
	require.NoError(t, st.DB.Table("cooperativa").Count(&coops).Error)
	require.NoError(t, st.DB.Model(&entities.ExposureFace{}).Count(&faces).Error)
	assert.EqualValues(t, 1, coops)
	// seed only runs on a fresh store
	assert.EqualValues(t, len(SeedFaces), faces)
}

func TestInitializeSchemaWithoutSeed(t *testing.T) {
	st, _ := openTemp(t)
	require.NoError(t, st.InitializeSchema(context.Background(), false))
	var faces int64
	require.NoError(t, st.DB.Model(&entities.ExposureFace{}).Count(&faces).Error)
	assert.Zero(t, faces)
}

func TestForeignKeysEnforced(t *testing.T) {
	st, _ := openTemp(t)
	require.NoError(t, st.InitializeSchema(context.Background(), false))
	err := st.DB.Exec(`INSERT INTO cooperativa_produtor (id_cooperativa, id_produtor) VALUES (99, 99)`).Error
	assert.Error(t, err)
}

func TestDestroyRemovesFile(t *testing.T) {
	st, path := openTemp(t)
	require.NoError(t, st.InitializeSchema(context.Background(), false))
	_, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, st.Destroy())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDestroyMissingStore(t *testing.T) {
	assert.NoError(t, Destroy(filepath.Join(t.TempDir(), "never-created.db")))
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "a.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn("a.db"))
	assert.Equal(t, "file:a.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn("file:a.db?mode=rwc"))
}
