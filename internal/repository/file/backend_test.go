package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bagdasarian/team-voting/internal/repository/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_ReadWrite(t *testing.T) {
	t.Run("отсутствующий файл дает ErrNotExist", func(t *testing.T) {
		backend, err := NewBackend(t.TempDir())
		require.NoError(t, err)

		_, err = backend.Read(context.Background(), document.KindUsers)
		assert.ErrorIs(t, err, document.ErrNotExist)
	})

	t.Run("запись перезаписывает файл целиком", func(t *testing.T) {
		dir := t.TempDir()
		backend, err := NewBackend(dir)
		require.NoError(t, err)
		ctx := context.Background()

		require.NoError(t, backend.Write(ctx, document.KindTeams, []byte(`["Red","Blue","Green"]`)))
		require.NoError(t, backend.Write(ctx, document.KindTeams, []byte(`["Red"]`)))

		data, err := backend.Read(ctx, document.KindTeams)
		require.NoError(t, err)
		assert.Equal(t, `["Red"]`, string(data))

		onDisk, err := os.ReadFile(filepath.Join(dir, "teams.json"))
		require.NoError(t, err)
		assert.Equal(t, `["Red"]`, string(onDisk))
	})

	t.Run("каталог создается при необходимости", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")

		backend, err := NewBackend(dir)
		require.NoError(t, err)
		require.NoError(t, backend.Write(context.Background(), document.KindVotes, []byte(`{}`)))

		assert.FileExists(t, filepath.Join(dir, "votes.json"))
	})

	t.Run("отмененный контекст", func(t *testing.T) {
		backend, err := NewBackend(t.TempDir())
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, backend.Write(ctx, document.KindVotes, []byte(`{}`)), context.Canceled)
		_, err = backend.Read(ctx, document.KindVotes)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBackend_Path(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewBackend(dir)
	require.NoError(t, err)
	ctx := context.Background()

	for _, kind := range document.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			assert.Equal(t, filepath.Join(dir, string(kind)+".json"), backend.Path(kind))

			_, err := backend.Read(ctx, kind)
			assert.ErrorIs(t, err, document.ErrNotExist)

			require.NoError(t, backend.Write(ctx, kind, []byte(`[]`)))
			assert.FileExists(t, backend.Path(kind))
		})
	}
}

func TestBackend_WithStore(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewBackend(dir)
	require.NoError(t, err)
	store := document.NewStore(backend)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o644))

	ctx, warnings := document.WithWarnings(ctx)
	users, err := store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin123", users["admin"])
	require.Len(t, warnings.Items(), 1)

	onDisk, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"admin":"admin123"}`, string(onDisk))
}
