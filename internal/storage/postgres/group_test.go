package postgres

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/yatube/internal/storage"
)

func TestGroupPostgresStorage(t *testing.T) {
	s := NewGroupPostgresStorage()

	t.Run("Create and fetch by slug", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		group, err := s.CreateGroup("Тестовая группа", "test-slug", "Тестовое описание")
		require.NoError(t, err)
		assert.NotZero(t, group.ID)

		found, err := s.GetGroupBySlug("test-slug")
		require.NoError(t, err)
		assert.Equal(t, "Тестовая группа", found.Title)
		assert.Equal(t, "Тестовое описание", found.Description)
	})

	t.Run("Duplicate slug", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := s.CreateGroup("Тестовая группа", "test-slug", "")
		require.NoError(t, err)

		_, err = s.CreateGroup("Другая группа", "test-slug", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("Unknown slug", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := s.GetGroupBySlug("ghost")
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})
}
