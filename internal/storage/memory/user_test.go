package memory

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/yatube/internal/storage"
)

func TestUserMemoryStorage_RegisterUser(t *testing.T) {
	s := NewUserMemoryStorage()

	t.Run("Success registration", func(t *testing.T) {
		user, err := s.RegisterUser("auth", "auth@example.com", "password123")
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "auth", user.Username)
		// Пароль хранится только в виде хэша
		assert.NotEqual(t, "password123", user.Password)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		_, err := s.RegisterUser("auth", "other@example.com", "password123")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestUserMemoryStorage_LoginUser(t *testing.T) {
	originalSecret := os.Getenv("JWT_SECRET")
	os.Setenv("JWT_SECRET", "test_jwt_secret")
	defer os.Setenv("JWT_SECRET", originalSecret)

	s := NewUserMemoryStorage()
	_, err := s.RegisterUser("auth", "auth@example.com", "password123")
	require.NoError(t, err)

	t.Run("Success login returns token", func(t *testing.T) {
		token, err := s.LoginUser("auth", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := s.LoginUser("auth", "wrong")
		assert.Error(t, err)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := s.LoginUser("ghost", "password123")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestUserMemoryStorage_Getters(t *testing.T) {
	s := NewUserMemoryStorage()
	user, err := s.RegisterUser("auth", "auth@example.com", "password123")
	require.NoError(t, err)

	t.Run("GetUserByUsername", func(t *testing.T) {
		found, err := s.GetUserByUsername("auth")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("GetUserById", func(t *testing.T) {
		found, err := s.GetUserById(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "auth", found.Username)
	})

	t.Run("Unknown username", func(t *testing.T) {
		_, err := s.GetUserByUsername("ghost")
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := s.GetUserById(999)
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})
}
