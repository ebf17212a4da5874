package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" // Импортируем драйвер SQLite
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/yatube/internal/auth"
	"github.com/VitaminP8/yatube/internal/storage"
	"github.com/VitaminP8/yatube/models"
)

// Создает контекст с ID пользователя
func createUserContext(userID uint) context.Context {
	ctx := context.Background()
	return auth.WithUserID(ctx, userID)
}

// setupTestDB создает тестовую БД в памяти и выполняет миграции
func setupTestDB(t *testing.T) *gorm.DB {
	// Сохраняем оригинальное соединение (если оно есть)
	oldDB := GetDB()

	// Создаем SQLite в памяти
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err, "Failed to connect to in-memory SQLite")

	// Включаем foreign keys в SQLite
	db.Exec("PRAGMA foreign_keys = ON")
	// Отключаем логирование запросов для тестов
	db.LogMode(false)
	// Устанавливаем SQLite в качестве глобальной DB и мигрируем схему
	InitDBWithConnection(db)
	require.NoError(t, MigrateSchema(), "Failed to migrate database schema")

	return oldDB
}

// teardownTestDB восстанавливает оригинальную базу данных
func teardownTestDB(db *gorm.DB) {
	// Восстанавливаем оригинальное соединение
	InitDBWithConnection(db)
}

// createTestUser создает тестового пользователя и возвращает его ID
func createTestUser(t *testing.T, username string) uint {
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	}

	err := DB.Create(user).Error
	require.NoError(t, err, "Failed to create test user")

	return user.ID
}

// createTestGroup создает тестовую группу и возвращает ее ID
func createTestGroup(t *testing.T, slug string) uint {
	group := &models.Group{
		Title:       "Тестовая группа",
		Slug:        slug,
		Description: "Тестовое описание",
	}

	err := DB.Create(group).Error
	require.NoError(t, err, "Failed to create test group")

	return group.ID
}

// createTestPost создает тестовый пост и возвращает его ID
func createTestPost(t *testing.T, userID uint, text string, groupID *uint) uint {
	post := &models.Post{
		Text:    text,
		UserID:  userID,
		GroupID: groupID,
	}

	err := DB.Create(post).Error
	require.NoError(t, err, "Failed to create test post")

	return post.ID
}

func TestPostPostgresStorage_CreatePost(t *testing.T) {
	s := NewPostPostgresStorage()

	t.Run("Success post creation", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "auth")
		groupID := createTestGroup(t, "test-slug")
		ctx := createUserContext(userID)

		post, err := s.CreatePost(ctx, "Тестовый пост для тестирования", &groupID, "posts/img.jpg")
		require.NoError(t, err)
		assert.NotZero(t, post.ID)
		assert.Equal(t, "Тестовый пост для тестирования", post.Text)
		assert.Equal(t, userID, post.UserID)
		require.NotNil(t, post.GroupID)
		assert.Equal(t, groupID, *post.GroupID)

		// Проверяем, что пост действительно создался в БД
		var dbPost models.Post
		err = DB.First(&dbPost, post.ID).Error
		assert.NoError(t, err)
		assert.Equal(t, userID, dbPost.UserID)
	})

	t.Run("Error: no authorization", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		post, err := s.CreatePost(context.Background(), "текст", nil, "")
		assert.Error(t, err)
		assert.Nil(t, post)
		assert.Contains(t, err.Error(), "unauthorized")
	})
}

func TestPostPostgresStorage_GetPostById(t *testing.T) {
	s := NewPostPostgresStorage()

	t.Run("Getting exists post", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "auth")
		postID := createTestPost(t, userID, "текст", nil)

		post, err := s.GetPostById(postID)
		require.NoError(t, err)
		assert.Equal(t, postID, post.ID)
		assert.Equal(t, "текст", post.Text)
		assert.Equal(t, userID, post.UserID)
	})

	t.Run("Trying to get not exist post", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := s.GetPostById(999)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})
}

func TestPostPostgresStorage_Listings(t *testing.T) {
	s := NewPostPostgresStorage()

	oldDB := setupTestDB(t)
	defer teardownTestDB(oldDB)

	author1 := createTestUser(t, "auth")
	author2 := createTestUser(t, "other")
	groupID := createTestGroup(t, "test-slug")

	createTestPost(t, author1, "пост 1", &groupID)
	createTestPost(t, author2, "пост 2", nil)
	createTestPost(t, author1, "пост 3", &groupID)

	t.Run("GetAllPosts returns newest first", func(t *testing.T) {
		posts, err := s.GetAllPosts()
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "пост 3", posts[0].Text)
		assert.Equal(t, "пост 1", posts[2].Text)
	})

	t.Run("GetPostsByGroup", func(t *testing.T) {
		posts, err := s.GetPostsByGroup(groupID)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "пост 3", posts[0].Text)
	})

	t.Run("GetPostsByAuthor", func(t *testing.T) {
		posts, err := s.GetPostsByAuthor(author2)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "пост 2", posts[0].Text)
	})

	t.Run("GetPostsByAuthors", func(t *testing.T) {
		posts, err := s.GetPostsByAuthors([]uint{author1, author2})
		require.NoError(t, err)
		assert.Len(t, posts, 3)

		posts, err = s.GetPostsByAuthors(nil)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestPostPostgresStorage_UpdatePost(t *testing.T) {
	s := NewPostPostgresStorage()

	t.Run("Update by author", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "auth")
		groupID := createTestGroup(t, "test-slug")
		postID := createTestPost(t, userID, "исходный текст", nil)

		ctx := createUserContext(userID)

		updated, err := s.UpdatePost(ctx, postID, "отредактированный текст", &groupID, "")
		require.NoError(t, err)
		assert.Equal(t, postID, updated.ID)
		assert.Equal(t, userID, updated.UserID)
		assert.Equal(t, "отредактированный текст", updated.Text)

		var dbPost models.Post
		err = DB.First(&dbPost, postID).Error
		require.NoError(t, err)
		assert.Equal(t, "отредактированный текст", dbPost.Text)
		require.NotNil(t, dbPost.GroupID)
		assert.Equal(t, groupID, *dbPost.GroupID)
	})

	t.Run("Update by not author", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		authorID := createTestUser(t, "auth")
		otherID := createTestUser(t, "other")
		postID := createTestPost(t, authorID, "исходный текст", nil)

		ctx := createUserContext(otherID)

		_, err := s.UpdatePost(ctx, postID, "чужой текст", nil, "")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, storage.ErrNotAuthor))

		// Пост не изменился
		var dbPost models.Post
		err = DB.First(&dbPost, postID).Error
		require.NoError(t, err)
		assert.Equal(t, "исходный текст", dbPost.Text)
	})

	t.Run("Update not exist post", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "auth")
		ctx := createUserContext(userID)

		_, err := s.UpdatePost(ctx, 999, "текст", nil, "")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})

	t.Run("Update by unauthorized user", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "auth")
		postID := createTestPost(t, userID, "исходный текст", nil)

		_, err := s.UpdatePost(context.Background(), postID, "текст", nil, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unauthorized")
	})
}
