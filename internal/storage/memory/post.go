package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/VitaminP8/yatube/internal/auth"
	"github.com/VitaminP8/yatube/internal/storage"
	"github.com/VitaminP8/yatube/models"
)

type PostMemoryStorage struct {
	mu     sync.Mutex
	posts  map[uint]*models.Post
	nextId uint
}

func NewPostMemoryStorage() *PostMemoryStorage {
	return &PostMemoryStorage{
		posts:  make(map[uint]*models.Post),
		nextId: 1,
	}
}

func (s *PostMemoryStorage) CreatePost(ctx context.Context, text string, groupID *uint, image string) (*models.Post, error) {
	// Контекст — это read-only структура (при каждом запросе он не обновляется, а создается заново)(поэтому над мьютексом)
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := &models.Post{
		Text:    text,
		Image:   image,
		UserID:  userID,
		GroupID: groupID,
	}
	post.ID = s.nextId
	post.CreatedAt = time.Now()
	s.nextId++

	s.posts[post.ID] = post
	return clonePost(post), nil
}

func (s *PostMemoryStorage) GetPostById(id uint) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[id]
	if !exists {
		return nil, fmt.Errorf("post not found: %w", storage.ErrNotFound)
	}

	return clonePost(post), nil
}

func (s *PostMemoryStorage) GetAllPosts() ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collect(func(*models.Post) bool { return true }), nil
}

func (s *PostMemoryStorage) GetPostsByGroup(groupID uint) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collect(func(p *models.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	}), nil
}

func (s *PostMemoryStorage) GetPostsByAuthor(userID uint) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collect(func(p *models.Post) bool { return p.UserID == userID }), nil
}

func (s *PostMemoryStorage) GetPostsByAuthors(userIDs []uint) ([]models.Post, error) {
	ids := make(map[uint]struct{}, len(userIDs))
	for _, id := range userIDs {
		ids[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collect(func(p *models.Post) bool {
		_, ok := ids[p.UserID]
		return ok
	}), nil
}

func (s *PostMemoryStorage) UpdatePost(ctx context.Context, id uint, text string, groupID *uint, image string) (*models.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[id]
	if !exists {
		return nil, fmt.Errorf("post not found: %w", storage.ErrNotFound)
	}

	if post.UserID != userID {
		return nil, storage.ErrNotAuthor
	}

	post.Text = text
	post.GroupID = groupID
	if image != "" {
		post.Image = image
	}

	return clonePost(post), nil
}

// collect возвращает подходящие посты новыми первыми (по убыванию id).
// Вызывается под мьютексом.
func (s *PostMemoryStorage) collect(match func(*models.Post) bool) []models.Post {
	var posts []models.Post
	for _, post := range s.posts {
		if match(post) {
			posts = append(posts, *post)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts
}

func clonePost(p *models.Post) *models.Post {
	clone := *p
	return &clone
}
