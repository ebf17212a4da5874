package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/VitaminP8/yatube/internal/auth"
	"github.com/VitaminP8/yatube/internal/post"
	"github.com/VitaminP8/yatube/internal/storage"
	"github.com/VitaminP8/yatube/models"
)

type CommentMemoryStorage struct {
	mu       sync.Mutex
	comments map[uint]*models.Comment
	nextId   uint
	posts    post.PostStorage
}

// NewCommentMemoryStorage принимает хранилище постов, чтобы проверять
// существование поста и отдавать комментарии вместе с их постами.
func NewCommentMemoryStorage(posts post.PostStorage) *CommentMemoryStorage {
	return &CommentMemoryStorage{
		comments: make(map[uint]*models.Comment),
		nextId:   1,
		posts:    posts,
	}
}

func (s *CommentMemoryStorage) CreateComment(ctx context.Context, postID uint, text string) (*models.Comment, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	if _, err := s.posts.GetPostById(postID); err != nil {
		return nil, fmt.Errorf("post not found: %w", storage.ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment := &models.Comment{
		Text:   text,
		PostID: postID,
		UserID: userID,
	}
	comment.ID = s.nextId
	comment.CreatedAt = time.Now()
	s.nextId++

	s.comments[comment.ID] = comment

	clone := *comment
	return &clone, nil
}

func (s *CommentMemoryStorage) GetAllCommentsWithPosts() ([]models.Comment, error) {
	s.mu.Lock()
	comments := make([]models.Comment, 0, len(s.comments))
	for _, c := range s.comments {
		comments = append(comments, *c)
	}
	s.mu.Unlock()

	for i := range comments {
		p, err := s.posts.GetPostById(comments[i].PostID)
		if err != nil {
			return nil, fmt.Errorf("could not load post for comment %d: %w", comments[i].ID, err)
		}
		comments[i].Post = *p
	}

	return comments, nil
}
