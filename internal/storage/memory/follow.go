package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/VitaminP8/yatube/internal/auth"
	"github.com/VitaminP8/yatube/models"
)

type followKey struct {
	userID   uint
	authorID uint
}

type FollowMemoryStorage struct {
	mu      sync.Mutex
	follows map[followKey]*models.Follow
	nextId  uint
}

func NewFollowMemoryStorage() *FollowMemoryStorage {
	return &FollowMemoryStorage{
		follows: make(map[followKey]*models.Follow),
		nextId:  1,
	}
}

func (s *FollowMemoryStorage) FollowAuthor(ctx context.Context, authorID uint) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("unauthorized: %w", err)
	}

	// Самоподписка и повторная подписка - no-op.
	if userID == authorID {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := followKey{userID: userID, authorID: authorID}
	if _, exists := s.follows[key]; exists {
		return nil
	}

	f := &models.Follow{UserID: userID, AuthorID: authorID}
	f.ID = s.nextId
	f.CreatedAt = time.Now()
	s.nextId++

	s.follows[key] = f
	return nil
}

func (s *FollowMemoryStorage) UnfollowAuthor(ctx context.Context, authorID uint) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("unauthorized: %w", err)
	}

	if userID == authorID {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.follows, followKey{userID: userID, authorID: authorID})
	return nil
}

func (s *FollowMemoryStorage) IsFollowing(userID, authorID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.follows[followKey{userID: userID, authorID: authorID}]
	return exists, nil
}

func (s *FollowMemoryStorage) GetFollowedAuthorIds(userID uint) ([]uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []uint
	for key := range s.follows {
		if key.userID == userID {
			ids = append(ids, key.authorID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *FollowMemoryStorage) GetFollows(userID uint) ([]models.Follow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var follows []models.Follow
	for key, f := range s.follows {
		if key.userID == userID {
			follows = append(follows, *f)
		}
	}
	sort.Slice(follows, func(i, j int) bool { return follows[i].ID < follows[j].ID })
	return follows, nil
}
