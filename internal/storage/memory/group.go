package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/VitaminP8/yatube/internal/storage"
	"github.com/VitaminP8/yatube/models"
)

type GroupMemoryStorage struct {
	mu     sync.Mutex
	groups map[string]*models.Group
	nextId uint
}

func NewGroupMemoryStorage() *GroupMemoryStorage {
	return &GroupMemoryStorage{
		groups: make(map[string]*models.Group),
		nextId: 1,
	}
}

func (s *GroupMemoryStorage) CreateGroup(title, slug, description string) (*models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.groups[slug]; exists {
		return nil, fmt.Errorf("group with slug %s already exists", slug)
	}

	group := &models.Group{
		Title:       title,
		Slug:        slug,
		Description: description,
	}
	group.ID = s.nextId
	group.CreatedAt = time.Now()
	s.nextId++

	s.groups[slug] = group

	clone := *group
	return &clone, nil
}

func (s *GroupMemoryStorage) GetGroupBySlug(slug string) (*models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, exists := s.groups[slug]
	if !exists {
		return nil, fmt.Errorf("group not found: %w", storage.ErrNotFound)
	}

	clone := *group
	return &clone, nil
}
