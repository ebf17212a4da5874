package postgres

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/VitaminP8/yatube/internal/storage"
	"github.com/VitaminP8/yatube/models"
)

type GroupPostgresStorage struct{}

func NewGroupPostgresStorage() *GroupPostgresStorage {
	return &GroupPostgresStorage{}
}

func (s *GroupPostgresStorage) CreateGroup(title, slug, description string) (*models.Group, error) {
	var existing models.Group
	err := DB.Where("slug = ?", slug).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("group with slug %s already exists", slug)
	}

	group := &models.Group{
		Title:       title,
		Slug:        slug,
		Description: description,
	}

	err = DB.Create(group).Error
	if err != nil {
		return nil, fmt.Errorf("could not create group: %w", err)
	}

	return group, nil
}

func (s *GroupPostgresStorage) GetGroupBySlug(slug string) (*models.Group, error) {
	var group models.Group
	err := DB.Where("slug = ?", slug).First(&group).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("group not found: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get group by slug: %w", err)
	}

	return &group, nil
}
