package group

import "github.com/VitaminP8/yatube/models"

type GroupStorage interface {
	CreateGroup(title, slug, description string) (*models.Group, error)
	GetGroupBySlug(slug string) (*models.Group, error)
}
