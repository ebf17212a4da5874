package post

import (
	"context"

	"github.com/VitaminP8/yatube/models"
)

// PostStorage - хранилище постов. Все методы List* возвращают посты
// в порядке убывания id (новые первыми) - это явный инвариант, а не
// побочный эффект порядка выборки.
type PostStorage interface {
	CreatePost(ctx context.Context, text string, groupID *uint, image string) (*models.Post, error)
	GetPostById(id uint) (*models.Post, error)
	GetAllPosts() ([]models.Post, error)
	GetPostsByGroup(groupID uint) ([]models.Post, error)
	GetPostsByAuthor(userID uint) ([]models.Post, error)
	GetPostsByAuthors(userIDs []uint) ([]models.Post, error)
	// UpdatePost меняет текст, группу и картинку поста. Автор и id не меняются
	// никогда; если вызывающий не автор - storage.ErrNotAuthor.
	UpdatePost(ctx context.Context, id uint, text string, groupID *uint, image string) (*models.Post, error)
}
