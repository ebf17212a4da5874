package comment

import (
	"context"

	"github.com/VitaminP8/yatube/models"
)

type CommentStorage interface {
	CreateComment(ctx context.Context, postID uint, text string) (*models.Comment, error)
	// GetAllCommentsWithPosts возвращает ВСЕ комментарии системы вместе с их
	// постами - выборка сознательно не ограничена текущим постом
	// (поведение страницы поста, вынесено на ревью продукту).
	GetAllCommentsWithPosts() ([]models.Comment, error)
}
