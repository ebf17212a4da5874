package follow

import (
	"context"

	"github.com/VitaminP8/yatube/models"
)

// FollowStorage - подписки на авторов. FollowAuthor и UnfollowAuthor
// идемпотентны: повторная подписка, отписка от неотслеживаемого автора
// и самоподписка - no-op без ошибки.
type FollowStorage interface {
	FollowAuthor(ctx context.Context, authorID uint) error
	UnfollowAuthor(ctx context.Context, authorID uint) error
	IsFollowing(userID, authorID uint) (bool, error)
	GetFollowedAuthorIds(userID uint) ([]uint, error)
	GetFollows(userID uint) ([]models.Follow, error)
}
