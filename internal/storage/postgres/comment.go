package postgres

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/VitaminP8/yatube/internal/auth"
	"github.com/VitaminP8/yatube/internal/storage"
	"github.com/VitaminP8/yatube/models"
)

type CommentPostgresStorage struct{}

func NewCommentPostgresStorage() *CommentPostgresStorage {
	return &CommentPostgresStorage{}
}

func (s *CommentPostgresStorage) CreateComment(ctx context.Context, postID uint, text string) (*models.Comment, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	var post models.Post
	err = DB.First(&post, postID).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("post not found: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post: %w", err)
	}

	comment := &models.Comment{
		Text:   text,
		PostID: postID,
		UserID: userID,
	}

	err = DB.Create(comment).Error
	if err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	return comment, nil
}

func (s *CommentPostgresStorage) GetAllCommentsWithPosts() ([]models.Comment, error) {
	// Выборка всех комментариев системы вместе с постами, без фильтра
	// по текущему посту.
	var comments []models.Comment
	err := DB.Preload("Post").Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}

	return comments, nil
}
