package postgres

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/VitaminP8/yatube/internal/auth"
	"github.com/VitaminP8/yatube/models"
)

type FollowPostgresStorage struct{}

func NewFollowPostgresStorage() *FollowPostgresStorage {
	return &FollowPostgresStorage{}
}

func (s *FollowPostgresStorage) FollowAuthor(ctx context.Context, authorID uint) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("unauthorized: %w", err)
	}

	// Самоподписка и повторная подписка - no-op.
	if userID == authorID {
		return nil
	}

	var existing models.Follow
	err = DB.Where("user_id = ? AND author_id = ?", userID, authorID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return fmt.Errorf("could not check follow: %w", err)
	}

	follow := &models.Follow{UserID: userID, AuthorID: authorID}
	err = DB.Create(follow).Error
	if err != nil {
		return fmt.Errorf("could not create follow: %w", err)
	}

	return nil
}

func (s *FollowPostgresStorage) UnfollowAuthor(ctx context.Context, authorID uint) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("unauthorized: %w", err)
	}

	if userID == authorID {
		return nil
	}

	// Удаление несуществующей подписки - no-op.
	err = DB.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return fmt.Errorf("could not delete follow: %w", err)
	}

	return nil
}

func (s *FollowPostgresStorage) IsFollowing(userID, authorID uint) (bool, error) {
	var follow models.Follow
	err := DB.Where("user_id = ? AND author_id = ?", userID, authorID).First(&follow).Error
	if gorm.IsRecordNotFoundError(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not check follow: %w", err)
	}

	return true, nil
}

func (s *FollowPostgresStorage) GetFollowedAuthorIds(userID uint) ([]uint, error) {
	var ids []uint
	err := DB.Model(&models.Follow{}).
		Where("user_id = ?", userID).
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("could not get followed authors: %w", err)
	}

	return ids, nil
}

func (s *FollowPostgresStorage) GetFollows(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := DB.Where("user_id = ?", userID).Find(&follows).Error
	if err != nil {
		return nil, fmt.Errorf("could not get follows: %w", err)
	}

	return follows, nil
}
