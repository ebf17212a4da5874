package postgres

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/VitaminP8/yatube/internal/auth"
	"github.com/VitaminP8/yatube/internal/storage"
	"github.com/VitaminP8/yatube/models"
)

type PostPostgresStorage struct{}

func NewPostPostgresStorage() *PostPostgresStorage {
	return &PostPostgresStorage{}
}

func (s *PostPostgresStorage) CreatePost(ctx context.Context, text string, groupID *uint, image string) (*models.Post, error) {
	// Автор берется только из контекста запроса, никогда из формы.
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	post := &models.Post{
		Text:    text,
		Image:   image,
		UserID:  userID,
		GroupID: groupID,
	}

	err = DB.Create(post).Error
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	return post, nil
}

func (s *PostPostgresStorage) GetPostById(id uint) (*models.Post, error) {
	var post models.Post
	err := DB.First(&post, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("post not found: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}

	return &post, nil
}

func (s *PostPostgresStorage) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	err := DB.Order("id desc").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not get posts: %w", err)
	}

	return posts, nil
}

func (s *PostPostgresStorage) GetPostsByGroup(groupID uint) ([]models.Post, error) {
	var posts []models.Post
	err := DB.Where("group_id = ?", groupID).Order("id desc").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not get group posts: %w", err)
	}

	return posts, nil
}

func (s *PostPostgresStorage) GetPostsByAuthor(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := DB.Where("user_id = ?", userID).Order("id desc").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not get author posts: %w", err)
	}

	return posts, nil
}

func (s *PostPostgresStorage) GetPostsByAuthors(userIDs []uint) ([]models.Post, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var posts []models.Post
	err := DB.Where("user_id IN (?)", userIDs).Order("id desc").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not get posts by authors: %w", err)
	}

	return posts, nil
}

func (s *PostPostgresStorage) UpdatePost(ctx context.Context, id uint, text string, groupID *uint, image string) (*models.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	var post models.Post
	err = DB.First(&post, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("post not found: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}

	if post.UserID != userID {
		return nil, storage.ErrNotAuthor
	}

	post.Text = text
	post.GroupID = groupID
	if image != "" {
		post.Image = image
	}

	err = DB.Save(&post).Error
	if err != nil {
		return nil, fmt.Errorf("could not update post: %w", err)
	}

	return &post, nil
}
