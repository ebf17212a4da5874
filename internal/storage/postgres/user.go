package postgres

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"github.com/VitaminP8/yatube/internal/auth"
	"github.com/VitaminP8/yatube/internal/storage"
	"github.com/VitaminP8/yatube/models"
)

type UserPostgresStorage struct{}

func NewUserPostgresStorage() *UserPostgresStorage {
	return &UserPostgresStorage{}
}

func (s *UserPostgresStorage) RegisterUser(username, email, password string) (*models.User, error) {
	// проверка - существует ли такой пользователь
	var existUser models.User
	err := DB.Where("username = ?", username).First(&existUser).Error
	if err == nil {
		return nil, fmt.Errorf("user with username %s already exists", username)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}

	err = DB.Create(user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *UserPostgresStorage) LoginUser(username, password string) (string, error) {
	// проверка - существует ли такой пользователь
	var user models.User
	err := DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		return "", fmt.Errorf("user with username %s not found", username)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return "", fmt.Errorf("invalid password or username: %w", err)
	}

	return auth.GenerateToken(&user)
}

func (s *UserPostgresStorage) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := DB.Where("username = ?", username).First(&user).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("user not found: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	return &user, nil
}

func (s *UserPostgresStorage) GetUserById(id uint) (*models.User, error) {
	var user models.User
	err := DB.First(&user, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("user not found: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	return &user, nil
}
