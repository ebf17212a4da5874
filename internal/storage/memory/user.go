package memory

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/VitaminP8/yatube/internal/auth"
	"github.com/VitaminP8/yatube/internal/storage"
	"github.com/VitaminP8/yatube/models"
)

type UserMemoryStorage struct {
	mu     sync.Mutex
	users  map[string]*models.User
	nextId uint
}

func NewUserMemoryStorage() *UserMemoryStorage {
	return &UserMemoryStorage{
		users:  make(map[string]*models.User),
		nextId: 1,
	}
}

func (s *UserMemoryStorage) RegisterUser(username, email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
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
	user.ID = s.nextId
	user.CreatedAt = time.Now()
	s.nextId++

	s.users[username] = user

	clone := *user
	return &clone, nil
}

func (s *UserMemoryStorage) LoginUser(username, password string) (string, error) {
	s.mu.Lock()
	user, exists := s.users[username]
	s.mu.Unlock()

	if !exists {
		return "", fmt.Errorf("user with username %s not found", username)
	}

	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return "", fmt.Errorf("invalid password or username: %w", err)
	}

	return auth.GenerateToken(user)
}

func (s *UserMemoryStorage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[username]
	if !exists {
		return nil, fmt.Errorf("user not found: %w", storage.ErrNotFound)
	}

	clone := *user
	return &clone, nil
}

func (s *UserMemoryStorage) GetUserById(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}

	return nil, fmt.Errorf("user not found: %w", storage.ErrNotFound)
}
