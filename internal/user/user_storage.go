package user

import "github.com/VitaminP8/yatube/models"

type UserStorage interface {
	RegisterUser(username, email, password string) (*models.User, error)
	// LoginUser проверяет пароль и возвращает подписанный JWT.
	LoginUser(username, password string) (string, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserById(id uint) (*models.User, error)
}
