package models

import "github.com/jinzhu/gorm"

// Количество символов текста поста, попадающих в строковое представление.
const postPreviewLen = 15

type User struct {
	gorm.Model
	Username string `gorm:"unique"`
	Email    string `gorm:"unique"`
	Password string
	Posts    []Post    `gorm:"foreignkey:UserID"`
	Comments []Comment `gorm:"foreignkey:UserID"`
	Follows  []Follow  `gorm:"foreignkey:UserID"`
}

type Group struct {
	gorm.Model
	Title       string
	Slug        string `gorm:"unique"`
	Description string
	Posts       []Post `gorm:"foreignkey:GroupID"`
}

type Post struct {
	gorm.Model
	Text     string `gorm:"type:text"`
	Image    string
	UserID   uint
	GroupID  *uint
	Comments []Comment `gorm:"foreignkey:PostID"`
}

type Comment struct {
	gorm.Model
	Text   string `gorm:"type:text"`
	PostID uint
	UserID uint
	Post   Post `gorm:"foreignkey:PostID"`
}

// Follow - направленная связь "пользователь подписан на автора".
// Пара (UserID, AuthorID) уникальна, самоподписка запрещена на уровне хранилища.
type Follow struct {
	gorm.Model
	UserID   uint `gorm:"unique_index:idx_follows_user_author"`
	AuthorID uint `gorm:"unique_index:idx_follows_user_author"`
}

// String возвращает первые 15 символов текста поста (как в шаблонах списков).
func (p Post) String() string {
	runes := []rune(p.Text)
	if len(runes) > postPreviewLen {
		runes = runes[:postPreviewLen]
	}
	return string(runes)
}

func (g Group) String() string {
	return g.Title
}
