package storage

import "errors"

// Общие ошибки хранилищ. Обработчики страниц превращают
// ErrNotFound в 404, ErrNotAuthor - в редирект без изменений.
var (
	ErrNotFound  = errors.New("not found")
	ErrNotAuthor = errors.New("forbidden: not the author")
)
