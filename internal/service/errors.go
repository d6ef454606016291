package service

import (
	"errors"

	"goblog/internal/repository"
)

// Таксономия ошибок приложения. Хранилищные ошибки пробрасываются как есть,
// чтобы обработчики и тесты сравнивали через errors.Is.
var (
	ErrDuplicateEmail     = repository.ErrDuplicateEmail
	ErrInvalidCredentials = repository.ErrInvalidCredentials
	ErrNotFound           = repository.ErrNotFound

	// ErrForbidden - правка или удаление чужого поста. Наружу HTTP-слой
	// отвечает тем же редиректом, что и при успехе, но внутри решение явное.
	ErrForbidden = errors.New("операция доступна только владельцу поста")
)
