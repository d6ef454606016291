package slug

import (
	gslug "github.com/gosimple/slug"
)

// Make возвращает URL-безопасный идентификатор поста по его заголовку.
// Детерминирован: один и тот же заголовок всегда даёт один и тот же slug.
// Уникальность не гарантируется - совпадающие заголовки дают совпадающие slug.
func Make(title string) string {
	return gslug.Make(title)
}

// IsValid проверяет, что строка уже является корректным slug
func IsValid(s string) bool {
	return gslug.IsSlug(s)
}
