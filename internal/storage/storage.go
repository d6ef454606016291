package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNotExists возвращается, когда файла с таким ключом нет в хранилище
var ErrNotExists = errors.New("файл не найден в хранилище")

type Storage interface {
	SaveUpload(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
	OpenUpload(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteUpload(ctx context.Context, key string) error
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename приводит имя загруженного файла к безопасному виду:
// отбрасывает путь, пробелы заменяет на подчёркивания, удаляет всё,
// кроме латиницы, цифр, точки, дефиса и подчёркивания.
// Пустой результат означает, что имя непригодно для хранения.
func SanitizeFilename(name string) string {
	// клиент может прислать путь в любом стиле
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)

	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._-")

	if name == "" || name == "." || name == ".." {
		return ""
	}
	return name
}

// validKey проверяет, что ключ не выводит за пределы хранилища
func validKey(key string) bool {
	if key == "" || key == "." || key == ".." {
		return false
	}
	if strings.ContainsAny(key, "/\\") {
		return false
	}
	return filepath.Base(key) == key
}
