package storage

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage хранит загрузки в каталоге на диске.
// Ключ объекта - uuid плюс очищенное имя файла, поэтому две загрузки
// с одинаковым именем не затирают друг друга.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог загрузок %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) SaveUpload(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	safeName := SanitizeFilename(fileName)
	if safeName == "" {
		return "", fmt.Errorf("недопустимое имя файла: %q", fileName)
	}

	key := uuid.New().String() + "_" + safeName

	dst, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", fmt.Errorf("ошибка при создании файла: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(filepath.Join(s.dir, key))
		return "", fmt.Errorf("ошибка при записи файла: %w", err)
	}

	return key, nil
}

func (s *LocalStorage) OpenUpload(ctx context.Context, key string) (io.ReadCloser, error) {
	if !validKey(key) {
		return nil, ErrNotExists
	}

	f, err := os.Open(filepath.Join(s.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExists
		}
		return nil, fmt.Errorf("ошибка при открытии файла: %w", err)
	}

	return f, nil
}

func (s *LocalStorage) DeleteUpload(ctx context.Context, key string) error {
	if !validKey(key) {
		return ErrNotExists
	}

	err := os.Remove(filepath.Join(s.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotExists
		}
		return fmt.Errorf("ошибка при удалении файла: %w", err)
	}

	return nil
}
