package service

import (
	"context"
	"io"
	"strings"

	"github.com/stretchr/testify/mock"

	"goblog/internal/models"
	"goblog/internal/storage"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *models.Blog, tagIDs []int) error {
	args := m.Called(ctx, blog, tagIDs)
	return args.Error(0)
}

func (m *MockBlogRepository) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) Update(ctx context.Context, blog *models.Blog, tagIDs []int) error {
	args := m.Called(ctx, blog, tagIDs)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, blogID string) error {
	args := m.Called(ctx, blogID)
	return args.Error(0)
}

func (m *MockBlogRepository) ListAll(ctx context.Context) ([]models.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogRepository) ListByAuthor(ctx context.Context, author string) ([]models.Blog, error) {
	args := m.Called(ctx, author)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogRepository) TagNamesByBlog(ctx context.Context, blogID string) ([]string, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBlogRepository) TagIDsByBlog(ctx context.Context, blogID string) ([]int, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

// fakeStorage - хранилище в памяти для тестов сервиса
type fakeStorage struct {
	files map[string]string
	saved []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: map[string]string{}}
}

func (f *fakeStorage) SaveUpload(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	key := "key_" + fileName
	f.files[key] = string(data)
	f.saved = append(f.saved, key)
	return key, nil
}

func (f *fakeStorage) OpenUpload(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := f.files[key]
	if !ok {
		return nil, storage.ErrNotExists
	}
	return io.NopCloser(strings.NewReader(data)), nil
}

func (f *fakeStorage) DeleteUpload(ctx context.Context, key string) error {
	if _, ok := f.files[key]; !ok {
		return storage.ErrNotExists
	}
	delete(f.files, key)
	return nil
}
