package repository

import (
	"context"
	"errors"
	"goblog/internal/models"

	"github.com/jmoiron/sqlx"
)

// Ошибки уровня хранилища. Обработчики сопоставляют их с редиректами
// и inline-ошибками через errors.Is.
var (
	ErrNotFound           = errors.New("запись не найдена")
	ErrDuplicateEmail     = errors.New("пользователь с таким email уже существует")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog, tagIDs []int) error
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)
	Update(ctx context.Context, blog *models.Blog, tagIDs []int) error
	Delete(ctx context.Context, blogID string) error
	ListAll(ctx context.Context) ([]models.Blog, error)
	ListByAuthor(ctx context.Context, author string) ([]models.Blog, error)
	TagNamesByBlog(ctx context.Context, blogID string) ([]string, error)
	TagIDsByBlog(ctx context.Context, blogID string) ([]int, error)
}

type TaxonomyRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
}

type Repository struct {
	User     UserRepository
	Blog     BlogRepository
	Taxonomy TaxonomyRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Blog:     NewBlogRepository(db),
		Taxonomy: NewTaxonomyRepository(db),
	}
}
