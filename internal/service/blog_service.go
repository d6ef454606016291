package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"

	"goblog/internal/config"
	"goblog/internal/models"
	"goblog/internal/repository"
	"goblog/internal/slug"
	"goblog/internal/storage"
)

// Upload - загруженный файл из multipart-формы
type Upload struct {
	Filename string
	File     io.Reader
	Size     int64
}

type BlogForm struct {
	Title      string
	Content    string
	CategoryID *int
	TagIDs     []int
	Image      *Upload
}

type BlogService interface {
	CreateBlog(ctx context.Context, form BlogForm, identity *models.Identity) (string, error)
	GetBlog(ctx context.Context, slugValue string) (*models.Blog, error)
	EditBlog(ctx context.Context, slugValue string, form BlogForm, requesterEmail string) (string, error)
	DeleteBlog(ctx context.Context, slugValue string, requesterEmail string) error
	ListAll(ctx context.Context) ([]models.Blog, error)
	ListByAuthor(ctx context.Context, author string) ([]models.Blog, error)
	SelectedTagIDs(ctx context.Context, blogID string) ([]int, error)
	OpenImage(ctx context.Context, filename string) (io.ReadCloser, error)
}

type blogService struct {
	blogRepo repository.BlogRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewBlogService(blogRepo repository.BlogRepository, storage storage.Storage, cfg *config.Config) BlogService {
	return &blogService{
		blogRepo: blogRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

// CreateBlog сохраняет картинку, генерирует slug из заголовка и пишет пост
// вместе с тегами. Возвращает slug для редиректа на созданный пост.
func (s *blogService) CreateBlog(ctx context.Context, form BlogForm, identity *models.Identity) (string, error) {
	imageKey, err := s.storeImage(ctx, form.Image)
	if err != nil {
		return "", err
	}

	blog := &models.Blog{
		Title:   form.Title,
		Content: form.Content,
		Author:  identity.Name,
		Email:   identity.Email,
		Slug:    slug.Make(form.Title),
	}
	if imageKey != "" {
		blog.ImageFilename = sql.NullString{String: imageKey, Valid: true}
	}
	if form.CategoryID != nil {
		blog.CategoryID = sql.NullInt64{Int64: int64(*form.CategoryID), Valid: true}
	}

	err = s.blogRepo.Create(ctx, blog, form.TagIDs)
	if err != nil {
		// пост не записался - подчищаем уже сохранённый файл
		if imageKey != "" {
			if delErr := s.storage.DeleteUpload(ctx, imageKey); delErr != nil {
				log.Printf("Предупреждение: не удалось удалить файл %s: %v", imageKey, delErr)
			}
		}
		return "", err
	}

	return blog.Slug, nil
}

func (s *blogService) GetBlog(ctx context.Context, slugValue string) (*models.Blog, error) {
	blog, err := s.blogRepo.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}

	tags, err := s.blogRepo.TagNamesByBlog(ctx, blog.BlogID)
	if err != nil {
		return nil, err
	}
	blog.Tags = tags

	return blog, nil
}

// EditBlog правит пост только от имени владельца; чужой запрос получает
// ErrForbidden и ничего не меняет. Slug пересчитывается из нового заголовка,
// картинка заменяется только если в форме действительно был файл,
// набор тегов переписывается целиком.
func (s *blogService) EditBlog(ctx context.Context, slugValue string, form BlogForm, requesterEmail string) (string, error) {
	blog, err := s.blogRepo.GetBySlug(ctx, slugValue)
	if err != nil {
		return "", err
	}

	if blog.Email != requesterEmail {
		return "", ErrForbidden
	}

	oldImageKey := ""
	newImageKey, err := s.storeImage(ctx, form.Image)
	if err != nil {
		return "", err
	}
	if newImageKey != "" {
		if blog.ImageFilename.Valid {
			oldImageKey = blog.ImageFilename.String
		}
		blog.ImageFilename = sql.NullString{String: newImageKey, Valid: true}
	}

	blog.Title = form.Title
	blog.Content = form.Content
	blog.Slug = slug.Make(form.Title)
	blog.CategoryID = sql.NullInt64{}
	if form.CategoryID != nil {
		blog.CategoryID = sql.NullInt64{Int64: int64(*form.CategoryID), Valid: true}
	}

	err = s.blogRepo.Update(ctx, blog, form.TagIDs)
	if err != nil {
		if newImageKey != "" {
			if delErr := s.storage.DeleteUpload(ctx, newImageKey); delErr != nil {
				log.Printf("Предупреждение: не удалось удалить файл %s: %v", newImageKey, delErr)
			}
		}
		return "", err
	}

	// старая картинка больше не нужна
	if oldImageKey != "" {
		if delErr := s.storage.DeleteUpload(ctx, oldImageKey); delErr != nil && !errors.Is(delErr, storage.ErrNotExists) {
			log.Printf("Предупреждение: не удалось удалить файл %s: %v", oldImageKey, delErr)
		}
	}

	return blog.Slug, nil
}

func (s *blogService) DeleteBlog(ctx context.Context, slugValue string, requesterEmail string) error {
	blog, err := s.blogRepo.GetBySlug(ctx, slugValue)
	if err != nil {
		return err
	}

	if blog.Email != requesterEmail {
		return ErrForbidden
	}

	err = s.blogRepo.Delete(ctx, blog.BlogID)
	if err != nil {
		return err
	}

	if blog.ImageFilename.Valid {
		if delErr := s.storage.DeleteUpload(ctx, blog.ImageFilename.String); delErr != nil && !errors.Is(delErr, storage.ErrNotExists) {
			log.Printf("Предупреждение: не удалось удалить файл %s: %v", blog.ImageFilename.String, delErr)
		}
	}

	return nil
}

func (s *blogService) ListAll(ctx context.Context) ([]models.Blog, error) {
	return s.blogRepo.ListAll(ctx)
}

func (s *blogService) ListByAuthor(ctx context.Context, author string) ([]models.Blog, error) {
	return s.blogRepo.ListByAuthor(ctx, author)
}

func (s *blogService) SelectedTagIDs(ctx context.Context, blogID string) ([]int, error) {
	return s.blogRepo.TagIDsByBlog(ctx, blogID)
}

func (s *blogService) OpenImage(ctx context.Context, filename string) (io.ReadCloser, error) {
	rc, err := s.storage.OpenUpload(ctx, filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotExists) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rc, nil
}

// storeImage сохраняет картинку из формы; отсутствие файла или пустое
// имя - это "без картинки", а не ошибка
func (s *blogService) storeImage(ctx context.Context, image *Upload) (string, error) {
	if image == nil || image.Filename == "" {
		return "", nil
	}
	if storage.SanitizeFilename(image.Filename) == "" {
		return "", nil
	}

	key, err := s.storage.SaveUpload(ctx, image.Filename, image.File, image.Size)
	if err != nil {
		return "", fmt.Errorf("ошибка сохранения изображения: %w", err)
	}

	return key, nil
}
