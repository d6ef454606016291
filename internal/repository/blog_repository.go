package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"goblog/internal/models"
)

type blogRepository struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) BlogRepository {
	return &blogRepository{db: db}
}

// Create записывает пост и его связи с тегами одной транзакцией:
// пост без половины тегов в базе не появляется
func (r *blogRepository) Create(ctx context.Context, blog *models.Blog, tagIDs []int) error {
	if blog.BlogID == "" {
		blog.BlogID = uuid.New().String()
	}
	blog.CreatedAt = time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO blogs (blog_id, title, content, author, email, slug, image_filename, category_id, created_at)
		VALUES (:blog_id, :title, :content, :author, :email, :slug, :image_filename, :category_id, :created_at)
	`

	_, err = tx.NamedExecContext(ctx, query, blog)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	if err := insertBlogTags(ctx, tx, blog.BlogID, tagIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	// slug не уникален: берём первую подходящую запись
	query := `
		SELECT blogs.*, categories.name AS category_name
		FROM blogs
		LEFT JOIN categories ON blogs.category_id = categories.category_id
		WHERE blogs.slug = $1
		LIMIT 1
	`

	var blog models.Blog
	err := r.db.GetContext(ctx, &blog, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &blog, nil
}

// Update переписывает пост и заново собирает весь набор тегов
// в одной транзакции. Проверка владельца лежит на сервисе.
func (r *blogRepository) Update(ctx context.Context, blog *models.Blog, tagIDs []int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE blogs SET
			title = :title,
			slug = :slug,
			content = :content,
			image_filename = :image_filename,
			category_id = :category_id
		WHERE blog_id = :blog_id
	`

	result, err := tx.NamedExecContext(ctx, query, blog)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM blog_tags WHERE blog_id = $1`, blog.BlogID)
	if err != nil {
		return fmt.Errorf("ошибка при очистке тегов поста: %w", err)
	}

	if err := insertBlogTags(ctx, tx, blog.BlogID, tagIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *blogRepository) Delete(ctx context.Context, blogID string) error {
	// blog_tags чистится каскадом по внешнему ключу
	result, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE blog_id = $1`, blogID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *blogRepository) ListAll(ctx context.Context) ([]models.Blog, error) {
	query := `
		SELECT blogs.*, categories.name AS category_name
		FROM blogs
		LEFT JOIN categories ON blogs.category_id = categories.category_id
		ORDER BY blogs.created_at DESC
	`

	var blogs []models.Blog
	err := r.db.SelectContext(ctx, &blogs, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка постов: %w", err)
	}

	return blogs, nil
}

func (r *blogRepository) ListByAuthor(ctx context.Context, author string) ([]models.Blog, error) {
	query := `
		SELECT blogs.*, categories.name AS category_name
		FROM blogs
		LEFT JOIN categories ON blogs.category_id = categories.category_id
		WHERE blogs.author = $1
		ORDER BY blogs.created_at DESC
	`

	var blogs []models.Blog
	err := r.db.SelectContext(ctx, &blogs, query, author)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов автора: %w", err)
	}

	return blogs, nil
}

func (r *blogRepository) TagNamesByBlog(ctx context.Context, blogID string) ([]string, error) {
	query := `
		SELECT tags.name FROM tags
		INNER JOIN blog_tags ON tags.tag_id = blog_tags.tag_id
		WHERE blog_tags.blog_id = $1
		ORDER BY tags.name
	`

	var names []string
	err := r.db.SelectContext(ctx, &names, query, blogID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении тегов поста: %w", err)
	}

	return names, nil
}

func (r *blogRepository) TagIDsByBlog(ctx context.Context, blogID string) ([]int, error) {
	query := `SELECT tag_id FROM blog_tags WHERE blog_id = $1`

	var ids []int
	err := r.db.SelectContext(ctx, &ids, query, blogID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении тегов поста: %w", err)
	}

	return ids, nil
}

func insertBlogTags(ctx context.Context, tx *sqlx.Tx, blogID string, tagIDs []int) error {
	for _, tagID := range tagIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO blog_tags (blog_id, tag_id) VALUES ($1, $2)`,
			blogID, tagID,
		)
		if err != nil {
			return fmt.Errorf("ошибка при привязке тега %d: %w", tagID, err)
		}
	}
	return nil
}
