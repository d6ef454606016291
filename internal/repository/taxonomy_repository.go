package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"goblog/internal/models"
)

// Категории и теги - справочные данные, через приложение не создаются
type taxonomyRepository struct {
	db *sqlx.DB
}

func NewTaxonomyRepository(db *sqlx.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category

	err := r.db.SelectContext(ctx, &categories, `SELECT * FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении категорий: %w", err)
	}

	return categories, nil
}

func (r *taxonomyRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag

	err := r.db.SelectContext(ctx, &tags, `SELECT * FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении тегов: %w", err)
	}

	return tags, nil
}
