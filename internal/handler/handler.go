package handlers

import (
	"github.com/go-playground/validator/v10"

	"goblog/internal/config"
	"goblog/internal/database"
	"goblog/internal/render"
	"goblog/internal/repository"
	"goblog/internal/service"
)

type Handlers struct {
	AuthService  service.AuthService
	BlogService  service.BlogService
	UserRepo     repository.UserRepository
	TaxonomyRepo repository.TaxonomyRepository
	DB           *database.DB
	Renderer     *render.Renderer
	Cfg          *config.Config
	Validate     *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, db *database.DB, renderer *render.Renderer, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:  services.Auth,
		BlogService:  services.Blog,
		UserRepo:     repo.User,
		TaxonomyRepo: repo.Taxonomy,
		DB:           db,
		Renderer:     renderer,
		Cfg:          cfg,
		Validate:     validator.New(),
	}
}
