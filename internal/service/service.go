package service

import (
	"goblog/internal/config"
	"goblog/internal/repository"
	"goblog/internal/storage"
)

type Service struct {
	Auth AuthService
	Blog BlogService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth: NewAuthService(rep.User, cfg),
		Blog: NewBlogService(rep.Blog, storage, cfg),
	}
}
