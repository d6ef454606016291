package app

import (
	"log"

	"goblog/internal/config"
	"goblog/internal/database"
	"goblog/internal/repository"
	"goblog/internal/service"
	"goblog/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// storage backend for uploads
	var store storage.Storage
	switch cfg.StorageBackend {
	case "minio":
		store, err = storage.NewMinIOStorage(cfg)
		if err != nil {
			log.Fatalf("Не удалось инициализировать MinIO: %v", err)
		}
	default:
		store, err = storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			log.Fatalf("Не удалось инициализировать локальное хранилище: %v", err)
		}
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store)

	return db, repo, services
}
