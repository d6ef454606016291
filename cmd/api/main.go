package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"goblog/cmd/app"
	"goblog/internal/config"
	handlers "goblog/internal/handler"
	"goblog/internal/middleware"
	"goblog/internal/render"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.SessionSecretKey == "" {
		log.Fatal("SESSION_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("Не удалось загрузить шаблоны: %v", err)
	}

	handler := handlers.NewHandlers(repo, services, db, renderer, cfg)

	router := mux.NewRouter()

	// public routes
	router.HandleFunc("/", handler.Index).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	router.HandleFunc("/register", handler.Register).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/login", handler.Login).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/homepage", handler.Homepage).Methods(http.MethodGet)
	router.HandleFunc("/blog/{slug}", handler.ViewBlog).Methods(http.MethodGet)
	router.HandleFunc("/get_image/{filename}", handler.GetImage).Methods(http.MethodGet)

	// protected routes: без сессии - редирект на /login
	router.Handle("/dashboard", middleware.RequireAuth(http.HandlerFunc(handler.Dashboard))).Methods(http.MethodGet)
	router.Handle("/create_blog", middleware.RequireAuth(http.HandlerFunc(handler.CreateBlog))).Methods(http.MethodGet, http.MethodPost)
	router.Handle("/edit_blog/{slug}", middleware.RequireAuth(http.HandlerFunc(handler.EditBlog))).Methods(http.MethodGet, http.MethodPost)
	router.Handle("/delete_blog/{slug}", middleware.RequireAuth(http.HandlerFunc(handler.DeleteBlog))).Methods(http.MethodPost)
	router.Handle("/my_blogs", middleware.RequireAuth(http.HandlerFunc(handler.MyBlogs))).Methods(http.MethodGet)
	router.Handle("/logout", middleware.RequireAuth(http.HandlerFunc(handler.Logout))).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.SessionMiddleware(cfg.SessionCookieName, services.Auth),
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
