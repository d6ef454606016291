package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"goblog/internal/config"
	"goblog/internal/models"
	"goblog/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Identity, error)
	IssueSessionToken(identity *models.Identity) (string, error)
	ParseSessionToken(tokenString string) (*models.Identity, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	user := &models.User{
		Name:  name,
		Email: email,
	}

	// уникальность email обеспечивает constraint, репозиторий
	// возвращает ErrDuplicateEmail
	err := s.userRepo.CreateUser(ctx, user, password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return &models.Identity{
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

// IssueSessionToken подписывает сессионную cookie: HS256-токен
// с email и отображаемым именем пользователя
func (s *authService) IssueSessionToken(identity *models.Identity) (string, error) {
	claims := jwt.MapClaims{
		"email": identity.Email,
		"name":  identity.Name,
		"exp":   time.Now().Add(s.cfg.SessionDuration).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.SessionSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) ParseSessionToken(tokenString string) (*models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SessionSecretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("недействительный токен")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("неверный формат claims")
	}

	email, ok1 := claims["email"].(string)
	name, ok2 := claims["name"].(string)
	if !ok1 || !ok2 || email == "" {
		return nil, fmt.Errorf("неверные данные в токене")
	}

	return &models.Identity{Email: email, Name: name}, nil
}
