package middleware

import (
	"context"
	"log"
	"net/http"

	"goblog/internal/models"
	"goblog/internal/service"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const identityKey contextKey = "identity"

// IdentityFromContext возвращает личность из сессии или nil,
// если запрос анонимный
func IdentityFromContext(ctx context.Context) *models.Identity {
	identity, ok := ctx.Value(identityKey).(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}

func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// SessionMiddleware разбирает подписанную cookie и кладёт личность
// в контекст. Запрос без валидной cookie проходит дальше анонимным -
// решение "пускать или нет" принимает RequireAuth на защищённых маршрутах.
func SessionMiddleware(cookieName string, authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := authService.ParseSessionToken(cookie.Value)
			if err != nil {
				// битая или просроченная cookie - считаем запрос анонимным
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireAuth редиректит анонимные запросы на страницу входа,
// не выполняя защищённую операцию
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFromContext(r.Context()) == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
