package test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"goblog/internal/config"
	handlers "goblog/internal/handler"
	"goblog/internal/middleware"
	"goblog/internal/models"
	"goblog/internal/render"
)

type testDeps struct {
	auth     *MockAuthService
	blog     *MockBlogService
	users    *MockUserRepository
	taxonomy *MockTaxonomyRepository
}

func createTestHandler(t *testing.T) (*handlers.Handlers, *testDeps) {
	renderer, err := render.New()
	require.NoError(t, err)

	deps := &testDeps{
		auth:     new(MockAuthService),
		blog:     new(MockBlogService),
		users:    new(MockUserRepository),
		taxonomy: new(MockTaxonomyRepository),
	}

	cfg := &config.Config{
		ServerPort:        8080,
		SessionSecretKey:  "test-secret-key",
		SessionCookieName: "session",
		SessionDuration:   time.Hour,
		MaxUploadSize:     10 * 1024 * 1024,
	}

	return &handlers.Handlers{
		AuthService:  deps.auth,
		BlogService:  deps.blog,
		UserRepo:     deps.users,
		TaxonomyRepo: deps.taxonomy,
		Renderer:     renderer,
		Cfg:          cfg,
		Validate:     validator.New(),
	}, deps
}

// withIdentity подкладывает в запрос аутентифицированную сессию
func withIdentity(r *http.Request, identity *models.Identity) *http.Request {
	return r.WithContext(middleware.WithIdentity(r.Context(), identity))
}

func assertRedirect(t *testing.T, rr *httptest.ResponseRecorder, location string) {
	t.Helper()
	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, location, rr.Header().Get("Location"))
}
