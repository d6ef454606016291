package handlers

import (
	"errors"
	"net/http"
	"time"

	"goblog/internal/middleware"
	"goblog/internal/models"
	"goblog/internal/service"
)

type RegisterForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type authPage struct {
	Error string
}

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, "index.html", struct {
		Identity *models.Identity
	}{middleware.IdentityFromContext(r.Context())})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		http.Error(w, "unhealthy", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.Renderer.Render(w, "register.html", authPage{})
		return
	}

	form := RegisterForm{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if err := h.Validate.Struct(form); err != nil {
		h.Renderer.Render(w, "register.html", authPage{Error: "Проверьте имя, email и пароль (минимум 6 символов)"})
		return
	}

	_, err := h.AuthService.Register(r.Context(), form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			h.Renderer.Render(w, "register.html", authPage{Error: "Email уже существует!"})
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.Renderer.Render(w, "login.html", authPage{})
		return
	}

	form := LoginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if err := h.Validate.Struct(form); err != nil {
		h.Renderer.Render(w, "login.html", authPage{Error: "Неверный email или пароль"})
		return
	}

	identity, err := h.AuthService.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// одна и та же формулировка для "нет пользователя" и "не тот пароль"
			h.Renderer.Render(w, "login.html", authPage{Error: "Неверный email или пароль"})
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	token, err := h.AuthService.IssueSessionToken(identity)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/homepage", http.StatusFound)
}

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	user, err := h.UserRepo.GetUserByEmail(r.Context(), identity.Email)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.Renderer.Render(w, "dashboard.html", struct {
		User *models.User
	}{user})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handlers) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.Cfg.SessionDuration),
	})
}

func (h *Handlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
