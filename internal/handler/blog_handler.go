package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"goblog/internal/middleware"
	"goblog/internal/models"
	"goblog/internal/service"
)

type blogPage struct {
	Blog     *models.Blog
	Identity *models.Identity
	IsOwner  bool
}

type blogFormPage struct {
	Blog       *models.Blog
	Categories []models.Category
	Tags       []models.Tag
	Selected   map[int]bool
	Error      string
}

type blogListPage struct {
	Blogs    []models.Blog
	Identity *models.Identity
}

// Homepage - лента всех постов, новые сверху. Доступна и анонимным
// посетителям.
func (h *Handlers) Homepage(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.BlogService.ListAll(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.Renderer.Render(w, "homepage.html", blogListPage{
		Blogs:    blogs,
		Identity: middleware.IdentityFromContext(r.Context()),
	})
}

func (h *Handlers) ViewBlog(w http.ResponseWriter, r *http.Request) {
	slugValue := mux.Vars(r)["slug"]

	blog, err := h.BlogService.GetBlog(r.Context(), slugValue)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Redirect(w, r, "/homepage", http.StatusFound)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	identity := middleware.IdentityFromContext(r.Context())

	h.Renderer.Render(w, "blog_details.html", blogPage{
		Blog:     blog,
		Identity: identity,
		IsOwner:  identity != nil && identity.Email == blog.Email,
	})
}

func (h *Handlers) CreateBlog(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.renderBlogForm(w, r, "create_blog.html", blogFormPage{})
		return
	}

	form, err := h.parseBlogForm(r)
	if err != nil {
		h.renderBlogForm(w, r, "create_blog.html", blogFormPage{Error: "Заполните заголовок и текст поста"})
		return
	}

	identity := middleware.IdentityFromContext(r.Context())

	newSlug, err := h.BlogService.CreateBlog(r.Context(), form, identity)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/blog/"+newSlug, http.StatusFound)
}

func (h *Handlers) EditBlog(w http.ResponseWriter, r *http.Request) {
	slugValue := mux.Vars(r)["slug"]

	if r.Method == http.MethodGet {
		blog, err := h.BlogService.GetBlog(r.Context(), slugValue)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				http.Error(w, "Blog not found", http.StatusNotFound)
				return
			}
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		selectedIDs, err := h.BlogService.SelectedTagIDs(r.Context(), blog.BlogID)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		selected := make(map[int]bool, len(selectedIDs))
		for _, id := range selectedIDs {
			selected[id] = true
		}

		h.renderBlogForm(w, r, "edit_blog.html", blogFormPage{Blog: blog, Selected: selected})
		return
	}

	form, err := h.parseBlogForm(r)
	if err != nil {
		http.Redirect(w, r, "/edit_blog/"+slugValue, http.StatusFound)
		return
	}

	identity := middleware.IdentityFromContext(r.Context())

	newSlug, err := h.BlogService.EditBlog(r.Context(), slugValue, form, identity.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			// чужой пост: молча уходим на страницу поста, ничего не меняя
			http.Redirect(w, r, "/blog/"+slugValue, http.StatusFound)
		case errors.Is(err, service.ErrNotFound):
			http.Redirect(w, r, "/homepage", http.StatusFound)
		default:
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/blog/"+newSlug, http.StatusFound)
}

func (h *Handlers) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	slugValue := mux.Vars(r)["slug"]
	identity := middleware.IdentityFromContext(r.Context())

	err := h.BlogService.DeleteBlog(r.Context(), slugValue, identity.Email)
	if err != nil && !errors.Is(err, service.ErrForbidden) && !errors.Is(err, service.ErrNotFound) {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// нет поста или нет прав - тот же редирект, без ошибки наружу
	http.Redirect(w, r, "/homepage", http.StatusFound)
}

func (h *Handlers) MyBlogs(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	blogs, err := h.BlogService.ListByAuthor(r.Context(), identity.Name)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.Renderer.Render(w, "user_blog.html", blogListPage{
		Blogs:    blogs,
		Identity: identity,
	})
}

func (h *Handlers) renderBlogForm(w http.ResponseWriter, r *http.Request, template string, page blogFormPage) {
	categories, err := h.TaxonomyRepo.ListCategories(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	tags, err := h.TaxonomyRepo.ListTags(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page.Categories = categories
	page.Tags = tags
	if page.Selected == nil {
		page.Selected = map[int]bool{}
	}
	h.Renderer.Render(w, template, page)
}

// parseBlogForm собирает форму поста из multipart-запроса.
// Отсутствие файла - не ошибка: пост без картинки допустим.
func (h *Handlers) parseBlogForm(r *http.Request) (service.BlogForm, error) {
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		return service.BlogForm{}, err
	}

	form := service.BlogForm{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	if form.Title == "" || form.Content == "" {
		return service.BlogForm{}, errors.New("заголовок и текст обязательны")
	}

	if categoryValue := r.FormValue("category"); categoryValue != "" {
		categoryID, err := strconv.Atoi(categoryValue)
		if err == nil {
			form.CategoryID = &categoryID
		}
	}

	for _, tagValue := range r.Form["tags"] {
		tagID, err := strconv.Atoi(tagValue)
		if err == nil {
			form.TagIDs = append(form.TagIDs, tagID)
		}
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		form.Image = &service.Upload{
			Filename: header.Filename,
			File:     file,
			Size:     header.Size,
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		return service.BlogForm{}, err
	}

	return form, nil
}
