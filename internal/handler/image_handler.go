package handlers

import (
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"goblog/internal/service"
)

// GetImage отдаёт загруженный файл по ключу. Контроля доступа нет:
// кто знает имя файла, тот его получит.
func (h *Handlers) GetImage(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]

	rc, err := h.BlogService.OpenImage(r.Context(), filename)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)

	if _, err := io.Copy(w, rc); err != nil {
		// заголовки уже отправлены, статус не поменять
		log.Printf("ошибка при отдаче файла %s: %v", filename, err)
	}
}
