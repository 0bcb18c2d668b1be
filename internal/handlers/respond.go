package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"codecollabhub/internal/services"
)

// writeJSON сериализует ответ и выставляет статус.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Handlers] Ошибка кодирования JSON-ответа: %v", err)
	}
}

// pathID извлекает числовой параметр маршрута.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// respondServiceError транслирует типовые ошибки сервисов в HTTP-статусы.
// Возвращает true, если ошибка была обработана.
func respondServiceError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, services.ErrAccessDenied):
		http.Error(w, "Доступ запрещен", http.StatusForbidden)
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrFileNotFound),
		errors.Is(err, services.ErrVersionNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRequestNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrFilenameTaken),
		errors.Is(err, services.ErrAlreadyMember),
		errors.Is(err, services.ErrRequestExists),
		errors.Is(err, services.ErrRequestHandled),
		errors.Is(err, services.ErrProjectFull),
		errors.Is(err, services.ErrCannotRemoveOwner):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("[Handlers] Внутренняя ошибка: %v", err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
	return true
}
