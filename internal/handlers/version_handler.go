package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"codecollabhub/internal/middleware"
	"codecollabhub/internal/services"
)

// VersionHandler обрабатывает HTTP-запросы к истории версий файлов.
// Это REST-дополнение к websocket-редактору: просмотр истории и запасной
// способ сохранения без постоянного соединения.
type VersionHandler struct {
	versions services.VersionService
	files    services.FileService
}

// NewVersionHandler создает новый экземпляр VersionHandler.
func NewVersionHandler(versions services.VersionService, files services.FileService) *VersionHandler {
	return &VersionHandler{versions: versions, files: files}
}

// fileFromRequest разбирает параметры маршрута и проверяет доступ к файлу.
// Возвращает (fileID, false) при ошибке, уже записанной в ответ.
func (h *VersionHandler) fileFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return 0, false
	}
	fileID, err := pathID(r, "fileID")
	if err != nil {
		http.Error(w, "Неверный идентификатор файла", http.StatusBadRequest)
		return 0, false
	}

	// Проверка доступа и принадлежности файла проекту - в сервисе файлов.
	if _, err = h.files.GetFile(r.Context(), userID, projectID, fileID); err != nil {
		respondServiceError(w, err)
		return 0, false
	}
	return fileID, true
}

// History обрабатывает GET запрос на получение истории версий файла.
func (h *VersionHandler) History(w http.ResponseWriter, r *http.Request) {
	fileID, ok := h.fileFromRequest(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	versions, err := h.versions.History(r.Context(), fileID, limit, offset)
	if respondServiceError(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, versions)
}

// Latest обрабатывает GET запрос на получение последней версии файла.
func (h *VersionHandler) Latest(w http.ResponseWriter, r *http.Request) {
	fileID, ok := h.fileFromRequest(w, r)
	if !ok {
		return
	}

	version, err := h.versions.Latest(r.Context(), fileID)
	if respondServiceError(w, err) {
		return
	}
	if version == nil {
		http.Error(w, "У файла еще нет версий", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, version)
}

// GetByNumber обрабатывает GET запрос на получение конкретной версии.
func (h *VersionHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	fileID, ok := h.fileFromRequest(w, r)
	if !ok {
		return
	}
	versionNumber, err := strconv.Atoi(r.URL.Query().Get("n"))
	if err != nil || versionNumber < 1 {
		http.Error(w, "Неверный номер версии", http.StatusBadRequest)
		return
	}

	version, err := h.versions.GetVersion(r.Context(), fileID, versionNumber)
	if respondServiceError(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, version)
}

// saveRequest - тело запроса на сохранение содержимого файла.
type saveRequest struct {
	Content *string `json:"content"`
}

// Save обрабатывает POST запрос на сохранение новой версии без websocket.
func (h *VersionHandler) Save(w http.ResponseWriter, r *http.Request) {
	fileID, ok := h.fileFromRequest(w, r)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == nil {
		http.Error(w, "Неверный формат запроса: требуется поле content", http.StatusBadRequest)
		return
	}

	version, err := h.versions.Append(r.Context(), fileID, userID, *req.Content)
	if respondServiceError(w, err) {
		return
	}
	writeJSON(w, http.StatusCreated, version)
}
