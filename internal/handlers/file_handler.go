package handlers

import (
	"encoding/json"
	"net/http"

	"codecollabhub/internal/middleware"
	"codecollabhub/internal/models"
	"codecollabhub/internal/services"
)

// FileHandler обрабатывает HTTP-запросы, связанные с файлами проектов.
type FileHandler struct {
	service services.FileService
}

// NewFileHandler создает новый экземпляр FileHandler.
func NewFileHandler(s services.FileService) *FileHandler {
	return &FileHandler{service: s}
}

// createFileRequest - тело запроса на создание файла.
type createFileRequest struct {
	Filename string `json:"filename"`
	Language string `json:"language"`
}

// Create обрабатывает POST запрос на создание файла в проекте.
func (h *FileHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	var req createFileRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}
	if req.Filename == "" {
		http.Error(w, "Имя файла не может быть пустым", http.StatusBadRequest)
		return
	}
	if req.Language == "" {
		req.Language = "other"
	}

	file := &models.CodeFile{
		ProjectID: projectID,
		Filename:  req.Filename,
		Language:  req.Language,
	}
	fileID, err := h.service.CreateFile(r.Context(), userID, file)
	if respondServiceError(w, err) {
		return
	}

	file.ID = fileID
	writeJSON(w, http.StatusCreated, file)
}

// List обрабатывает GET запрос на получение файлов проекта.
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	files, err := h.service.ListFiles(r.Context(), userID, projectID)
	if respondServiceError(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, files)
}

// Get обрабатывает GET запрос на получение одного файла.
func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}
	fileID, err := pathID(r, "fileID")
	if err != nil {
		http.Error(w, "Неверный идентификатор файла", http.StatusBadRequest)
		return
	}

	file, err := h.service.GetFile(r.Context(), userID, projectID, fileID)
	if respondServiceError(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, file)
}

// Delete обрабатывает DELETE запрос на удаление файла.
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}
	fileID, err := pathID(r, "fileID")
	if err != nil {
		http.Error(w, "Неверный идентификатор файла", http.StatusBadRequest)
		return
	}

	if respondServiceError(w, h.service.DeleteFile(r.Context(), userID, projectID, fileID)) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
