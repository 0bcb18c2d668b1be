package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"codecollabhub/internal/middleware"
	"codecollabhub/internal/models"
	"codecollabhub/internal/services"
)

// ProjectHandler обрабатывает HTTP-запросы, связанные с проектами,
// участниками и заявками на вступление.
type ProjectHandler struct {
	service services.ProjectService
}

// NewProjectHandler создает новый экземпляр ProjectHandler.
func NewProjectHandler(s services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: s}
}

// createProjectRequest - тело запроса на создание/обновление проекта.
type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	IsPublic    bool   `json:"is_public"`
	MaxMembers  int    `json:"max_members"`
}

// Create обрабатывает POST запрос на создание проекта.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Название проекта не может быть пустым", http.StatusBadRequest)
		return
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		Language:    req.Language,
		IsPublic:    req.IsPublic,
		MaxMembers:  req.MaxMembers,
	}
	projectID, err := h.service.CreateProject(r.Context(), userID, project)
	if respondServiceError(w, err) {
		return
	}

	project.ID = projectID
	writeJSON(w, http.StatusCreated, project)
}

// List обрабатывает GET запрос на получение списка доступных проектов.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	projects, err := h.service.ListProjects(r.Context(), userID)
	if respondServiceError(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// Get обрабатывает GET запрос на получение одного проекта.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	project, err := h.service.GetProject(r.Context(), userID, projectID)
	if respondServiceError(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Update обрабатывает PUT запрос на обновление проекта.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	var req createProjectRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Название проекта не может быть пустым", http.StatusBadRequest)
		return
	}

	project := &models.Project{
		ID:          projectID,
		Name:        req.Name,
		Description: req.Description,
		Language:    req.Language,
		IsPublic:    req.IsPublic,
		MaxMembers:  req.MaxMembers,
	}
	if respondServiceError(w, h.service.UpdateProject(r.Context(), userID, project)) {
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Delete обрабатывает DELETE запрос на удаление проекта.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	if respondServiceError(w, h.service.DeleteProject(r.Context(), userID, projectID)) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
	log.Printf("[ProjectHandler] Проект %d удален пользователем %d", projectID, userID)
}

// ListMembers обрабатывает GET запрос на получение участников проекта.
func (h *ProjectHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	members, err := h.service.ListMembers(r.Context(), userID, projectID)
	if respondServiceError(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, members)
}

// inviteRequest - тело запроса на приглашение участника.
type inviteRequest struct {
	Username string `json:"username"`
}

// InviteMember обрабатывает POST запрос на приглашение участника по имени.
func (h *ProjectHandler) InviteMember(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	var req inviteRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if respondServiceError(w, h.service.InviteMember(r.Context(), userID, projectID, req.Username)) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveMember обрабатывает DELETE запрос на исключение участника.
func (h *ProjectHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}
	memberID, err := pathID(r, "userID")
	if err != nil {
		http.Error(w, "Неверный идентификатор пользователя", http.StatusBadRequest)
		return
	}

	if respondServiceError(w, h.service.RemoveMember(r.Context(), userID, projectID, memberID)) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// joinRequest - тело заявки на вступление.
type joinRequest struct {
	Message string `json:"message"`
}

// RequestToJoin обрабатывает POST запрос на подачу заявки на вступление.
func (h *ProjectHandler) RequestToJoin(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	var req joinRequest
	// Пустое тело допустимо: заявка без сообщения
	_ = json.NewDecoder(r.Body).Decode(&req)

	requestID, err := h.service.RequestToJoin(r.Context(), userID, projectID, req.Message)
	if respondServiceError(w, err) {
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"request_id": requestID})
}

// handleRequestBody - тело запроса на обработку заявки.
type handleRequestBody struct {
	Approve bool `json:"approve"`
}

// HandleRequest обрабатывает POST запрос на одобрение/отклонение заявки.
func (h *ProjectHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	requestID, err := pathID(r, "requestID")
	if err != nil {
		http.Error(w, "Неверный идентификатор заявки", http.StatusBadRequest)
		return
	}

	var req handleRequestBody
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if respondServiceError(w, h.service.HandleRequest(r.Context(), userID, requestID, req.Approve)) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
