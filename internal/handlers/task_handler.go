package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"codecollabhub/internal/middleware"
	"codecollabhub/internal/models"
	"codecollabhub/internal/services"
)

// TaskHandler обрабатывает HTTP-запросы, связанные с задачами проектов.
type TaskHandler struct {
	service services.TaskService
}

// NewTaskHandler создает новый экземпляр TaskHandler.
func NewTaskHandler(s services.TaskService) *TaskHandler {
	return &TaskHandler{service: s}
}

// taskRequest - тело запроса на создание/обновление задачи.
type taskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	AssignedTo  *int64  `json:"assigned_to"`
	Status      string  `json:"status"`
	DueDate     *string `json:"due_date"` // Формат YYYY-MM-DD
}

// toModel преобразует тело запроса в модель задачи.
func (req *taskRequest) toModel(projectID int64) (*models.Task, error) {
	task := &models.Task{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Status:      req.Status,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = &dueDate
	}
	return task, nil
}

// Create обрабатывает POST запрос на создание задачи.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	var req taskRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "Название задачи не может быть пустым", http.StatusBadRequest)
		return
	}

	task, err := req.toModel(projectID)
	if err != nil {
		http.Error(w, "Неверный формат даты, ожидается YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	taskID, err := h.service.CreateTask(r.Context(), userID, task)
	if respondServiceError(w, err) {
		return
	}
	task.ID = taskID
	writeJSON(w, http.StatusCreated, task)
}

// List обрабатывает GET запрос на получение задач проекта.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}

	tasks, err := h.service.ListTasks(r.Context(), userID, projectID)
	if respondServiceError(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// Get обрабатывает GET запрос на получение одной задачи.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}
	taskID, err := pathID(r, "taskID")
	if err != nil {
		http.Error(w, "Неверный идентификатор задачи", http.StatusBadRequest)
		return
	}

	task, err := h.service.GetTask(r.Context(), userID, projectID, taskID)
	if respondServiceError(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// Update обрабатывает PUT запрос на обновление задачи.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}
	taskID, err := pathID(r, "taskID")
	if err != nil {
		http.Error(w, "Неверный идентификатор задачи", http.StatusBadRequest)
		return
	}

	var req taskRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "Название задачи не может быть пустым", http.StatusBadRequest)
		return
	}

	task, err := req.toModel(projectID)
	if err != nil {
		http.Error(w, "Неверный формат даты, ожидается YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	task.ID = taskID

	if respondServiceError(w, h.service.UpdateTask(r.Context(), userID, projectID, task)) {
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// Delete обрабатывает DELETE запрос на удаление задачи.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}
	taskID, err := pathID(r, "taskID")
	if err != nil {
		http.Error(w, "Неверный идентификатор задачи", http.StatusBadRequest)
		return
	}

	if respondServiceError(w, h.service.DeleteTask(r.Context(), userID, projectID, taskID)) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
