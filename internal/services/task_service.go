package services

import (
	"context"
	"errors"

	"codecollabhub/internal/models"
	"codecollabhub/internal/repository"
)

// TaskService определяет интерфейс для работы с задачами проектов.
type TaskService interface {
	CreateTask(ctx context.Context, userID int64, task *models.Task) (int64, error)
	GetTask(ctx context.Context, userID, projectID, taskID int64) (*models.Task, error)
	ListTasks(ctx context.Context, userID, projectID int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, userID, projectID int64, task *models.Task) error
	DeleteTask(ctx context.Context, userID, projectID, taskID int64) error
}

var _ TaskService = (*taskService)(nil)

type taskService struct {
	taskRepo repository.TaskRepository
	projects ProjectService
}

// NewTaskService создает новый экземпляр сервиса задач.
func NewTaskService(taskRepo repository.TaskRepository, projects ProjectService) TaskService {
	return &taskService{taskRepo: taskRepo, projects: projects}
}

// CreateTask создает задачу в проекте.
func (s *taskService) CreateTask(ctx context.Context, userID int64, task *models.Task) (int64, error) {
	if err := s.projects.CheckAccess(ctx, userID, task.ProjectID); err != nil {
		return 0, err
	}
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}

	taskID, err := s.taskRepo.CreateTask(ctx, task)
	if err != nil {
		return 0, errors.New("внутренняя ошибка сервера при создании задачи")
	}
	return taskID, nil
}

// GetTask возвращает задачу проекта.
func (s *taskService) GetTask(ctx context.Context, userID, projectID, taskID int64) (*models.Task, error) {
	if err := s.projects.CheckAccess(ctx, userID, projectID); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, errors.New("внутренняя ошибка сервера при получении задачи")
	}
	if task.ProjectID != projectID {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// ListTasks возвращает задачи проекта.
func (s *taskService) ListTasks(ctx context.Context, userID, projectID int64) ([]models.Task, error) {
	if err := s.projects.CheckAccess(ctx, userID, projectID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListTasksByProject(ctx, projectID)
	if err != nil {
		return nil, errors.New("внутренняя ошибка сервера при получении списка задач")
	}
	return tasks, nil
}

// UpdateTask обновляет задачу проекта.
func (s *taskService) UpdateTask(ctx context.Context, userID, projectID int64, task *models.Task) error {
	if _, err := s.GetTask(ctx, userID, projectID, task.ID); err != nil {
		return err
	}
	if err := s.taskRepo.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return errors.New("внутренняя ошибка сервера при обновлении задачи")
	}
	return nil
}

// DeleteTask удаляет задачу проекта.
func (s *taskService) DeleteTask(ctx context.Context, userID, projectID, taskID int64) error {
	if _, err := s.GetTask(ctx, userID, projectID, taskID); err != nil {
		return err
	}
	if err := s.taskRepo.DeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return errors.New("внутренняя ошибка сервера при удалении задачи")
	}
	return nil
}

// Кастомная ошибка сервиса задач.
var (
	ErrTaskNotFound = errors.New("задача не найдена")
)
