package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"codecollabhub/internal/models"
)

// TaskRepository определяет методы для работы с задачами проектов.
type TaskRepository interface {
	CreateTask(ctx context.Context, task *models.Task) (int64, error)
	GetTaskByID(ctx context.Context, taskID int64) (*models.Task, error)
	ListTasksByProject(ctx context.Context, projectID int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, taskID int64) error
}

// postgresTaskRepository реализует TaskRepository для PostgreSQL.
type postgresTaskRepository struct {
	db *sqlx.DB
}

// NewPostgresTaskRepository создает новый экземпляр репозитория задач.
func NewPostgresTaskRepository(db *sqlx.DB) TaskRepository {
	return &postgresTaskRepository{db: db}
}

// CreateTask создает новую задачу в проекте.
func (r *postgresTaskRepository) CreateTask(ctx context.Context, task *models.Task) (int64, error) {
	query := `INSERT INTO tasks (project_id, title, description, assigned_to, status, due_date)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var taskID int64

	err := r.db.QueryRowxContext(ctx, query,
		task.ProjectID, task.Title, task.Description, task.AssignedTo, task.Status, task.DueDate,
	).Scan(&taskID)
	if err != nil {
		log.Printf("[TaskRepo] Ошибка создания задачи '%s' в проекте %d: %v", task.Title, task.ProjectID, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание задачи: %w", err)
	}
	return taskID, nil
}

// GetTaskByID находит задачу по ее ID.
func (r *postgresTaskRepository) GetTaskByID(ctx context.Context, taskID int64) (*models.Task, error) {
	query := `SELECT id, project_id, title, description, assigned_to, status, due_date, created_at, updated_at
	          FROM tasks WHERE id=$1`
	var task models.Task

	err := r.db.GetContext(ctx, &task, query, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		log.Printf("[TaskRepo] Ошибка при поиске задачи ID %d: %v", taskID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение задачи: %w", err)
	}
	return &task, nil
}

// ListTasksByProject возвращает задачи проекта.
func (r *postgresTaskRepository) ListTasksByProject(ctx context.Context, projectID int64) ([]models.Task, error) {
	query := `SELECT id, project_id, title, description, assigned_to, status, due_date, created_at, updated_at
	          FROM tasks WHERE project_id=$1 ORDER BY created_at DESC`

	tasks := make([]models.Task, 0)
	if err := r.db.SelectContext(ctx, &tasks, query, projectID); err != nil {
		log.Printf("[TaskRepo] Ошибка при получении задач проекта %d: %v", projectID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка задач: %w", err)
	}
	return tasks, nil
}

// UpdateTask обновляет изменяемые поля задачи.
func (r *postgresTaskRepository) UpdateTask(ctx context.Context, task *models.Task) error {
	query := `UPDATE tasks
	          SET title=$1, description=$2, assigned_to=$3, status=$4, due_date=$5, updated_at=now()
	          WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.AssignedTo, task.Status, task.DueDate, task.ID,
	)
	if err != nil {
		log.Printf("[TaskRepo] Ошибка обновления задачи ID %d: %v", task.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление задачи: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteTask удаляет задачу.
func (r *postgresTaskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id=$1`, taskID)
	if err != nil {
		log.Printf("[TaskRepo] Ошибка удаления задачи ID %d: %v", taskID, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление задачи: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Кастомная ошибка репозитория задач.
var (
	ErrTaskNotFound = errors.New("задача не найдена")
)
