package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"codecollabhub/internal/models"
)

// ProjectRepository определяет методы для работы с проектами, участниками
// и заявками на вступление.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project *models.Project) (int64, error)
	GetProjectByID(ctx context.Context, projectID int64) (*models.Project, error)
	ListProjectsForUser(ctx context.Context, userID int64) ([]models.Project, error)
	UpdateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, projectID int64) error

	HasAccess(ctx context.Context, userID, projectID int64) (bool, error)
	ListMembers(ctx context.Context, projectID int64) ([]models.ProjectMembership, error)
	CountMembers(ctx context.Context, projectID int64) (int, error)
	AddMember(ctx context.Context, projectID, userID int64, role string) error
	RemoveMember(ctx context.Context, projectID, userID int64) error

	CreateRequest(ctx context.Context, request *models.ProjectRequest) (int64, error)
	GetRequestByID(ctx context.Context, requestID int64) (*models.ProjectRequest, error)
	UpdateRequestStatus(ctx context.Context, requestID int64, status string) error
}

// postgresProjectRepository реализует ProjectRepository для PostgreSQL.
type postgresProjectRepository struct {
	db *sqlx.DB
}

// NewPostgresProjectRepository создает новый экземпляр репозитория проектов.
func NewPostgresProjectRepository(db *sqlx.DB) ProjectRepository {
	return &postgresProjectRepository{db: db}
}

// CreateProject создает проект и запись о владельце в одной транзакции.
func (r *postgresProjectRepository) CreateProject(ctx context.Context, project *models.Project) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // откат после коммита безвреден

	query := `INSERT INTO projects (name, description, language, owner_id, is_public, max_members)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var projectID int64
	err = tx.QueryRowxContext(ctx, query,
		project.Name, project.Description, project.Language,
		project.OwnerID, project.IsPublic, project.MaxMembers,
	).Scan(&projectID)
	if err != nil {
		log.Printf("[ProjectRepo] Ошибка создания проекта '%s': %v", project.Name, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание проекта: %w", err)
	}

	// Владелец всегда состоит в проекте с ролью owner.
	memberQuery := `INSERT INTO project_memberships (project_id, user_id, role) VALUES ($1, $2, $3)`
	if _, err = tx.ExecContext(ctx, memberQuery, projectID, project.OwnerID, models.RoleOwner); err != nil {
		log.Printf("[ProjectRepo] Ошибка добавления владельца в проект %d: %v", projectID, err)
		return 0, fmt.Errorf("ошибка добавления владельца проекта: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	log.Printf("[ProjectRepo] Проект '%s' (ID: %d) успешно создан", project.Name, projectID)
	return projectID, nil
}

// GetProjectByID находит проект по его ID.
func (r *postgresProjectRepository) GetProjectByID(ctx context.Context, projectID int64) (*models.Project, error) {
	query := `SELECT id, name, description, language, owner_id, is_public, max_members, created_at, updated_at
	          FROM projects WHERE id=$1`
	var project models.Project

	err := r.db.GetContext(ctx, &project, query, projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[ProjectRepo] Проект с ID %d не найден", projectID)
			return nil, ErrProjectNotFound
		}
		log.Printf("[ProjectRepo] Ошибка при поиске проекта ID %d: %v", projectID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение проекта: %w", err)
	}

	return &project, nil
}

// ListProjectsForUser возвращает проекты, доступные пользователю:
// собственные, проекты с его участием и публичные.
func (r *postgresProjectRepository) ListProjectsForUser(ctx context.Context, userID int64) ([]models.Project, error) {
	query := `SELECT DISTINCT p.id, p.name, p.description, p.language, p.owner_id,
	                 p.is_public, p.max_members, p.created_at, p.updated_at
	          FROM projects p
	          LEFT JOIN project_memberships m ON m.project_id = p.id
	          WHERE p.owner_id = $1 OR m.user_id = $1 OR p.is_public
	          ORDER BY p.created_at DESC`

	projects := make([]models.Project, 0)
	if err := r.db.SelectContext(ctx, &projects, query, userID); err != nil {
		log.Printf("[ProjectRepo] Ошибка при получении списка проектов для пользователя %d: %v", userID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка проектов: %w", err)
	}
	return projects, nil
}

// UpdateProject обновляет изменяемые поля проекта.
func (r *postgresProjectRepository) UpdateProject(ctx context.Context, project *models.Project) error {
	query := `UPDATE projects
	          SET name=$1, description=$2, language=$3, is_public=$4, max_members=$5, updated_at=now()
	          WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query,
		project.Name, project.Description, project.Language,
		project.IsPublic, project.MaxMembers, project.ID,
	)
	if err != nil {
		log.Printf("[ProjectRepo] Ошибка обновления проекта ID %d: %v", project.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление проекта: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// DeleteProject удаляет проект. Файлы, версии и задачи удаляются каскадно.
func (r *postgresProjectRepository) DeleteProject(ctx context.Context, projectID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id=$1`, projectID)
	if err != nil {
		log.Printf("[ProjectRepo] Ошибка удаления проекта ID %d: %v", projectID, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление проекта: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrProjectNotFound
	}
	log.Printf("[ProjectRepo] Проект ID %d удален", projectID)
	return nil
}

// HasAccess проверяет, является ли пользователь владельцем или участником проекта.
func (r *postgresProjectRepository) HasAccess(ctx context.Context, userID, projectID int64) (bool, error) {
	query := `SELECT EXISTS (
	              SELECT 1 FROM projects p
	              LEFT JOIN project_memberships m ON m.project_id = p.id AND m.user_id = $1
	              WHERE p.id = $2 AND (p.owner_id = $1 OR m.user_id IS NOT NULL)
	          )`
	var hasAccess bool
	if err := r.db.GetContext(ctx, &hasAccess, query, userID, projectID); err != nil {
		log.Printf("[ProjectRepo] Ошибка проверки доступа пользователя %d к проекту %d: %v", userID, projectID, err)
		return false, fmt.Errorf("ошибка выполнения запроса на проверку доступа: %w", err)
	}
	return hasAccess, nil
}

// ListMembers возвращает участников проекта вместе с их именами.
func (r *postgresProjectRepository) ListMembers(ctx context.Context, projectID int64) ([]models.ProjectMembership, error) {
	query := `SELECT m.id, m.project_id, m.user_id, u.username, m.role, m.joined_at
	          FROM project_memberships m
	          JOIN users u ON u.id = m.user_id
	          WHERE m.project_id = $1
	          ORDER BY m.joined_at`

	members := make([]models.ProjectMembership, 0)
	if err := r.db.SelectContext(ctx, &members, query, projectID); err != nil {
		log.Printf("[ProjectRepo] Ошибка при получении участников проекта %d: %v", projectID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение участников: %w", err)
	}
	return members, nil
}

// CountMembers возвращает текущее количество участников проекта.
func (r *postgresProjectRepository) CountMembers(ctx context.Context, projectID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM project_memberships WHERE project_id=$1`, projectID)
	if err != nil {
		log.Printf("[ProjectRepo] Ошибка подсчета участников проекта %d: %v", projectID, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на подсчет участников: %w", err)
	}
	return count, nil
}

// AddMember добавляет участника в проект.
func (r *postgresProjectRepository) AddMember(ctx context.Context, projectID, userID int64, role string) error {
	query := `INSERT INTO project_memberships (project_id, user_id, role) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, projectID, userID, role)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Printf("[ProjectRepo] Пользователь %d уже состоит в проекте %d", userID, projectID)
			return ErrAlreadyMember
		}
		log.Printf("[ProjectRepo] Ошибка добавления пользователя %d в проект %d: %v", userID, projectID, err)
		return fmt.Errorf("ошибка выполнения запроса на добавление участника: %w", err)
	}
	log.Printf("[ProjectRepo] Пользователь %d добавлен в проект %d с ролью '%s'", userID, projectID, role)
	return nil
}

// RemoveMember удаляет участника из проекта. Удаление отсутствующего участника - не ошибка.
func (r *postgresProjectRepository) RemoveMember(ctx context.Context, projectID, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM project_memberships WHERE project_id=$1 AND user_id=$2`, projectID, userID)
	if err != nil {
		log.Printf("[ProjectRepo] Ошибка удаления пользователя %d из проекта %d: %v", userID, projectID, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление участника: %w", err)
	}
	return nil
}

// CreateRequest создает заявку на вступление в проект.
func (r *postgresProjectRepository) CreateRequest(ctx context.Context, request *models.ProjectRequest) (int64, error) {
	query := `INSERT INTO project_requests (project_id, requester_id, message)
	          VALUES ($1, $2, $3) RETURNING id`
	var requestID int64

	err := r.db.QueryRowxContext(ctx, query,
		request.ProjectID, request.RequesterID, request.Message,
	).Scan(&requestID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Printf("[ProjectRepo] Заявка пользователя %d в проект %d уже существует",
				request.RequesterID, request.ProjectID)
			return 0, ErrRequestExists
		}
		log.Printf("[ProjectRepo] Ошибка создания заявки в проект %d: %v", request.ProjectID, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание заявки: %w", err)
	}
	return requestID, nil
}

// GetRequestByID находит заявку по ее ID.
func (r *postgresProjectRepository) GetRequestByID(ctx context.Context, requestID int64) (*models.ProjectRequest, error) {
	query := `SELECT id, project_id, requester_id, status, message, created_at, updated_at
	          FROM project_requests WHERE id=$1`
	var request models.ProjectRequest

	err := r.db.GetContext(ctx, &request, query, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		log.Printf("[ProjectRepo] Ошибка при поиске заявки ID %d: %v", requestID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение заявки: %w", err)
	}
	return &request, nil
}

// UpdateRequestStatus обновляет статус заявки.
func (r *postgresProjectRepository) UpdateRequestStatus(ctx context.Context, requestID int64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE project_requests SET status=$1, updated_at=now() WHERE id=$2`, status, requestID)
	if err != nil {
		log.Printf("[ProjectRepo] Ошибка обновления статуса заявки ID %d: %v", requestID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление заявки: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// Кастомные ошибки репозитория проектов.
var (
	ErrProjectNotFound = errors.New("проект не найден")
	ErrAlreadyMember   = errors.New("пользователь уже состоит в проекте")
	ErrRequestExists   = errors.New("заявка на вступление уже существует")
	ErrRequestNotFound = errors.New("заявка на вступление не найдена")
)
