package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codecollabhub/internal/models"
	"codecollabhub/internal/repository"
)

// Вспомогательная функция для создания мока БД и репозитория проектов.
func setupProjectRepoMock(t *testing.T) (repository.ProjectRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := repository.NewPostgresProjectRepository(sqlxDB)
	return repo, mock
}

func TestCreateProject(t *testing.T) {
	project := &models.Project{
		Name:       "Новый проект",
		Language:   "python",
		OwnerID:    10,
		MaxMembers: 5,
	}
	insertProject := regexp.QuoteMeta(`INSERT INTO projects (name, description, language, owner_id, is_public, max_members)
		          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`)
	insertOwner := regexp.QuoteMeta(`INSERT INTO project_memberships (project_id, user_id, role) VALUES ($1, $2, $3)`)

	t.Run("Проект и владелец создаются в одной транзакции", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		mock.ExpectBegin()
		mock.ExpectQuery(insertProject).
			WithArgs(project.Name, project.Description, project.Language,
				project.OwnerID, project.IsPublic, project.MaxMembers).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectExec(insertOwner).
			WithArgs(int64(1), project.OwnerID, models.RoleOwner).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		projectID, err := repo.CreateProject(context.Background(), project)
		require.NoError(t, err)
		assert.Equal(t, int64(1), projectID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка вставки проекта откатывает транзакцию", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		mock.ExpectBegin()
		mock.ExpectQuery(insertProject).
			WithArgs(project.Name, project.Description, project.Language,
				project.OwnerID, project.IsPublic, project.MaxMembers).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		projectID, err := repo.CreateProject(context.Background(), project)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка выполнения запроса")
		assert.Zero(t, projectID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка добавления владельца откатывает транзакцию", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		mock.ExpectBegin()
		mock.ExpectQuery(insertProject).
			WithArgs(project.Name, project.Description, project.Language,
				project.OwnerID, project.IsPublic, project.MaxMembers).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectExec(insertOwner).
			WithArgs(int64(1), project.OwnerID, models.RoleOwner).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		projectID, err := repo.CreateProject(context.Background(), project)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка добавления владельца")
		assert.Zero(t, projectID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetProjectByID(t *testing.T) {
	now := time.Now()
	query := regexp.QuoteMeta(`SELECT id, name, description, language, owner_id, is_public, max_members, created_at, updated_at
		          FROM projects WHERE id=$1`)
	columns := []string{"id", "name", "description", "language", "owner_id", "is_public", "max_members", "created_at", "updated_at"}

	t.Run("Проект найден", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		rows := sqlmock.NewRows(columns).
			AddRow(int64(1), "Проект", "описание", "go", int64(10), true, 5, now, now)
		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(rows)

		project, err := repo.GetProjectByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Проект", project.Name)
		assert.True(t, project.IsPublic)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Проект не найден", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		mock.ExpectQuery(query).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

		project, err := repo.GetProjectByID(context.Background(), 99)
		require.ErrorIs(t, err, repository.ErrProjectNotFound)
		assert.Nil(t, project)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateProject(t *testing.T) {
	project := &models.Project{ID: 1, Name: "Новое имя", Language: "go", MaxMembers: 5}
	query := regexp.QuoteMeta(`UPDATE projects
		          SET name=$1, description=$2, language=$3, is_public=$4, max_members=$5, updated_at=now()
		          WHERE id=$6`)

	t.Run("Успешное обновление", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		mock.ExpectExec(query).
			WithArgs(project.Name, project.Description, project.Language,
				project.IsPublic, project.MaxMembers, project.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateProject(context.Background(), project))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Обновление несуществующего проекта", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		mock.ExpectExec(query).
			WithArgs(project.Name, project.Description, project.Language,
				project.IsPublic, project.MaxMembers, project.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateProject(context.Background(), project)
		require.ErrorIs(t, err, repository.ErrProjectNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteProject(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM projects WHERE id=$1`)

	t.Run("Успешное удаление", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		mock.ExpectExec(query).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteProject(context.Background(), 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Проект не найден", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		mock.ExpectExec(query).WithArgs(int64(99)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteProject(context.Background(), 99)
		require.ErrorIs(t, err, repository.ErrProjectNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHasAccess(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT EXISTS (
		              SELECT 1 FROM projects p
		              LEFT JOIN project_memberships m ON m.project_id = p.id AND m.user_id = $1
		              WHERE p.id = $2 AND (p.owner_id = $1 OR m.user_id IS NOT NULL)
		          )`)

	tests := []struct {
		name      string
		hasAccess bool
	}{
		{name: "Доступ есть", hasAccess: true},
		{name: "Доступа нет", hasAccess: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupProjectRepoMock(t)
			rows := sqlmock.NewRows([]string{"exists"}).AddRow(tt.hasAccess)
			mock.ExpectQuery(query).WithArgs(int64(42), int64(1)).WillReturnRows(rows)

			hasAccess, err := repo.HasAccess(context.Background(), 42, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.hasAccess, hasAccess)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("Ошибка базы данных", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		mock.ExpectQuery(query).WithArgs(int64(42), int64(1)).WillReturnError(errors.New("database error"))

		hasAccess, err := repo.HasAccess(context.Background(), 42, 1)
		require.Error(t, err)
		assert.False(t, hasAccess)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddMember(t *testing.T) {
	query := regexp.QuoteMeta(`INSERT INTO project_memberships (project_id, user_id, role) VALUES ($1, $2, $3)`)

	t.Run("Успешное добавление", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		mock.ExpectExec(query).
			WithArgs(int64(1), int64(20), models.RoleMember).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.AddMember(context.Background(), 1, 20, models.RoleMember))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь уже участник", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		pqErr := &pq.Error{Code: "23505"}
		mock.ExpectExec(query).
			WithArgs(int64(1), int64(20), models.RoleMember).
			WillReturnError(pqErr)

		err := repo.AddMember(context.Background(), 1, 20, models.RoleMember)
		require.ErrorIs(t, err, repository.ErrAlreadyMember)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountMembers(t *testing.T) {
	repo, mock := setupProjectRepoMock(t)
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM project_memberships WHERE project_id=$1`)
	mock.ExpectQuery(query).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountMembers(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMembers(t *testing.T) {
	now := time.Now()
	repo, mock := setupProjectRepoMock(t)
	query := regexp.QuoteMeta(`SELECT m.id, m.project_id, m.user_id, u.username, m.role, m.joined_at
		          FROM project_memberships m
		          JOIN users u ON u.id = m.user_id
		          WHERE m.project_id = $1
		          ORDER BY m.joined_at`)
	rows := sqlmock.NewRows([]string{"id", "project_id", "user_id", "username", "role", "joined_at"}).
		AddRow(int64(1), int64(1), int64(10), "owner", models.RoleOwner, now).
		AddRow(int64(2), int64(1), int64(20), "member", models.RoleMember, now)
	mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(rows)

	members, err := repo.ListMembers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "owner", members[0].Username)
	assert.Equal(t, models.RoleMember, members[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequest(t *testing.T) {
	query := regexp.QuoteMeta(`INSERT INTO project_requests (project_id, requester_id, message)
		          VALUES ($1, $2, $3) RETURNING id`)
	request := &models.ProjectRequest{ProjectID: 1, RequesterID: 20, Message: "возьмите меня"}

	t.Run("Успешное создание заявки", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		mock.ExpectQuery(query).
			WithArgs(request.ProjectID, request.RequesterID, request.Message).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

		requestID, err := repo.CreateRequest(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, int64(5), requestID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Повторная заявка", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		pqErr := &pq.Error{Code: "23505"}
		mock.ExpectQuery(query).
			WithArgs(request.ProjectID, request.RequesterID, request.Message).
			WillReturnError(pqErr)

		requestID, err := repo.CreateRequest(context.Background(), request)
		require.ErrorIs(t, err, repository.ErrRequestExists)
		assert.Zero(t, requestID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateRequestStatus(t *testing.T) {
	query := regexp.QuoteMeta(`UPDATE project_requests SET status=$1, updated_at=now() WHERE id=$2`)

	t.Run("Успешное обновление статуса", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		mock.ExpectExec(query).
			WithArgs(models.RequestStatusApproved, int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateRequestStatus(context.Background(), 5, models.RequestStatusApproved))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Заявка не найдена", func(t *testing.T) {
		repo, mock := setupProjectRepoMock(t)
		mock.ExpectExec(query).
			WithArgs(models.RequestStatusApproved, int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateRequestStatus(context.Background(), 99, models.RequestStatusApproved)
		require.ErrorIs(t, err, repository.ErrRequestNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
