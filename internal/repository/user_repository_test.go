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

// Вспомогательная функция для создания мока БД и репозитория пользователей.
func setupUserRepoMock(t *testing.T) (repository.UserRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := repository.NewPostgresUserRepository(sqlxDB)
	return repo, mock
}

var userColumns = []string{
	"id", "username", "email", "password_hash", "bio", "preferred_language", "created_at", "updated_at",
}

const selectUserByUsername = `SELECT id, username, email, password_hash, bio, preferred_language, created_at, updated_at FROM users WHERE username=$1`
const selectUserByID = `SELECT id, username, email, password_hash, bio, preferred_language, created_at, updated_at FROM users WHERE id=$1`

func TestCreateUser(t *testing.T) {
	insertUser := regexp.QuoteMeta(`INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id`)

	tests := []struct {
		name        string
		user        *models.User
		mockSetup   func(mock sqlmock.Sqlmock, user *models.User)
		expectedID  int64
		expectedErr error
	}{
		{
			name: "Успешное создание",
			user: &models.User{Username: "newuser", Email: "newuser@example.com", PasswordHash: "hash123"},
			mockSetup: func(mock sqlmock.Sqlmock, user *models.User) {
				rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(1))
				mock.ExpectQuery(insertUser).
					WithArgs(user.Username, user.Email, user.PasswordHash).
					WillReturnRows(rows)
			},
			expectedID:  1,
			expectedErr: nil,
		},
		{
			name: "Регистрация без email",
			user: &models.User{Username: "nomail", PasswordHash: "hash456"},
			mockSetup: func(mock sqlmock.Sqlmock, user *models.User) {
				rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(2))
				mock.ExpectQuery(insertUser).
					WithArgs(user.Username, "", user.PasswordHash).
					WillReturnRows(rows)
			},
			expectedID:  2,
			expectedErr: nil,
		},
		{
			name: "Имя пользователя занято",
			user: &models.User{Username: "existinguser", PasswordHash: "hash456"},
			mockSetup: func(mock sqlmock.Sqlmock, user *models.User) {
				pqErr := &pq.Error{Code: "23505"}
				mock.ExpectQuery(insertUser).
					WithArgs(user.Username, user.Email, user.PasswordHash).
					WillReturnError(pqErr)
			},
			expectedID:  0,
			expectedErr: repository.ErrUsernameTaken,
		},
		{
			name: "Ошибка базы данных",
			user: &models.User{Username: "erroruser", PasswordHash: "hash789"},
			mockSetup: func(mock sqlmock.Sqlmock, user *models.User) {
				mock.ExpectQuery(insertUser).
					WithArgs(user.Username, user.Email, user.PasswordHash).
					WillReturnError(errors.New("database error"))
			},
			expectedID:  0,
			expectedErr: errors.New("ошибка выполнения запроса"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupUserRepoMock(t)
			tt.mockSetup(mock, tt.user)

			userID, err := repo.CreateUser(context.Background(), tt.user)

			assert.Equal(t, tt.expectedID, userID)
			if tt.expectedErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				if errors.Is(tt.expectedErr, repository.ErrUsernameTaken) {
					assert.ErrorIs(t, err, repository.ErrUsernameTaken)
				} else {
					assert.Contains(t, err.Error(), "ошибка выполнения запроса")
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "Не все ожидания мока были выполнены")
		})
	}
}

func TestGetUserByUsername(t *testing.T) {
	now := time.Now()
	query := regexp.QuoteMeta(selectUserByUsername)

	t.Run("Успешный поиск", func(t *testing.T) {
		repo, mock := setupUserRepoMock(t)
		rows := sqlmock.NewRows(userColumns).
			AddRow(int64(1), "testuser", "testuser@example.com", "hash123", "пишу на go", "go", now, now)
		mock.ExpectQuery(query).WithArgs("testuser").WillReturnRows(rows)

		user, err := repo.GetUserByUsername(context.Background(), "testuser")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "testuser@example.com", user.Email)
		assert.Equal(t, "пишу на go", user.Bio)
		assert.Equal(t, "go", user.PreferredLanguage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		repo, mock := setupUserRepoMock(t)
		mock.ExpectQuery(query).WithArgs("notfounduser").WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByUsername(context.Background(), "notfounduser")
		require.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		repo, mock := setupUserRepoMock(t)
		mock.ExpectQuery(query).WithArgs("erroruser").WillReturnError(errors.New("database error"))

		user, err := repo.GetUserByUsername(context.Background(), "erroruser")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка выполнения запроса")
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetUserByID(t *testing.T) {
	now := time.Now()
	query := regexp.QuoteMeta(selectUserByID)

	t.Run("Успешный поиск", func(t *testing.T) {
		repo, mock := setupUserRepoMock(t)
		rows := sqlmock.NewRows(userColumns).
			AddRow(int64(42), "carol", "", "hash123", "", "python", now, now)
		mock.ExpectQuery(query).WithArgs(int64(42)).WillReturnRows(rows)

		user, err := repo.GetUserByID(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "carol", user.Username)
		assert.Equal(t, "python", user.PreferredLanguage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		repo, mock := setupUserRepoMock(t)
		mock.ExpectQuery(query).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByID(context.Background(), 99)
		require.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateProfile(t *testing.T) {
	query := regexp.QuoteMeta(`UPDATE users SET bio=$1, preferred_language=$2, updated_at=now() WHERE id=$3`)

	t.Run("Успешное обновление", func(t *testing.T) {
		repo, mock := setupUserRepoMock(t)
		mock.ExpectExec(query).
			WithArgs("новое био", "go", int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateProfile(context.Background(), 42, "новое био", "go"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		repo, mock := setupUserRepoMock(t)
		mock.ExpectExec(query).
			WithArgs("", "python", int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateProfile(context.Background(), 99, "", "python")
		require.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		repo, mock := setupUserRepoMock(t)
		mock.ExpectExec(query).
			WithArgs("био", "go", int64(42)).
			WillReturnError(errors.New("database error"))

		err := repo.UpdateProfile(context.Background(), 42, "био", "go")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка выполнения запроса")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
