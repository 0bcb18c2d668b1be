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

// FileRepository определяет методы для работы с файлами проектов.
type FileRepository interface {
	CreateFile(ctx context.Context, file *models.CodeFile) (int64, error)
	GetFileByID(ctx context.Context, fileID int64) (*models.CodeFile, error)
	ListFilesByProject(ctx context.Context, projectID int64) ([]models.CodeFile, error)
	DeleteFile(ctx context.Context, fileID int64) error
	FileExists(ctx context.Context, fileID int64) (bool, error)
}

// postgresFileRepository реализует FileRepository для PostgreSQL.
type postgresFileRepository struct {
	db *sqlx.DB
}

// NewPostgresFileRepository создает новый экземпляр репозитория файлов.
func NewPostgresFileRepository(db *sqlx.DB) FileRepository {
	return &postgresFileRepository{db: db}
}

// CreateFile создает новый файл в проекте.
func (r *postgresFileRepository) CreateFile(ctx context.Context, file *models.CodeFile) (int64, error) {
	query := `INSERT INTO code_files (project_id, filename, language) VALUES ($1, $2, $3) RETURNING id`
	var fileID int64

	err := r.db.QueryRowxContext(ctx, query, file.ProjectID, file.Filename, file.Language).Scan(&fileID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Printf("[FileRepo] Файл '%s' уже существует в проекте %d", file.Filename, file.ProjectID)
			return 0, ErrFilenameTaken
		}
		log.Printf("[FileRepo] Ошибка создания файла '%s' в проекте %d: %v", file.Filename, file.ProjectID, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание файла: %w", err)
	}

	log.Printf("[FileRepo] Файл '%s' (ID: %d) создан в проекте %d", file.Filename, fileID, file.ProjectID)
	return fileID, nil
}

// GetFileByID находит файл по его ID.
func (r *postgresFileRepository) GetFileByID(ctx context.Context, fileID int64) (*models.CodeFile, error) {
	query := `SELECT id, project_id, filename, language, created_at, updated_at FROM code_files WHERE id=$1`
	var file models.CodeFile

	err := r.db.GetContext(ctx, &file, query, fileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[FileRepo] Файл с ID %d не найден", fileID)
			return nil, ErrFileNotFound
		}
		log.Printf("[FileRepo] Ошибка при поиске файла ID %d: %v", fileID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение файла: %w", err)
	}
	return &file, nil
}

// ListFilesByProject возвращает файлы проекта.
func (r *postgresFileRepository) ListFilesByProject(ctx context.Context, projectID int64) ([]models.CodeFile, error) {
	query := `SELECT id, project_id, filename, language, created_at, updated_at
	          FROM code_files WHERE project_id=$1 ORDER BY filename`

	files := make([]models.CodeFile, 0)
	if err := r.db.SelectContext(ctx, &files, query, projectID); err != nil {
		log.Printf("[FileRepo] Ошибка при получении файлов проекта %d: %v", projectID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка файлов: %w", err)
	}
	return files, nil
}

// DeleteFile удаляет файл. Версии удаляются каскадно.
func (r *postgresFileRepository) DeleteFile(ctx context.Context, fileID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM code_files WHERE id=$1`, fileID)
	if err != nil {
		log.Printf("[FileRepo] Ошибка удаления файла ID %d: %v", fileID, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление файла: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrFileNotFound
	}
	log.Printf("[FileRepo] Файл ID %d удален", fileID)
	return nil
}

// FileExists проверяет существование файла.
func (r *postgresFileRepository) FileExists(ctx context.Context, fileID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM code_files WHERE id=$1)`, fileID)
	if err != nil {
		log.Printf("[FileRepo] Ошибка проверки существования файла ID %d: %v", fileID, err)
		return false, fmt.Errorf("ошибка выполнения запроса на проверку файла: %w", err)
	}
	return exists, nil
}

// Кастомные ошибки репозитория файлов.
var (
	ErrFileNotFound  = errors.New("файл не найден")
	ErrFilenameTaken = errors.New("файл с таким именем уже существует в проекте")
)
