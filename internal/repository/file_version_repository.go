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

// FileVersionRepository определяет методы для работы с версиями файлов.
// Версии неизменяемы: репозиторий только добавляет и читает записи.
type FileVersionRepository interface {
	CreateVersion(ctx context.Context, version *models.FileVersion) error
	GetLatestVersion(ctx context.Context, fileID int64) (*models.FileVersion, error)
	GetVersionByNumber(ctx context.Context, fileID int64, versionNumber int) (*models.FileVersion, error)
	ListVersionsByFileID(ctx context.Context, fileID int64, limit, offset int) ([]models.FileVersion, error)
}

// postgresFileVersionRepository реализует FileVersionRepository для PostgreSQL.
type postgresFileVersionRepository struct {
	db *sqlx.DB
}

// NewPostgresFileVersionRepository создает новый экземпляр репозитория версий.
func NewPostgresFileVersionRepository(db *sqlx.DB) FileVersionRepository {
	return &postgresFileVersionRepository{db: db}
}

// CreateVersion создает новую версию файла с номером max(существующих)+1.
// Номер вычисляется внутри самого INSERT, поэтому между чтением максимума и
// записью нет окна для другой транзакции на уровне приложения. Две строго
// одновременные вставки для одного файла все же могут вычислить одинаковый
// номер - тогда проигравшая получает нарушение уникальности (23505), которое
// транслируется в ErrVersionConflict, и вызывающая сторона повторяет попытку.
// Заполняет ID, VersionNumber и CreatedAt в переданной структуре.
func (r *postgresFileVersionRepository) CreateVersion(ctx context.Context, version *models.FileVersion) error {
	query := `INSERT INTO file_versions (file_id, creator_id, content, object_key, version_number)
	          SELECT $1, $2, $3, $4, COALESCE(MAX(version_number), 0) + 1
	          FROM file_versions WHERE file_id = $1
	          RETURNING id, version_number, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		version.FileID, version.CreatorID, version.Content, version.ObjectKey,
	).Scan(&version.ID, &version.VersionNumber, &version.CreatedAt)

	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Printf("[VersionRepo] Конфликт номера версии для файла %d, требуется повтор", version.FileID)
			return ErrVersionConflict
		}
		log.Printf("[VersionRepo] Непредвиденная ошибка при создании версии для файла %d: %v", version.FileID, err)
		return fmt.Errorf("ошибка выполнения запроса на создание версии: %w", err)
	}

	log.Printf("[VersionRepo] Версия %d (ID: %d) успешно создана для файла %d",
		version.VersionNumber, version.ID, version.FileID)
	return nil
}

// GetLatestVersion находит последнюю версию файла.
// Возвращает ErrVersionNotFound, если у файла еще нет версий.
func (r *postgresFileVersionRepository) GetLatestVersion(ctx context.Context, fileID int64) (*models.FileVersion, error) {
	query := `SELECT id, file_id, creator_id, content, object_key, version_number, created_at
	          FROM file_versions
	          WHERE file_id=$1
	          ORDER BY version_number DESC
	          LIMIT 1`
	var version models.FileVersion

	err := r.db.GetContext(ctx, &version, query, fileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVersionNotFound
		}
		log.Printf("[VersionRepo] Ошибка при поиске последней версии файла %d: %v", fileID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение последней версии: %w", err)
	}
	return &version, nil
}

// GetVersionByNumber находит конкретную версию файла по ее номеру.
func (r *postgresFileVersionRepository) GetVersionByNumber(
	ctx context.Context,
	fileID int64,
	versionNumber int,
) (*models.FileVersion, error) {
	query := `SELECT id, file_id, creator_id, content, object_key, version_number, created_at
	          FROM file_versions WHERE file_id=$1 AND version_number=$2`
	var version models.FileVersion

	err := r.db.GetContext(ctx, &version, query, fileID, versionNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[VersionRepo] Версия %d файла %d не найдена", versionNumber, fileID)
			return nil, ErrVersionNotFound
		}
		log.Printf("[VersionRepo] Ошибка при поиске версии %d файла %d: %v", versionNumber, fileID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение версии: %w", err)
	}
	return &version, nil
}

// ListVersionsByFileID возвращает историю версий файла с пагинацией (сначала новые).
func (r *postgresFileVersionRepository) ListVersionsByFileID(
	ctx context.Context,
	fileID int64,
	limit,
	offset int,
) ([]models.FileVersion, error) {
	query := `SELECT id, file_id, creator_id, content, object_key, version_number, created_at
	          FROM file_versions
	          WHERE file_id=$1
	          ORDER BY version_number DESC
	          LIMIT $2 OFFSET $3`

	versions := make([]models.FileVersion, 0, limit)
	err := r.db.SelectContext(ctx, &versions, query, fileID, limit, offset)
	if err != nil {
		log.Printf("[VersionRepo] Ошибка при получении истории версий файла %d: %v", fileID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение истории версий: %w", err)
	}

	log.Printf("[VersionRepo] Получено %d версий для файла %d (limit=%d, offset=%d)",
		len(versions), fileID, limit, offset)
	return versions, nil
}

// Кастомные ошибки репозитория версий.
var (
	ErrVersionNotFound = errors.New("версия файла не найдена")
	ErrVersionConflict = errors.New("конфликт номера версии при конкурентной записи")
)
