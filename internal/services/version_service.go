package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"codecollabhub/internal/models"
	"codecollabhub/internal/repository"
	"codecollabhub/internal/storage"
)

// VersionService реализует журнал версий файлов: только добавление в конец,
// номера версий уникальны и строго возрастают в пределах файла.
//
// Latest возвращает (nil, nil), если у файла еще нет версий.
// Append вычисляет следующий номер и записывает новую неизменяемую версию;
// гарантия монотонности сохраняется при произвольном количестве конкурентных
// вызовов для одного файла (см. комментарий к Append).
type VersionService interface {
	Latest(ctx context.Context, fileID int64) (*models.FileVersion, error)
	Append(ctx context.Context, fileID, userID int64, content string) (*models.FileVersion, error)
	History(ctx context.Context, fileID int64, limit, offset int) ([]models.FileVersion, error)
	GetVersion(ctx context.Context, fileID int64, versionNumber int) (*models.FileVersion, error)
}

const (
	// Содержимое крупнее порога уходит в объектное хранилище,
	// в строке версии остается только ключ объекта.
	snapshotThreshold = 64 * 1024

	// Количество повторов Append при конфликте номера версии.
	// Конфликт возможен только при строго одновременной записи в один файл,
	// поэтому пары попыток на конкурента достаточно.
	maxAppendRetries = 5

	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

var _ VersionService = (*versionService)(nil)

type versionService struct {
	versionRepo repository.FileVersionRepository
	fileRepo    repository.FileRepository
	snapshots   storage.SnapshotStorage
}

// NewVersionService создает новый экземпляр сервиса версий.
func NewVersionService(
	versionRepo repository.FileVersionRepository,
	fileRepo repository.FileRepository,
	snapshots storage.SnapshotStorage,
) VersionService {
	return &versionService{
		versionRepo: versionRepo,
		fileRepo:    fileRepo,
		snapshots:   snapshots,
	}
}

// Latest возвращает последнюю версию файла или (nil, nil), если версий нет.
func (s *versionService) Latest(ctx context.Context, fileID int64) (*models.FileVersion, error) {
	version, err := s.versionRepo.GetLatestVersion(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrVersionNotFound) {
			return nil, nil // У файла еще нет версий
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}
	return s.resolveContent(ctx, version)
}

// Append записывает новую версию файла с номером max(существующих)+1.
//
// Номер вычисляется атомарно внутри INSERT в репозитории; если две записи
// для одного файла все же столкнулись (уникальный индекс вернул 23505),
// проигравшая повторяется - в результате пара конкурентных Append для файла
// с последней версией N всегда дает номера {N+1, N+2} без дубликатов.
func (s *versionService) Append(ctx context.Context, fileID, userID int64, content string) (*models.FileVersion, error) {
	exists, err := s.fileRepo.FileExists(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}
	if !exists {
		log.Printf("[VersionService] Попытка записи версии несуществующего файла %d", fileID)
		return nil, ErrFileNotFound
	}

	storedContent := content
	var objectKey *string
	if len(content) > snapshotThreshold && s.snapshots != nil {
		key := fmt.Sprintf("files/%d/%s", fileID, uuid.NewString())
		if err = s.snapshots.UploadSnapshot(ctx, key, content); err != nil {
			log.Printf("[VersionService] Ошибка выгрузки снимка для файла %d: %v", fileID, err)
			return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
		}
		objectKey = &key
		storedContent = ""
	}

	for attempt := 1; attempt <= maxAppendRetries; attempt++ {
		version := &models.FileVersion{
			FileID:    fileID,
			CreatorID: userID,
			Content:   storedContent,
			ObjectKey: objectKey,
		}
		err = s.versionRepo.CreateVersion(ctx, version)
		if err == nil {
			// Наружу версия всегда уходит с полным содержимым,
			// независимо от того, где оно хранится.
			version.Content = content
			return version, nil
		}
		if errors.Is(err, repository.ErrVersionConflict) {
			log.Printf("[VersionService] Конфликт номера версии файла %d, попытка %d/%d",
				fileID, attempt, maxAppendRetries)
			continue
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}

	log.Printf("[VersionService] Исчерпаны повторы записи версии файла %d", fileID)
	return nil, fmt.Errorf("%w: конфликт номера версии не разрешился за %d попыток",
		ErrPersistenceUnavailable, maxAppendRetries)
}

// History возвращает историю версий файла (сначала новые).
func (s *versionService) History(ctx context.Context, fileID int64, limit, offset int) ([]models.FileVersion, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	versions, err := s.versionRepo.ListVersionsByFileID(ctx, fileID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}
	return versions, nil
}

// GetVersion возвращает конкретную версию файла по ее номеру.
func (s *versionService) GetVersion(ctx context.Context, fileID int64, versionNumber int) (*models.FileVersion, error) {
	version, err := s.versionRepo.GetVersionByNumber(ctx, fileID, versionNumber)
	if err != nil {
		if errors.Is(err, repository.ErrVersionNotFound) {
			return nil, ErrVersionNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}
	return s.resolveContent(ctx, version)
}

// resolveContent подтягивает содержимое из объектного хранилища,
// если версия хранит его там.
func (s *versionService) resolveContent(ctx context.Context, version *models.FileVersion) (*models.FileVersion, error) {
	if version.ObjectKey == nil {
		return version, nil
	}
	if s.snapshots == nil {
		return nil, fmt.Errorf("%w: версия %d ссылается на снимок, но хранилище снимков не настроено",
			ErrPersistenceUnavailable, version.ID)
	}
	content, err := s.snapshots.DownloadSnapshot(ctx, *version.ObjectKey)
	if err != nil {
		log.Printf("[VersionService] Ошибка чтения снимка '%s': %v", *version.ObjectKey, err)
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}
	version.Content = content
	return version, nil
}

// Кастомные ошибки сервиса версий.
var (
	ErrFileNotFound           = errors.New("файл не найден")
	ErrVersionNotFound        = errors.New("версия файла не найдена")
	ErrPersistenceUnavailable = errors.New("хранилище версий недоступно")
)
