package services

import (
	"context"
	"errors"
	"log"

	"codecollabhub/internal/models"
	"codecollabhub/internal/repository"
)

// FileService определяет интерфейс для работы с файлами проектов.
// Все методы принимают userID и сами проверяют доступ к проекту.
type FileService interface {
	CreateFile(ctx context.Context, userID int64, file *models.CodeFile) (int64, error)
	GetFile(ctx context.Context, userID, projectID, fileID int64) (*models.CodeFile, error)
	ListFiles(ctx context.Context, userID, projectID int64) ([]models.CodeFile, error)
	DeleteFile(ctx context.Context, userID, projectID, fileID int64) error
}

var _ FileService = (*fileService)(nil)

type fileService struct {
	fileRepo repository.FileRepository
	projects ProjectService
}

// NewFileService создает новый экземпляр сервиса файлов.
func NewFileService(fileRepo repository.FileRepository, projects ProjectService) FileService {
	return &fileService{fileRepo: fileRepo, projects: projects}
}

// CreateFile создает файл в проекте.
func (s *fileService) CreateFile(ctx context.Context, userID int64, file *models.CodeFile) (int64, error) {
	if err := s.projects.CheckAccess(ctx, userID, file.ProjectID); err != nil {
		return 0, err
	}

	fileID, err := s.fileRepo.CreateFile(ctx, file)
	if err != nil {
		if errors.Is(err, repository.ErrFilenameTaken) {
			return 0, ErrFilenameTaken
		}
		log.Printf("[FileService] Ошибка создания файла '%s': %v", file.Filename, err)
		return 0, errors.New("внутренняя ошибка сервера при создании файла")
	}
	return fileID, nil
}

// GetFile возвращает файл проекта, проверяя его принадлежность проекту.
func (s *fileService) GetFile(ctx context.Context, userID, projectID, fileID int64) (*models.CodeFile, error) {
	if err := s.projects.CheckAccess(ctx, userID, projectID); err != nil {
		return nil, err
	}

	file, err := s.fileRepo.GetFileByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, errors.New("внутренняя ошибка сервера при получении файла")
	}
	// Файл из чужого проекта не отдаем, даже если ID угадан.
	if file.ProjectID != projectID {
		return nil, ErrFileNotFound
	}
	return file, nil
}

// ListFiles возвращает файлы проекта.
func (s *fileService) ListFiles(ctx context.Context, userID, projectID int64) ([]models.CodeFile, error) {
	if err := s.projects.CheckAccess(ctx, userID, projectID); err != nil {
		return nil, err
	}

	files, err := s.fileRepo.ListFilesByProject(ctx, projectID)
	if err != nil {
		return nil, errors.New("внутренняя ошибка сервера при получении списка файлов")
	}
	return files, nil
}

// DeleteFile удаляет файл проекта вместе с его версиями.
func (s *fileService) DeleteFile(ctx context.Context, userID, projectID, fileID int64) error {
	if _, err := s.GetFile(ctx, userID, projectID, fileID); err != nil {
		return err
	}
	if err := s.fileRepo.DeleteFile(ctx, fileID); err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return ErrFileNotFound
		}
		return errors.New("внутренняя ошибка сервера при удалении файла")
	}
	return nil
}

// Кастомная ошибка сервиса файлов.
var (
	ErrFilenameTaken = errors.New("файл с таким именем уже существует в проекте")
)
