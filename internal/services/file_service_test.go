package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codecollabhub/internal/mocks"
	"codecollabhub/internal/models"
	"codecollabhub/internal/repository"
	"codecollabhub/internal/services"
)

// newFileService собирает сервис файлов поверх моков репозиториев.
// Проверка доступа идет через настоящий сервис проектов.
func newFileService(t *testing.T) (services.FileService, *mocks.FileRepository, *mocks.ProjectRepository) {
	t.Helper()
	fileRepo := new(mocks.FileRepository)
	projectRepo := new(mocks.ProjectRepository)
	projects := services.NewProjectService(projectRepo, new(mocks.UserRepository))
	svc := services.NewFileService(fileRepo, projects)
	t.Cleanup(func() {
		fileRepo.AssertExpectations(t)
		projectRepo.AssertExpectations(t)
	})
	return svc, fileRepo, projectRepo
}

func TestFileService_CreateFile(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)
	file := &models.CodeFile{ProjectID: 1, Filename: "main.py"}

	t.Run("Успешное создание", func(t *testing.T) {
		svc, fileRepo, projectRepo := newFileService(t)
		projectRepo.EXPECT().HasAccess(ctx, userID, file.ProjectID).Return(true, nil).Once()
		fileRepo.EXPECT().CreateFile(ctx, file).Return(int64(7), nil).Once()

		fileID, err := svc.CreateFile(ctx, userID, file)
		require.NoError(t, err)
		assert.Equal(t, int64(7), fileID)
	})

	t.Run("Нет доступа к проекту", func(t *testing.T) {
		svc, _, projectRepo := newFileService(t)
		projectRepo.EXPECT().HasAccess(ctx, userID, file.ProjectID).Return(false, nil).Once()

		_, err := svc.CreateFile(ctx, userID, file)
		require.ErrorIs(t, err, services.ErrAccessDenied)
	})

	t.Run("Имя файла занято", func(t *testing.T) {
		svc, fileRepo, projectRepo := newFileService(t)
		projectRepo.EXPECT().HasAccess(ctx, userID, file.ProjectID).Return(true, nil).Once()
		fileRepo.EXPECT().CreateFile(ctx, file).Return(int64(0), repository.ErrFilenameTaken).Once()

		_, err := svc.CreateFile(ctx, userID, file)
		require.ErrorIs(t, err, services.ErrFilenameTaken)
	})
}

func TestFileService_GetFile(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)
	projectID := int64(1)
	fileID := int64(7)

	t.Run("Файл найден", func(t *testing.T) {
		svc, fileRepo, projectRepo := newFileService(t)
		projectRepo.EXPECT().HasAccess(ctx, userID, projectID).Return(true, nil).Once()
		fileRepo.EXPECT().GetFileByID(ctx, fileID).
			Return(&models.CodeFile{ID: fileID, ProjectID: projectID, Filename: "main.py"}, nil).Once()

		file, err := svc.GetFile(ctx, userID, projectID, fileID)
		require.NoError(t, err)
		assert.Equal(t, "main.py", file.Filename)
	})

	t.Run("Файл из чужого проекта не отдается", func(t *testing.T) {
		svc, fileRepo, projectRepo := newFileService(t)
		projectRepo.EXPECT().HasAccess(ctx, userID, projectID).Return(true, nil).Once()
		fileRepo.EXPECT().GetFileByID(ctx, fileID).
			Return(&models.CodeFile{ID: fileID, ProjectID: 999, Filename: "secret.py"}, nil).Once()

		file, err := svc.GetFile(ctx, userID, projectID, fileID)
		require.ErrorIs(t, err, services.ErrFileNotFound)
		assert.Nil(t, file)
	})

	t.Run("Файл не найден", func(t *testing.T) {
		svc, fileRepo, projectRepo := newFileService(t)
		projectRepo.EXPECT().HasAccess(ctx, userID, projectID).Return(true, nil).Once()
		fileRepo.EXPECT().GetFileByID(ctx, fileID).
			Return(nil, repository.ErrFileNotFound).Once()

		_, err := svc.GetFile(ctx, userID, projectID, fileID)
		require.ErrorIs(t, err, services.ErrFileNotFound)
	})
}

func TestFileService_ListFiles(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)
	projectID := int64(1)

	svc, fileRepo, projectRepo := newFileService(t)
	projectRepo.EXPECT().HasAccess(ctx, userID, projectID).Return(true, nil).Once()
	fileRepo.EXPECT().ListFilesByProject(ctx, projectID).
		Return([]models.CodeFile{{Filename: "a.py"}, {Filename: "b.py"}}, nil).Once()

	files, err := svc.ListFiles(ctx, userID, projectID)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestFileService_DeleteFile(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)
	projectID := int64(1)
	fileID := int64(7)

	t.Run("Успешное удаление", func(t *testing.T) {
		svc, fileRepo, projectRepo := newFileService(t)
		projectRepo.EXPECT().HasAccess(ctx, userID, projectID).Return(true, nil).Once()
		fileRepo.EXPECT().GetFileByID(ctx, fileID).
			Return(&models.CodeFile{ID: fileID, ProjectID: projectID}, nil).Once()
		fileRepo.EXPECT().DeleteFile(ctx, fileID).Return(nil).Once()

		require.NoError(t, svc.DeleteFile(ctx, userID, projectID, fileID))
	})

	t.Run("Удаление чужого файла", func(t *testing.T) {
		svc, fileRepo, projectRepo := newFileService(t)
		projectRepo.EXPECT().HasAccess(ctx, userID, projectID).Return(true, nil).Once()
		fileRepo.EXPECT().GetFileByID(ctx, fileID).
			Return(&models.CodeFile{ID: fileID, ProjectID: 999}, nil).Once()

		err := svc.DeleteFile(ctx, userID, projectID, fileID)
		require.ErrorIs(t, err, services.ErrFileNotFound)
	})

	t.Run("Ошибка репозитория при удалении", func(t *testing.T) {
		svc, fileRepo, projectRepo := newFileService(t)
		projectRepo.EXPECT().HasAccess(ctx, userID, projectID).Return(true, nil).Once()
		fileRepo.EXPECT().GetFileByID(ctx, fileID).
			Return(&models.CodeFile{ID: fileID, ProjectID: projectID}, nil).Once()
		fileRepo.EXPECT().DeleteFile(ctx, fileID).Return(errors.New("db error")).Once()

		err := svc.DeleteFile(ctx, userID, projectID, fileID)
		require.Error(t, err)
	})
}
