package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"codecollabhub/internal/models"
	"codecollabhub/internal/repository"
)

// ProjectService определяет интерфейс для работы с проектами, участниками
// и заявками. CheckAccess - единственная точка проверки доступа: и HTTP-слой,
// и сессии редактора ходят через нее.
type ProjectService interface {
	CreateProject(ctx context.Context, ownerID int64, project *models.Project) (int64, error)
	ListProjects(ctx context.Context, userID int64) ([]models.Project, error)
	GetProject(ctx context.Context, userID, projectID int64) (*models.Project, error)
	UpdateProject(ctx context.Context, userID int64, project *models.Project) error
	DeleteProject(ctx context.Context, userID, projectID int64) error

	// CheckAccess возвращает nil, если пользователь - владелец или участник
	// проекта. Отсутствующий проект считается отказом в доступе (fail closed),
	// а не отдельной ошибкой: анонимный перебор ID не должен раскрывать,
	// какие проекты существуют.
	CheckAccess(ctx context.Context, userID, projectID int64) error

	ListMembers(ctx context.Context, userID, projectID int64) ([]models.ProjectMembership, error)
	InviteMember(ctx context.Context, userID, projectID int64, username string) error
	RemoveMember(ctx context.Context, userID, projectID, memberID int64) error

	RequestToJoin(ctx context.Context, userID, projectID int64, message string) (int64, error)
	HandleRequest(ctx context.Context, userID, requestID int64, approve bool) error
}

var _ ProjectService = (*projectService)(nil)

type projectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService создает новый экземпляр сервиса проектов.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) ProjectService {
	return &projectService{projectRepo: projectRepo, userRepo: userRepo}
}

// CreateProject создает проект от имени владельца.
func (s *projectService) CreateProject(ctx context.Context, ownerID int64, project *models.Project) (int64, error) {
	project.OwnerID = ownerID
	if project.Language == "" {
		project.Language = "python"
	}
	if project.MaxMembers == 0 {
		project.MaxMembers = 5
	}

	projectID, err := s.projectRepo.CreateProject(ctx, project)
	if err != nil {
		log.Printf("[ProjectService] Ошибка создания проекта '%s': %v", project.Name, err)
		return 0, errors.New("внутренняя ошибка сервера при создании проекта")
	}
	return projectID, nil
}

// ListProjects возвращает проекты, доступные пользователю.
func (s *projectService) ListProjects(ctx context.Context, userID int64) ([]models.Project, error) {
	projects, err := s.projectRepo.ListProjectsForUser(ctx, userID)
	if err != nil {
		return nil, errors.New("внутренняя ошибка сервера при получении списка проектов")
	}
	return projects, nil
}

// GetProject возвращает проект, если у пользователя есть к нему доступ.
// Публичные проекты видны всем аутентифицированным пользователям.
func (s *projectService) GetProject(ctx context.Context, userID, projectID int64) (*models.Project, error) {
	project, err := s.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, errors.New("внутренняя ошибка сервера при получении проекта")
	}

	if project.IsPublic {
		return project, nil
	}
	if err = s.CheckAccess(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return project, nil
}

// UpdateProject обновляет проект. Разрешено только владельцу.
func (s *projectService) UpdateProject(ctx context.Context, userID int64, project *models.Project) error {
	if err := s.requireOwner(ctx, userID, project.ID); err != nil {
		return err
	}
	if err := s.projectRepo.UpdateProject(ctx, project); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return errors.New("внутренняя ошибка сервера при обновлении проекта")
	}
	return nil
}

// DeleteProject удаляет проект. Разрешено только владельцу.
func (s *projectService) DeleteProject(ctx context.Context, userID, projectID int64) error {
	if err := s.requireOwner(ctx, userID, projectID); err != nil {
		return err
	}
	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return errors.New("внутренняя ошибка сервера при удалении проекта")
	}
	return nil
}

// CheckAccess проверяет доступ пользователя к проекту.
func (s *projectService) CheckAccess(ctx context.Context, userID, projectID int64) error {
	hasAccess, err := s.projectRepo.HasAccess(ctx, userID, projectID)
	if err != nil {
		// Любая ошибка проверки трактуется как отказ: лучше отклонить
		// легитимное подключение, чем пустить постороннего.
		log.Printf("[ProjectService] Ошибка проверки доступа пользователя %d к проекту %d: %v",
			userID, projectID, err)
		return ErrAccessDenied
	}
	if !hasAccess {
		log.Printf("[ProjectService] Пользователю %d отказано в доступе к проекту %d", userID, projectID)
		return ErrAccessDenied
	}
	return nil
}

// ListMembers возвращает участников проекта.
func (s *projectService) ListMembers(ctx context.Context, userID, projectID int64) ([]models.ProjectMembership, error) {
	if err := s.CheckAccess(ctx, userID, projectID); err != nil {
		return nil, err
	}
	members, err := s.projectRepo.ListMembers(ctx, projectID)
	if err != nil {
		return nil, errors.New("внутренняя ошибка сервера при получении участников")
	}
	return members, nil
}

// InviteMember добавляет пользователя по имени. Разрешено только владельцу,
// с учетом ограничения на количество участников.
func (s *projectService) InviteMember(ctx context.Context, userID, projectID int64, username string) error {
	project, err := s.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return errors.New("внутренняя ошибка сервера при получении проекта")
	}
	if project.OwnerID != userID {
		return ErrAccessDenied
	}

	invitee, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return errors.New("внутренняя ошибка сервера при поиске пользователя")
	}

	count, err := s.projectRepo.CountMembers(ctx, projectID)
	if err != nil {
		return errors.New("внутренняя ошибка сервера при подсчете участников")
	}
	if count >= project.MaxMembers {
		return ErrProjectFull
	}

	if err = s.projectRepo.AddMember(ctx, projectID, invitee.ID, models.RoleMember); err != nil {
		if errors.Is(err, repository.ErrAlreadyMember) {
			return ErrAlreadyMember
		}
		return errors.New("внутренняя ошибка сервера при добавлении участника")
	}

	log.Printf("[ProjectService] Пользователь '%s' приглашен в проект %d", username, projectID)
	return nil
}

// RemoveMember исключает участника. Разрешено только владельцу; владельца
// исключить нельзя.
func (s *projectService) RemoveMember(ctx context.Context, userID, projectID, memberID int64) error {
	if err := s.requireOwner(ctx, userID, projectID); err != nil {
		return err
	}
	if memberID == userID {
		return ErrCannotRemoveOwner
	}
	if err := s.projectRepo.RemoveMember(ctx, projectID, memberID); err != nil {
		return errors.New("внутренняя ошибка сервера при удалении участника")
	}
	return nil
}

// RequestToJoin создает заявку на вступление в проект.
func (s *projectService) RequestToJoin(ctx context.Context, userID, projectID int64, message string) (int64, error) {
	project, err := s.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return 0, ErrProjectNotFound
		}
		return 0, errors.New("внутренняя ошибка сервера при получении проекта")
	}
	if project.OwnerID == userID {
		return 0, ErrAlreadyMember
	}

	request := &models.ProjectRequest{
		ProjectID:   projectID,
		RequesterID: userID,
		Message:     message,
	}
	requestID, err := s.projectRepo.CreateRequest(ctx, request)
	if err != nil {
		if errors.Is(err, repository.ErrRequestExists) {
			return 0, ErrRequestExists
		}
		return 0, errors.New("внутренняя ошибка сервера при создании заявки")
	}
	return requestID, nil
}

// HandleRequest одобряет или отклоняет заявку. Разрешено только владельцу
// проекта. При одобрении проверяется ограничение на количество участников.
func (s *projectService) HandleRequest(ctx context.Context, userID, requestID int64, approve bool) error {
	request, err := s.projectRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return ErrRequestNotFound
		}
		return errors.New("внутренняя ошибка сервера при получении заявки")
	}
	if request.Status != models.RequestStatusPending {
		return ErrRequestHandled
	}

	project, err := s.projectRepo.GetProjectByID(ctx, request.ProjectID)
	if err != nil {
		return errors.New("внутренняя ошибка сервера при получении проекта")
	}
	if project.OwnerID != userID {
		return ErrAccessDenied
	}

	if !approve {
		if err = s.projectRepo.UpdateRequestStatus(ctx, requestID, models.RequestStatusRejected); err != nil {
			return errors.New("внутренняя ошибка сервера при обновлении заявки")
		}
		return nil
	}

	count, err := s.projectRepo.CountMembers(ctx, request.ProjectID)
	if err != nil {
		return errors.New("внутренняя ошибка сервера при подсчете участников")
	}
	if count >= project.MaxMembers {
		return ErrProjectFull
	}

	if err = s.projectRepo.AddMember(ctx, request.ProjectID, request.RequesterID, models.RoleMember); err != nil &&
		!errors.Is(err, repository.ErrAlreadyMember) {
		return errors.New("внутренняя ошибка сервера при добавлении участника")
	}
	if err = s.projectRepo.UpdateRequestStatus(ctx, requestID, models.RequestStatusApproved); err != nil {
		return errors.New("внутренняя ошибка сервера при обновлении заявки")
	}

	log.Printf("[ProjectService] Заявка %d одобрена, пользователь %d добавлен в проект %d",
		requestID, request.RequesterID, request.ProjectID)
	return nil
}

// requireOwner возвращает ErrAccessDenied, если пользователь не владелец проекта.
func (s *projectService) requireOwner(ctx context.Context, userID, projectID int64) error {
	project, err := s.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("ошибка получения проекта: %w", err)
	}
	if project.OwnerID != userID {
		return ErrAccessDenied
	}
	return nil
}

// Кастомные ошибки сервиса проектов.
var (
	ErrProjectNotFound   = errors.New("проект не найден")
	ErrAccessDenied      = errors.New("доступ к проекту запрещен")
	ErrUserNotFound      = errors.New("пользователь не найден")
	ErrAlreadyMember     = errors.New("пользователь уже состоит в проекте")
	ErrProjectFull       = errors.New("достигнуто максимальное количество участников")
	ErrCannotRemoveOwner = errors.New("владельца проекта нельзя исключить")
	ErrRequestExists     = errors.New("заявка на вступление уже существует")
	ErrRequestNotFound   = errors.New("заявка на вступление не найдена")
	ErrRequestHandled    = errors.New("заявка уже обработана")
)
