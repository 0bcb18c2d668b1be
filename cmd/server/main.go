package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // Драйвер миграций
	_ "github.com/golang-migrate/migrate/v4/source/file"       // Источник миграций
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Драйвер PostgreSQL

	"codecollabhub/internal/handlers"
	appmiddleware "codecollabhub/internal/middleware"
	"codecollabhub/internal/realtime"
	"codecollabhub/internal/repository"
	"codecollabhub/internal/services"
	"codecollabhub/internal/storage"
)

const (
	defaultReadTimeout = 10 * time.Second
	defaultIdleTimeout = 60 * time.Second
	corsMaxAge         = 300
)

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db             *sqlx.DB
	authHandler    *handlers.AuthHandler
	projectHandler *handlers.ProjectHandler
	fileHandler    *handlers.FileHandler
	versionHandler *handlers.VersionHandler
	taskHandler    *handlers.TaskHandler
	editorHandler  *handlers.EditorHandler
	authenticator  func(http.Handler) http.Handler
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера CodeCollabHub...")

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Инициализация зависимостей
	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	// Отложенное закрытие соединения с БД
	defer func() {
		if closeErr := deps.db.Close(); closeErr != nil {
			log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
		}
	}()

	// Применение миграций
	if err = runMigrations(cfg.MigrationsPath, cfg.DatabaseDSN); err != nil {
		return fmt.Errorf("ошибка применения миграций: %w", err)
	}

	// Настройка роутера
	r := setupRouter(deps)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: defaultReadTimeout,
		IdleTimeout: defaultIdleTimeout,
		// WriteTimeout не задаем: websocket-соединения живут часами,
		// а после апгрейда дедлайнами управляет сама сессия.
	}

	// С сертификатом и ключом поднимаем HTTPS, без них - обычный HTTP
	// (например, за терминирующим TLS прокси).
	if cfg.CertFile != "" && cfg.KeyFile != "" {
		log.Printf("Запуск HTTPS-сервера на порту %s...", cfg.Port)
		err = server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
	} else {
		log.Printf("Запуск HTTP-сервера на порту %s...", cfg.Port)
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска сервера: %w", err)
	}
	return nil
}

// runMigrations применяет миграции базы данных.
func runMigrations(migrationsPath, dsn string) error {
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dsn)
	if err != nil {
		return fmt.Errorf("ошибка создания мигратора: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			log.Printf("Ошибка закрытия мигратора: source=%v db=%v", srcErr, dbErr)
		}
	}()

	// Если предыдущий запуск миграций оборвался, снимаем dirty-флаг
	// и повторяем с последней подтвержденной версии.
	if version, dirty, vErr := m.Version(); vErr == nil && dirty {
		log.Printf("Обнаружено прерванное состояние миграций (версия %d), выполняем сброс", version)
		if forceErr := m.Force(int(version)); forceErr != nil {
			return fmt.Errorf("ошибка сброса состояния миграций: %w", forceErr)
		}
	}

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("Миграции не требуются, схема актуальна")
			return nil
		}
		return fmt.Errorf("ошибка применения миграций: %w", err)
	}
	log.Println("Миграции успешно применены")
	return nil
}

// Функция подключения к БД, переопределяется в тестах.
var newPostgresDB = repository.NewPostgresDB

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{}
	var err error

	// 1. Подключение к БД
	deps.db, err = newPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}
	log.Println("Соединение с БД успешно установлено.")

	// 2. Инициализация клиента MinIO для снимков крупных версий
	minioCfg := storage.MinioConfig{
		Endpoint:        cfg.MinioEndpoint,
		AccessKeyID:     cfg.MinioUser,
		SecretAccessKey: cfg.MinioPassword,
		UseSSL:          false,
		BucketName:      cfg.MinioBucket,
	}
	snapshots, err := storage.NewMinioClient(minioCfg)
	if err != nil {
		if dbCloseErr := deps.db.Close(); dbCloseErr != nil {
			log.Printf("Ошибка закрытия соединения с БД при ошибке MinIO: %v", dbCloseErr)
		}
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	// 3. Создание репозиториев
	userRepo := repository.NewPostgresUserRepository(deps.db)
	projectRepo := repository.NewPostgresProjectRepository(deps.db)
	fileRepo := repository.NewPostgresFileRepository(deps.db)
	versionRepo := repository.NewPostgresFileVersionRepository(deps.db)
	taskRepo := repository.NewPostgresTaskRepository(deps.db)

	// 4. Создание сервисов
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	projectService := services.NewProjectService(projectRepo, userRepo)
	versionService := services.NewVersionService(versionRepo, fileRepo, snapshots)
	fileService := services.NewFileService(fileRepo, projectService)
	taskService := services.NewTaskService(taskRepo, projectService)

	// 5. Реестр комнат редактора (в пределах одного процесса)
	registry := realtime.NewInProcessRegistry()

	// 6. Создание обработчиков
	deps.authHandler = handlers.NewAuthHandler(authService)
	deps.projectHandler = handlers.NewProjectHandler(projectService)
	deps.fileHandler = handlers.NewFileHandler(fileService)
	deps.versionHandler = handlers.NewVersionHandler(versionService, fileService)
	deps.taskHandler = handlers.NewTaskHandler(taskService)
	deps.editorHandler = handlers.NewEditorHandler(cfg.JWTSecret, projectService, registry, versionService)
	deps.authenticator = appmiddleware.Authenticator(cfg.JWTSecret)

	return deps, nil
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(deps *dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           corsMaxAge,
	}))

	// --- Маршруты --- //
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	// Websocket-маршрут редактора намеренно вне группы аутентификации:
	// отказ анонимному клиенту доставляется websocket-статусом после
	// рукопожатия, а не HTTP 401.
	r.Get("/ws/projects/{projectID}/files/{fileID}", deps.editorHandler.Serve)

	// Определяем базовый маршрут /api
	r.Route("/api", func(r chi.Router) {
		// Публичные маршруты (регистрация, вход)
		r.Post("/register", deps.authHandler.Register)
		r.Post("/login", deps.authHandler.Login)

		// Приватные маршруты (требуют аутентификации)
		r.Group(func(r chi.Router) {
			r.Use(deps.authenticator)

			// Профиль текущего пользователя
			r.Get("/profile", deps.authHandler.Profile)
			r.Put("/profile", deps.authHandler.UpdateProfile)

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", deps.projectHandler.Create)
				r.Get("/", deps.projectHandler.List)

				r.Route("/{projectID}", func(r chi.Router) {
					r.Get("/", deps.projectHandler.Get)
					r.Put("/", deps.projectHandler.Update)
					r.Delete("/", deps.projectHandler.Delete)

					r.Get("/members", deps.projectHandler.ListMembers)
					r.Post("/members", deps.projectHandler.InviteMember)
					r.Delete("/members/{userID}", deps.projectHandler.RemoveMember)

					r.Post("/join", deps.projectHandler.RequestToJoin)

					r.Route("/files", func(r chi.Router) {
						r.Post("/", deps.fileHandler.Create)
						r.Get("/", deps.fileHandler.List)

						r.Route("/{fileID}", func(r chi.Router) {
							r.Get("/", deps.fileHandler.Get)
							r.Delete("/", deps.fileHandler.Delete)

							r.Get("/history", deps.versionHandler.History)
							r.Get("/latest", deps.versionHandler.Latest)
							r.Get("/version", deps.versionHandler.GetByNumber)
							r.Post("/save", deps.versionHandler.Save)
						})
					})

					r.Route("/tasks", func(r chi.Router) {
						r.Post("/", deps.taskHandler.Create)
						r.Get("/", deps.taskHandler.List)
						r.Get("/{taskID}", deps.taskHandler.Get)
						r.Put("/{taskID}", deps.taskHandler.Update)
						r.Delete("/{taskID}", deps.taskHandler.Delete)
					})
				})
			})

			r.Post("/requests/{requestID}", deps.projectHandler.HandleRequest)
		})
	})
	return r
}
