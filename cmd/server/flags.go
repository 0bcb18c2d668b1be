package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

const (
	// Значения по умолчанию для локальной разработки (docker-compose).
	defaultServerPort     = "8080"
	defaultMigrationsPath = "migrations"
	defaultMinioEndpoint  = "localhost:9000"
	defaultMinioUser      = "minioadmin"
	defaultMinioPassword  = "minioadmin"
	defaultMinioBucket    = "codecollabhub-snapshots"

	// Переменные окружения.
	envServerPort     = "SERVER_PORT"
	envTLSCertFile    = "TLS_CERT_FILE"
	envTLSKeyFile     = "TLS_KEY_FILE"
	envDatabaseDSN    = "DATABASE_DSN"
	envJWTSecret      = "JWT_SECRET" //nolint:gosec // Имя переменной окружения, не секрет
	envMigrationsPath = "MIGRATIONS_PATH"
	envMinioEndpoint  = "MINIO_ENDPOINT"
	envMinioUser      = "MINIO_USER"
	envMinioPassword  = "MINIO_PASSWORD"
	envMinioBucket    = "MINIO_BUCKET"
)

// config хранит конфигурацию сервера.
type config struct {
	Port           string
	CertFile       string
	KeyFile        string
	DatabaseDSN    string
	JWTSecret      string
	MigrationsPath string
	MinioEndpoint  string
	MinioUser      string
	MinioPassword  string
	MinioBucket    string
}

// parseFlags разбирает флаги и переменные окружения, возвращает config или ошибку.
// Приоритет: флаг, затем переменная окружения, затем значение по умолчанию.
func parseFlags() (*config, error) {
	cfg := &config{}

	// Определяем флаги
	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт для запуска сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.CertFile, "cert-file", "",
		fmt.Sprintf("Путь к файлу TLS-сертификата, опционально (env: %s)", envTLSCertFile))
	flag.StringVar(&cfg.KeyFile, "key-file", "",
		fmt.Sprintf("Путь к файлу TLS-ключа, опционально (env: %s)", envTLSKeyFile))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к базе данных (env: %s)", envDatabaseDSN))
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", "",
		fmt.Sprintf("Секрет для подписи JWT токенов (env: %s)", envJWTSecret))
	flag.StringVar(&cfg.MigrationsPath, "migrations-path", "",
		fmt.Sprintf("Путь к каталогу миграций (env: %s, default: %s)", envMigrationsPath, defaultMigrationsPath))
	flag.StringVar(&cfg.MinioEndpoint, "minio-endpoint", "",
		fmt.Sprintf("Адрес MinIO (env: %s, default: %s)", envMinioEndpoint, defaultMinioEndpoint))
	flag.StringVar(&cfg.MinioUser, "minio-user", "",
		fmt.Sprintf("Пользователь MinIO (env: %s, default: %s)", envMinioUser, defaultMinioUser))
	flag.StringVar(&cfg.MinioPassword, "minio-password", "",
		fmt.Sprintf("Пароль MinIO (env: %s)", envMinioPassword))
	flag.StringVar(&cfg.MinioBucket, "minio-bucket", "",
		fmt.Sprintf("Бакет MinIO для снимков версий (env: %s, default: %s)", envMinioBucket, defaultMinioBucket))

	// Парсим флаги
	flag.Parse()

	// Применяем переменные окружения, если флаги не заданы
	applyEnv(&cfg.Port, envServerPort, defaultServerPort)
	applyEnv(&cfg.CertFile, envTLSCertFile, "")
	applyEnv(&cfg.KeyFile, envTLSKeyFile, "")
	applyEnv(&cfg.DatabaseDSN, envDatabaseDSN, "")
	applyEnv(&cfg.JWTSecret, envJWTSecret, "")
	applyEnv(&cfg.MigrationsPath, envMigrationsPath, defaultMigrationsPath)
	applyEnv(&cfg.MinioEndpoint, envMinioEndpoint, defaultMinioEndpoint)
	applyEnv(&cfg.MinioUser, envMinioUser, defaultMinioUser)
	applyEnv(&cfg.MinioPassword, envMinioPassword, defaultMinioPassword)
	applyEnv(&cfg.MinioBucket, envMinioBucket, defaultMinioBucket)

	// Проверяем обязательные параметры
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("не указана строка подключения к БД (--database-dsn или " + envDatabaseDSN + ")")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("не указан секрет JWT (--jwt-secret или " + envJWTSecret + ")")
	}
	// TLS опционален, но сертификат и ключ должны идти парой
	if (cfg.CertFile == "") != (cfg.KeyFile == "") {
		return nil, errors.New("TLS-сертификат и ключ должны быть указаны вместе")
	}

	return cfg, nil
}

// applyEnv подставляет в dst переменную окружения или значение по умолчанию.
func applyEnv(dst *string, envKey, fallback string) {
	if *dst != "" {
		return
	}
	if value, ok := os.LookupEnv(envKey); ok {
		*dst = value
		return
	}
	*dst = fallback
}
