package main

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Вспомогательная функция для сброса флагов между тестами.
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags(t *testing.T) {
	// Сохраняем оригинальные аргументы командной строки
	originalArgs := os.Args

	// Сохраняем и очищаем переменные окружения
	envKeys := []string{
		envServerPort, envTLSCertFile, envTLSKeyFile, envDatabaseDSN,
		envJWTSecret, envMigrationsPath,
		envMinioEndpoint, envMinioUser, envMinioPassword, envMinioBucket,
	}
	originalEnv := make(map[string]string, len(envKeys))
	for _, k := range envKeys {
		originalEnv[k] = os.Getenv(k)
		os.Unsetenv(k)
	}
	defer func() {
		for k, v := range originalEnv {
			os.Setenv(k, v)
		}
	}()

	t.Run("Все обязательные параметры из флагов", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()

		os.Args = []string{"cmd", "-port=9000", "-database-dsn=postgres://...", "-jwt-secret=s3cret"}
		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, "postgres://...", cfg.DatabaseDSN)
		assert.Equal(t, "s3cret", cfg.JWTSecret)
		// Необязательные параметры получают значения по умолчанию
		assert.Equal(t, defaultMigrationsPath, cfg.MigrationsPath)
		assert.Equal(t, defaultMinioEndpoint, cfg.MinioEndpoint)
		assert.Equal(t, defaultMinioBucket, cfg.MinioBucket)
		assert.Empty(t, cfg.CertFile)
		assert.Empty(t, cfg.KeyFile)
	})

	t.Run("Все параметры из переменных окружения", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd"} // Сбрасываем аргументы командной строки

		os.Setenv(envServerPort, "9090")
		os.Setenv(envDatabaseDSN, "env_postgres://...")
		os.Setenv(envJWTSecret, "env-secret")
		os.Setenv(envMinioEndpoint, "minio:9000")
		defer func() {
			os.Unsetenv(envServerPort)
			os.Unsetenv(envDatabaseDSN)
			os.Unsetenv(envJWTSecret)
			os.Unsetenv(envMinioEndpoint)
		}()

		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "env_postgres://...", cfg.DatabaseDSN)
		assert.Equal(t, "env-secret", cfg.JWTSecret)
		assert.Equal(t, "minio:9000", cfg.MinioEndpoint)
	})

	t.Run("Порт по умолчанию", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd", "-database-dsn=postgres://...", "-jwt-secret=s3cret"}

		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, defaultServerPort, cfg.Port)
	})

	t.Run("Отсутствует обязательный параметр database-dsn", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd", "-jwt-secret=s3cret"}

		_, err := parseFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "не указана строка подключения к БД")
	})

	t.Run("Отсутствует обязательный параметр jwt-secret", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd", "-database-dsn=postgres://..."}

		_, err := parseFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "не указан секрет JWT")
	})

	t.Run("Сертификат без ключа - ошибка", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd", "-database-dsn=postgres://...", "-jwt-secret=s3cret", "-cert-file=cert.pem"}

		_, err := parseFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "должны быть указаны вместе")
	})

	t.Run("Сертификат вместе с ключом - успех", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{
			"cmd",
			"-database-dsn=postgres://...",
			"-jwt-secret=s3cret",
			"-cert-file=cert.pem",
			"-key-file=key.pem",
		}

		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "cert.pem", cfg.CertFile)
		assert.Equal(t, "key.pem", cfg.KeyFile)
	})

	t.Run("Флаги переопределяют переменные окружения", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()

		os.Setenv(envServerPort, "9090")
		os.Setenv(envDatabaseDSN, "env_postgres://...")
		os.Setenv(envJWTSecret, "env-secret")
		defer func() {
			os.Unsetenv(envServerPort)
			os.Unsetenv(envDatabaseDSN)
			os.Unsetenv(envJWTSecret)
		}()

		os.Args = []string{
			"cmd",
			"-port=8081",
			"-database-dsn=flag_postgres://...",
			"-jwt-secret=flag-secret",
		}
		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "8081", cfg.Port)
		assert.Equal(t, "flag_postgres://...", cfg.DatabaseDSN)
		assert.Equal(t, "flag-secret", cfg.JWTSecret)
	})
}
