package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// SnapshotStorage определяет интерфейс объектного хранилища для крупных
// снимков содержимого файлов. Снимки неизменяемы: объект записывается один
// раз при создании версии и далее только читается.
type SnapshotStorage interface {
	UploadSnapshot(ctx context.Context, objectKey, content string) error
	DownloadSnapshot(ctx context.Context, objectKey string) (string, error)
}

// MinioClient реализует SnapshotStorage для MinIO.
type MinioClient struct {
	client     *minio.Client
	bucketName string
}

// MinioConfig содержит параметры для подключения к MinIO.
type MinioConfig struct {
	Endpoint        string // Адрес MinIO (например, "localhost:9000")
	AccessKeyID     string // Логин
	SecretAccessKey string // Пароль
	UseSSL          bool   // Использовать SSL (обычно false для локальной разработки)
	BucketName      string // Имя бакета для хранения снимков
	Region          string // Регион (не обязательно для MinIO)
}

// NewMinioClient создает новый клиент MinIO и при необходимости создает бакет.
func NewMinioClient(cfg MinioConfig) (*MinioClient, error) {
	log.Printf("Инициализация клиента MinIO для эндпоинта %s...", cfg.Endpoint)

	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	// Проверка существования бакета и создание при необходимости
	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки существования бакета '%s': %w", cfg.BucketName, err)
	}
	if !exists {
		log.Printf("Бакет '%s' не найден, попытка создания...", cfg.BucketName)
		if err = minioClient.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("ошибка создания бакета '%s': %w", cfg.BucketName, err)
		}
		log.Printf("Бакет '%s' успешно создан.", cfg.BucketName)
	}

	log.Printf("Клиент MinIO успешно инициализирован для бакета '%s'.", cfg.BucketName)
	return &MinioClient{
		client:     minioClient,
		bucketName: cfg.BucketName,
	}, nil
}

// UploadSnapshot загружает снимок содержимого в MinIO.
func (c *MinioClient) UploadSnapshot(ctx context.Context, objectKey, content string) error {
	opts := minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	}

	uploadInfo, err := c.client.PutObject(ctx, c.bucketName, objectKey,
		strings.NewReader(content), int64(len(content)), opts)
	if err != nil {
		log.Printf("[Minio] Ошибка загрузки снимка '%s': %v", objectKey, err)
		return fmt.Errorf("ошибка загрузки снимка в MinIO: %w", err)
	}

	log.Printf("[Minio] Снимок '%s' загружен (%d байт)", objectKey, uploadInfo.Size)
	return nil
}

// DownloadSnapshot скачивает снимок содержимого из MinIO.
func (c *MinioClient) DownloadSnapshot(ctx context.Context, objectKey string) (string, error) {
	object, err := c.client.GetObject(ctx, c.bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		var minioErr minio.ErrorResponse
		if errors.As(err, &minioErr) && minioErr.Code == "NoSuchKey" {
			log.Printf("[Minio] Снимок '%s' не найден в бакете '%s'", objectKey, c.bucketName)
			return "", ErrObjectNotFound
		}
		log.Printf("[Minio] Ошибка получения снимка '%s': %v", objectKey, err)
		return "", fmt.Errorf("ошибка получения снимка из MinIO: %w", err)
	}
	defer func() {
		if closeErr := object.Close(); closeErr != nil {
			log.Printf("[Minio] Ошибка закрытия объекта '%s': %v", objectKey, closeErr)
		}
	}()

	data, err := io.ReadAll(object)
	if err != nil {
		log.Printf("[Minio] Ошибка чтения снимка '%s': %v", objectKey, err)
		return "", fmt.Errorf("ошибка чтения снимка из MinIO: %w", err)
	}

	return string(data), nil
}

// Кастомная ошибка хранилища.
var (
	ErrObjectNotFound = errors.New("объект не найден в хранилище")
)
