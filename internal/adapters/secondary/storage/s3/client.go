package s3

import (
	"bytes"
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/tg-bots/shop-bot/internal/ports/storage"
	"github.com/minio/minio-go/v7"
)

// Client обёртка над minio.Client, реализует storage.IPhotoArchive
// Хранит архивные копии фотографий товаров
type Client struct {
	client *minio.Client
	bucket string
	log    *slog.Logger
}

// NewClient создаёт новый S3 клиент
func NewClient(client *minio.Client, bucket string, log *slog.Logger) storage.IPhotoArchive {
	return &Client{
		client: client,
		bucket: bucket,
		log:    log,
	}
}

// Put загружает файл по пути
func (c *Client) Put(ctx context.Context, path string, data []byte, contentType string) error {
	_, err := c.client.PutObject(ctx, c.bucket, path, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", path, err)
	}

	c.log.Debug("object uploaded to s3", "path", path, "size", len(data))
	return nil
}
