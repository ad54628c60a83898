package storage

import (
	"context"
)

// IPhotoArchive интерфейс архива фотографий товаров (S3-совместимое хранилище)
type IPhotoArchive interface {
	Put(ctx context.Context, path string, data []byte, contentType string) error
}
