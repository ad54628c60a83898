package s3

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string `envconfig:"ENDPOINT"`
	AccessKey string `envconfig:"ACCESS_KEY"`
	SecretKey string `envconfig:"SECRET_KEY"`
	Bucket    string `envconfig:"BUCKET" default:"shop-photos"`
	UseSSL    bool   `envconfig:"USE_SSL" default:"true"`
}

// Enabled S3 настроен в окружении
func (c *Config) Enabled() bool {
	return c != nil && c.Endpoint != ""
}

// NewConnection создаёт minio-клиент
func (c *Config) NewConnection() (*minio.Client, error) {
	client, err := minio.New(c.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.AccessKey, c.SecretKey, ""),
		Secure: c.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}
	return client, nil
}
