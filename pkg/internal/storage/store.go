package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// ImagePrefix is where post images live inside the blob store.
const ImagePrefix = "posts/"

type Object struct {
	Key        string
	ModifiedAt time.Time
}

type Store interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]Object, error)
}

var S Store

func NewStore() error {
	switch driver := viper.GetString("storage.driver"); driver {
	case "", "local":
		S = NewLocalStore(viper.GetString("storage.local_path"))
	case "s3":
		store, err := NewS3Store(S3Config{
			Bucket:   viper.GetString("storage.s3.bucket"),
			Region:   viper.GetString("storage.s3.region"),
			Endpoint: viper.GetString("storage.s3.endpoint"),
		})
		if err != nil {
			return err
		}
		S = store
	default:
		return fmt.Errorf("unsupported storage driver: %s", driver)
	}
	return nil
}

func NewImageKey(ext string) string {
	return ImagePrefix + uuid.NewString() + ext
}

// URL is the public address of a stored key, empty keys stay empty.
func URL(key string) string {
	if len(key) == 0 {
		return ""
	}
	return viper.GetString("storage.public_url") + key
}
