package services

import (
	"bytes"
	"context"
	"fmt"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const DefaultMaxImageSize = 5 << 20

var AllowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/bmp",
}

type ImageUpload struct {
	Filename string
	Data     []byte

	mime *mimetype.MIME
}

func MaxImageSize() int64 {
	if size := viper.GetInt64("storage.max_image_size"); size > 0 {
		return size
	}
	return DefaultMaxImageSize
}

// ValidateImage sniffs the payload, the file name and the client content type are not trusted.
func ValidateImage(upload *ImageUpload) error {
	if len(upload.Data) == 0 {
		return fmt.Errorf("the submitted file is empty")
	}
	if int64(len(upload.Data)) > MaxImageSize() {
		return fmt.Errorf("the image is larger than %d bytes", MaxImageSize())
	}

	detected := mimetype.Detect(upload.Data)
	if !lo.ContainsBy(AllowedImageTypes, func(item string) bool {
		return detected.Is(item)
	}) {
		return fmt.Errorf("upload a valid image, the file you uploaded was either not an image or a corrupted image")
	}

	upload.mime = detected
	return nil
}

func StoreImage(ctx context.Context, upload *ImageUpload) (string, error) {
	if upload.mime == nil {
		if err := ValidateImage(upload); err != nil {
			return "", err
		}
	}

	key := storage.NewImageKey(upload.mime.Extension())
	if err := storage.S.Put(ctx, key, bytes.NewReader(upload.Data), upload.mime.String()); err != nil {
		return "", fmt.Errorf("unable to store image: %v", err)
	}

	log.Debug().Str("key", key).Int("size", len(upload.Data)).Msg("Stored post image.")
	return key, nil
}

// DiscardImage removes a blob whose post never made it into the database.
func DiscardImage(ctx context.Context, key string) {
	if len(key) == 0 {
		return
	}
	if err := storage.S.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("An error occurred when discarding image...")
	}
}
