package services

import (
	"context"
	"time"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/storage"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// ImageCleanupGrace keeps fresh uploads alive while their post is still being saved.
const ImageCleanupGrace = time.Hour

func DoAutoImageCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	count, err := CleanupOrphanImages(ctx, time.Now().Add(-ImageCleanupGrace))
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when cleaning up orphan images...")
		return
	}
	log.Info().Int("count", count).Msg("Orphan images cleaned up.")
}

// CleanupOrphanImages deletes stored post images that no post references
// and that were written before the deadline.
func CleanupOrphanImages(ctx context.Context, deadline time.Time) (int, error) {
	objects, err := storage.S.List(ctx, storage.ImagePrefix)
	if err != nil {
		return 0, err
	}

	var referenced []string
	if err := database.C.Model(&models.Post{}).
		Where("image <> ?", "").
		Pluck("image", &referenced).Error; err != nil {
		return 0, err
	}
	inUse := lo.SliceToMap(referenced, func(item string) (string, bool) {
		return item, true
	})

	var count int
	for _, object := range objects {
		if inUse[object.Key] || object.ModifiedAt.After(deadline) {
			continue
		}
		if err := storage.S.Delete(ctx, object.Key); err != nil {
			log.Warn().Err(err).Str("key", object.Key).Msg("An error occurred when deleting orphan image...")
			continue
		}
		count++
	}

	return count, nil
}
