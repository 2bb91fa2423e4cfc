package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/imaging"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/logger"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/storage"
)

// Service validates, resizes and stores project images
type Service struct {
	storage   storage.Storage
	processor *imaging.Processor
	maxSize   int64
	now       func() time.Time
}

// NewService creates upload service
func NewService(st storage.Storage, processor *imaging.Processor, maxSize int64) *Service {
	return &Service{storage: st, processor: processor, maxSize: maxSize, now: time.Now}
}

// MaxSize is the largest accepted file in bytes
func (s *Service) MaxSize() int64 {
	return s.maxSize
}

// UploadImage stores the image and a thumbnail under projects/<yyyy>/<mm>/.
func (s *Service) UploadImage(ctx context.Context, reader io.Reader) (*ImageResponse, error) {
	data, mimeType, err := storage.ValidateFile(reader, s.maxSize)
	if err != nil {
		return nil, err
	}

	processed, err := s.processor.Process(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodableImage, err)
	}

	base := fmt.Sprintf("projects/%s/%s", s.now().UTC().Format("2006/01"), uuid.New().String())
	originalKey := base + storage.GetExtensionForMime(processed.ContentType)
	thumbKey := base + "_thumb" + storage.GetExtensionForMime(processed.ThumbType)

	if err := s.storage.Put(ctx, originalKey, bytes.NewReader(processed.Original), processed.ContentType); err != nil {
		return nil, fmt.Errorf("store original: %w", err)
	}
	if err := s.storage.Put(ctx, thumbKey, bytes.NewReader(processed.Thumbnail), processed.ThumbType); err != nil {
		if delErr := s.storage.Delete(ctx, originalKey); delErr != nil {
			logger.FromContext(ctx).Warn().Err(delErr).Str("key", originalKey).Msg("Failed to remove orphaned upload")
		}
		return nil, fmt.Errorf("store thumbnail: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("key", originalKey).
		Str("detected_mime", mimeType).
		Int("size", len(processed.Original)).
		Msg("Image uploaded")

	return &ImageResponse{
		URL:          s.storage.GetURL(originalKey),
		ThumbnailURL: s.storage.GetURL(thumbKey),
		ContentType:  processed.ContentType,
		Width:        processed.Width,
		Height:       processed.Height,
		Size:         len(processed.Original),
	}, nil
}
