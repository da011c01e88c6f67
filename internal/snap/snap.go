// Package snap is the photo-sorting flow: normalize a photo, classify it
// remotely and credit the points to the active identity.
package snap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"greenmason/internal/imagenorm"
	"greenmason/internal/models"
)

type Normalizer interface {
	Normalize(ctx context.Context, src imagenorm.Source) (*imagenorm.Image, error)
}

type Classifier interface {
	ClassifyUpload(ctx context.Context, filename, contentType string, data []byte) (*models.ClassificationResult, error)
}

type Recorder interface {
	RecordAction(ctx context.Context, action string, points int, description string) (*models.ScoreResult, error)
}

// Upload is what gets sent to the classifier.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
	// Normalized is false when the original bytes are sent as-is.
	Normalized  bool
	Width       int
	Height      int
	FallbackErr error
}

// Result of Analyze. Score is nil when recording failed or no identity is
// active; RecordErr says why.
type Result struct {
	Classification *models.ClassificationResult
	Score          *models.ScoreResult
	RecordErr      error
}

type Service struct {
	normalizer Normalizer
	classifier Classifier
	recorder   Recorder
	logger     *zap.Logger
}

func NewService(normalizer Normalizer, classifier Classifier, recorder Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		normalizer: normalizer,
		classifier: classifier,
		recorder:   recorder,
		logger:     logger,
	}
}

// Prepare normalizes src for upload. Any normalization failure falls back to
// the original bytes, so the returned Upload is always sendable.
func (s *Service) Prepare(ctx context.Context, src imagenorm.Source) Upload {
	img, err := s.normalizer.Normalize(ctx, src)
	if err != nil {
		s.logger.Info("Prepare(): sending original file", zap.String("name", src.Name), zap.Error(err))
		contentType := src.MediaType
		if contentType == "" {
			contentType = imagenorm.DetectFormat(src.Data)
		}
		return Upload{
			Filename:    src.Name,
			ContentType: contentType,
			Data:        src.Data,
			FallbackErr: err,
		}
	}
	return Upload{
		Filename:    jpegName(src.Name),
		ContentType: "image/jpeg",
		Data:        img.Blob,
		Normalized:  true,
		Width:       img.Width,
		Height:      img.Height,
	}
}

// Analyze classifies the upload and records a "sort" action for it. A
// classification failure is returned; a recording failure is not.
func (s *Service) Analyze(ctx context.Context, upload Upload) (*Result, error) {
	classification, err := s.classifier.ClassifyUpload(ctx, upload.Filename, upload.ContentType, upload.Data)
	if err != nil {
		return nil, fmt.Errorf("classify %s: %w", upload.Filename, err)
	}

	res := &Result{Classification: classification}
	score, err := s.recorder.RecordAction(ctx, models.ActionSort, classification.PointsEarned, SortDescription(classification))
	if err != nil {
		s.logger.Warn("Analyze(): could not record sort action", zap.Error(err))
		res.RecordErr = err
		return res, nil
	}
	res.Score = score
	return res, nil
}

func SortDescription(c *models.ClassificationResult) string {
	return fmt.Sprintf("Sorted: %s (%s)", c.ItemName, c.Category)
}

func jpegName(name string) string {
	if name == "" {
		return "photo.jpg"
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
}
