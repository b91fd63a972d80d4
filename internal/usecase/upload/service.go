package upload

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
)

type Service struct {
	imageRepo       repository.ImageRepository
	infoRepo        repository.InformationRepository
	storage         storage.ImageStorage
	imageProcessor  storage.ImageProcessor
	signedURLExpiry time.Duration
	logger          *zap.Logger
}

func NewService(
	imageRepo repository.ImageRepository,
	infoRepo repository.InformationRepository,
	imageStorage storage.ImageStorage,
	imageProcessor storage.ImageProcessor,
	signedURLExpiry time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		imageRepo:       imageRepo,
		infoRepo:        infoRepo,
		storage:         imageStorage,
		imageProcessor:  imageProcessor,
		signedURLExpiry: signedURLExpiry,
		logger:          logger,
	}
}

type UploadInput struct {
	InformationID uuid.UUID
	File          io.Reader
	Filename      string
	ContentType   string
	Size          int64
	PicDate       *time.Time
}

type UploadResult struct {
	Image     *entity.Image
	URL       string
	SignedURL string
}

func (s *Service) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if _, err := s.infoRepo.GetByID(ctx, input.InformationID); err != nil {
		return nil, err
	}

	body, size, width, height, err := s.imageProcessor.Process(input.File, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("processing image: %w", err)
	}

	key := fmt.Sprintf("information/%s/%s%s", input.InformationID, uuid.New().String(), extension(input.Filename, input.ContentType))

	if err := s.storage.Upload(ctx, key, body, input.ContentType, size); err != nil {
		return nil, fmt.Errorf("uploading to storage: %w", err)
	}

	url := s.storage.GetURL(key)
	signedURL, err := s.storage.GetSignedURL(ctx, key, s.signedURLExpiry)
	if err != nil {
		s.logger.Warn("signing uploaded image url", zap.String("key", key), zap.Error(err))
	}

	image := entity.NewImage(input.InformationID, url, key, input.ContentType, size, width, height, input.PicDate)

	if err := s.imageRepo.Create(ctx, image); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Error("removing orphaned upload", zap.String("key", key), zap.Error(delErr))
		}
		return nil, fmt.Errorf("creating image record: %w", err)
	}

	return &UploadResult{
		Image:     image,
		URL:       url,
		SignedURL: signedURL,
	}, nil
}

func (s *Service) Delete(ctx context.Context, imageID uuid.UUID) error {
	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}

	if err := s.imageRepo.Delete(ctx, imageID); err != nil {
		return fmt.Errorf("deleting image record: %w", err)
	}

	if err := s.storage.Delete(ctx, image.Key); err != nil {
		return fmt.Errorf("deleting from storage: %w", err)
	}

	return nil
}

func extension(filename, contentType string) string {
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		return ext
	}
	if contentType == "image/png" {
		return ".png"
	}
	return ".jpg"
}
