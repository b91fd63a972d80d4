package information

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/detection-map-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/viewport"
)

type Service struct {
	infoRepo        repository.InformationRepository
	imageRepo       repository.ImageRepository
	storage         storage.ImageStorage
	signedURLExpiry time.Duration
	logger          *zap.Logger
}

// NewService builds the service. imageStorage may be nil, in which case image
// URLs are returned as stored.
func NewService(
	infoRepo repository.InformationRepository,
	imageRepo repository.ImageRepository,
	imageStorage storage.ImageStorage,
	signedURLExpiry time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		infoRepo:        infoRepo,
		imageRepo:       imageRepo,
		storage:         imageStorage,
		signedURLExpiry: signedURLExpiry,
		logger:          logger,
	}
}

type CreateInput struct {
	Name          string
	Description   string
	DetectionDate *time.Time
	Feature       entity.Feature
}

// Create stores a detection. Point and Polygon geometries must be readable;
// other geometry types are stored as given.
func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Information, error) {
	if input.Feature.Geometry == nil {
		return nil, fmt.Errorf("%w: feature has no geometry", domain.ErrMalformedGeometry)
	}
	coords, err := viewport.ExtractCoordinates(input.Feature)
	if err != nil {
		return nil, err
	}
	for _, c := range coords {
		if !c.IsValid() {
			return nil, fmt.Errorf("%w: lat %v lon %v", domain.ErrInvalidLocation, c.Lat, c.Lon)
		}
	}

	props := entity.Properties{}
	for k, v := range input.Feature.Properties {
		props[k] = v
	}
	if _, ok := props.Name(); !ok {
		props["name"] = input.Name
	}
	if input.Description != "" && props.Description() == "" {
		props["description"] = input.Description
	}
	feature := input.Feature
	feature.Properties = props

	info := entity.NewInformation(input.Name, input.Description, input.DetectionDate, feature)
	if err := s.infoRepo.Create(ctx, info); err != nil {
		return nil, fmt.Errorf("creating information: %w", err)
	}

	return info, nil
}

type ListInput struct {
	Page        int
	PerPage     int
	BoundingBox *valueobject.BoundingBox
}

func (s *Service) List(ctx context.Context, input ListInput) ([]entity.Information, *pagination.Info, error) {
	if input.BoundingBox != nil && !input.BoundingBox.IsValid() {
		return nil, nil, domain.ErrInvalidBoundingBox
	}

	items, pageInfo, err := s.infoRepo.List(ctx, repository.InformationListParams{
		Pagination:  pagination.NewParams(input.Page, input.PerPage),
		BoundingBox: input.BoundingBox,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("listing information: %w", err)
	}

	return items, pageInfo, nil
}

// GetByID returns the record with its images, newest picture first.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*entity.Information, error) {
	info, err := s.infoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := s.imageRepo.GetByInformationID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading images: %w", err)
	}
	info.Images = s.signImages(ctx, images)

	return info, nil
}

func (s *Service) signImages(ctx context.Context, images []entity.Image) []entity.Image {
	if s.storage == nil {
		return images
	}
	for i := range images {
		url, err := s.storage.GetSignedURL(ctx, images[i].Key, s.signedURLExpiry)
		if err != nil {
			s.logger.Warn("signing image url, keeping stored url",
				zap.String("image_id", images[i].ID.String()),
				zap.Error(err),
			)
			continue
		}
		images[i].URL = url
	}
	return images
}

type HealthStatus struct {
	OK      bool
	Sample  *entity.Information
	Message string
}

func (s *Service) HealthCheck(ctx context.Context) HealthStatus {
	sample, err := s.infoRepo.Sample(ctx)
	switch {
	case err == nil:
		return HealthStatus{OK: true, Sample: sample}
	case errors.Is(err, domain.ErrInformationNotFound):
		return HealthStatus{OK: true}
	default:
		s.logger.Error("health check query failed", zap.Error(err))
		return HealthStatus{OK: false, Message: "DB query failed"}
	}
}
