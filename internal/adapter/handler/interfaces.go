package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/detection-map-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/information"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/mapview"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/upload"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type InformationService interface {
	Create(ctx context.Context, input information.CreateInput) (*entity.Information, error)
	List(ctx context.Context, input information.ListInput) ([]entity.Information, *pagination.Info, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Information, error)
	HealthCheck(ctx context.Context) information.HealthStatus
}

type MapService interface {
	Compute(ctx context.Context, input mapview.ComputeInput) (*mapview.ComputeResult, error)
	InitialCamera() mapview.InitialCamera
	TileProviders() []mapview.TileProvider
}

type UploadService interface {
	Upload(ctx context.Context, input upload.UploadInput) (*upload.UploadResult, error)
	Delete(ctx context.Context, imageID uuid.UUID) error
}
