package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/detection-map-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type InformationRepository interface {
	Create(ctx context.Context, info *entity.Information) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Information, error)
	List(ctx context.Context, params InformationListParams) ([]entity.Information, *pagination.Info, error)
	// ListFeatures returns the stored features, newest first. A nil box
	// returns all of them.
	ListFeatures(ctx context.Context, box *valueobject.BoundingBox) ([]entity.Feature, error)
	// Sample returns one stored record, or domain.ErrInformationNotFound when
	// the table is empty.
	Sample(ctx context.Context) (*entity.Information, error)
}

type InformationListParams struct {
	Pagination  pagination.Params
	BoundingBox *valueobject.BoundingBox
}

type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Image, error)
	// GetByInformationID orders images by picture date, newest first.
	GetByInformationID(ctx context.Context, informationID uuid.UUID) ([]entity.Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
