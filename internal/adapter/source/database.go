package source

import (
	"context"
	"fmt"
	"time"

	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
)

const databaseSourceName = "database"

type DatabaseSource struct {
	repo     repository.InformationRepository
	observer Observer
}

func NewDatabaseSource(repo repository.InformationRepository, observer Observer) *DatabaseSource {
	return &DatabaseSource{
		repo:     repo,
		observer: observerOrNop(observer),
	}
}

func (s *DatabaseSource) FetchFeatures(ctx context.Context) ([]entity.Feature, error) {
	start := time.Now()

	features, err := s.repo.ListFeatures(ctx, nil)
	if err != nil {
		s.observer.ObserveSourceFetch(databaseSourceName, OutcomeFailure, time.Since(start))
		return nil, fmt.Errorf("listing stored features: %w", err)
	}

	s.observer.ObserveSourceFetch(databaseSourceName, OutcomeSuccess, time.Since(start))
	return features, nil
}
