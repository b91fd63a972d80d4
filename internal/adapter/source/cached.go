package source

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
)

const (
	cachedSourceName = "cache"
	featuresCacheKey = "features"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// CachedSource serves features from the cache while they are fresh and asks
// next on a miss. Cache errors degrade to a direct fetch.
type CachedSource struct {
	next     Source
	cache    Cache
	ttl      time.Duration
	logger   *zap.Logger
	observer Observer
}

func NewCachedSource(next Source, cache Cache, ttl time.Duration, logger *zap.Logger, observer Observer) *CachedSource {
	return &CachedSource{
		next:     next,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
		observer: observerOrNop(observer),
	}
}

func (s *CachedSource) FetchFeatures(ctx context.Context) ([]entity.Feature, error) {
	start := time.Now()

	var cached []entity.Feature
	hit, err := s.cache.GetJSON(ctx, featuresCacheKey, &cached)
	if err != nil {
		s.logger.Warn("reading feature cache", zap.Error(err))
	}
	if hit {
		s.observer.ObserveSourceFetch(cachedSourceName, OutcomeCacheHit, time.Since(start))
		return cached, nil
	}
	s.observer.ObserveSourceFetch(cachedSourceName, OutcomeCacheMiss, time.Since(start))

	features, err := s.next.FetchFeatures(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, featuresCacheKey, features, s.ttl); err != nil {
		s.logger.Warn("writing feature cache", zap.Error(err))
	}

	return features, nil
}
