// Package source provides the upstream feature sources of the map: the
// database, a remote HTTP endpoint, a Redis-backed cache in front of either
// and a built-in demo dataset.
package source

import (
	"context"
	"time"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
)

type Source interface {
	FetchFeatures(ctx context.Context) ([]entity.Feature, error)
}

const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeRejected  = "rejected"
	OutcomeCacheHit  = "cache_hit"
	OutcomeCacheMiss = "cache_miss"
	OutcomeFallback  = "fallback"
)

// Observer receives fetch outcomes and circuit breaker transitions.
type Observer interface {
	ObserveSourceFetch(source, outcome string, elapsed time.Duration)
	ObserveBreakerState(name, state string)
}

type nopObserver struct{}

func (nopObserver) ObserveSourceFetch(string, string, time.Duration) {}
func (nopObserver) ObserveBreakerState(string, string)              {}

func observerOrNop(o Observer) Observer {
	if o == nil {
		return nopObserver{}
	}
	return o
}
