package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
)

const remoteSourceName = "remote"

// remotePayload is the list response of the detection backend: one entry per
// record with the stored GeoJSON feature. Entries stay raw so one bad record
// is skipped on its own instead of failing the whole payload.
type remotePayload struct {
	Data []json.RawMessage `json:"data"`
}

type remoteItem struct {
	ID      json.RawMessage `json:"id"`
	Name    json.RawMessage `json:"name"`
	GeoJSON json.RawMessage `json:"geojson"`
}

type RemoteOption func(*RemoteSource)

func WithHTTPClient(client *http.Client) RemoteOption {
	return func(s *RemoteSource) { s.client = client }
}

// WithBreakerSettings overrides the trip threshold and open-state timeout.
func WithBreakerSettings(consecutiveFailures uint32, openTimeout time.Duration) RemoteOption {
	return func(s *RemoteSource) {
		s.tripAfter = consecutiveFailures
		s.openTimeout = openTimeout
	}
}

// RemoteSource reads features from another detection backend over HTTP.
// Calls go through a circuit breaker so a dead upstream fails fast.
type RemoteSource struct {
	url         string
	client      *http.Client
	cb          *gobreaker.CircuitBreaker[[]entity.Feature]
	tripAfter   uint32
	openTimeout time.Duration
	logger      *zap.Logger
	observer    Observer
}

func NewRemoteSource(url string, timeout time.Duration, logger *zap.Logger, observer Observer, opts ...RemoteOption) *RemoteSource {
	s := &RemoteSource{
		url:         url,
		client:      &http.Client{Timeout: timeout},
		tripAfter:   5,
		openTimeout: 30 * time.Second,
		logger:      logger,
		observer:    observerOrNop(observer),
	}
	for _, opt := range opts {
		opt(s)
	}

	name := "remote-feature-source"
	s.observer.ObserveBreakerState(name, gobreaker.StateClosed.String())
	s.cb = gobreaker.NewCircuitBreaker[[]entity.Feature](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     s.openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.tripAfter
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			s.observer.ObserveBreakerState(name, to.String())
		},
	})

	return s
}

func (s *RemoteSource) FetchFeatures(ctx context.Context) ([]entity.Feature, error) {
	start := time.Now()

	features, err := s.cb.Execute(func() ([]entity.Feature, error) {
		return s.fetch(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			s.observer.ObserveSourceFetch(remoteSourceName, OutcomeRejected, time.Since(start))
			return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
		}
		s.observer.ObserveSourceFetch(remoteSourceName, OutcomeFailure, time.Since(start))
		return nil, err
	}

	s.observer.ObserveSourceFetch(remoteSourceName, OutcomeSuccess, time.Since(start))
	return features, nil
}

func (s *RemoteSource) fetch(ctx context.Context) ([]entity.Feature, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("requesting %s: unexpected status %d", s.url, resp.StatusCode)
	}

	var payload remotePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}

	features := make([]entity.Feature, 0, len(payload.Data))
	for i, raw := range payload.Data {
		f, err := decodeRemoteItem(raw)
		if err != nil {
			s.logger.Warn("skipping remote item", zap.Int("index", i), zap.Error(err))
			continue
		}
		features = append(features, f)
	}

	return features, nil
}

func decodeRemoteItem(raw json.RawMessage) (entity.Feature, error) {
	var item remoteItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return entity.Feature{}, fmt.Errorf("%w: decoding item: %v", domain.ErrMalformedGeometry, err)
	}
	if isNull(item.GeoJSON) {
		return entity.Feature{}, errors.New("item has no geojson")
	}

	var f entity.Feature
	if err := json.Unmarshal(item.GeoJSON, &f); err != nil {
		return entity.Feature{}, fmt.Errorf("%w: decoding geojson: %v", domain.ErrMalformedGeometry, err)
	}

	if f.ID == "" {
		f.ID = strings.Trim(string(item.ID), `"`)
	}
	if f.Type == "" {
		f.Type = entity.FeatureType
	}

	// The record name backs up a feature saved without one; a non-string name
	// is ignored.
	var name string
	if _, ok := f.Properties.Name(); !ok && json.Unmarshal(item.Name, &name) == nil && name != "" {
		props := make(entity.Properties, len(f.Properties)+1)
		for k, v := range f.Properties {
			props[k] = v
		}
		props["name"] = name
		f.Properties = props
	}

	return f, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}
