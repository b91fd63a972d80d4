package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/detection-map-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/detection-map-backend/internal/pkg/pagination"
)

const informationColumns = `id, name, description, detection_date, geojson, created_at, updated_at`

// errStoredFeature marks a row whose geojson column no longer decodes as a
// feature. Listings skip such rows; single reads fail with it.
var errStoredFeature = errors.New("decoding stored feature")

type InformationRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewInformationRepo(pool *pgxpool.Pool, logger *zap.Logger) *InformationRepo {
	return &InformationRepo{pool: pool, logger: logger}
}

func (r *InformationRepo) Create(ctx context.Context, info *entity.Information) error {
	query := `
		INSERT INTO information (id, name, description, detection_date, geojson, geom, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_GeomFromGeoJSON($6::text), 4326), $7, $8)
	`
	feature, err := json.Marshal(info.Feature)
	if err != nil {
		return fmt.Errorf("encoding feature: %w", err)
	}

	var geometry *string
	if info.Feature.Geometry != nil {
		g, err := json.Marshal(info.Feature.Geometry)
		if err != nil {
			return fmt.Errorf("encoding geometry: %w", err)
		}
		s := string(g)
		geometry = &s
	}

	_, err = r.pool.Exec(ctx, query,
		info.ID, info.Name, info.Description, info.DetectionDate,
		feature, geometry, info.CreatedAt, info.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting information: %w", err)
	}
	return nil
}

func (r *InformationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Information, error) {
	query := `SELECT ` + informationColumns + ` FROM information WHERE id = $1`
	return r.scanInformation(r.pool.QueryRow(ctx, query, id))
}

func (r *InformationRepo) Sample(ctx context.Context) (*entity.Information, error) {
	query := `SELECT ` + informationColumns + ` FROM information ORDER BY created_at DESC LIMIT 1`
	return r.scanInformation(r.pool.QueryRow(ctx, query))
}

func (r *InformationRepo) List(ctx context.Context, params repository.InformationListParams) ([]entity.Information, *pagination.Info, error) {
	whereClause, args := boundingBoxFilter(params.BoundingBox)
	argNum := len(args) + 1

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM information %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting information: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM information
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, informationColumns, whereClause, argNum, argNum+1)
	args = append(args, params.Pagination.Limit(), params.Pagination.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("querying information: %w", err)
	}
	defer rows.Close()

	var items []entity.Information
	for rows.Next() {
		info, err := r.scanInformation(rows)
		if errors.Is(err, errStoredFeature) {
			r.logger.Warn("skipping information with undecodable feature", zap.Error(err))
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		items = append(items, *info)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating information: %w", err)
	}

	pageInfo := params.Pagination.Info(total)
	return items, pageInfo, nil
}

func (r *InformationRepo) ListFeatures(ctx context.Context, box *valueobject.BoundingBox) ([]entity.Feature, error) {
	whereClause, args := boundingBoxFilter(box)

	query := fmt.Sprintf(`
		SELECT %s
		FROM information
		%s
		ORDER BY created_at DESC
	`, informationColumns, whereClause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying features: %w", err)
	}
	defer rows.Close()

	features := []entity.Feature{}
	for rows.Next() {
		info, err := r.scanInformation(rows)
		if errors.Is(err, errStoredFeature) {
			r.logger.Warn("skipping feature that does not decode", zap.Error(err))
			continue
		}
		if err != nil {
			return nil, err
		}
		features = append(features, info.Feature)
	}

	return features, rows.Err()
}

func (r *InformationRepo) scanInformation(row pgx.Row) (*entity.Information, error) {
	var info entity.Information
	var raw []byte

	err := row.Scan(
		&info.ID, &info.Name, &info.Description, &info.DetectionDate,
		&raw, &info.CreatedAt, &info.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInformationNotFound
		}
		return nil, fmt.Errorf("scanning information: %w", err)
	}

	if err := json.Unmarshal(raw, &info.Feature); err != nil {
		return nil, fmt.Errorf("%w of %s: %v", errStoredFeature, info.ID, err)
	}
	fillFeature(&info)

	return &info, nil
}

// fillFeature copies the record columns into the feature where the stored
// GeoJSON lacks them, so popups work for features saved without properties.
func fillFeature(info *entity.Information) {
	f := &info.Feature
	f.ID = info.ID.String()
	if f.Type == "" {
		f.Type = entity.FeatureType
	}
	if f.Properties == nil {
		f.Properties = entity.Properties{}
	}
	if _, ok := f.Properties.Name(); !ok && info.Name != "" {
		f.Properties["name"] = info.Name
	}
	if f.Properties.Description() == "" && info.Description != "" {
		f.Properties["description"] = info.Description
	}
	if _, ok := f.Properties.DetectionDate(); !ok && info.DetectionDate != nil {
		f.Properties["detection_date"] = info.DetectionDate.UTC().Format(time.RFC3339)
	}
}

func boundingBoxFilter(box *valueobject.BoundingBox) (string, []any) {
	if box == nil {
		return "", nil
	}
	var conditions []string
	conditions = append(conditions, `geom IS NOT NULL`)
	conditions = append(conditions, `ST_Intersects(geom, ST_MakeEnvelope($1, $2, $3, $4, 4326))`)
	args := []any{box.SouthWest.Lon, box.SouthWest.Lat, box.NorthEast.Lon, box.NorthEast.Lat}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
