package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
)

type ImageRepo struct {
	pool *pgxpool.Pool
}

func NewImageRepo(pool *pgxpool.Pool) *ImageRepo {
	return &ImageRepo{pool: pool}
}

func (r *ImageRepo) Create(ctx context.Context, image *entity.Image) error {
	query := `
		INSERT INTO images (id, information_id, url, key, mime_type, size, width, height, pic_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		image.ID, image.InformationID, image.URL, image.Key,
		image.MimeType, image.Size, image.Width, image.Height, image.PicDate, image.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting image: %w", err)
	}
	return nil
}

func (r *ImageRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	query := `
		SELECT id, information_id, url, key, mime_type, size, width, height, pic_date, created_at
		FROM images
		WHERE id = $1
	`
	var image entity.Image
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&image.ID, &image.InformationID, &image.URL, &image.Key,
		&image.MimeType, &image.Size, &image.Width, &image.Height, &image.PicDate, &image.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("querying image: %w", err)
	}
	return &image, nil
}

func (r *ImageRepo) GetByInformationID(ctx context.Context, informationID uuid.UUID) ([]entity.Image, error) {
	query := `
		SELECT id, information_id, url, key, mime_type, size, width, height, pic_date, created_at
		FROM images
		WHERE information_id = $1
		ORDER BY pic_date DESC NULLS LAST, created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, informationID)
	if err != nil {
		return nil, fmt.Errorf("querying images: %w", err)
	}
	defer rows.Close()

	var images []entity.Image
	for rows.Next() {
		var image entity.Image
		if err := rows.Scan(
			&image.ID, &image.InformationID, &image.URL, &image.Key,
			&image.MimeType, &image.Size, &image.Width, &image.Height, &image.PicDate, &image.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		images = append(images, image)
	}

	return images, rows.Err()
}

func (r *ImageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM images WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting image: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}
