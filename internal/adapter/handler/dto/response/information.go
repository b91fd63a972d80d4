package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/information"
)

type InformationSummary struct {
	ID      uuid.UUID      `json:"id"`
	Name    string         `json:"name"`
	GeoJSON entity.Feature `json:"geojson"`
}

type InformationResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	DetectionDate *time.Time      `json:"detection_date,omitempty"`
	GeoJSON       entity.Feature  `json:"geojson"`
	Images        []ImageResponse `json:"images"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ImageResponse struct {
	ID        uuid.UUID  `json:"id"`
	URL       string     `json:"url"`
	MimeType  string     `json:"mime_type"`
	Size      int64      `json:"size"`
	Width     int        `json:"width,omitempty"`
	Height    int        `json:"height,omitempty"`
	PicDate   *time.Time `json:"pic_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type InformationListResponse struct {
	Data       []InformationSummary `json:"data"`
	Pagination PaginationResponse   `json:"pagination"`
}

type HealthResponse struct {
	OK        bool                 `json:"ok"`
	Sample    []InformationSummary `json:"sample,omitempty"`
	HasSample bool                 `json:"has_sample"`
	Message   string               `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func InformationSummaryFromEntity(info *entity.Information) InformationSummary {
	return InformationSummary{
		ID:      info.ID,
		Name:    info.Name,
		GeoJSON: info.Feature,
	}
}

func InformationFromEntity(info *entity.Information) InformationResponse {
	images := make([]ImageResponse, len(info.Images))
	for i := range info.Images {
		images[i] = ImageFromEntity(&info.Images[i])
	}

	return InformationResponse{
		ID:            info.ID,
		Name:          info.Name,
		Description:   info.Description,
		DetectionDate: info.DetectionDate,
		GeoJSON:       info.Feature,
		Images:        images,
		CreatedAt:     info.CreatedAt,
		UpdatedAt:     info.UpdatedAt,
	}
}

func ImageFromEntity(img *entity.Image) ImageResponse {
	return ImageResponse{
		ID:        img.ID,
		URL:       img.URL,
		MimeType:  img.MimeType,
		Size:      img.Size,
		Width:     img.Width,
		Height:    img.Height,
		PicDate:   img.PicDate,
		CreatedAt: img.CreatedAt,
	}
}

func InformationListFromEntities(items []entity.Information, info PaginationResponse) InformationListResponse {
	data := make([]InformationSummary, len(items))
	for i := range items {
		data[i] = InformationSummaryFromEntity(&items[i])
	}
	return InformationListResponse{
		Data:       data,
		Pagination: info,
	}
}

func HealthFromStatus(status information.HealthStatus) HealthResponse {
	resp := HealthResponse{
		OK:      status.OK,
		Message: status.Message,
	}
	if status.Sample != nil {
		resp.Sample = []InformationSummary{InformationSummaryFromEntity(status.Sample)}
		resp.HasSample = true
	}
	return resp
}
