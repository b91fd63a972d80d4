package response

import (
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/upload"
)

type UploadResponse struct {
	Image     ImageResponse `json:"image"`
	URL       string        `json:"url"`
	SignedURL string        `json:"signed_url,omitempty"`
}

func UploadResultToResponse(result *upload.UploadResult) UploadResponse {
	return UploadResponse{
		Image:     ImageFromEntity(result.Image),
		URL:       result.URL,
		SignedURL: result.SignedURL,
	}
}
