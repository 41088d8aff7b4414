package requestresponse

import (
	"encoding/json"
	"media-share-server/internal/model"
	"time"
)

// MediaMetadataResponse : мета-данные медиа для JSON-ответа
type MediaMetadataResponse struct {
	FileName     string          `json:"file_name" example:"photo.jpg"`
	ContentType  string          `json:"content_type" example:"image/jpeg"`
	SizeBytes    int64           `json:"size_bytes" example:"102400"`
	CreatedAt    string          `json:"created_at" example:"2025-08-23T12:34:56Z"`
	ExpiresAt    int64           `json:"expires_at" example:"1756555200"`
	ThemeOptions json.RawMessage `json:"theme_options,omitempty" swaggertype:"object"`
}

// MediaMetadataFromModel : конвертирует model.MediaRecord в MediaMetadataResponse
func MediaMetadataFromModel(media *model.MediaRecord) MediaMetadataResponse {
	return MediaMetadataResponse{
		FileName:     media.FileName,
		ContentType:  media.ContentType,
		SizeBytes:    media.SizeBytes,
		CreatedAt:    media.CreatedAt.Format(time.RFC3339),
		ExpiresAt:    media.ExpiresAt,
		ThemeOptions: media.ThemeOptions,
	}
}

// IngestMediaResponse : ответ при загрузке медиа
type IngestMediaResponse struct {
	Data IngestMediaData `json:"data"`
}

type IngestMediaData struct {
	UUID          string                `json:"id" example:"3f2a8c1d9e4b4f6a8c1d9e4b3f2a8c1d"`
	ShareURL      string                `json:"share_url" example:"https://share.example.com/m/3f2a8c1d9e4b4f6a8c1d9e4b3f2a8c1d"`
	QRImageBase64 string                `json:"qr_image_base64,omitempty"`
	Metadata      MediaMetadataResponse `json:"metadata"`
}

// GetMediaResponse : ответ при получении медиа по ID
type GetMediaResponse struct {
	Data GetMediaData `json:"data"`
}

type GetMediaData struct {
	DownloadURL string                `json:"download_url"`
	Metadata    MediaMetadataResponse `json:"metadata"`
}

// ErrorDetail : детальная информация об ошибке,
// Kind — стабильный машинно-читаемый вид ошибки
type ErrorDetail struct {
	Code int    `json:"code" example:"404"`
	Kind string `json:"kind" example:"not_found"`
	Text string `json:"text" example:"медиа не найдено"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ResponseMessage : общий ответ для подтверждения действий
type ResponseMessage struct {
	Data interface{} `json:"data,omitempty"`
}
