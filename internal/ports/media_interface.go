package ports

import (
	"context"
	"media-share-server/internal/model"

	"github.com/jmoiron/sqlx"
)

// MediaRepository : SQL слой
type MediaRepository interface {
	// CreateIfAbsent вставляет запись только если uuid ещё не занят,
	// иначе возвращает repository.ErrMediaExists (и ничего не перезаписывает)
	CreateIfAbsent(ctx context.Context, exec sqlx.ExtContext, media *model.MediaRecord) error
	GetByUUID(ctx context.Context, exec sqlx.ExtContext, mediaUUID string) (*model.MediaRecord, error)
	UpdateStatus(ctx context.Context, exec sqlx.ExtContext, mediaUUID string, status model.MediaStatus) error
	Delete(ctx context.Context, exec sqlx.ExtContext, mediaUUID string, ownerUUID string) (string, error)
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

type MediaService interface {
	IngestMedia(ctx context.Context, params *IngestParams) (*model.IngestResult, error)
	GetMedia(ctx context.Context, mediaUUID string) (*model.GetMediaResult, error)
	GetMediaQR(ctx context.Context, mediaUUID string) ([]byte, error)
	DeleteMedia(ctx context.Context, mediaUUID string, ownerUUID string, isAdmin bool) error
}

// IngestParams : входные данные загрузки медиа
type IngestParams struct {
	OwnerUUID    string
	FileName     string
	ContentType  string
	Data         []byte
	TTLDays      int // 0 — срок жизни по умолчанию из конфигурации
	ThemeOptions []byte
}
