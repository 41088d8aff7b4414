package ports

import (
	"context"
	"media-share-server/internal/model"
)

// CacheRepository : Redis слой
type CacheRepository interface {
	SetMedia(ctx context.Context, media *model.MediaRecord) error
	GetMedia(ctx context.Context, uuid string) (*model.MediaRecord, error)
	DeleteMedia(ctx context.Context, uuid string) error
}
