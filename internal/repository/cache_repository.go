package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"media-share-server/config"
	"media-share-server/internal/model"
	"media-share-server/internal/util"
	"time"

	"github.com/redis/go-redis/v9"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

// SetMedia : кэширует запись, TTL обрезается по остатку жизни самой записи,
// чтобы кэш не пережил expires_at. Просроченные записи не кэшируем вовсе.
func (r *CacheRepository) SetMedia(ctx context.Context, media *model.MediaRecord) error {
	ttl := r.ttl
	if media.ExpiresAt > 0 {
		remaining := time.Until(time.Unix(media.ExpiresAt, 0))
		if remaining <= 0 {
			return nil
		}
		if remaining < ttl {
			ttl = remaining
		}
	}

	data, err := json.Marshal(media)
	if err != nil {
		return util.LogError("ошибка сериализации медиа", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(media.UUID), data, ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *CacheRepository) GetMedia(ctx context.Context, uuid string) (*model.MediaRecord, error) {
	val, err := r.client.Client.Get(ctx, r.key(uuid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения медиа из Redis", err)
	}

	var media model.MediaRecord
	if err := json.Unmarshal([]byte(val), &media); err != nil {
		return nil, util.LogError("ошибка десериализации медиа из кэша", err)
	}
	return &media, nil
}

func (r *CacheRepository) DeleteMedia(ctx context.Context, uuid string) error {
	if err := r.client.Client.Del(ctx, r.key(uuid)).Err(); err != nil {
		return util.LogError("ошибка удаления медиа из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(uuid string) string {
	return fmt.Sprintf("media:%s", uuid)
}
