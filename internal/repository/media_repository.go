package repository

import (
	"context"
	"database/sql"
	"errors"
	"media-share-server/config"
	"media-share-server/internal/model"
	"media-share-server/internal/util"

	"github.com/jmoiron/sqlx"
)

type MediaRepository struct {
	*config.Database
}

func NewMediaRepository(database *config.Database) *MediaRepository {
	return &MediaRepository{database}
}

// CreateIfAbsent : условная вставка новой записи (insert-if-absent).
// ON CONFLICT DO NOTHING гарантирует, что существующая запись никогда
// не будет молча перезаписана — коллизия uuid всплывает как ErrMediaExists.
func (r *MediaRepository) CreateIfAbsent(ctx context.Context, exec sqlx.ExtContext, media *model.MediaRecord) error {
	query := `
		INSERT INTO media (uuid, owner_uuid, file_name, content_type, size_bytes, storage_key, status, theme_options, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (uuid) DO NOTHING
	`
	result, err := exec.ExecContext(
		ctx,
		query,
		media.UUID,
		media.OwnerUUID,
		media.FileName,
		media.ContentType,
		media.SizeBytes,
		media.StorageKey,
		media.Status,
		nullableJSON(media.ThemeOptions),
		media.CreatedAt,
		media.ExpiresAt)
	if err != nil {
		return util.LogError("[MediaRepository] не удалось сохранить медиа в БД", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[MediaRepository] не удалось получить RowsAffected", err)
	}
	if affected == 0 {
		return ErrMediaExists
	}

	return nil
}

// GetByUUID : возвращает запись по uuid, включая expired и deleted —
// интерпретация статуса остаётся за сервисным слоем
func (r *MediaRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, mediaUUID string) (*model.MediaRecord, error) {
	query := `
		SELECT uuid, owner_uuid, file_name, content_type, size_bytes,
		       storage_key, status, theme_options, created_at, expires_at
		FROM media
		WHERE uuid = $1
	`

	var media model.MediaRecord
	err := sqlx.GetContext(ctx, exec, &media, query, mediaUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMediaNotFound
	}
	if err != nil {
		return nil, util.LogError("[MediaRepository] ошибка чтения медиа из БД", err)
	}

	return &media, nil
}

// UpdateStatus : переводит статус записи только вперёд
// (active -> expired, active/expired -> deleted), воскрешение запрещено схемой переходов
func (r *MediaRepository) UpdateStatus(ctx context.Context, exec sqlx.ExtContext, mediaUUID string, status model.MediaStatus) error {
	query := `
		UPDATE media
		SET status = $2
		WHERE uuid = $1
		  AND status != 'deleted'
		  AND ($2 != 'active')
	`
	_, err := exec.ExecContext(ctx, query, mediaUUID, status)
	if err != nil {
		return util.LogError("[MediaRepository] не удалось обновить статус медиа", err)
	}

	return nil
}

// Delete : помечает запись удалённой, только для владельца.
// Повторное удаление не находит строку (status уже 'deleted') и возвращает ErrMediaNotFound.
func (r *MediaRepository) Delete(ctx context.Context, exec sqlx.ExtContext, mediaUUID string, ownerUUID string) (string, error) {
	query := `
		UPDATE media
		SET status = 'deleted'
		WHERE uuid = $1 AND owner_uuid = $2 AND status != 'deleted'
		RETURNING storage_key
	`

	var storageKey string
	err := sqlx.GetContext(ctx, exec, &storageKey, query, mediaUUID, ownerUUID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrMediaNotFound
	}
	if err != nil {
		return "", util.LogError("[MediaRepository] ошибка удаления медиа из БД", err)
	}

	return storageKey, nil
}

func (r *MediaRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	return tx, func() error { return tx.Rollback() }, func() error { return tx.Commit() }, nil
}

// nullableJSON : пустые theme_options храним как NULL, а не как пустую строку
func nullableJSON(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
