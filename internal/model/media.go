package model

import (
	"encoding/json"
	"time"
)

type MediaStatus string

const (
	StatusActive  MediaStatus = "active"
	StatusExpired MediaStatus = "expired"
	StatusDeleted MediaStatus = "deleted"
)

// MediaRecord : мета-данные загруженного медиа-файла.
// Запись неизменяема после создания, меняется только Status
// и только вперёд: active -> expired, active -> deleted, expired -> deleted.
type MediaRecord struct {
	UUID         string          `db:"uuid" json:"uuid"`
	OwnerUUID    string          `db:"owner_uuid" json:"owner_uuid"`
	FileName     string          `db:"file_name" json:"file_name"`
	ContentType  string          `db:"content_type" json:"content_type"`
	SizeBytes    int64           `db:"size_bytes" json:"size_bytes"`
	StorageKey   string          `db:"storage_key" json:"storage_key"`
	Status       MediaStatus     `db:"status" json:"status"`
	ThemeOptions json.RawMessage `db:"theme_options" json:"theme_options,omitempty"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	ExpiresAt    int64           `db:"expires_at" json:"expires_at"` // unix-время, 0 = бессрочно
}

// Expired : проверка срока жизни записи на момент now (ленивая, при каждом чтении)
func (m *MediaRecord) Expired(now time.Time) bool {
	return m.ExpiresAt > 0 && now.Unix() >= m.ExpiresAt
}

type IngestResult struct {
	Media    *MediaRecord
	ShareURL string
	QRImage  []byte // nil, если рендер QR не удался (не фатально)
}

type GetMediaResult struct {
	Media       *MediaRecord
	DownloadURL string // pre-signed GET URL, живёт не дольше expires_at записи
}
