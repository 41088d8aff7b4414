package util

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// идентификатор медиа — 32 hex-символа (uuid v4 без дефисов)
var mediaIDPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

// GenerateMediaID : генерирует новый идентификатор медиа.
// uuid v4 берёт 122 бита из crypto/rand — вероятность коллизии пренебрежимо мала,
// но условная вставка в БД всё равно страхует от перезаписи.
func GenerateMediaID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// ValidMediaID : проверяет формат идентификатора до похода в хранилище,
// чтобы произвольная строка из URL не попала в storage key
func ValidMediaID(id string) bool {
	return mediaIDPattern.MatchString(id)
}
