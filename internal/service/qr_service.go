package service

import (
	"media-share-server/internal/util"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// QRService : рендер share URL в PNG.
// Уровень коррекции и размер фиксированы, поэтому для одного и того же
// текста всегда получаются одни и те же байты.
type QRService struct {
	level qrcode.RecoveryLevel
	size  int
}

func NewQRService() *QRService {
	return &QRService{
		level: qrcode.Medium,
		size:  256,
	}
}

// Encode : текст -> PNG. Единственный отказ — текст не помещается в QR-символ.
func (s *QRService) Encode(text string) ([]byte, error) {
	png, err := qrcode.Encode(text, s.level, s.size)
	if err != nil {
		if strings.Contains(err.Error(), "too long") {
			return nil, ErrQRPayloadTooLarge
		}
		return nil, util.LogError("[QRService] ошибка рендера QR-кода", err)
	}

	return png, nil
}
