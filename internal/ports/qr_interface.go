package ports

// QRGenerator : рендер строки (share URL) в PNG-изображение.
// Детерминированная функция: один и тот же текст даёт одни и те же байты.
type QRGenerator interface {
	Encode(text string) ([]byte, error)
}
