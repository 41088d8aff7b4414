package util

import (
	"context"
	"errors"
	"time"
)

// Retry : выполняет fn с ограниченным числом попыток и удвоением задержки
// между ними. Ошибки из списка permanent (not-found, коллизия, валидация)
// не ретраятся и возвращаются сразу — повтор имеет смысл только для
// транзиентных сбоев транспорта (таймаут сети, троттлинг).
func Retry(ctx context.Context, attempts int, baseDelay time.Duration, fn func() error, permanent ...error) error {
	var err error
	delay := baseDelay

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		err = fn()
		if err == nil {
			return nil
		}

		for _, p := range permanent {
			if errors.Is(err, p) {
				return err
			}
		}
	}

	return err
}
