package service

import "errors"

// Ошибки сервисного слоя. Хендлеры маппят их на HTTP-коды через errors.Is,
// текст ошибки — только для человека, вид ошибки стабилен.
var (
	// ErrValidation : некорректная форма входных данных, не ретраится
	ErrValidation = errors.New("некорректные входные данные")
	// ErrInvalidMediaID : строка не похожа на идентификатор медиа
	ErrInvalidMediaID = errors.New("некорректный формат идентификатора медиа")
	// ErrMediaNotFound : запись не найдена; удалённые записи неотличимы от несуществующих
	ErrMediaNotFound = errors.New("медиа не найдено")
	// ErrMediaExpired : срок жизни записи истёк
	ErrMediaExpired = errors.New("срок жизни медиа истёк")
	// ErrIDCollision : повторная коллизия идентификатора (не должно случаться при корректном генераторе)
	ErrIDCollision = errors.New("коллизия идентификатора медиа")
	// ErrAccessDenied : запись принадлежит другому владельцу
	ErrAccessDenied = errors.New("доступ запрещён")
	// ErrPersistence : хранилище недоступно после всех повторов
	ErrPersistence = errors.New("ошибка сохранения данных")
	// ErrQRPayloadTooLarge : текст не помещается в QR-символ; для share URL
	// ограниченной длины это уровень assertion, а не пользовательская ошибка
	ErrQRPayloadTooLarge = errors.New("данные не помещаются в QR-код")
)
