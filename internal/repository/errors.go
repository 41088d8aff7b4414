package repository

import "errors"

var (
	// ErrMediaExists : условная вставка не прошла — uuid уже занят
	ErrMediaExists = errors.New("медиа с таким uuid уже существует")
	// ErrMediaNotFound : запись не найдена
	ErrMediaNotFound = errors.New("медиа не найдено")
)
