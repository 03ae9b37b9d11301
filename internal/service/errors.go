package service

import "errors"

var (
	// ErrNotFound позиция не существует в области видимости владельца
	// Отсутствие позиции и чужая позиция для вызывающего неразличимы
	ErrNotFound = errors.New("item not found")

	// ErrInvalidInput некорректные входные данные, запрос отклонён до обращения к хранилищу
	ErrInvalidInput = errors.New("invalid input")
)
