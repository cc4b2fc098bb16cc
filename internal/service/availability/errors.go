package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном запросе (не положительная длительность и т.п.)
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal возвращается при ошибках чтения записей или блокировок
	ErrInternal = errors.New("availability: internal error")
)
