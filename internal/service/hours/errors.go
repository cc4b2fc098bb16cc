package hours

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных рабочих часах в запросе
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
