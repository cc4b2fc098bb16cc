package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда одна из услуг не найдена у тенанта
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
