package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда одна из услуг не найдена у тенанта
	ErrServiceNotFound = errors.New("service not found")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят
	ErrSlotNotAvailable = errors.New("time slot is not available")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает ни с одним слотом дня
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrClosed возвращается, когда в выбранный день недели салон не работает
	ErrClosed = errors.New("closed on this date")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
