package domain

import "errors"

var (
	// ErrInvalidTimeOfDay возвращается при некорректном времени суток
	ErrInvalidTimeOfDay = errors.New("domain: invalid time of day")

	// ErrInvalidWeekday возвращается при неизвестном дне недели
	ErrInvalidWeekday = errors.New("domain: invalid weekday")

	// ErrInvalidBusinessHours возвращается, когда конфигурация рабочих часов нарушает инварианты
	ErrInvalidBusinessHours = errors.New("domain: invalid business hours")

	// ErrInvalidStatus возвращается при неизвестном статусе записи
	ErrInvalidStatus = errors.New("domain: invalid appointment status")

	// ErrStaleSlotList возвращается при обращении к списку слотов, посчитанному для другой длительности
	ErrStaleSlotList = errors.New("domain: slot list was computed for a different duration")

	// ErrSlotNotOffered возвращается, когда время не является кандидатом в списке слотов
	ErrSlotNotOffered = errors.New("domain: time is not an offered slot")
)
