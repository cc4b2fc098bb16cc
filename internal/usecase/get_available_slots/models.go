package get_available_slots

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	TenantID   int64     // ID тенанта (салона)
	ResourceID string    // Мастер, для которого считаются слоты
	ServiceIDs []int64   // Выбранные услуги; слоты строятся на их суммарную длительность
	Date       time.Time // Дата (без времени)
	// ExcludeAppointmentID запись, которая переносится (ее время считается свободным)
	ExcludeAppointmentID *int64
}

// Response модель ответа со списком слотов
type Response struct {
	Date          time.Time
	ResourceID    string
	ServiceIDs    []int64
	TotalDuration int             // Суммарная длительность услуг в минутах
	TotalPrice    decimal.Decimal // Суммарная стоимость услуг
	Closed        bool            // Нерабочий день
	HoursSource   string          // Откуда взяты рабочие часы
	Slots         []domain.Slot   // Все кандидаты, включая недоступные
}
