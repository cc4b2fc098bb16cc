package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	TenantID      int64
	ResourceID    string           // Мастер
	ServiceIDs    []int64          // Выбранные услуги, выполняются подряд
	Date          time.Time        // Дата записи (без времени)
	StartTime     domain.TimeOfDay // Выбранный слот
	CustomerName  string
	CustomerPhone *string
	Notes         *string
	// Force администратор записывает клиента несмотря на занятость слота
	Force bool
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
	// Conflict запись пересекается с другой записью или блокировкой мастера (возможно только с Force)
	Conflict bool
}
