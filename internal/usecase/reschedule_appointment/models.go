package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Request модель запроса на перенос записи
type Request struct {
	TenantID      int64
	AppointmentID int64
	Date          time.Time        // Новая дата (без времени)
	StartTime     domain.TimeOfDay // Новое время начала
	ResourceID    *string          // Новый мастер (nil - тот же)
	Force         bool             // Перенос администратором несмотря на занятость
}

// Response модель ответа с перенесенной записью
type Response struct {
	Appointment *domain.Appointment
	Conflict    bool // пересекается с другой записью или блокировкой мастера
}
