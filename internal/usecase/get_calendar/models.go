package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/scheduling"
)

// Request модель запроса календаря
type Request struct {
	TenantID   int64
	Anchor     time.Time // Дата, вокруг которой строится вид
	View       string    // day | 3-day | week (пусто - day)
	ResourceID *string   // Только один мастер (nil - все)
}

// Response модель ответа: сетка и дни с позиционированными записями
type Response struct {
	View     scheduling.ViewMode
	Geometry scheduling.GridGeometry
	Days     []Day
}

// Day один столбец календаря
type Day struct {
	Date   time.Time
	Open   bool // день недели рабочий
	Events []scheduling.EventBox
	Blocks []scheduling.BlockBox
}
