package models

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Source откуда взята действующая конфигурация
type Source string

const (
	SourcePersisted   Source = "persisted"   // сохраненная конфигурация тенанта
	SourceDefault     Source = "default"     // конфигурации нет, действуют значения по умолчанию
	SourceInvalid     Source = "invalid"     // сохраненная конфигурация нарушает инварианты, действуют значения по умолчанию
	SourceUnavailable Source = "unavailable" // хранилище недоступно, действуют значения по умолчанию
)

// Resolution действующая конфигурация тенанта и ее источник
type Resolution struct {
	Config domain.BusinessHoursConfig
	Source Source
}

// UpdateHoursRequest запрос на замену рабочих часов тенанта
type UpdateHoursRequest struct {
	TenantID     int64             `json:"-"`
	OpenHour     int               `json:"openHour"`
	CloseHour    int               `json:"closeHour"`
	StepMinutes  int               `json:"stepMinutes"`
	OpenWeekdays domain.WeekdaySet `json:"openWeekdays"`
	LunchStart   *domain.TimeOfDay `json:"lunchStart,omitempty"`
	LunchEnd     *domain.TimeOfDay `json:"lunchEnd,omitempty"`
}

// HoursResponse ответ с рабочими часами
type HoursResponse struct {
	TenantID     int64             `json:"tenantId"`
	OpenHour     int               `json:"openHour"`
	CloseHour    int               `json:"closeHour"`
	StepMinutes  int               `json:"stepMinutes"`
	OpenWeekdays domain.WeekdaySet `json:"openWeekdays"`
	LunchStart   *domain.TimeOfDay `json:"lunchStart,omitempty"`
	LunchEnd     *domain.TimeOfDay `json:"lunchEnd,omitempty"`
	Source       Source            `json:"source"`
	UpdatedAt    *time.Time        `json:"updatedAt,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *UpdateHoursRequest) ToDomain() *domain.BusinessHoursConfig {
	return &domain.BusinessHoursConfig{
		TenantID:     r.TenantID,
		OpenHour:     r.OpenHour,
		CloseHour:    r.CloseHour,
		StepMinutes:  r.StepMinutes,
		OpenWeekdays: r.OpenWeekdays,
		LunchStart:   r.LunchStart,
		LunchEnd:     r.LunchEnd,
	}
}

// FromResolution конвертирует действующую конфигурацию в DTO
func FromResolution(res Resolution) *HoursResponse {
	resp := &HoursResponse{
		TenantID:     res.Config.TenantID,
		OpenHour:     res.Config.OpenHour,
		CloseHour:    res.Config.CloseHour,
		StepMinutes:  res.Config.StepMinutes,
		OpenWeekdays: res.Config.OpenWeekdays,
		LunchStart:   res.Config.LunchStart,
		LunchEnd:     res.Config.LunchEnd,
		Source:       res.Source,
	}
	if !res.Config.UpdatedAt.IsZero() {
		updatedAt := res.Config.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
