package get_available_slots

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date          string          `json:"date"`
	ResourceID    string          `json:"resourceId"`
	ServiceIDs    []int64         `json:"serviceIds"`
	TotalDuration int             `json:"totalDurationMinutes"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Closed        bool            `json:"closed"`
	HoursSource   string          `json:"hoursSource"`
	Slots         []SlotResponse  `json:"slots"`
}

// SlotResponse слот; недоступные слоты тоже возвращаются
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.Start.String(),
			EndTime:   domain.TimeOfDayFromMinutes(s.Start.Minutes() + resp.TotalDuration).String(),
			Available: s.Available,
		})
	}

	return &SlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		ResourceID:    resp.ResourceID,
		ServiceIDs:    resp.ServiceIDs,
		TotalDuration: resp.TotalDuration,
		TotalPrice:    resp.TotalPrice,
		Closed:        resp.Closed,
		HoursSource:   resp.HoursSource,
		Slots:         slots,
	}
}
