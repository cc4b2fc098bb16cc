package scheduling

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Aggregate collapses the selected services into one contiguous duration and a
// total price. Slots must be generated for the aggregated duration, never for
// any single service, and regenerated whenever the selection changes.
func Aggregate(services []domain.ServiceItem) (domain.ServiceTotals, error) {
	if len(services) == 0 {
		return domain.ServiceTotals{}, fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	totals := domain.ServiceTotals{TotalPrice: decimal.Zero}
	for _, s := range services {
		if s.DurationMinutes <= 0 {
			return domain.ServiceTotals{}, fmt.Errorf("%w: service %d has non-positive duration %d",
				ErrInvalidInput, s.ID, s.DurationMinutes)
		}
		if s.Price.IsNegative() {
			return domain.ServiceTotals{}, fmt.Errorf("%w: service %d has negative price %s",
				ErrInvalidInput, s.ID, s.Price)
		}
		totals.TotalDuration += s.DurationMinutes
		totals.TotalPrice = totals.TotalPrice.Add(s.Price)
	}

	return totals, nil
}
