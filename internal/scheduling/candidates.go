package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// GenerateCandidates enumerates slot starts from opening time, stepped by
// cfg.StepMinutes, keeping only starts whose service of totalDuration minutes
// finishes by closing time. A start that would run past closing is never a
// candidate.
func GenerateCandidates(cfg domain.BusinessHoursConfig, totalDuration int) ([]int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if totalDuration <= 0 {
		return nil, fmt.Errorf("%w: total duration must be positive, got %d", ErrInvalidInput, totalDuration)
	}

	open, closing := cfg.OpenMinutes(), cfg.CloseMinutes()
	candidates := make([]int, 0, (closing-open)/cfg.StepMinutes+1)

	for start := open; start < closing; start += cfg.StepMinutes {
		if start+totalDuration > closing {
			break
		}
		candidates = append(candidates, start)
	}

	return candidates, nil
}
