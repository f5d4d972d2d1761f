package efficiency

import (
	"context"

	"github.com/stitchworks/machine-log-backend/internal/entity"
	"github.com/stitchworks/machine-log-backend/internal/repository"
	"github.com/stitchworks/machine-log-backend/pkg/utils"
)

// standardShiftHours is the fixed baseline for the per-log operator
// efficiency samples. Unrelated to the report nominal days.
const standardShiftHours = 8.0

type Service struct {
	logs repository.MachineLogRepository
}

func NewEfficiencyService(logs repository.MachineLogRepository) *Service {
	return &Service{logs: logs}
}

// OperatorEfficiencies emits one sample per stored log: segment duration
// against the 8-hour standard. A segment ending before it starts is read as
// crossing midnight, so the end gets a +24h adjustment. This is the only
// consumer with that reading; the windowed reports drop such records.
func (s *Service) OperatorEfficiencies(ctx context.Context) ([]entity.OperatorEfficiency, error) {
	spans, err := s.logs.TimeSpans(ctx)
	if err != nil {
		return nil, err
	}

	samples := make([]entity.OperatorEfficiency, 0, len(spans))
	for _, span := range spans {
		startSeconds, err := utils.ClockSeconds(span.StartTime)
		if err != nil {
			return nil, err
		}
		endSeconds, err := utils.ClockSeconds(span.EndTime)
		if err != nil {
			return nil, err
		}

		if endSeconds < startSeconds {
			endSeconds += 24 * 3600
		}

		hours := (endSeconds - startSeconds) / 3600
		samples = append(samples, entity.OperatorEfficiency{
			Operator:   span.OperatorID,
			Efficiency: utils.RoundToTwoDecimals(hours / standardShiftHours * 100),
		})
	}

	return samples, nil
}

// LineEfficiencies is runtime vs stoptime per line, straight off the SQL
// sums. No window or break policy applies here.
func (s *Service) LineEfficiencies(ctx context.Context) ([]entity.LineEfficiency, error) {
	stats, err := s.logs.LineRuntimeStats(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]entity.LineEfficiency, 0, len(stats))
	for _, stat := range stats {
		var percentage float64
		if total := stat.TotalRuntime + stat.TotalStoptime; total > 0 {
			percentage = utils.RoundToTwoDecimals(stat.TotalRuntime / total * 100)
		}
		lines = append(lines, entity.LineEfficiency{
			LineNumber:           stat.LineNumber,
			TotalMachines:        stat.TotalMachines,
			EfficiencyPercentage: percentage,
		})
	}

	return lines, nil
}

func (s *Service) MachineCount(ctx context.Context) (int, error) {
	return s.logs.CountDistinctMachines(ctx)
}

func (s *Service) LineCount(ctx context.Context) (int, error) {
	return s.logs.CountDistinctLines(ctx)
}

// UnderperformingOperatorCount counts operators seen in the no-feeding,
// meeting or maintenance modes.
func (s *Service) UnderperformingOperatorCount(ctx context.Context) (int, error) {
	return s.logs.CountUnderperformingOperators(ctx)
}
