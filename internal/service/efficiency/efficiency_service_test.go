package efficiency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchworks/machine-log-backend/internal/repository"
)

type fakeLogRepo struct {
	repository.MachineLogRepository
	spans []repository.TimeSpan
	stats []repository.LineRuntimeStat
}

func (f fakeLogRepo) TimeSpans(ctx context.Context) ([]repository.TimeSpan, error) {
	return f.spans, nil
}

func (f fakeLogRepo) LineRuntimeStats(ctx context.Context) ([]repository.LineRuntimeStat, error) {
	return f.stats, nil
}

func TestOperatorEfficiencies(t *testing.T) {
	srv := NewEfficiencyService(fakeLogRepo{spans: []repository.TimeSpan{
		{OperatorID: "1001", StartTime: "08:00:00", EndTime: "12:00:00"},
		// Ends before it starts: crosses midnight, 22:00 to 06:00 is 8h.
		{OperatorID: "1002", StartTime: "22:00:00", EndTime: "06:00:00"},
	}})

	samples, err := srv.OperatorEfficiencies(context.Background())
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, "1001", samples[0].Operator)
	assert.Equal(t, 50.0, samples[0].Efficiency)
	assert.Equal(t, 100.0, samples[1].Efficiency)
}

func TestLineEfficiencies(t *testing.T) {
	srv := NewEfficiencyService(fakeLogRepo{stats: []repository.LineRuntimeStat{
		{LineNumber: 1, TotalMachines: 12, TotalRuntime: 300, TotalStoptime: 100},
		{LineNumber: 2, TotalMachines: 8, TotalRuntime: 0, TotalStoptime: 0},
	}})

	lines, err := srv.LineEfficiencies(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, 75.0, lines[0].EfficiencyPercentage)
	assert.Equal(t, 12, lines[0].TotalMachines)
	// Zero activity never divides by zero.
	assert.Equal(t, 0.0, lines[1].EfficiencyPercentage)
}
