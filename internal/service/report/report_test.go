package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchworks/machine-log-backend/internal/entity"
)

func testLog(date, operatorID string, machineID, mode int, start, end string) entity.MachineLog {
	return entity.MachineLog{
		MachineID:  machineID,
		LineNumber: 1,
		OperatorID: operatorID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Mode:       mode,
	}
}

func strPtr(s string) *string { return &s }

func TestModeDescription(t *testing.T) {
	assert.Equal(t, "Sewing", ModeDescription(ModeSewing))
	assert.Equal(t, "Idle", ModeDescription(ModeIdle))
	assert.Equal(t, "Unknown mode", ModeDescription(99))
	assert.Equal(t, "Unknown mode", ModeDescription(0))
}

func TestOperatorReportSingleSewingHour(t *testing.T) {
	logs := []entity.MachineLog{
		testLog("2024-05-01", "1001", 7, ModeSewing, "09:00:00", "10:00:00"),
	}
	names := map[string]string{"1001": "Aruzhan"}

	got, err := BuildOperatorReport(logs, "1001", names, OperatorPolicy)
	require.NoError(t, err)

	assert.Equal(t, "Aruzhan", got.OperatorName)
	assert.Equal(t, 1, got.TotalWorkingDays)
	assert.Equal(t, 10.0, got.TotalAvailableHours)
	assert.Equal(t, 1.0, got.TotalProductionHours)
	assert.Equal(t, 9.0, got.TotalIdleHours)
	assert.Equal(t, 9.0, got.TotalNonProductionHours)
	assert.Equal(t, 10.0, got.ProductionPercentage)
	assert.Equal(t, 90.0, got.NPTPercentage)

	require.Len(t, got.TableData, 1)
	row := got.TableData[0]
	assert.Equal(t, 10.0, row.TotalHours)
	assert.Equal(t, 1.0, row.SewingHours)
	assert.Equal(t, 9.0, row.IdleHours)
	assert.Equal(t, 10.0, row.ProductivePercentage)
	assert.Equal(t, 90.0, row.NonProductivePercentage)
}

func TestOperatorReportClampsToWindow(t *testing.T) {
	logs := []entity.MachineLog{
		// 07:00-09:30 clamps to 08:30-09:30.
		testLog("2024-05-01", "1001", 7, ModeSewing, "07:00:00", "09:30:00"),
		// Ends before window opens; dropped.
		testLog("2024-05-01", "1001", 7, ModeSewing, "06:00:00", "07:00:00"),
		// Cross-midnight reading comes out non-positive; dropped.
		testLog("2024-05-01", "1001", 7, ModeSewing, "19:00:00", "01:00:00"),
	}

	got, err := BuildOperatorReport(logs, "1001", nil, OperatorPolicy)
	require.NoError(t, err)

	assert.Equal(t, 1.0, got.TotalProductionHours)
}

func TestOperatorReportExcludesBreakRecords(t *testing.T) {
	base := []entity.MachineLog{
		testLog("2024-05-01", "1001", 7, ModeSewing, "09:00:00", "10:00:00"),
	}
	withBreak := append([]entity.MachineLog{
		// Wholly inside the 13:20-14:00 lunch break.
		testLog("2024-05-01", "1001", 7, ModeSewing, "13:30:00", "13:50:00"),
	}, base...)

	want, err := BuildOperatorReport(base, "1001", nil, OperatorPolicy)
	require.NoError(t, err)
	got, err := BuildOperatorReport(withBreak, "1001", nil, OperatorPolicy)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestOperatorReportKeepsBreakStraddlers(t *testing.T) {
	logs := []entity.MachineLog{
		// Overlaps the lunch break on both sides; kept unsplit.
		testLog("2024-05-01", "1001", 7, ModeSewing, "13:00:00", "14:30:00"),
	}

	got, err := BuildOperatorReport(logs, "1001", nil, OperatorPolicy)
	require.NoError(t, err)

	assert.Equal(t, 1.5, got.TotalProductionHours)
}

func TestOperatorReportDropsUnassignedIdleOnly(t *testing.T) {
	logs := []entity.MachineLog{
		testLog("2024-05-01", "0", 7, ModeIdle, "09:00:00", "10:00:00"),
		testLog("2024-05-01", "0", 7, ModeSewing, "10:00:00", "11:00:00"),
	}

	got, err := BuildOperatorReport(logs, "0", nil, OperatorPolicy)
	require.NoError(t, err)

	// The sewing record survives; only the (unassigned, idle) pair is gone.
	assert.Equal(t, 1.0, got.TotalProductionHours)
	assert.Equal(t, 1, got.TotalWorkingDays)
}

func TestOperatorReportMalformedClockAborts(t *testing.T) {
	logs := []entity.MachineLog{
		testLog("2024-05-01", "1001", 7, ModeSewing, "9am", "10:00:00"),
	}

	_, err := BuildOperatorReport(logs, "1001", nil, OperatorPolicy)
	require.Error(t, err)
}

func TestOperatorReportEmptySnapshotIsAllZeros(t *testing.T) {
	got, err := BuildOperatorReport(nil, "1001", nil, OperatorPolicy)
	require.NoError(t, err)

	assert.Equal(t, 0, got.TotalWorkingDays)
	assert.Equal(t, 0.0, got.TotalAvailableHours)
	assert.Equal(t, 0.0, got.ProductionPercentage)
	assert.Equal(t, 0.0, got.NPTPercentage)
	assert.Equal(t, 0.0, got.AverageSewingSpeed)
	assert.Empty(t, got.TableData)
}

func TestOperatorReportSpeedCoercion(t *testing.T) {
	logs := []entity.MachineLog{
		testLog("2024-05-01", "1001", 7, ModeSewing, "09:00:00", "10:00:00"),
		testLog("2024-05-01", "1001", 7, ModeSewing, "10:00:00", "11:00:00"),
		testLog("2024-05-01", "1001", 7, ModeSewing, "11:00:00", "12:00:00"),
		testLog("2024-05-01", "1001", 7, ModeSewing, "14:00:00", "15:00:00"),
	}
	logs[0].Reserve = strPtr("4500")
	logs[1].Reserve = strPtr("abc")
	logs[2].Reserve = strPtr("-5")
	// logs[3].Reserve stays nil.

	got, err := BuildOperatorReport(logs, "1001", nil, OperatorPolicy)
	require.NoError(t, err)

	// Non-coercible samples leave both numerator and denominator.
	assert.Equal(t, 4500.0, got.AverageSewingSpeed)
}

func TestOperatorReportNeedleRuntime(t *testing.T) {
	logs := []entity.MachineLog{
		testLog("2024-05-01", "1001", 7, ModeSewing, "09:00:00", "10:00:00"),
		testLog("2024-05-01", "1001", 7, ModeSewing, "10:00:00", "11:00:00"),
		testLog("2024-05-01", "1001", 7, ModeIdle, "11:00:00", "12:00:00"),
	}
	logs[0].SkipCount = 1800
	logs[1].SkipCount = 3600
	logs[2].SkipCount = 9999 // idle-mode skip counts stay out of the sewing sum

	got, err := BuildOperatorReport(logs, "1001", nil, OperatorPolicy)
	require.NoError(t, err)

	// Mean skip per sewing instance: (1800+3600)/2.
	assert.Equal(t, 2700.0, got.TotalNeedleRuntime)
	// (5400/3600) seconds-as-hours over 2 productive hours.
	assert.Equal(t, 75.0, got.NeedleRuntimePercentage)
}

func TestLineReportContainmentAndUtilization(t *testing.T) {
	logs := []entity.MachineLog{
		// Starts before 08:25; rejected by containment.
		testLog("2024-05-01", "1001", 7, ModeSewing, "08:00:00", "09:00:00"),
		testLog("2024-05-01", "1001", 7, ModeSewing, "09:00:00", "12:00:00"),
		testLog("2024-05-01", "1002", 8, ModeIdle, "14:30:00", "16:30:00"),
	}

	got, err := BuildLineReport(logs, "1", LinePolicy)
	require.NoError(t, err)

	assert.Equal(t, "1", got.LineNumber)
	assert.Equal(t, 5.0, got.TotalHours)
	assert.Equal(t, 2.0, got.TotalIdealHours)
	assert.Equal(t, 250.0, got.UtilizationPercentage)
	assert.Equal(t, 3.0, got.TotalProductiveTime.Hours)
	assert.Equal(t, 60.0, got.TotalProductiveTime.Percentage)
	assert.Equal(t, 2.0, got.TotalNonProductiveTime.Hours)
	assert.Equal(t, 40.0, got.TotalNonProductiveTime.Percentage)
	assert.Equal(t, 2.0, got.TotalNonProductiveTime.Breakdown.IdleHours)
	assert.Equal(t, 2.0, got.AverageMachines)

	require.Len(t, got.TableData, 1)
	assert.Equal(t, 2, got.TableData[0].MachineCount)
}

func TestLineReportAverageMachinesAcrossDays(t *testing.T) {
	logs := []entity.MachineLog{
		testLog("2024-05-01", "1001", 7, ModeSewing, "09:00:00", "10:00:00"),
		testLog("2024-05-01", "1001", 8, ModeSewing, "09:00:00", "10:00:00"),
		testLog("2024-05-01", "1001", 9, ModeSewing, "09:00:00", "10:00:00"),
		testLog("2024-05-02", "1001", 7, ModeSewing, "09:00:00", "10:00:00"),
	}

	got, err := BuildLineReport(logs, "1", LinePolicy)
	require.NoError(t, err)

	assert.Equal(t, 2, got.TotalWorkingDays)
	assert.Equal(t, 2.0, got.AverageMachines) // (3+1)/2
}

func TestLineReportZeroIdealHours(t *testing.T) {
	logs := []entity.MachineLog{
		testLog("2024-05-01", "1001", 7, ModeSewing, "09:00:00", "10:00:00"),
	}

	got, err := BuildLineReport(logs, "1", LinePolicy)
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.TotalIdealHours)
	assert.Equal(t, 0.0, got.UtilizationPercentage)
}

func TestMachineReportElevenHourDay(t *testing.T) {
	logs := []entity.MachineLog{
		testLog("2024-05-01", "1001", 7, ModeSewing, "09:00:00", "12:00:00"),
		testLog("2024-05-01", "1001", 7, ModeMaintenance, "15:00:00", "16:00:00"),
		testLog("2024-05-02", "1001", 7, ModeSewing, "09:00:00", "11:00:00"),
	}
	logs[0].SkipCount = 1200
	logs[2].SkipCount = 600

	got, err := BuildMachineReport(logs, 7, MachinePolicy)
	require.NoError(t, err)

	assert.Equal(t, 7, got.MachineID)
	assert.Equal(t, 2, got.TotalWorkingDays)
	assert.Equal(t, 22.0, got.TotalAvailableHours)
	assert.Equal(t, 6.0, got.TotalHours)
	assert.Equal(t, 5.0, got.TotalProductiveTime.Hours)
	assert.Equal(t, 1.0, got.TotalNonProductiveTime.Breakdown.MaintenanceHours)
	// Raw sewing skip total, not a per-instance mean.
	assert.Equal(t, 1800.0, got.TotalNeedleRuntime)
	require.Len(t, got.TableData, 2)
	assert.Equal(t, 7, got.TableData[0].MachineID)
}

func TestAggregateOrderIndependence(t *testing.T) {
	forward := []entity.MachineLog{
		testLog("2024-05-01", "1001", 7, ModeSewing, "09:00:00", "10:00:00"),
		testLog("2024-05-02", "1002", 8, ModeIdle, "10:00:00", "11:00:00"),
		testLog("2024-05-01", "1002", 8, ModeMeeting, "11:00:00", "12:00:00"),
	}
	reversed := []entity.MachineLog{forward[2], forward[1], forward[0]}

	want, err := BuildLineReport(forward, "1", LinePolicy)
	require.NoError(t, err)
	got, err := BuildLineReport(reversed, "1", LinePolicy)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestBuildOperatorsRollupWeightedSummary(t *testing.T) {
	operators := []entity.Operator{
		{RFIDCardNo: "1001", OperatorName: "Aruzhan"},
		{RFIDCardNo: "1002", OperatorName: "Bekzat"},
	}
	logsByOperator := map[string][]entity.MachineLog{
		"1001": {
			testLog("2024-05-01", "1001", 7, ModeSewing, "09:00:00", "10:00:00"),
		},
		"1002": {
			testLog("2024-05-01", "1002", 8, ModeSewing, "09:00:00", "10:00:00"),
			testLog("2024-05-02", "1002", 8, ModeSewing, "09:00:00", "11:00:00"),
		},
	}
	logsByOperator["1001"][0].Reserve = strPtr("4000")
	logsByOperator["1002"][0].Reserve = strPtr("6000")
	logsByOperator["1002"][1].Reserve = strPtr("6000")
	names := map[string]string{"1001": "Aruzhan", "1002": "Bekzat"}

	got, err := BuildOperatorsRollup(operators, logsByOperator, names, OperatorPolicy)
	require.NoError(t, err)

	require.Len(t, got.AllOperatorsReport, 2)
	summary := got.Summary
	assert.Equal(t, 2, summary.TotalOperators)
	assert.Equal(t, 2, summary.TotalWorkingDays)       // max, not sum
	assert.Equal(t, 30.0, summary.TotalAvailableHours) // 10 + 20
	assert.Equal(t, 4.0, summary.TotalProductionHours)
	// (4000*10 + 6000*20) / 30
	assert.Equal(t, 5333.33, summary.AverageSewingSpeed)
	assert.Equal(t, 13.33, summary.ProductionPercentage)
}

func TestBuildOperatorSummariesZeroActivity(t *testing.T) {
	operators := []entity.Operator{
		{RFIDCardNo: "1001", OperatorName: "Aruzhan"},
		{RFIDCardNo: "1002", OperatorName: "Bekzat"},
	}
	logsByOperator := map[string][]entity.MachineLog{
		"1001": {
			testLog("2024-05-01", "1001", 7, ModeSewing, "09:00:00", "12:00:00"),
		},
	}

	rows, err := BuildOperatorSummaries(operators, logsByOperator, OperatorPolicy)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	active := rows[0]
	assert.Equal(t, 3.0, active.TotalProductionHours)
	assert.Equal(t, 7.0, active.TotalNonProductionHours)
	assert.Equal(t, 30.0, active.ProductionPercentage)
	assert.Equal(t, 70.0, active.NPTPercentage)

	idle := rows[1]
	assert.Equal(t, 0.0, idle.TotalProductionHours)
	assert.Equal(t, 0.0, idle.ProductionPercentage)
	assert.Equal(t, 0.0, idle.NPTPercentage)
}

func TestBuildLinesRollupSummary(t *testing.T) {
	lineA, err := BuildLineReport([]entity.MachineLog{
		testLog("2024-05-01", "1001", 7, ModeSewing, "09:00:00", "12:00:00"),
		testLog("2024-05-01", "1001", 7, ModeIdle, "14:30:00", "16:30:00"),
	}, "1", LinePolicy)
	require.NoError(t, err)
	lineB, err := BuildLineReport([]entity.MachineLog{
		testLog("2024-05-01", "1002", 8, ModeSewing, "09:00:00", "11:00:00"),
		testLog("2024-05-02", "1002", 8, ModeIdle, "09:00:00", "10:00:00"),
	}, "2", LinePolicy)
	require.NoError(t, err)

	got := BuildLinesRollup([]entity.LineReport{*lineA, *lineB})

	summary := got.Summary
	assert.Equal(t, 2, summary.TotalLines)
	assert.Equal(t, 2, summary.TotalWorkingDays)
	assert.Equal(t, 8.0, summary.TotalHours)
	assert.Equal(t, 3.0, summary.TotalIdealHours)
	assert.Equal(t, 5.0, summary.TotalProductiveTime.Hours)
	assert.Equal(t, 62.5, summary.TotalProductiveTime.Percentage)
	assert.Equal(t, 1.0, summary.AverageMachines)
}

func TestBuildMachinesRollupSummary(t *testing.T) {
	machineA, err := BuildMachineReport([]entity.MachineLog{
		testLog("2024-05-01", "1001", 7, ModeSewing, "09:00:00", "12:00:00"),
	}, 7, MachinePolicy)
	require.NoError(t, err)
	machineB, err := BuildMachineReport([]entity.MachineLog{
		testLog("2024-05-01", "1002", 8, ModeIdle, "09:00:00", "10:00:00"),
	}, 8, MachinePolicy)
	require.NoError(t, err)

	got := BuildMachinesRollup([]entity.MachineReport{*machineA, *machineB}, "2024-05-01", "2024-05-01")

	assert.Equal(t, 2, got.TotalMachines)
	assert.Equal(t, "2024-05-01", got.FromDate)
	summary := got.Summary
	assert.Equal(t, 22.0, summary.TotalAvailableHours)
	assert.Equal(t, 4.0, summary.TotalHours)
	assert.Equal(t, 3.0, summary.TotalProductiveTime.Hours)
	assert.Equal(t, 75.0, summary.TotalProductiveTime.Percentage)
	assert.Equal(t, 1.0, summary.TotalNonProductiveTime.Hours)
	assert.Equal(t, 1, summary.TotalWorkingDays)
}

func TestReserveSample(t *testing.T) {
	cases := []struct {
		in   *string
		want int
		ok   bool
	}{
		{nil, 0, false},
		{strPtr(""), 0, false},
		{strPtr("abc"), 0, false},
		{strPtr("0"), 0, false},
		{strPtr("-12"), 0, false},
		{strPtr("3.5"), 0, false},
		{strPtr(" 4200 "), 4200, true},
		{strPtr("4200"), 4200, true},
	}

	for _, tc := range cases {
		got, ok := reserveSample(tc.in)
		assert.Equal(t, tc.ok, ok)
		assert.Equal(t, tc.want, got)
	}
}

func TestPercentZeroDenominator(t *testing.T) {
	assert.Equal(t, 0.0, percent(5, 0))
	assert.Equal(t, 0.0, percent(5, -1))
	assert.Equal(t, 50.0, percent(5, 10))
}
