package report

import (
	"github.com/stitchworks/machine-log-backend/internal/entity"
)

// percent is the single division-guard used by every ratio in the report
// layer: a non-positive denominator yields 0, never NaN or Inf.
func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

// safeDivide mirrors percent for plain ratios (averages per instance).
func safeDivide(numerator float64, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}

// reportTotals accumulates the unrounded whole-range sums a summary block
// is composed from.
type reportTotals struct {
	hours           bucketHours
	stitchCount     int64
	sewingSkipCount float64
	sewingLogCount  int
	speedSum        float64
	speedCount      int
}

func sumGroups(groups []dayGroup) reportTotals {
	var totals reportTotals
	for _, group := range groups {
		totals.hours.sewing += group.hours.sewing
		totals.hours.idle += group.hours.idle
		totals.hours.noFeeding += group.hours.noFeeding
		totals.hours.meeting += group.hours.meeting
		totals.hours.maintenance += group.hours.maintenance
		totals.stitchCount += group.stitchCount
		totals.sewingSkipCount += group.sewingSkipCount
		totals.sewingLogCount += group.sewingLogCount
		totals.speedSum += group.speedSum
		totals.speedCount += group.speedCount
	}
	return totals
}

func (t reportTotals) averageSpeed() float64 {
	return safeDivide(t.speedSum, float64(t.speedCount))
}

// averageNeedleRuntime is the mean skip count per sewing-mode record, the
// figure the operator and line summaries expose as "total needle runtime".
func (t reportTotals) averageNeedleRuntime() float64 {
	return safeDivide(t.sewingSkipCount, float64(t.sewingLogCount))
}

// needleRuntimePercentage relates sewing skip counts, converted to hours,
// to productive hours.
func (t reportTotals) needleRuntimePercentage() float64 {
	return percent(t.sewingSkipCount/3600, t.hours.sewing)
}

// excludeUnassignedIdle drops records carrying the exact
// (operator "0", mode idle) conjunction. Unassigned records in other modes
// stay in.
func excludeUnassignedIdle(logs []entity.MachineLog) []entity.MachineLog {
	kept := make([]entity.MachineLog, 0, len(logs))
	for _, machineLog := range logs {
		if machineLog.OperatorID == entity.UnassignedOperatorID && machineLog.Mode == ModeIdle {
			continue
		}
		kept = append(kept, machineLog)
	}
	return kept
}

func operatorDisplayName(names map[string]string, operatorID string) string {
	if name, ok := names[operatorID]; ok {
		return name
	}
	return "Unknown"
}
