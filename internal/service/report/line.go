package report

import (
	"github.com/stitchworks/machine-log-backend/internal/entity"
	"github.com/stitchworks/machine-log-backend/pkg/utils"
)

// BuildLineReport assembles the report for one production line under the
// direct-idle policy: idle is summed from mode-2 records and each day's
// total is the actual sum over all buckets. Utilization relates the actual
// total to the "ideal" hours, the line's accumulated idle capacity.
func BuildLineReport(logs []entity.MachineLog, lineNumber string, policy Policy) (*entity.LineReport, error) {
	prepared, err := prepare(excludeUnassignedIdle(logs), policy)
	if err != nil {
		return nil, err
	}

	groups := aggregate(prepared, nil)
	totals := sumGroups(groups)

	workingDays := len(groups)
	idealHours := totals.hours.idle

	var machineCountSum int
	tableData := make([]entity.LineDailyRow, 0, len(groups))
	for _, group := range groups {
		machineCountSum += len(group.machines)
		tableData = append(tableData, lineDailyRow(group))
	}

	averageMachines := safeDivide(float64(machineCountSum), float64(workingDays))

	totalHours := totals.hours.total()
	nonProductiveHours := totalHours - totals.hours.sewing

	return &entity.LineReport{
		LineNumber:            lineNumber,
		TotalIdealHours:       utils.RoundToTwoDecimals(idealHours),
		UtilizationPercentage: utils.RoundToTwoDecimals(percent(totalHours, idealHours)),
		TotalWorkingDays:      workingDays,
		AverageMachines:       utils.RoundToTwoDecimals(averageMachines),
		TotalHours:            utils.RoundToTwoDecimals(totalHours),
		TotalProductiveTime: entity.HoursWithPercentage{
			Hours:      utils.RoundToTwoDecimals(totals.hours.sewing),
			Percentage: utils.RoundToTwoDecimals(percent(totals.hours.sewing, totalHours)),
		},
		TotalNonProductiveTime: entity.NonProductiveTime{
			Hours:      utils.RoundToTwoDecimals(nonProductiveHours),
			Percentage: utils.RoundToTwoDecimals(percent(nonProductiveHours, totalHours)),
			Breakdown: entity.NPTBreakdown{
				NoFeedingHours:   utils.RoundToTwoDecimals(totals.hours.noFeeding),
				MeetingHours:     utils.RoundToTwoDecimals(totals.hours.meeting),
				MaintenanceHours: utils.RoundToTwoDecimals(totals.hours.maintenance),
				IdleHours:        utils.RoundToTwoDecimals(totals.hours.idle),
			},
		},
		TotalStitchCount:        totals.stitchCount,
		AverageSewingSpeed:      utils.RoundToTwoDecimals(totals.averageSpeed()),
		TotalNeedleRuntime:      utils.RoundToTwoDecimals(totals.averageNeedleRuntime()),
		NeedleRuntimePercentage: utils.RoundToTwoDecimals(totals.needleRuntimePercentage()),
		TableData:               tableData,
	}, nil
}

func lineDailyRow(group dayGroup) entity.LineDailyRow {
	dayTotal := group.hours.total()
	nonProductive := dayTotal - group.hours.sewing

	return entity.LineDailyRow{
		Date:                    group.date,
		SewingHours:             utils.RoundToTwoDecimals(group.hours.sewing),
		NoFeedingHours:          utils.RoundToTwoDecimals(group.hours.noFeeding),
		MeetingHours:            utils.RoundToTwoDecimals(group.hours.meeting),
		MaintenanceHours:        utils.RoundToTwoDecimals(group.hours.maintenance),
		IdleHours:               utils.RoundToTwoDecimals(group.hours.idle),
		TotalHours:              utils.RoundToTwoDecimals(dayTotal),
		ProductivePercentage:    utils.RoundToTwoDecimals(percent(group.hours.sewing, dayTotal)),
		NonProductivePercentage: utils.RoundToTwoDecimals(percent(nonProductive, dayTotal)),
		SewingSpeed:             utils.RoundToTwoDecimals(group.averageSpeed()),
		StitchCount:             group.stitchCount,
		NeedleRuntime:           utils.RoundToTwoDecimals(group.skipCount),
		MachineCount:            len(group.machines),
	}
}

// BuildLinesRollup combines per-line reports into the "all lines" response.
// Additive fields are summed from the per-line reports; average speed is
// duration-weighted by each line's total hours; average machines is a plain
// mean over lines; working days is the widest line.
func BuildLinesRollup(reports []entity.LineReport) *entity.LinesRollup {
	rollup := &entity.LinesRollup{AllLinesReport: reports}
	summary := &rollup.Summary

	var (
		speedWeightedSum   float64
		speedWeight        float64
		machineAverageSum  float64
		productiveHours    float64
		nonProductiveHours float64
	)

	for _, lineReport := range reports {
		summary.TotalIdealHours += lineReport.TotalIdealHours
		summary.TotalHours += lineReport.TotalHours
		summary.TotalStitchCount += lineReport.TotalStitchCount
		summary.TotalNeedleRuntime += lineReport.TotalNeedleRuntime
		productiveHours += lineReport.TotalProductiveTime.Hours
		nonProductiveHours += lineReport.TotalNonProductiveTime.Hours
		if lineReport.TotalWorkingDays > summary.TotalWorkingDays {
			summary.TotalWorkingDays = lineReport.TotalWorkingDays
		}

		speedWeightedSum += lineReport.AverageSewingSpeed * lineReport.TotalHours
		speedWeight += lineReport.TotalHours
		machineAverageSum += lineReport.AverageMachines
	}

	summary.TotalLines = len(reports)
	summary.UtilizationPercentage = utils.RoundToTwoDecimals(percent(summary.TotalHours, summary.TotalIdealHours))
	summary.AverageMachines = utils.RoundToTwoDecimals(safeDivide(machineAverageSum, float64(len(reports))))
	summary.AverageSewingSpeed = utils.RoundToTwoDecimals(safeDivide(speedWeightedSum, speedWeight))
	summary.NeedleRuntimePercentage = utils.RoundToTwoDecimals(percent(summary.TotalNeedleRuntime, productiveHours))
	summary.TotalProductiveTime = entity.HoursWithPercentage{
		Hours:      utils.RoundToTwoDecimals(productiveHours),
		Percentage: utils.RoundToTwoDecimals(percent(productiveHours, summary.TotalHours)),
	}
	summary.TotalNonProductiveTime = entity.HoursWithPercentage{
		Hours:      utils.RoundToTwoDecimals(nonProductiveHours),
		Percentage: utils.RoundToTwoDecimals(percent(nonProductiveHours, summary.TotalHours)),
	}
	summary.TotalIdealHours = utils.RoundToTwoDecimals(summary.TotalIdealHours)
	summary.TotalHours = utils.RoundToTwoDecimals(summary.TotalHours)
	summary.TotalNeedleRuntime = utils.RoundToTwoDecimals(summary.TotalNeedleRuntime)

	return rollup
}
