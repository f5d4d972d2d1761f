package report

import (
	"github.com/stitchworks/machine-log-backend/internal/entity"
	"github.com/stitchworks/machine-log-backend/pkg/utils"
)

// BuildMachineReport assembles the report for one machine. Same direct-idle
// shape as the line family but against an 11-hour machine day, and the
// needle runtime figure is the raw sewing skip total rather than a
// per-record mean.
func BuildMachineReport(logs []entity.MachineLog, machineID int, policy Policy) (*entity.MachineReport, error) {
	prepared, err := prepare(excludeUnassignedIdle(logs), policy)
	if err != nil {
		return nil, err
	}

	groups := aggregate(prepared, nil)
	totals := sumGroups(groups)

	workingDays := len(groups)
	availableHours := float64(workingDays) * policy.NominalHoursPerDay

	tableData := make([]entity.MachineDailyRow, 0, len(groups))
	for _, group := range groups {
		tableData = append(tableData, machineDailyRow(group, machineID))
	}

	totalHours := totals.hours.total()
	nonProductiveHours := totalHours - totals.hours.sewing

	return &entity.MachineReport{
		MachineID:           machineID,
		TotalAvailableHours: utils.RoundToTwoDecimals(availableHours),
		TotalWorkingDays:    workingDays,
		TotalHours:          utils.RoundToTwoDecimals(totalHours),
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
		TotalStitchCount:   totals.stitchCount,
		AverageSewingSpeed: utils.RoundToTwoDecimals(totals.averageSpeed()),
		TotalNeedleRuntime: utils.RoundToTwoDecimals(totals.sewingSkipCount),
		TableData:          tableData,
	}, nil
}

func machineDailyRow(group dayGroup, machineID int) entity.MachineDailyRow {
	dayTotal := group.hours.total()
	nonProductive := dayTotal - group.hours.sewing

	return entity.MachineDailyRow{
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
		MachineID:               machineID,
	}
}

// BuildMachinesRollup combines per-machine reports into the "all machines"
// response. Additive fields are summed; percentages are re-derived from the
// summed hours; average speed is weighted by each machine's total hours.
// Needle runtime here is a raw skip sum, so its percentage converts through
// seconds before relating to productive hours.
func BuildMachinesRollup(reports []entity.MachineReport, fromDate, toDate string) *entity.MachinesRollup {
	rollup := &entity.MachinesRollup{
		AllMachinesReport: reports,
		TotalMachines:     len(reports),
		FromDate:          fromDate,
		ToDate:            toDate,
	}
	summary := &rollup.Summary

	var (
		speedWeightedSum   float64
		speedWeight        float64
		productiveHours    float64
		nonProductiveHours float64
	)

	for _, machineReport := range reports {
		summary.TotalAvailableHours += machineReport.TotalAvailableHours
		summary.TotalHours += machineReport.TotalHours
		summary.TotalStitchCount += machineReport.TotalStitchCount
		summary.TotalNeedleRuntime += machineReport.TotalNeedleRuntime
		productiveHours += machineReport.TotalProductiveTime.Hours
		nonProductiveHours += machineReport.TotalNonProductiveTime.Hours
		if machineReport.TotalWorkingDays > summary.TotalWorkingDays {
			summary.TotalWorkingDays = machineReport.TotalWorkingDays
		}

		speedWeightedSum += machineReport.AverageSewingSpeed * machineReport.TotalHours
		speedWeight += machineReport.TotalHours
	}

	summary.AverageSewingSpeed = utils.RoundToTwoDecimals(safeDivide(speedWeightedSum, speedWeight))
	summary.NeedleRuntimePercentage = utils.RoundToTwoDecimals(percent(summary.TotalNeedleRuntime/3600, productiveHours))
	summary.TotalProductiveTime = entity.HoursWithPercentage{
		Hours:      utils.RoundToTwoDecimals(productiveHours),
		Percentage: utils.RoundToTwoDecimals(percent(productiveHours, summary.TotalHours)),
	}
	summary.TotalNonProductiveTime = entity.HoursWithPercentage{
		Hours:      utils.RoundToTwoDecimals(nonProductiveHours),
		Percentage: utils.RoundToTwoDecimals(percent(nonProductiveHours, summary.TotalHours)),
	}
	summary.TotalAvailableHours = utils.RoundToTwoDecimals(summary.TotalAvailableHours)
	summary.TotalHours = utils.RoundToTwoDecimals(summary.TotalHours)
	summary.TotalNeedleRuntime = utils.RoundToTwoDecimals(summary.TotalNeedleRuntime)

	return rollup
}
