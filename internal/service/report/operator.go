package report

import (
	"github.com/stitchworks/machine-log-backend/internal/entity"
	"github.com/stitchworks/machine-log-backend/pkg/utils"
)

// BuildOperatorReport assembles the full report for one operator from an
// already-selected log snapshot. The derived-idle policy measures every
// percentage against the fixed nominal day.
func BuildOperatorReport(logs []entity.MachineLog, operatorID string, names map[string]string, policy Policy) (*entity.OperatorReport, error) {
	prepared, err := prepare(excludeUnassignedIdle(logs), policy)
	if err != nil {
		return nil, err
	}

	groups := aggregate(prepared, func(machineLog normalizedLog) string {
		return machineLog.OperatorID
	})

	workingDays := distinctDates(groups)
	availableHours := float64(workingDays) * policy.NominalHoursPerDay
	totals := sumGroups(groups)

	idleHours := availableHours - totals.hours.nonIdleSum()
	if idleHours < 0 {
		idleHours = 0
	}
	nonProductionHours := totals.hours.noFeeding + totals.hours.meeting + totals.hours.maintenance + idleHours

	tableData := make([]entity.OperatorDailyRow, 0, len(groups))
	for _, group := range groups {
		tableData = append(tableData, operatorDailyRow(group, names, policy))
	}

	return &entity.OperatorReport{
		OperatorID:              operatorID,
		OperatorName:            operatorDisplayName(names, operatorID),
		TotalWorkingDays:        workingDays,
		TotalAvailableHours:     utils.RoundToTwoDecimals(availableHours),
		TotalProductionHours:    utils.RoundToTwoDecimals(totals.hours.sewing),
		TotalNonProductionHours: utils.RoundToTwoDecimals(nonProductionHours),
		TotalIdleHours:          utils.RoundToTwoDecimals(idleHours),
		ProductionPercentage:    utils.RoundToTwoDecimals(percent(totals.hours.sewing, availableHours)),
		NPTPercentage:           utils.RoundToTwoDecimals(percent(nonProductionHours, availableHours)),
		AverageSewingSpeed:      utils.RoundToTwoDecimals(totals.averageSpeed()),
		TotalStitchCount:        totals.stitchCount,
		TotalNeedleRuntime:      utils.RoundToTwoDecimals(totals.averageNeedleRuntime()),
		NeedleRuntimePercentage: utils.RoundToTwoDecimals(totals.needleRuntimePercentage()),
		TableData:               tableData,
	}, nil
}

func operatorDailyRow(group dayGroup, names map[string]string, policy Policy) entity.OperatorDailyRow {
	nominal := policy.NominalHoursPerDay

	idleHours := nominal - group.hours.nonIdleSum()
	if idleHours < 0 {
		idleHours = 0
	}

	productivePercentage := percent(group.hours.sewing, nominal)

	return entity.OperatorDailyRow{
		Date:                    group.date,
		OperatorID:              group.entityKey,
		OperatorName:            operatorDisplayName(names, group.entityKey),
		TotalHours:              utils.RoundToTwoDecimals(nominal),
		SewingHours:             utils.RoundToTwoDecimals(group.hours.sewing),
		IdleHours:               utils.RoundToTwoDecimals(idleHours),
		MeetingHours:            utils.RoundToTwoDecimals(group.hours.meeting),
		NoFeedingHours:          utils.RoundToTwoDecimals(group.hours.noFeeding),
		MaintenanceHours:        utils.RoundToTwoDecimals(group.hours.maintenance),
		ProductivePercentage:    utils.RoundToTwoDecimals(productivePercentage),
		NonProductivePercentage: utils.RoundToTwoDecimals(100 - productivePercentage),
		SewingSpeed:             utils.RoundToTwoDecimals(group.averageSpeed()),
		StitchCount:             group.stitchCount,
		NeedleRuntime:           utils.RoundToTwoDecimals(group.skipCount),
	}
}

// BuildOperatorsRollup fans out one report per operator and re-derives a
// combined summary from the accumulated per-operator totals. The combined
// block is never produced by re-running the pipeline over the flattened
// snapshot.
func BuildOperatorsRollup(operators []entity.Operator, logsByOperator map[string][]entity.MachineLog, names map[string]string, policy Policy) (*entity.OperatorsRollup, error) {
	rollup := &entity.OperatorsRollup{
		AllOperatorsReport: make([]entity.OperatorReport, 0, len(operators)),
	}

	var (
		speedWeightedSum float64
		speedWeight      float64
	)

	for _, operator := range operators {
		operatorReport, err := BuildOperatorReport(logsByOperator[operator.RFIDCardNo], operator.RFIDCardNo, names, policy)
		if err != nil {
			return nil, err
		}
		rollup.AllOperatorsReport = append(rollup.AllOperatorsReport, *operatorReport)

		summary := &rollup.Summary
		summary.TotalAvailableHours += operatorReport.TotalAvailableHours
		summary.TotalProductionHours += operatorReport.TotalProductionHours
		summary.TotalNonProductionHours += operatorReport.TotalNonProductionHours
		summary.TotalIdleHours += operatorReport.TotalIdleHours
		summary.TotalStitchCount += operatorReport.TotalStitchCount
		summary.TotalNeedleRuntime += operatorReport.TotalNeedleRuntime
		if operatorReport.TotalWorkingDays > summary.TotalWorkingDays {
			summary.TotalWorkingDays = operatorReport.TotalWorkingDays
		}

		speedWeightedSum += operatorReport.AverageSewingSpeed * operatorReport.TotalAvailableHours
		speedWeight += operatorReport.TotalAvailableHours
	}

	summary := &rollup.Summary
	summary.TotalOperators = len(rollup.AllOperatorsReport)
	summary.ProductionPercentage = utils.RoundToTwoDecimals(percent(summary.TotalProductionHours, summary.TotalAvailableHours))
	summary.NPTPercentage = utils.RoundToTwoDecimals(percent(summary.TotalNonProductionHours, summary.TotalAvailableHours))
	summary.AverageSewingSpeed = utils.RoundToTwoDecimals(safeDivide(speedWeightedSum, speedWeight))
	summary.NeedleRuntimePercentage = utils.RoundToTwoDecimals(percent(summary.TotalNeedleRuntime, summary.TotalProductionHours))
	summary.TotalAvailableHours = utils.RoundToTwoDecimals(summary.TotalAvailableHours)
	summary.TotalProductionHours = utils.RoundToTwoDecimals(summary.TotalProductionHours)
	summary.TotalNonProductionHours = utils.RoundToTwoDecimals(summary.TotalNonProductionHours)
	summary.TotalIdleHours = utils.RoundToTwoDecimals(summary.TotalIdleHours)
	summary.TotalNeedleRuntime = utils.RoundToTwoDecimals(summary.TotalNeedleRuntime)

	return rollup, nil
}

// BuildOperatorSummaries is the lightweight all-operators listing: one
// derived-idle summary row per registered operator. Production hours stand
// against the nominal day; the NPT share is the complement of the
// productive share except for operators with no countable days, which
// report flat zeros.
func BuildOperatorSummaries(operators []entity.Operator, logsByOperator map[string][]entity.MachineLog, policy Policy) ([]entity.OperatorSummaryRow, error) {
	rows := make([]entity.OperatorSummaryRow, 0, len(operators))

	for _, operator := range operators {
		prepared, err := prepare(excludeUnassignedIdle(logsByOperator[operator.RFIDCardNo]), policy)
		if err != nil {
			return nil, err
		}

		groups := aggregate(prepared, nil)
		availableHours := float64(distinctDates(groups)) * policy.NominalHoursPerDay
		totals := sumGroups(groups)

		row := entity.OperatorSummaryRow{
			OperatorID:           operator.RFIDCardNo,
			OperatorName:         operator.OperatorName,
			TotalProductionHours: utils.RoundToTwoDecimals(totals.hours.sewing),
		}

		if availableHours > 0 {
			row.TotalNonProductionHours = utils.RoundToTwoDecimals(availableHours - totals.hours.sewing)
			row.ProductionPercentage = utils.RoundToTwoDecimals(percent(totals.hours.sewing, availableHours))
			row.NPTPercentage = utils.RoundToTwoDecimals(100 - percent(totals.hours.sewing, availableHours))
		}

		rows = append(rows, row)
	}

	return rows, nil
}
