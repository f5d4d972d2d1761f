package entity

// Report output shapes. Hour and percentage fields are rounded to two
// decimals at assembly time; everything upstream accumulates unrounded.

// HoursWithPercentage pairs an hour total with its share of the report's
// denominator.
type HoursWithPercentage struct {
	Hours      float64 `json:"hours"`
	Percentage float64 `json:"percentage"`
}

// NPTBreakdown itemizes non-productive hours by bucket.
type NPTBreakdown struct {
	NoFeedingHours   float64 `json:"noFeedingHours"`
	MeetingHours     float64 `json:"meetingHours"`
	MaintenanceHours float64 `json:"maintenanceHours"`
	IdleHours        float64 `json:"idleHours"`
}

// NonProductiveTime is the NPT block of a summary.
type NonProductiveTime struct {
	Hours      float64      `json:"hours"`
	Percentage float64      `json:"percentage"`
	Breakdown  NPTBreakdown `json:"breakdown"`
}

// OperatorDailyRow is one date+operator row of an operator report. Total
// hours are the fixed nominal working day; idle is derived by subtraction.
type OperatorDailyRow struct {
	Date                    string  `json:"date"`
	OperatorID              string  `json:"operatorId"`
	OperatorName            string  `json:"operatorName"`
	TotalHours              float64 `json:"totalHours"`
	SewingHours             float64 `json:"sewingHours"`
	IdleHours               float64 `json:"idleHours"`
	MeetingHours            float64 `json:"meetingHours"`
	NoFeedingHours          float64 `json:"noFeedingHours"`
	MaintenanceHours        float64 `json:"maintenanceHours"`
	ProductivePercentage    float64 `json:"productiveTimePercentage"`
	NonProductivePercentage float64 `json:"nptPercentage"`
	SewingSpeed             float64 `json:"sewingSpeed"`
	StitchCount             int64   `json:"stitchCount"`
	NeedleRuntime           float64 `json:"needleRuntime"`
}

// OperatorReport is the full per-operator view: scalar summary plus the
// per-day table.
type OperatorReport struct {
	OperatorID              string             `json:"operatorId"`
	OperatorName            string             `json:"operatorName"`
	TotalWorkingDays        int                `json:"totalWorkingDays"`
	TotalAvailableHours     float64            `json:"totalHours"`
	TotalProductionHours    float64            `json:"totalProductionHours"`
	TotalNonProductionHours float64            `json:"totalNonProductionHours"`
	TotalIdleHours          float64            `json:"totalIdleHours"`
	ProductionPercentage    float64            `json:"productionPercentage"`
	NPTPercentage           float64            `json:"nptPercentage"`
	AverageSewingSpeed      float64            `json:"averageSewingSpeed"`
	TotalStitchCount        int64              `json:"totalStitchCount"`
	TotalNeedleRuntime      float64            `json:"totalNeedleRuntime"`
	NeedleRuntimePercentage float64            `json:"needleRuntimePercentage"`
	TableData               []OperatorDailyRow `json:"tableData"`
}

// OperatorsRollup is the "all operators" response: every per-operator report
// plus one combined summary re-derived from the per-operator totals.
type OperatorsRollup struct {
	AllOperatorsReport []OperatorReport      `json:"allOperatorsReport"`
	Summary            OperatorRollupSummary `json:"summary"`
}

type OperatorRollupSummary struct {
	TotalOperators          int     `json:"totalOperators"`
	TotalWorkingDays        int     `json:"totalWorkingDays"`
	TotalAvailableHours     float64 `json:"totalHours"`
	TotalProductionHours    float64 `json:"totalProductionHours"`
	TotalNonProductionHours float64 `json:"totalNonProductionHours"`
	TotalIdleHours          float64 `json:"totalIdleHours"`
	ProductionPercentage    float64 `json:"productionPercentage"`
	NPTPercentage           float64 `json:"nptPercentage"`
	AverageSewingSpeed      float64 `json:"averageSewingSpeed"`
	TotalStitchCount        int64   `json:"totalStitchCount"`
	TotalNeedleRuntime      float64 `json:"totalNeedleRuntime"`
	NeedleRuntimePercentage float64 `json:"needleRuntimePercentage"`
}

// OperatorSummaryRow is one entry of the lightweight all-operators listing.
type OperatorSummaryRow struct {
	OperatorID              string  `json:"operatorId"`
	OperatorName            string  `json:"operatorName"`
	TotalProductionHours    float64 `json:"totalProductionHours"`
	TotalNonProductionHours float64 `json:"totalNonProductionHours"`
	ProductionPercentage    float64 `json:"productionPercentage"`
	NPTPercentage           float64 `json:"nptPercentage"`
}

// LineDailyRow is one date row of a line report, direct-idle policy: total
// hours are the actual sum over all buckets for that day.
type LineDailyRow struct {
	Date                    string  `json:"date"`
	SewingHours             float64 `json:"sewingHours"`
	NoFeedingHours          float64 `json:"noFeedingHours"`
	MeetingHours            float64 `json:"meetingHours"`
	MaintenanceHours        float64 `json:"maintenanceHours"`
	IdleHours               float64 `json:"idleHours"`
	TotalHours              float64 `json:"totalHours"`
	ProductivePercentage    float64 `json:"productiveTimePercentage"`
	NonProductivePercentage float64 `json:"nptPercentage"`
	SewingSpeed             float64 `json:"sewingSpeed"`
	StitchCount             int64   `json:"stitchCount"`
	NeedleRuntime           float64 `json:"needleRuntime"`
	MachineCount            int     `json:"machineCount"`
}

type LineReport struct {
	LineNumber              string              `json:"lineNumber"`
	TotalIdealHours         float64             `json:"totalIdealHours"`
	UtilizationPercentage   float64             `json:"utilizationPercentage"`
	TotalWorkingDays        int                 `json:"totalWorkingDays"`
	AverageMachines         float64             `json:"averageMachines"`
	TotalHours              float64             `json:"totalHours"`
	TotalProductiveTime     HoursWithPercentage `json:"totalProductiveTime"`
	TotalNonProductiveTime  NonProductiveTime   `json:"totalNonProductiveTime"`
	TotalStitchCount        int64               `json:"totalStitchCount"`
	AverageSewingSpeed      float64             `json:"averageSewingSpeed"`
	TotalNeedleRuntime      float64             `json:"totalNeedleRuntime"`
	NeedleRuntimePercentage float64             `json:"needleRuntimePercentage"`
	TableData               []LineDailyRow      `json:"tableData"`
}

// LinesRollup is the "all lines" response.
type LinesRollup struct {
	AllLinesReport []LineReport      `json:"allLinesReport"`
	Summary        LineRollupSummary `json:"summary"`
}

type LineRollupSummary struct {
	TotalLines              int                 `json:"totalLines"`
	TotalIdealHours         float64             `json:"totalIdealHours"`
	UtilizationPercentage   float64             `json:"utilizationPercentage"`
	TotalWorkingDays        int                 `json:"totalWorkingDays"`
	AverageMachines         float64             `json:"averageMachines"`
	TotalHours              float64             `json:"totalHours"`
	TotalProductiveTime     HoursWithPercentage `json:"totalProductiveTime"`
	TotalNonProductiveTime  HoursWithPercentage `json:"totalNonProductiveTime"`
	TotalStitchCount        int64               `json:"totalStitchCount"`
	AverageSewingSpeed      float64             `json:"averageSewingSpeed"`
	TotalNeedleRuntime      float64             `json:"totalNeedleRuntime"`
	NeedleRuntimePercentage float64             `json:"needleRuntimePercentage"`
}

// MachineDailyRow is one date row of a machine report.
type MachineDailyRow struct {
	Date                    string  `json:"date"`
	SewingHours             float64 `json:"sewingHours"`
	NoFeedingHours          float64 `json:"noFeedingHours"`
	MeetingHours            float64 `json:"meetingHours"`
	MaintenanceHours        float64 `json:"maintenanceHours"`
	IdleHours               float64 `json:"idleHours"`
	TotalHours              float64 `json:"totalHours"`
	ProductivePercentage    float64 `json:"productiveTimePercentage"`
	NonProductivePercentage float64 `json:"nptPercentage"`
	SewingSpeed             float64 `json:"sewingSpeed"`
	StitchCount             int64   `json:"stitchCount"`
	NeedleRuntime           float64 `json:"needleRuntime"`
	MachineID               int     `json:"machineId"`
}

type MachineReport struct {
	MachineID              int                 `json:"machineId"`
	TotalAvailableHours    float64             `json:"totalAvailableHours"`
	TotalWorkingDays       int                 `json:"totalWorkingDays"`
	TotalHours             float64             `json:"totalHours"`
	TotalProductiveTime    HoursWithPercentage `json:"totalProductiveTime"`
	TotalNonProductiveTime NonProductiveTime   `json:"totalNonProductiveTime"`
	TotalStitchCount       int64               `json:"totalStitchCount"`
	AverageSewingSpeed     float64             `json:"averageSewingSpeed"`
	TotalNeedleRuntime     float64             `json:"totalNeedleRuntime"`
	TableData              []MachineDailyRow   `json:"tableData"`
}

// MachinesRollup is the "all machines" response.
type MachinesRollup struct {
	AllMachinesReport []MachineReport      `json:"allMachinesReport"`
	TotalMachines     int                  `json:"totalMachines"`
	Summary           MachineRollupSummary `json:"summary"`
	FromDate          string               `json:"fromDate,omitempty"`
	ToDate            string               `json:"toDate,omitempty"`
}

type MachineRollupSummary struct {
	TotalAvailableHours     float64             `json:"totalAvailableHours"`
	TotalWorkingDays        int                 `json:"totalWorkingDays"`
	TotalHours              float64             `json:"totalHours"`
	TotalProductiveTime     HoursWithPercentage `json:"totalProductiveTime"`
	TotalNonProductiveTime  HoursWithPercentage `json:"totalNonProductiveTime"`
	TotalStitchCount        int64               `json:"totalStitchCount"`
	AverageSewingSpeed      float64             `json:"averageSewingSpeed"`
	TotalNeedleRuntime      float64             `json:"totalNeedleRuntime"`
	NeedleRuntimePercentage float64             `json:"needleRuntimePercentage"`
}
