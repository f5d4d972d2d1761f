package entity

// LineEfficiency is the runtime-vs-stoptime view of a production line.
type LineEfficiency struct {
	LineNumber           int     `json:"lineNumber"`
	TotalMachines        int     `json:"totalMachines"`
	EfficiencyPercentage float64 `json:"efficiencyPercentage"`
}

// OperatorEfficiency is the standalone per-log efficiency sample measured
// against a fixed 8-hour standard. Unlike the windowed reports, a segment
// ending before it starts is treated as crossing midnight here.
type OperatorEfficiency struct {
	Operator   string  `json:"operator"`
	Efficiency float64 `json:"efficiency"`
}
