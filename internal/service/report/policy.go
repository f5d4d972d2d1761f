package report

// Activity modes as reported by the machines.
const (
	ModeSewing      = 1
	ModeIdle        = 2
	ModeNoFeeding   = 3
	ModeMeeting     = 4
	ModeMaintenance = 5
)

var modeDescriptions = map[int]string{
	ModeSewing:      "Sewing",
	ModeIdle:        "Idle",
	ModeNoFeeding:   "No feeding",
	ModeMeeting:     "Meeting",
	ModeMaintenance: "Maintenance",
}

// ModeDescription returns the display label for a mode code. Codes outside
// the table render as "Unknown mode" and contribute to no named bucket.
func ModeDescription(mode int) string {
	if description, ok := modeDescriptions[mode]; ok {
		return description
	}
	return "Unknown mode"
}

// WindowMode selects how a record's span meets the working window.
type WindowMode int

const (
	// WindowClamp trims a record's span to the window bounds; spans that
	// fall outside entirely get zero duration.
	WindowClamp WindowMode = iota
	// WindowContain admits only records whose raw span lies fully inside
	// the window, unmodified.
	WindowContain
)

// IdleMode selects how idle hours are produced.
type IdleMode int

const (
	// IdleDerived computes idle as nominal available hours minus the other
	// named buckets, floored at zero.
	IdleDerived IdleMode = iota
	// IdleDirect sums mode-2 durations like any other bucket.
	IdleDirect
)

// BreakWindow is a scheduled pause, in seconds from midnight.
type BreakWindow struct {
	Start float64
	End   float64
}

// Policy is the complete window/break/idle configuration of one report
// family. The operator and machine families carry different windows, break
// boundaries and nominal day lengths; these are observed plant behavior and
// stay separate on purpose.
type Policy struct {
	Name               string
	WindowStart        float64 // seconds from midnight
	WindowEnd          float64
	WindowMode         WindowMode
	Breaks             []BreakWindow
	NominalHoursPerDay float64
	IdleMode           IdleMode
}

// WindowHours is the span of the working window in hours.
func (p Policy) WindowHours() float64 {
	return (p.WindowEnd - p.WindowStart) / 3600
}

var (
	// OperatorPolicy drives operator reports: 08:30–19:30 clamp window,
	// 10-hour nominal day, derived idle.
	OperatorPolicy = Policy{
		Name:        "operator",
		WindowStart: 8.5 * 3600,
		WindowEnd:   19.5 * 3600,
		WindowMode:  WindowClamp,
		Breaks: []BreakWindow{
			{Start: 10.5 * 3600, End: 10.6667 * 3600},
			{Start: 13.3333 * 3600, End: 14 * 3600},
			{Start: 16.3333 * 3600, End: 16.5 * 3600},
		},
		NominalHoursPerDay: 10,
		IdleMode:           IdleDerived,
	}

	// LinePolicy drives line reports: 08:25–19:35 containment window,
	// direct idle. The nominal day matches the operator family.
	LinePolicy = Policy{
		Name:        "line",
		WindowStart: 30300, // 08:25
		WindowEnd:   70500, // 19:35
		WindowMode:  WindowContain,
		Breaks: []BreakWindow{
			{Start: 37800, End: 38400},
			{Start: 48000, End: 50400},
			{Start: 58800, End: 59400},
		},
		NominalHoursPerDay: 10,
		IdleMode:           IdleDirect,
	}

	// MachinePolicy drives machine and plant-wide reports: same window and
	// breaks as the line family but an 11-hour nominal day.
	MachinePolicy = Policy{
		Name:               "machine",
		WindowStart:        30300,
		WindowEnd:          70500,
		WindowMode:         WindowContain,
		Breaks:             LinePolicy.Breaks,
		NominalHoursPerDay: 11,
		IdleMode:           IdleDirect,
	}
)
