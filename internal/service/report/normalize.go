package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stitchworks/machine-log-backend/internal/entity"
	"github.com/stitchworks/machine-log-backend/pkg/utils"
)

// normalizedLog is a MachineLog whose span has passed the policy's window
// and break rules. startSeconds/endSeconds keep the raw clock values; the
// duration already reflects any clamping.
type normalizedLog struct {
	entity.MachineLog
	startSeconds  float64
	endSeconds    float64
	durationHours float64
}

// prepare runs the window and break policy over a log snapshot, in input
// order. Records outside the window, inside a break, or with non-positive
// duration are dropped. A malformed clock value aborts the whole
// computation; records are validated at ingest, so hitting one here means
// the snapshot is corrupt.
func prepare(logs []entity.MachineLog, policy Policy) ([]normalizedLog, error) {
	prepared := make([]normalizedLog, 0, len(logs))

	for _, machineLog := range logs {
		startSeconds, err := utils.ClockSeconds(machineLog.StartTime)
		if err != nil {
			return nil, fmt.Errorf("log %s: %w", machineLog.ID, err)
		}
		endSeconds, err := utils.ClockSeconds(machineLog.EndTime)
		if err != nil {
			return nil, fmt.Errorf("log %s: %w", machineLog.ID, err)
		}

		durationHours, ok := windowDuration(startSeconds, endSeconds, policy)
		if !ok {
			continue
		}

		// Break exclusion uses the raw span: a record wholly inside a
		// configured break is discarded, a straddling record is kept
		// unsplit.
		if insideBreak(startSeconds, endSeconds, policy.Breaks) {
			continue
		}

		prepared = append(prepared, normalizedLog{
			MachineLog:    machineLog,
			startSeconds:  startSeconds,
			endSeconds:    endSeconds,
			durationHours: durationHours,
		})
	}

	return prepared, nil
}

// windowDuration applies the policy window to a raw span and reports the
// countable duration in hours. ok is false when the record must be dropped.
func windowDuration(startSeconds, endSeconds float64, policy Policy) (float64, bool) {
	switch policy.WindowMode {
	case WindowContain:
		if startSeconds < policy.WindowStart || endSeconds > policy.WindowEnd {
			return 0, false
		}
		duration := (endSeconds - startSeconds) / 3600
		if duration <= 0 {
			return 0, false
		}
		return duration, true

	default: // WindowClamp
		if endSeconds <= policy.WindowStart || startSeconds >= policy.WindowEnd {
			return 0, false
		}
		clampedStart := clamp(startSeconds, policy.WindowStart, policy.WindowEnd)
		clampedEnd := clamp(endSeconds, policy.WindowStart, policy.WindowEnd)

		// A span that ends before it starts (a cross-midnight reading)
		// comes out non-positive and is dropped; only the standalone
		// efficiency metric applies a +24h adjustment instead.
		duration := (clampedEnd - clampedStart) / 3600
		if duration <= 0 {
			return 0, false
		}
		return duration, true
	}
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func insideBreak(startSeconds, endSeconds float64, breaks []BreakWindow) bool {
	for _, pause := range breaks {
		if startSeconds >= pause.Start && endSeconds <= pause.End {
			return true
		}
	}
	return false
}

// reserveSample coerces the free-text RESERVE field into a sewing-speed
// sample. Only values parsing to a positive integer count; everything else
// is excluded from both sides of the average, not treated as zero.
func reserveSample(reserve *string) (int, bool) {
	if reserve == nil {
		return 0, false
	}

	value, err := strconv.Atoi(strings.TrimSpace(*reserve))
	if err != nil || value <= 0 {
		return 0, false
	}

	return value, true
}
