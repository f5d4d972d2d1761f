package report

import "sort"

// bucketHours holds summed hours per named activity bucket. Modes outside
// the table land in none of these; their time silently drops out of every
// named sum, which downstream totals rely on.
type bucketHours struct {
	sewing      float64
	idle        float64
	noFeeding   float64
	meeting     float64
	maintenance float64
}

// nonIdleSum is the named-bucket total excluding idle, the quantity the
// derived-idle policy subtracts from the nominal day.
func (b bucketHours) nonIdleSum() float64 {
	return b.sewing + b.noFeeding + b.meeting + b.maintenance
}

// total is the direct-idle day total: all five buckets, exactly.
func (b bucketHours) total() float64 {
	return b.sewing + b.idle + b.noFeeding + b.meeting + b.maintenance
}

func (b *bucketHours) add(mode int, hours float64) {
	switch mode {
	case ModeSewing:
		b.sewing += hours
	case ModeIdle:
		b.idle += hours
	case ModeNoFeeding:
		b.noFeeding += hours
	case ModeMeeting:
		b.meeting += hours
	case ModeMaintenance:
		b.maintenance += hours
	}
}

// dayGroup accumulates one (date, entity) bucket of the aggregation.
// Speed samples carry sum and count separately so averages stay unrounded
// until presentation.
type dayGroup struct {
	date            string
	entityKey       string
	hours           bucketHours
	stitchCount     int64
	skipCount       float64
	sewingSkipCount float64
	sewingLogCount  int
	speedSum        float64
	speedCount      int
	machines        map[int]struct{}
}

func (g *dayGroup) averageSpeed() float64 {
	if g.speedCount == 0 {
		return 0
	}
	return g.speedSum / float64(g.speedCount)
}

// aggregate groups prepared logs by date plus an optional entity key and
// sums classified durations and counters per group. Output is ordered by
// ascending date, then ascending entity key, independent of input order.
func aggregate(logs []normalizedLog, entityKey func(normalizedLog) string) []dayGroup {
	groups := make(map[[2]string]*dayGroup)

	for _, machineLog := range logs {
		key := [2]string{machineLog.Date, ""}
		if entityKey != nil {
			key[1] = entityKey(machineLog)
		}

		group, ok := groups[key]
		if !ok {
			group = &dayGroup{
				date:      key[0],
				entityKey: key[1],
				machines:  make(map[int]struct{}),
			}
			groups[key] = group
		}

		group.hours.add(machineLog.Mode, machineLog.durationHours)
		group.stitchCount += int64(machineLog.OperationCount)
		group.skipCount += machineLog.SkipCount
		group.machines[machineLog.MachineID] = struct{}{}

		if machineLog.Mode == ModeSewing {
			group.sewingSkipCount += machineLog.SkipCount
			group.sewingLogCount++
		}

		if speed, ok := reserveSample(machineLog.Reserve); ok {
			group.speedSum += float64(speed)
			group.speedCount++
		}
	}

	ordered := make([]dayGroup, 0, len(groups))
	for _, group := range groups {
		ordered = append(ordered, *group)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].date != ordered[j].date {
			return ordered[i].date < ordered[j].date
		}
		return ordered[i].entityKey < ordered[j].entityKey
	})

	return ordered
}

// distinctDates counts working days across groups (groups share dates when
// keyed by entity).
func distinctDates(groups []dayGroup) int {
	seen := make(map[string]struct{}, len(groups))
	for _, group := range groups {
		seen[group.date] = struct{}{}
	}
	return len(seen)
}
