package schedule

import (
	"fmt"
	"sort"
	"time"
)

// Placement is the solver's output for one task: where it landed.
type Placement struct {
	TaskID   string
	StartMin int
	EndMin   int
}

// energyTarget is the ideal average hourly energy for each task energy
// level, used to score candidate placements.
var energyTarget = map[EnergyLevel]float64{
	EnergyHigh:   0.9,
	EnergyMedium: 0.6,
	EnergyLow:    0.35,
}

const (
	weightEnergy   = 1.0
	weightUrgency  = 0.5
	weightEarliest = 0.01
)

// SolveResult is the constraint solver's complete output.
type SolveResult struct {
	Placements  []Placement
	Unscheduled []string
	Warnings    []string
}

// freeInterval is a candidate window not occupied by any fixed event or
// already-placed task.
type freeInterval struct {
	start, end int
}

// Solve places tasks into the day window around fixed events, maximizing
// the weighted placement objective. It never mutates its inputs and
// returns a deterministic result for identical inputs.
func Solve(tasks []Task, fixedEvents []FixedEvent, pattern EnergyPattern, dayStartMin, dayEndMin int, timeLimit time.Duration) (SolveResult, error) {
	if err := validateFixedEvents(fixedEvents); err != nil {
		return SolveResult{}, err
	}

	deadline := time.Now().Add(timeLimit)

	free := freeIntervalsAround(fixedEvents, dayStartMin, dayEndMin)

	candidates := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			candidates = append(candidates, t)
		}
	}

	placedEnd := make(map[string]int)  // task id -> end minute, once placed
	placed := make(map[string]bool)
	result := SolveResult{}

	remaining := make([]Task, len(candidates))
	copy(remaining, candidates)

	for len(remaining) > 0 {
		if time.Now().After(deadline) {
			for _, t := range remaining {
				result.Unscheduled = append(result.Unscheduled, t.ID)
			}
			result.Warnings = append(result.Warnings, "solver hit its time limit; remaining tasks left unscheduled")
			break
		}

		ready, readyIdx := nextReadyTask(remaining, placed)
		if readyIdx < 0 {
			for _, t := range remaining {
				result.Unscheduled = append(result.Unscheduled, t.ID)
			}
			result.Warnings = append(result.Warnings, "unresolved or cyclic task dependencies prevented scheduling")
			break
		}

		minStart := taskMinStart(ready, dayStartMin, placedEnd)
		maxEnd := taskMaxEnd(ready, dayEndMin)

		start, ok := bestStart(ready, free, minStart, maxEnd, pattern)
		if !ok {
			result.Unscheduled = append(result.Unscheduled, ready.ID)
			result.Warnings = append(result.Warnings, fmt.Sprintf("task %s skipped: no feasible window", ready.ID))
			remaining = removeTaskAt(remaining, readyIdx)
			continue
		}

		end := start + ready.DurationMin
		result.Placements = append(result.Placements, Placement{TaskID: ready.ID, StartMin: start, EndMin: end})
		placedEnd[ready.ID] = end
		placed[ready.ID] = true
		free = carve(free, start, end)
		remaining = removeTaskAt(remaining, readyIdx)
	}

	sort.Slice(result.Placements, func(i, j int) bool { return result.Placements[i].StartMin < result.Placements[j].StartMin })
	sort.Strings(result.Unscheduled)

	return result, nil
}

func validateFixedEvents(events []FixedEvent) error {
	sorted := make([]FixedEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartMin < sorted[j].StartMin })

	for i := 0; i < len(sorted); i++ {
		if sorted[i].StartMin >= sorted[i].EndMin {
			return invalidInput("fixed event %s has non-positive duration", sorted[i].ID)
		}
		if i > 0 && sorted[i].StartMin < sorted[i-1].EndMin {
			return invalidInput("fixed events %s and %s overlap", sorted[i-1].ID, sorted[i].ID)
		}
	}
	return nil
}

// freeIntervalsAround computes the complement of the fixed events within
// [dayStart, dayEnd].
func freeIntervalsAround(events []FixedEvent, dayStart, dayEnd int) []freeInterval {
	sorted := make([]FixedEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartMin < sorted[j].StartMin })

	var free []freeInterval
	cursor := dayStart
	for _, e := range sorted {
		start, end := e.StartMin, e.EndMin
		if end <= dayStart || start >= dayEnd {
			continue
		}
		if start > cursor {
			free = append(free, freeInterval{cursor, min(start, dayEnd)})
		}
		if end > cursor {
			cursor = end
		}
	}
	if cursor < dayEnd {
		free = append(free, freeInterval{cursor, dayEnd})
	}
	return free
}

// nextReadyTask picks the best task among those whose dependencies are all
// already placed, per the priority/deadline/id tie-break. Returns (-1 index) if no task is ready (cycle or
// missing dependency among the remaining set).
func nextReadyTask(remaining []Task, placed map[string]bool) (Task, int) {
	remainingIDs := make(map[string]bool, len(remaining))
	for _, t := range remaining {
		remainingIDs[t.ID] = true
	}

	bestIdx := -1
	for i, t := range remaining {
		ready := true
		for _, dep := range t.Dependencies {
			if remainingIDs[dep] && !placed[dep] {
				ready = false
				break
			}
		}
		if !ready {
			continue
		}
		if bestIdx < 0 || lessUrgent(remaining[bestIdx], t) {
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return Task{}, -1
	}
	return remaining[bestIdx], bestIdx
}

// lessUrgent reports whether candidate b should be scheduled before the
// current best a: higher priority first, then earlier deadline, then id.
func lessUrgent(a, b Task) bool {
	ra, rb := priorityRank[a.Priority], priorityRank[b.Priority]
	if ra != rb {
		return rb < ra
	}
	da, db := a.Deadline, b.Deadline
	if da != nil && db != nil && !da.Equal(*db) {
		return db.Before(*da)
	}
	if da == nil && db != nil {
		return true
	}
	if da != nil && db == nil {
		return false
	}
	return b.ID < a.ID
}

func taskMinStart(t Task, dayStart int, placedEnd map[string]int) int {
	start := dayStart
	if t.EarliestStart != nil && *t.EarliestStart > start {
		start = *t.EarliestStart
	}
	for _, dep := range t.Dependencies {
		if end, ok := placedEnd[dep]; ok && end > start {
			start = end
		}
	}
	return start
}

func taskMaxEnd(t Task, dayEnd int) int {
	if t.Deadline != nil {
		deadlineMin := t.Deadline.Hour()*60 + t.Deadline.Minute()
		if deadlineMin < dayEnd {
			return deadlineMin
		}
	}
	return dayEnd
}

// bestStart scans every free interval for the placement minimizing/
// maximizing the objective, returning the best start minute found.
func bestStart(t Task, free []freeInterval, minStart, maxEnd int, pattern EnergyPattern) (int, bool) {
	bestScore := -1.0
	bestFound := false
	bestStartMin := 0

	for _, interval := range free {
		lo := interval.start
		if minStart > lo {
			lo = minStart
		}
		hi := interval.end
		if maxEnd < hi {
			hi = maxEnd
		}
		if hi-lo < t.DurationMin {
			continue
		}

		for start := lo; start+t.DurationMin <= hi; start++ {
			score := scorePlacement(t, start, pattern)
			if !bestFound || score > bestScore {
				bestScore = score
				bestStartMin = start
				bestFound = true
			}
		}
	}

	return bestStartMin, bestFound
}

func scorePlacement(t Task, start int, pattern EnergyPattern) float64 {
	end := start + t.DurationMin
	avgEnergy := averageEnergy(start, end, pattern)

	target := energyTarget[t.Energy]
	diff := avgEnergy - target
	if diff < 0 {
		diff = -diff
	}
	energyScore := 1 - diff

	urgency := 0.0
	if t.Deadline != nil {
		deadlineMin := t.Deadline.Hour()*60 + t.Deadline.Minute()
		hoursToDeadline := float64(deadlineMin-end) / 60.0
		if hoursToDeadline < 0 {
			hoursToDeadline = 0
		}
		urgency = 1.0 / (1.0 + hoursToDeadline)
	}

	return weightEnergy*energyScore + weightUrgency*urgency - weightEarliest*(float64(start)/float64(MinutesPerDay))
}

func averageEnergy(startMin, endMin int, pattern EnergyPattern) float64 {
	sum, count := 0.0, 0
	for m := startMin; m < endMin; m += 60 {
		sum += energyAtMinute(m, pattern)
		count++
	}
	if count == 0 {
		return energyAtMinute(startMin, pattern)
	}
	return sum / float64(count)
}

func energyAtMinute(minute int, pattern EnergyPattern) float64 {
	hour := (minute / 60) % 24
	return pattern[hour]
}

func carve(free []freeInterval, start, end int) []freeInterval {
	var out []freeInterval
	for _, interval := range free {
		if end <= interval.start || start >= interval.end {
			out = append(out, interval)
			continue
		}
		if start > interval.start {
			out = append(out, freeInterval{interval.start, start})
		}
		if end < interval.end {
			out = append(out, freeInterval{end, interval.end})
		}
	}
	return out
}

func removeTaskAt(tasks []Task, idx int) []Task {
	out := make([]Task, 0, len(tasks)-1)
	out = append(out, tasks[:idx]...)
	out = append(out, tasks[idx+1:]...)
	return out
}
