package schedule

import "math"

// fallbackSleepBedtimeMin and fallbackSleepWakeMin are the 8h 23:00-07:00
// window used when sleep calculation fails unexpectedly.
const (
	fallbackSleepBedtimeMin = 23 * 60
	fallbackSleepWakeMin    = 7 * 60
	fallbackSleepDurationMin = MinutesPerDay - fallbackSleepBedtimeMin + fallbackSleepWakeMin
)

// FallbackSleepMetrics is the safe default used when the sleep calculator
// cannot complete.
func FallbackSleepMetrics() SleepMetrics {
	return SleepMetrics{
		DurationMin: fallbackSleepDurationMin,
		BedtimeMin:  fallbackSleepBedtimeMin,
		WakeMin:     fallbackSleepWakeMin,
	}
}

// WorkConstraint narrows the sleep window when a work start time would
// otherwise conflict with the computed wake time.
type WorkConstraint struct {
	StartMin      int
	CommuteMin    int
}

// CalculateSleep derives the ideal bedtime/wake/duration. age must be
// in [0, 120] or this returns a KindInvalidInput error. targetWakeMin and
// work override either or both defaults.
func CalculateSleep(age int, chronotype Chronotype, need SleepNeed, targetWakeMin *int, work *WorkConstraint) (SleepMetrics, []string, error) {
	if age < 0 || age > 120 {
		return SleepMetrics{}, nil, invalidInput("age %d out of range [0, 120]", age)
	}

	duration := sleepDurationMinutes(age, need)
	timeInBed := duration + sleepOnsetMinutes

	wake := targetWakeMin
	if wake == nil {
		def := defaultWakeMinutes[chronotype]
		wake = &def
	}

	band := classifyAgeBand(age)
	shiftHours := ageChronotypeShiftHours[band][chronotype]
	adjustedWake := *wake + int(math.Round(shiftHours*60))

	var warnings []string
	if work != nil {
		latestWake := work.StartMin - work.CommuteMin - 30
		if latestWake < adjustedWake {
			adjustedWake = latestWake
			warnings = append(warnings, "wake time adjusted earlier to avoid conflict with work start")
		}
	}

	bedtime := adjustedWake - timeInBed

	return SleepMetrics{
		DurationMin: duration,
		BedtimeMin:  bedtime,
		WakeMin:     adjustedWake,
	}, warnings, nil
}

// sleepDurationMinutes applies the age-banded sleep-cycle model.
func sleepDurationMinutes(age int, need SleepNeed) int {
	offset := sleepNeedCycleOffset[need]
	if age < ageTeenMax {
		return (teenBaseCycles + offset) * teenCycleMinutes
	}
	return (adultBaseCycles + offset) * adultCycleMinutes
}

// SuggestWakeTimes returns candidate wake times aligned to whole sleep
// cycles from the given bedtime, ascending.
// Informational only; does not affect the deterministic pipeline.
func SuggestWakeTimes(bedtimeMin int, minCycles, maxCycles, cycleMinutes int) []int {
	if minCycles < 1 || maxCycles < minCycles || cycleMinutes <= 0 {
		return nil
	}
	sleepStart := bedtimeMin + sleepOnsetMinutes
	suggestions := make([]int, 0, maxCycles-minCycles+1)
	for cycles := minCycles; cycles <= maxCycles; cycles++ {
		suggestions = append(suggestions, sleepStart+cycles*cycleMinutes)
	}
	return suggestions
}

// QualityScore derives a 0-100 sleep quality score from actual vs. ideal
// duration and bedtime variance from the ideal.
func QualityScore(actualDurationMin, idealDurationMin int, bedtimeDeltaMin int) float64 {
	durationRatio := float64(actualDurationMin) / float64(idealDurationMin)
	durationScore := 100 * (1 - math.Abs(1-durationRatio))
	if durationScore < 0 {
		durationScore = 0
	}

	delta := math.Abs(float64(bedtimeDeltaMin))
	if delta > 120 {
		delta = 120
	}
	consistencyScore := 100 * (1 - delta/120)

	return math.Round((durationScore*0.6+consistencyScore*0.4)*10) / 10
}
