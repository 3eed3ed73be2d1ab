package schedule

// Named constants for the pipeline's configuration tables. These are
// read-only after initialization and may be shared freely across
// concurrent requests (no global mutable state).

// MEQ score boundaries (inclusive) mapping to chronotype, per the
// Morningness-Eveningness Questionnaire (Horne & Östberg, 1976).
const (
	MEQScoreMin = 16
	MEQScoreMax = 86

	meqNightOwlMin     = 16
	meqNightOwlMax     = 41
	meqIntermediateMin = 42
	meqIntermediateMax = 58
	meqEarlyBirdMin    = 59
	meqEarlyBirdMax    = 86
)

// Prime window bounds (minutes-from-midnight) per chronotype.
var primeWindowMinutes = map[Chronotype][2]int{
	NightOwl:     {17 * 60, 22 * 60},
	Intermediate: {10 * 60, 16 * 60},
	EarlyBird:    {7 * 60, 11 * 60},
	Unknown:      {10 * 60, 14 * 60},
}

// Sleep-cycle constants: cycle length in minutes and base cycle count by age
// band, offset by SleepNeed.
const (
	teenCycleMinutes  = 50
	teenBaseCycles    = 11
	adultCycleMinutes = 90
	adultBaseCycles   = 5

	sleepOnsetMinutes = 15

	ageTeenMax = 18 // age < 18 is teen
)

var sleepNeedCycleOffset = map[SleepNeed]int{
	SleepNeedLow:    -1,
	SleepNeedMedium: 0,
	SleepNeedHigh:   1,
}

// Default wake time (minutes-from-midnight) by chronotype, used when the
// caller supplies no target wake time.
var defaultWakeMinutes = map[Chronotype]int{
	EarlyBird:    6 * 60,
	Intermediate: 7*60 + 30,
	NightOwl:     9 * 60,
	Unknown:      7*60 + 30,
}

// ageBand classifies an age into the band used by the shift matrix.
type ageBand string

const (
	ageBandTeen   ageBand = "teen"
	ageBandAdult  ageBand = "adult"
	ageBandSenior ageBand = "senior"
)

func classifyAgeBand(age int) ageBand {
	switch {
	case age < 18:
		return ageBandTeen
	case age < 65:
		return ageBandAdult
	default:
		return ageBandSenior
	}
}

// ageChronotypeShiftHours is the phase-shift matrix (hours, positive = later)
// applied to the default/target wake time before computing bedtime.
var ageChronotypeShiftHours = map[ageBand]map[Chronotype]float64{
	ageBandTeen: {
		EarlyBird:    0.0,
		Intermediate: 0.5,
		NightOwl:     2.0,
		Unknown:      0.5,
	},
	ageBandAdult: {
		EarlyBird:    0.0,
		Intermediate: 0.5,
		NightOwl:     1.5,
		Unknown:      0.5,
	},
	ageBandSenior: {
		EarlyBird:    -0.5,
		Intermediate: 0.0,
		NightOwl:     1.0,
		Unknown:      0.0,
	},
}

// Shoulder/off-peak energy constants.
const (
	shoulderSpanHours = 2    // ±2h around the prime window
	primeEnergyFloor  = 0.9  // minimum energy inside the prime window
	shoulderMin       = 0.6  // minimum energy in shoulder hours
	shoulderMax       = 0.8  // maximum energy in shoulder hours
	offPeakMin        = 0.3
	offPeakMax        = 0.5
)

// Default day window and solver budget.
const (
	DefaultDayStartMin = 0
	DefaultDayEndMin   = 24 * 60

	DefaultSolverTimeLimitMS = 10_000

	MinutesPerDay = 24 * 60
)

// Gap-filler break thresholds (minutes).
const (
	freeTimeThresholdMin   = 45
	shortBreakThresholdMin = 15
)

// Default meal times (minutes-from-midnight) and duration.
const (
	defaultBreakfastMin = 7*60 + 30
	defaultLunchMin     = 12*60 + 30
	defaultDinnerMin    = 19 * 60
	defaultMealDuration = 30
)

// Sleep need scale thresholds (0-100) mapping to SleepNeed.
const (
	sleepNeedScaleLowMax    = 40 // <40 -> LOW
	sleepNeedScaleMediumMax = 60 // 40-60 -> MEDIUM, >60 -> HIGH
)
