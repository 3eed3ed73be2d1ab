package schedule

import (
	"time"

	"github.com/google/uuid"
)

// WorkPreferences bounds the day around the user's job.
type WorkPreferences struct {
	StartTime      string // "HH:MM", empty means unset
	EndTime        string
	CommuteMinutes int
}

// Preferences mirrors the recognized preference keys the caller may set.
type Preferences struct {
	PreferredWakeTime string // "HH:MM", empty means unset
	Work              WorkPreferences
	Meals             MealPreferences
	Routines          RoutinePreferences
	Activity          ActivityPreferences
	SleepNeedScale    *int // 0-100, used when Profile.SleepNeed is unset
}

// UserProfile carries the biographical and chronotype inputs the pipeline
// needs for one request.
type UserProfile struct {
	Age       int
	MEQScore  *int
	SleepNeed *SleepNeed // explicit override; nil defers to Preferences.SleepNeedScale
}

// Request is everything the pipeline needs for one day's schedule.
type Request struct {
	UserID      uuid.UUID
	TargetDate  time.Time
	Tasks       []Task
	FixedEvents []FixedEvent
	Preferences Preferences
	Profile     UserProfile
}

// Pipeline runs the seven-stage schedule generation process. It is
// stateless: a zero-value Pipeline is ready to use, and the same instance
// may serve concurrent requests.
type Pipeline struct {
	SolverTimeLimit time.Duration
	DayStartMin     int
	DayEndMin       int
}

// NewPipeline builds a Pipeline with the documented defaults.
func NewPipeline() Pipeline {
	return Pipeline{
		SolverTimeLimit: DefaultSolverTimeLimitMS * time.Millisecond,
		DayStartMin:     DefaultDayStartMin,
		DayEndMin:       DefaultDayEndMin,
	}
}

// Generate runs the full pipeline for one request. Invalid input is
// rejected before any stage runs.
func (p Pipeline) Generate(req Request) (GeneratedSchedule, error) {
	if err := validateRequest(req); err != nil {
		return GeneratedSchedule{}, err
	}

	var warnings []string

	chronotype, prime, err := ClassifyChronotype(req.Profile.MEQScore)
	if err != nil {
		return GeneratedSchedule{}, err
	}

	need := resolveSleepNeed(req.Profile, req.Preferences)

	var targetWake *int
	if req.Preferences.PreferredWakeTime != "" {
		if m, ok := clockToMinutes(req.Preferences.PreferredWakeTime); ok {
			targetWake = &m
		}
	}

	var work *WorkConstraint
	if req.Preferences.Work.StartTime != "" {
		if m, ok := clockToMinutes(req.Preferences.Work.StartTime); ok {
			work = &WorkConstraint{StartMin: m, CommuteMin: req.Preferences.Work.CommuteMinutes}
		}
	}

	sleepMetrics, sleepWarnings := p.safeCalculateSleep(req.Profile.Age, chronotype, need, targetWake, work)
	warnings = append(warnings, sleepWarnings...)

	pattern := GenerateEnergyPattern(chronotype, prime, sleepMetrics.BedtimeMin, sleepMetrics.WakeMin)

	dayStartMin, dayEndMin := p.workBoundedDayWindow(req.Preferences.Work)

	solveResult, err := Solve(req.Tasks, req.FixedEvents, pattern, dayStartMin, dayEndMin, p.solverTimeLimit())
	if err != nil {
		return GeneratedSchedule{}, err
	}
	warnings = append(warnings, solveResult.Warnings...)

	meals := req.Preferences.Meals
	if meals == (MealPreferences{}) {
		meals = DefaultMealPreferences()
	}

	raw := CollectBlocks(EnrichInput{
		Placements: solveResult.Placements,
		Tasks:      req.Tasks,
		FixedEvents: req.FixedEvents,
		Sleep:       sleepMetrics,
		Prime:       prime,
		Routines:    req.Preferences.Routines,
		Activity:    req.Preferences.Activity,
		Meals:       meals,
	})

	resolved := ResolveConflicts(raw)
	final := FillGaps(resolved)

	metrics := CalculateMetrics(final, req.Tasks, sleepMetrics)

	return GeneratedSchedule{
		UserID:             req.UserID,
		TargetDate:         req.TargetDate,
		ScheduleID:         uuid.New(),
		Blocks:             final,
		Metrics:            metrics,
		EnergySummary:      pattern.Summary(),
		Warnings:           warnings,
		UnscheduledTaskIDs: solveResult.Unscheduled,
		GenerationTime:     time.Now(),
	}, nil
}

// workBoundedDayWindow narrows the pipeline's default task-placement window
// to the user's work hours when set, the same way work.start_time already
// forces a sleep adjustment via WorkConstraint. Tasks are work items, and
// the work block is where they belong; an unset or unparsable bound leaves
// the corresponding side at its configured default.
func (p Pipeline) workBoundedDayWindow(work WorkPreferences) (dayStartMin, dayEndMin int) {
	dayStartMin, dayEndMin = p.DayStartMin, p.DayEndMin
	if dayEndMin <= dayStartMin {
		dayStartMin, dayEndMin = DefaultDayStartMin, DefaultDayEndMin
	}

	start, startOK := clockToMinutes(work.StartTime)
	end, endOK := clockToMinutes(work.EndTime)
	if !startOK && !endOK {
		return dayStartMin, dayEndMin
	}

	newStart, newEnd := dayStartMin, dayEndMin
	if startOK {
		newStart = start
	}
	if endOK {
		newEnd = end
	}
	if newStart < dayStartMin || newEnd > dayEndMin || newStart >= newEnd {
		return dayStartMin, dayEndMin
	}
	return newStart, newEnd
}

func (p Pipeline) solverTimeLimit() time.Duration {
	if p.SolverTimeLimit <= 0 {
		return DefaultSolverTimeLimitMS * time.Millisecond
	}
	return p.SolverTimeLimit
}

// safeCalculateSleep is the one place in the core that recovers from a
// panic: CalculateSleep itself never panics, but an unexpected runtime
// fault here must not abort the rest of the pipeline.
func (p Pipeline) safeCalculateSleep(age int, chronotype Chronotype, need SleepNeed, targetWake *int, work *WorkConstraint) (metrics SleepMetrics, warnings []string) {
	defer func() {
		if r := recover(); r != nil {
			metrics = FallbackSleepMetrics()
			warnings = []string{internalError("sleep calculation panicked (%v); used fallback 23:00-07:00 window", r).Error()}
		}
	}()

	result, w, err := CalculateSleep(age, chronotype, need, targetWake, work)
	if err != nil {
		return FallbackSleepMetrics(), append(w, "sleep calculation rejected input; used fallback 23:00-07:00 window")
	}
	return result, w
}

func resolveSleepNeed(profile UserProfile, prefs Preferences) SleepNeed {
	if profile.SleepNeed != nil {
		return *profile.SleepNeed
	}
	if prefs.SleepNeedScale != nil {
		scale := *prefs.SleepNeedScale
		switch {
		case scale < sleepNeedScaleLowMax:
			return SleepNeedLow
		case scale <= sleepNeedScaleMediumMax:
			return SleepNeedMedium
		default:
			return SleepNeedHigh
		}
	}
	return SleepNeedMedium
}

func validateRequest(req Request) error {
	for _, t := range req.Tasks {
		if t.DurationMin <= 0 {
			return invalidInput("task %s has non-positive duration", t.ID)
		}
	}
	if err := validateFixedEvents(req.FixedEvents); err != nil {
		return err
	}
	if req.Profile.Age < 0 || req.Profile.Age > 120 {
		return invalidInput("age %d out of range [0, 120]", req.Profile.Age)
	}
	if req.Profile.MEQScore != nil {
		score := *req.Profile.MEQScore
		if score < MEQScoreMin || score > MEQScoreMax {
			return invalidInput("meq_score %d out of range [%d, %d]", score, MEQScoreMin, MEQScoreMax)
		}
	}
	return nil
}
