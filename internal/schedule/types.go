// Package schedule implements the deterministic daily-schedule generation
// pipeline: chronotype classification, sleep window derivation, energy curve
// synthesis, constraint-based task placement, block enrichment, conflict
// resolution, gap filling, and metrics. The pipeline is synchronous,
// stateless, and side-effect free — every stage consumes immutable inputs
// and returns a new value.
package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Priority is the urgency tier of a Task.
type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityLow      Priority = "LOW"
	PriorityBacklog  Priority = "BACKLOG"
)

// priorityRank orders priorities for the solver's objective (lower is more urgent).
var priorityRank = map[Priority]int{
	PriorityCritical: 0,
	PriorityHigh:      1,
	PriorityMedium:    2,
	PriorityLow:       3,
	PriorityBacklog:   4,
}

// EnergyLevel is the cognitive-demand tier of a Task.
type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "HIGH"
	EnergyMedium EnergyLevel = "MEDIUM"
	EnergyLow    EnergyLevel = "LOW"
)

// Task is a unit of work the solver may place on the day.
type Task struct {
	ID            string
	Title         string
	DurationMin   int
	Priority      Priority
	Energy        EnergyLevel
	Deadline      *time.Time
	EarliestStart *int // minutes-from-midnight, optional
	Dependencies  []string
	Completed     bool
}

// FixedEvent is a non-movable block: a meeting, appointment, or sleep window.
type FixedEvent struct {
	ID          string
	StartMin    int
	EndMin      int
	Type        string
	SourceLabel string
}

// Chronotype is the circadian-preference category derived from an MEQ score.
type Chronotype string

const (
	EarlyBird    Chronotype = "EARLY_BIRD"
	Intermediate Chronotype = "INTERMEDIATE"
	NightOwl     Chronotype = "NIGHT_OWL"
	Unknown      Chronotype = "UNKNOWN"
)

// PrimeWindow is the 3-6 hour peak-performance window for a chronotype.
type PrimeWindow struct {
	StartMin   int
	EndMin     int
	Chronotype Chronotype
}

// DurationHours reports the window's length in hours.
func (p PrimeWindow) DurationHours() float64 {
	return float64(p.EndMin-p.StartMin) / 60.0
}

// SleepNeed is the user's self-reported or scale-derived sleep requirement.
type SleepNeed string

const (
	SleepNeedLow    SleepNeed = "LOW"
	SleepNeedMedium SleepNeed = "MEDIUM"
	SleepNeedHigh   SleepNeed = "HIGH"
)

// SleepMetrics is the calculated ideal sleep window at minute resolution.
type SleepMetrics struct {
	DurationMin int
	BedtimeMin  int // minutes from the target day's midnight; negative means the previous evening (the fallback uses the wrapped form, 1380 for 23:00)
	WakeMin     int
	QualityScore float64 // 0-100, derivable; zero when not computed
}

// EnergyPattern is a dense hour -> energy map for one day, hour in [0,23].
type EnergyPattern map[int]float64

// EnergySummary buckets an EnergyPattern by band, for diagnostics/dashboards.
type EnergySummary struct {
	PeakHours     int // energy >= 0.9
	GoodHours     int // 0.7 <= energy < 0.9
	ModerateHours int // 0.4 <= energy < 0.7
	LowHours      int // 0 < energy < 0.4
	SleepHours    int // energy == 0
}

// BlockType tags the kind of a ScheduleBlock.
type BlockType string

const (
	BlockTask       BlockType = "task"
	BlockFixedEvent BlockType = "fixed_event"
	BlockSleep      BlockType = "sleep"
	BlockMeal       BlockType = "meal"
	BlockRoutine    BlockType = "routine"
	BlockActivity   BlockType = "activity"
	BlockBreak      BlockType = "break"
	BlockQuickBreak BlockType = "quick_break"
	BlockShortBreak BlockType = "short_break"
	BlockFreeTime   BlockType = "free_time"
)

// blockPriority orders block types for conflict resolution (higher wins).
var blockPriority = map[BlockType]int{
	BlockSleep:      6,
	BlockFixedEvent: 5,
	BlockTask:       4,
	BlockMeal:       3,
	BlockRoutine:    2,
	BlockActivity:   1,
	BlockBreak:      0,
	BlockQuickBreak: 0,
	BlockShortBreak: 0,
	BlockFreeTime:   0,
}

// ScheduleBlock is the universal output element of the pipeline.
type ScheduleBlock struct {
	Type        BlockType
	Name        string
	StartMin    int
	EndMin      int
	NextDay     bool // true when the block crosses midnight into the following day
	TaskID      string
	EventID     string
	Metadata    map[string]any
}

// DurationMin reports the block's length in minutes.
func (b ScheduleBlock) DurationMin() int {
	return b.EndMin - b.StartMin
}

// Metrics summarizes a completed schedule.
type Metrics struct {
	TaskMinutes        int
	BreakMinutes       int
	FixedMinutes       int
	SleepMinutes       int
	MealMinutes        int
	RoutineMinutes     int
	ActivityMinutes    int
	TaskCompletionPct  float64
	WorkLifeRatio      float64
	SleepQualityScore  float64
}

// GeneratedSchedule is the pipeline's final output for one user/day.
type GeneratedSchedule struct {
	UserID            uuid.UUID
	TargetDate        time.Time
	ScheduleID         uuid.UUID
	Blocks            []ScheduleBlock
	Metrics           Metrics
	EnergySummary     EnergySummary
	Warnings          []string
	UnscheduledTaskIDs []string
	GenerationTime    time.Time
}
