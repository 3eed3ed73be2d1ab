package schedule

// RoutinePreferences configures the optional morning/evening routine blocks
// enriched onto a schedule.
type RoutinePreferences struct {
	MorningRoutineMin int // minutes after wake, 0 disables
	EveningRoutineMin int // minutes before bedtime, 0 disables
}

// ActivityPreferences configures an optional physical-activity block.
type ActivityPreferences struct {
	DurationMin  int // 0 disables
	PreferredMin *int // minutes-from-midnight, nil lets the enricher pick a prime-adjacent slot
}

// EnrichInput bundles everything the block enricher needs beyond the solver's
// placements.
type EnrichInput struct {
	Placements   []Placement
	Tasks        []Task
	FixedEvents  []FixedEvent
	Sleep        SleepMetrics
	Prime        PrimeWindow
	Routines     RoutinePreferences
	Activity     ActivityPreferences
	Meals        MealPreferences
}

// MealPreferences configures which meals appear and at what times.
type MealPreferences struct {
	BreakfastMin      int
	LunchMin          int
	DinnerMin         int
	BreakfastEnabled  bool
	LunchEnabled      bool
	DinnerEnabled     bool
	DurationMin       int
}

// DefaultMealPreferences returns the default preference set: all three meals
// enabled at 07:30/12:30/19:00, 30 minutes each.
func DefaultMealPreferences() MealPreferences {
	return MealPreferences{
		BreakfastMin:     defaultBreakfastMin,
		LunchMin:         defaultLunchMin,
		DinnerMin:        defaultDinnerMin,
		BreakfastEnabled: true,
		LunchEnabled:     true,
		DinnerEnabled:    true,
		DurationMin:      defaultMealDuration,
	}
}

// rawBlock pairs a candidate block with its span before conflict
// resolution collapses overlaps.
type rawBlock struct {
	start, end int
	block      ScheduleBlock
}

// CollectBlocks gathers every candidate block -- tasks, fixed events, sleep,
// meals, routines, and an activity slot -- ready for conflict resolution.
func CollectBlocks(in EnrichInput) []rawBlock {
	var raw []rawBlock

	taskByID := make(map[string]Task, len(in.Tasks))
	for _, t := range in.Tasks {
		taskByID[t.ID] = t
	}

	for _, p := range in.Placements {
		name := p.TaskID
		if t, ok := taskByID[p.TaskID]; ok {
			name = t.Title
		}
		raw = append(raw, rawBlock{p.StartMin, p.EndMin, ScheduleBlock{
			Type:     BlockTask,
			Name:     name,
			StartMin: p.StartMin,
			EndMin:   p.EndMin,
			TaskID:   p.TaskID,
		}})
	}

	for _, e := range in.FixedEvents {
		raw = append(raw, rawBlock{e.StartMin, e.EndMin, ScheduleBlock{
			Type:     BlockFixedEvent,
			Name:     e.SourceLabel,
			StartMin: e.StartMin,
			EndMin:   e.EndMin,
			EventID:  e.ID,
		}})
	}

	raw = append(raw, sleepBlocks(in.Sleep)...)
	raw = append(raw, mealBlocks(in.Meals)...)

	if in.Routines.MorningRoutineMin > 0 {
		start := in.Sleep.WakeMin
		raw = append(raw, rawBlock{start, start + in.Routines.MorningRoutineMin, ScheduleBlock{
			Type:     BlockRoutine,
			Name:     "Morning Routine",
			StartMin: start,
			EndMin:   start + in.Routines.MorningRoutineMin,
		}})
	}
	if in.Routines.EveningRoutineMin > 0 {
		end := normalizeMinute(in.Sleep.BedtimeMin)
		start := end - in.Routines.EveningRoutineMin
		raw = append(raw, rawBlock{start, end, ScheduleBlock{
			Type:     BlockRoutine,
			Name:     "Evening Routine",
			StartMin: start,
			EndMin:   end,
		}})
	}

	if in.Activity.DurationMin > 0 {
		start := activitySlot(in.Activity, in.Prime)
		raw = append(raw, rawBlock{start, start + in.Activity.DurationMin, ScheduleBlock{
			Type:     BlockActivity,
			Name:     "Physical Activity",
			StartMin: start,
			EndMin:   start + in.Activity.DurationMin,
		}})
	}

	return raw
}

// sleepBlocks splits a midnight-crossing sleep window into the two halves
// the gap filler expects: the tail of last night's sleep and the start of
// tonight's.
func sleepBlocks(s SleepMetrics) []rawBlock {
	wake := normalizeMinute(s.WakeMin)
	bedtime := normalizeMinute(s.BedtimeMin)

	var blocks []rawBlock
	if wake > 0 {
		blocks = append(blocks, rawBlock{0, wake, ScheduleBlock{
			Type: BlockSleep, Name: "Sleep", StartMin: 0, EndMin: wake,
			EventID: "sleep_previous_night",
		}})
	}
	if bedtime < MinutesPerDay {
		blocks = append(blocks, rawBlock{bedtime, MinutesPerDay, ScheduleBlock{
			Type: BlockSleep, Name: "Sleep", StartMin: bedtime, EndMin: MinutesPerDay,
			EventID: "sleep_upcoming_night", NextDay: true,
		}})
	}
	return blocks
}

func normalizeMinute(m int) int {
	return ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
}

func mealBlocks(prefs MealPreferences) []rawBlock {
	duration := prefs.DurationMin
	if duration <= 0 {
		duration = defaultMealDuration
	}

	meals := []struct {
		name     string
		startMin int
		enabled  bool
	}{
		{"Breakfast", prefs.BreakfastMin, prefs.BreakfastEnabled},
		{"Lunch", prefs.LunchMin, prefs.LunchEnabled},
		{"Dinner", prefs.DinnerMin, prefs.DinnerEnabled},
	}

	var out []rawBlock
	for _, m := range meals {
		if !m.enabled {
			continue
		}
		end := m.startMin + duration
		out = append(out, rawBlock{m.startMin, end, ScheduleBlock{
			Type: BlockMeal, Name: m.name, StartMin: m.startMin, EndMin: end,
		}})
	}
	return out
}

// activitySlot places the activity block just after the prime window ends,
// so it doesn't compete with peak-focus hours, unless the caller pinned a
// preferred start.
func activitySlot(a ActivityPreferences, prime PrimeWindow) int {
	if a.PreferredMin != nil {
		return *a.PreferredMin
	}
	return prime.EndMin
}
