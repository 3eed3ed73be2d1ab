package schedule

// FillGaps builds the final, continuous 24-hour block list from conflict-
// resolved blocks, inserting a break for every unaccounted gap. Sleep blocks anchor the
// day's boundaries when present; otherwise the whole day is filled from
// midnight.
func FillGaps(blocks []rawBlock) []ScheduleBlock {
	sleepBlocks, active := separateSleep(blocks)

	if len(sleepBlocks) > 0 {
		return buildWithSleep(active, sleepBlocks)
	}
	return buildWithoutSleep(active)
}

func separateSleep(blocks []rawBlock) (sleep, active []rawBlock) {
	for _, b := range blocks {
		if b.block.Type == BlockSleep {
			sleep = append(sleep, b)
		} else {
			active = append(active, b)
		}
	}
	return sleep, active
}

// buildWithSleep reproduces the morning-sleep / active-window / evening-
// sleep layout: wake time and bedtime become the day's working boundaries,
// and every gap between them gets a break.
func buildWithSleep(active, sleepBlocks []rawBlock) []ScheduleBlock {
	var morning, evening *rawBlock
	for i := range sleepBlocks {
		switch sleepBlocks[i].block.EventID {
		case "sleep_previous_night":
			morning = &sleepBlocks[i]
		case "sleep_upcoming_night":
			evening = &sleepBlocks[i]
		}
	}

	var final []ScheduleBlock

	wakeMin := 0
	if morning != nil {
		final = append(final, morning.block)
		wakeMin = morning.end
	}

	bedMin := MinutesPerDay
	if evening != nil {
		bedMin = evening.start
	}

	prevEnd := wakeMin
	for _, b := range active {
		if b.start < wakeMin || b.start >= bedMin {
			continue
		}
		if b.start > prevEnd {
			final = append(final, gapBreak(prevEnd, b.start))
		}
		final = append(final, b.block)
		prevEnd = b.end
	}

	if prevEnd < bedMin {
		final = append(final, gapBreak(prevEnd, bedMin))
	}

	if evening != nil {
		final = append(final, evening.block)
	}

	return final
}

func buildWithoutSleep(active []rawBlock) []ScheduleBlock {
	var final []ScheduleBlock
	prevEnd := 0

	for _, b := range active {
		if b.start > prevEnd {
			final = append(final, gapBreak(prevEnd, b.start))
		}
		final = append(final, b.block)
		prevEnd = b.end
	}

	if prevEnd < MinutesPerDay {
		final = append(final, endOfDayBreak(prevEnd))
	}

	return final
}

// gapBreak fills every gap of at least one minute; even a 1-minute gap gets
// a Quick Break to keep the timeline continuous.
func gapBreak(prevEnd, nextStart int) ScheduleBlock {
	name, kind := breakTypeFor(nextStart - prevEnd)
	return ScheduleBlock{
		Type:     kind,
		Name:     name,
		StartMin: prevEnd,
		EndMin:   nextStart,
	}
}

func breakTypeFor(duration int) (string, BlockType) {
	switch {
	case duration >= freeTimeThresholdMin:
		return "Free Time", BlockFreeTime
	case duration >= shortBreakThresholdMin:
		return "Short Break", BlockShortBreak
	default:
		return "Quick Break", BlockQuickBreak
	}
}

func endOfDayBreak(prevEnd int) ScheduleBlock {
	name, kind := "Free Time", BlockFreeTime
	if MinutesPerDay-prevEnd <= 30 {
		name, kind = "Quick Break", BlockQuickBreak
	}
	return ScheduleBlock{
		Type:     kind,
		Name:     name,
		StartMin: prevEnd,
		EndMin:   MinutesPerDay,
		NextDay:  true,
	}
}
