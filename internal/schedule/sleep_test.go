package schedule

import "testing"

func TestCalculateSleepAdultDuration(t *testing.T) {
	m, _, err := CalculateSleep(30, Intermediate, SleepNeedMedium, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.DurationMin != 5*90 {
		t.Errorf("got duration %d, want %d", m.DurationMin, 5*90)
	}
	wantWake := defaultWakeMinutes[Intermediate] + 30 // +0.5h shift
	if m.WakeMin != wantWake {
		t.Errorf("got wake %d, want %d", m.WakeMin, wantWake)
	}
}

func TestCalculateSleepTeenNightOwlCycles(t *testing.T) {
	m, _, err := CalculateSleep(16, NightOwl, SleepNeedHigh, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.DurationMin != 12*50 {
		t.Errorf("got duration %d, want %d", m.DurationMin, 12*50)
	}
}

func TestCalculateSleepWorkConflictOverride(t *testing.T) {
	m, warnings, err := CalculateSleep(30, EarlyBird, SleepNeedMedium, nil, &WorkConstraint{
		StartMin: 6 * 60, CommuteMin: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantWake := 6*60 - 30 - 30 // 05:00
	if m.WakeMin != wantWake {
		t.Errorf("got wake %d, want %d", m.WakeMin, wantWake)
	}
	if len(warnings) == 0 {
		t.Error("expected a wake-time-adjusted warning")
	}
}

func TestCalculateSleepInvalidAge(t *testing.T) {
	_, _, err := CalculateSleep(-1, Intermediate, SleepNeedMedium, nil, nil)
	if err == nil {
		t.Fatal("expected error for negative age")
	}
	se, ok := err.(*Error)
	if !ok || se.Kind != KindInvalidInput {
		t.Errorf("expected KindInvalidInput, got %v", err)
	}

	_, _, err = CalculateSleep(121, Intermediate, SleepNeedMedium, nil, nil)
	if err == nil {
		t.Fatal("expected error for age above 120")
	}
}

func TestFallbackSleepMetrics(t *testing.T) {
	m := FallbackSleepMetrics()
	if m.BedtimeMin != 23*60 || m.WakeMin != 7*60 {
		t.Errorf("got %+v, want 23:00-07:00 fallback", m)
	}
	if m.DurationMin != 8*60 {
		t.Errorf("got duration %d, want 480", m.DurationMin)
	}
}

func TestSuggestWakeTimesAscending(t *testing.T) {
	times := SuggestWakeTimes(22*60+30, 4, 6, 90)
	if len(times) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(times))
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			t.Errorf("suggestions not strictly ascending: %v", times)
		}
	}
}

func TestQualityScorePerfectMatch(t *testing.T) {
	score := QualityScore(480, 480, 0)
	if score != 100.0 {
		t.Errorf("got %.1f, want 100.0", score)
	}
}
