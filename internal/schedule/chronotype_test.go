package schedule

import "testing"

func TestClassifyChronotypeBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  Chronotype
	}{
		{16, NightOwl},
		{41, NightOwl},
		{42, Intermediate},
		{58, Intermediate},
		{59, EarlyBird},
		{86, EarlyBird},
	}

	for _, c := range cases {
		score := c.score
		got, _, err := ClassifyChronotype(&score)
		if err != nil {
			t.Fatalf("score %d: unexpected error: %v", c.score, err)
		}
		if got != c.want {
			t.Errorf("score %d: got %s, want %s", c.score, got, c.want)
		}
	}
}

func TestClassifyChronotypeMissingScore(t *testing.T) {
	chrono, window, err := ClassifyChronotype(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chrono != Unknown {
		t.Errorf("got %s, want UNKNOWN", chrono)
	}
	if window.StartMin != 10*60 || window.EndMin != 14*60 {
		t.Errorf("got window %+v, want 10:00-14:00", window)
	}
}

func TestClassifyChronotypeOutOfRange(t *testing.T) {
	for _, score := range []int{15, 87, -5} {
		s := score
		_, _, err := ClassifyChronotype(&s)
		if err == nil {
			t.Errorf("score %d: expected error", score)
			continue
		}
		se, ok := err.(*Error)
		if !ok || se.Kind != KindInvalidInput {
			t.Errorf("score %d: expected KindInvalidInput, got %v", score, err)
		}
	}
}

func TestPrimeWindowDuration(t *testing.T) {
	_, window, _ := ClassifyChronotype(nil)
	hours := window.DurationHours()
	if hours < 3 || hours > 6 {
		t.Errorf("prime window duration %.1fh out of documented 3-6h range", hours)
	}
}
