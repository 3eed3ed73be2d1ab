package schedule

import (
	"testing"
	"time"
)

func flatPattern(value float64) EnergyPattern {
	p := make(EnergyPattern, 24)
	for h := 0; h < 24; h++ {
		p[h] = value
	}
	return p
}

func TestSolveRespectsEarliestStartAndDeadline(t *testing.T) {
	earliest := 9 * 60
	deadline := time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC)
	tasks := []Task{
		{ID: "t1", DurationMin: 60, Priority: PriorityHigh, Energy: EnergyHigh, EarliestStart: &earliest, Deadline: &deadline},
	}

	result, err := Solve(tasks, nil, flatPattern(0.8), 0, MinutesPerDay, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Placements) != 1 {
		t.Fatalf("got %d placements, want 1", len(result.Placements))
	}
	p := result.Placements[0]
	if p.StartMin < earliest {
		t.Errorf("start %d before earliest_start %d", p.StartMin, earliest)
	}
	if p.EndMin > 12*60 {
		t.Errorf("end %d after deadline 12:00", p.EndMin)
	}
}

func TestSolveRespectsDependencyOrder(t *testing.T) {
	tasks := []Task{
		{ID: "a", DurationMin: 60, Priority: PriorityHigh, Energy: EnergyHigh},
		{ID: "b", DurationMin: 30, Priority: PriorityHigh, Energy: EnergyHigh, Dependencies: []string{"a"}},
	}

	result, err := Solve(tasks, nil, flatPattern(0.8), 0, MinutesPerDay, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var aEnd, bStart int
	for _, p := range result.Placements {
		switch p.TaskID {
		case "a":
			aEnd = p.EndMin
		case "b":
			bStart = p.StartMin
		}
	}
	if bStart < aEnd {
		t.Errorf("b started at %d before a ended at %d", bStart, aEnd)
	}
}

func TestSolveSkipsTaskLongerThanWindow(t *testing.T) {
	tasks := []Task{
		{ID: "huge", DurationMin: 600, Priority: PriorityHigh, Energy: EnergyHigh},
	}

	result, err := Solve(tasks, nil, flatPattern(0.8), 0, 480, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Placements) != 0 {
		t.Fatalf("expected no placements, got %d", len(result.Placements))
	}
	if len(result.Unscheduled) != 1 || result.Unscheduled[0] != "huge" {
		t.Errorf("expected huge to be unscheduled, got %v", result.Unscheduled)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for the skipped task")
	}
}

func TestSolveRejectsOverlappingFixedEvents(t *testing.T) {
	events := []FixedEvent{
		{ID: "e1", StartMin: 9 * 60, EndMin: 10 * 60},
		{ID: "e2", StartMin: 9*60 + 30, EndMin: 11 * 60},
	}

	_, err := Solve(nil, events, flatPattern(0.8), 0, MinutesPerDay, time.Second)
	if err == nil {
		t.Fatal("expected error for overlapping fixed events")
	}
	se, ok := err.(*Error)
	if !ok || se.Kind != KindInvalidInput {
		t.Errorf("expected KindInvalidInput, got %v", err)
	}
}

func TestSolveAvoidsFixedEvents(t *testing.T) {
	events := []FixedEvent{{ID: "meeting", StartMin: 10 * 60, EndMin: 11 * 60}}
	tasks := []Task{{ID: "t", DurationMin: 90, Priority: PriorityHigh, Energy: EnergyHigh}}

	result, err := Solve(tasks, events, flatPattern(0.8), 9*60, 13*60, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Placements) != 1 {
		t.Fatalf("got %d placements, want 1", len(result.Placements))
	}
	p := result.Placements[0]
	if blocksOverlap(p.StartMin, p.EndMin, 10*60, 11*60) {
		t.Errorf("task placement %+v overlaps the fixed event", p)
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	tasks := []Task{
		{ID: "a", DurationMin: 60, Priority: PriorityHigh, Energy: EnergyHigh},
		{ID: "b", DurationMin: 45, Priority: PriorityMedium, Energy: EnergyMedium},
		{ID: "c", DurationMin: 30, Priority: PriorityLow, Energy: EnergyLow},
	}
	events := []FixedEvent{{ID: "meeting", StartMin: 10 * 60, EndMin: 11 * 60}}

	r1, err := Solve(tasks, events, flatPattern(0.6), 0, MinutesPerDay, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r2, err := Solve(tasks, events, flatPattern(0.6), 0, MinutesPerDay, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(r1.Placements) != len(r2.Placements) {
		t.Fatalf("non-deterministic placement counts: %d vs %d", len(r1.Placements), len(r2.Placements))
	}
	for i := range r1.Placements {
		if r1.Placements[i] != r2.Placements[i] {
			t.Errorf("non-deterministic placement at %d: %+v vs %+v", i, r1.Placements[i], r2.Placements[i])
		}
	}
}
