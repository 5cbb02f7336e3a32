package run

import (
	"math"
	"testing"

	"github.com/maximeg-tri/Pacing-tri/internal/domain"
)

func TestAdjustPace(t *testing.T) {
	const base = 300.0 // 5:00/km

	tests := []struct {
		name  string
		grade float64
		want  float64
	}{
		{"1% uphill adds 12 s/km", 0.01, 312},
		{"5% uphill adds 60 s/km", 0.05, 360},
		{"flat is unchanged", 0.0, 300},
		{"2% downhill gives back 12 s/km", -0.02, 288},
		{"downhill gain caps at 18 s/km", -0.05, 282},
		{"very steep downhill still capped", -0.12, 282},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustPace(base, tt.grade); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AdjustPace(%v, %v) = %v, want %v", base, tt.grade, got, tt.want)
			}
		})
	}
}

func TestAdjustPaceFloor(t *testing.T) {
	// For a fast base pace the 15% floor binds before the 18 s/km cap:
	// 100 - 18 = 82 would be under 85, so the floor wins.
	if got := AdjustPace(100, -0.05); got != 85 {
		t.Errorf("AdjustPace(100, -0.05) = %v, want 85", got)
	}
}

func TestPaceAppliesFatigueOnce(t *testing.T) {
	// Fatigue inflates the base pace identically on every segment; it must
	// not compound across the run.
	segments := []domain.Segment{
		{Distance: 1000, Grade: 0},
		{Distance: 1000, Grade: 0},
		{Distance: 1000, Grade: 0},
	}
	params := domain.RunParams{BasePace: 300, FatigueFactor: 0.10}

	results, err := Pace(segments, params)
	if err != nil {
		t.Fatalf("Pace() error = %v", err)
	}

	for i, r := range results {
		if math.Abs(r.Pace-330) > 1e-9 {
			t.Errorf("segment %d pace = %v, want 330 on every segment", i, r.Pace)
		}
	}
}

func TestPaceSpeedAndTime(t *testing.T) {
	segments := []domain.Segment{{Distance: 1000, Grade: 0}}
	params := domain.RunParams{BasePace: 300}

	results, err := Pace(segments, params)
	if err != nil {
		t.Fatalf("Pace() error = %v", err)
	}

	// 300 s/km → 1000/300 m/s → 1 km takes exactly 300 s.
	wantSpeed := 1000.0 / 300.0
	if math.Abs(results[0].Speed-wantSpeed) > 1e-12 {
		t.Errorf("Speed = %v, want %v", results[0].Speed, wantSpeed)
	}
	if math.Abs(results[0].Seconds-300) > 1e-9 {
		t.Errorf("Seconds = %v, want 300", results[0].Seconds)
	}
}

func TestPaceFromReferenceSpeed(t *testing.T) {
	// 12 km/h reference speed is a 300 s/km base pace.
	segments := []domain.Segment{{Distance: 1000, Grade: 0.01}}
	params := domain.RunParams{SpeedKmh: 12}

	results, err := Pace(segments, params)
	if err != nil {
		t.Fatalf("Pace() error = %v", err)
	}
	if math.Abs(results[0].Pace-312) > 1e-9 {
		t.Errorf("Pace = %v, want 312", results[0].Pace)
	}
}

func TestPaceZeroDistance(t *testing.T) {
	results, err := Pace([]domain.Segment{{Distance: 0}}, domain.RunParams{BasePace: 300})
	if err != nil {
		t.Fatalf("Pace() error = %v", err)
	}
	if results[0].Seconds != 0 {
		t.Errorf("zero-distance segment time = %v, want 0", results[0].Seconds)
	}
}

func TestPaceRejectsInvalidParams(t *testing.T) {
	segments := []domain.Segment{{Distance: 1000}}

	bad := []domain.RunParams{
		{},                                  // neither pace nor speed
		{BasePace: 300, SpeedKmh: 12},       // both
		{BasePace: 300, FatigueFactor: 0.3}, // fatigue out of range
	}
	for _, params := range bad {
		if _, err := Pace(segments, params); err == nil {
			t.Errorf("Pace(%+v) should fail validation", params)
		}
	}
}
