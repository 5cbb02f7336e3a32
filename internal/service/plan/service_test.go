package plan

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/maximeg-tri/Pacing-tri/internal/domain"
)

func testProfile() domain.Profile {
	return domain.Profile{
		RiderMass:     75,
		BikeMass:      9,
		CdA:           0.32,
		Crr:           0.005,
		FTP:           250,
		ThresholdPace: 300,
		FatigueFactor: 0.10,
	}
}

// writeFlatGPX writes a short track heading north on flat ground.
func writeFlatGPX(t *testing.T, dir, name string) string {
	t.Helper()

	gpx := `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test"><trk><trkseg>`
	for i := 0; i < 5; i++ {
		gpx += fmt.Sprintf(`<trkpt lat="%.4f" lon="6.0000"><ele>400.0</ele></trkpt>`, 45.9+0.001*float64(i))
	}
	gpx += `</trkseg></trk></gpx>`

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(gpx), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSimulateBikeThenRun(t *testing.T) {
	dir := t.TempDir()
	writeFlatGPX(t, dir, "bike.gpx")
	writeFlatGPX(t, dir, "run.gpx")

	planPath := filepath.Join(dir, "plan.json")
	contents := `{
		"name": "Duathlon",
		"legs": [
			{"sport": "bike", "route": "bike.gpx", "target_power": 200},
			{"sport": "run", "route": "run.gpx"}
		]
	}`
	if err := os.WriteFile(planPath, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(planPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	event, err := NewService().Simulate(p, testProfile())
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	if len(event.Legs) != 2 {
		t.Fatalf("len(Legs) = %d, want 2", len(event.Legs))
	}

	bike, runLeg := event.Legs[0], event.Legs[1]
	if bike.Summary.Sport != domain.SportBike || math.Abs(bike.Summary.AvgPower-200) > 1e-9 {
		t.Errorf("bike summary = %+v", bike.Summary)
	}
	if bike.Summary.TSS <= 0 {
		t.Errorf("bike TSS = %v, want > 0", bike.Summary.TSS)
	}

	// The run follows the bike, so the profile's fatigue factor inflates
	// the threshold pace: 300 × 1.10 = 330 s/km on every flat segment.
	for i, s := range runLeg.Result.Segments {
		if math.Abs(s.Pace-330) > 1e-9 {
			t.Errorf("run segment %d pace = %v, want 330", i, s.Pace)
		}
	}

	wantTotal := bike.Summary.DistanceKm + runLeg.Summary.DistanceKm
	if math.Abs(event.DistanceKm-wantTotal) > 1e-12 {
		t.Errorf("event distance = %v, want %v", event.DistanceKm, wantTotal)
	}
	wantTime := bike.Summary.TimeHours + runLeg.Summary.TimeHours
	if math.Abs(event.TimeHours-wantTime) > 1e-12 {
		t.Errorf("event time = %v, want %v", event.TimeHours, wantTime)
	}
}

func TestSimulateOpeningRunHasNoFatigue(t *testing.T) {
	dir := t.TempDir()
	writeFlatGPX(t, dir, "run.gpx")

	planPath := filepath.Join(dir, "plan.json")
	contents := `{"legs": [{"sport": "run", "route": "run.gpx"}]}`
	if err := os.WriteFile(planPath, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(planPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	event, err := NewService().Simulate(p, testProfile())
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	for i, s := range event.Legs[0].Result.Segments {
		if math.Abs(s.Pace-300) > 1e-9 {
			t.Errorf("segment %d pace = %v, want un-fatigued 300", i, s.Pace)
		}
	}
}
