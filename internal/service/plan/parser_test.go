package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maximeg-tri/Pacing-tri/internal/domain"
)

func writePlan(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writePlan(t, `{
		"name": "Race Day",
		"legs": [
			{"sport": "bike", "route": "bike.gpx", "target_power": 210},
			{"sport": "run", "route": "run.gpx", "base_pace": 290}
		]
	}`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if p.Name != "Race Day" {
		t.Errorf("Name = %q, want %q", p.Name, "Race Day")
	}
	if len(p.Legs) != 2 {
		t.Fatalf("len(Legs) = %d, want 2", len(p.Legs))
	}
	if p.Legs[0].Sport != domain.SportBike || p.Legs[1].Sport != domain.SportRun {
		t.Errorf("leg sports = %v, %v", p.Legs[0].Sport, p.Legs[1].Sport)
	}

	// Relative routes resolve against the plan's directory.
	wantRoute := filepath.Join(filepath.Dir(path), "bike.gpx")
	if p.Legs[0].Route != wantRoute {
		t.Errorf("Route = %q, want %q", p.Legs[0].Route, wantRoute)
	}
}

func TestLoadRejectsBadPlans(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"empty legs", `{"name": "x", "legs": []}`},
		{"unknown sport", `{"legs": [{"sport": "swim", "route": "a.gpx"}]}`},
		{"missing route", `{"legs": [{"sport": "bike"}]}`},
		{"invalid json", `{"legs": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writePlan(t, tt.contents)); err == nil {
				t.Error("Load() = nil error, want failure")
			}
		})
	}
}
