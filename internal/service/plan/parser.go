package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/maximeg-tri/Pacing-tri/internal/domain"
)

// Leg is one discipline of a race plan. Route paths are resolved relative
// to the plan file. Effort fields left at zero fall back to the athlete
// profile.
type Leg struct {
	Sport       domain.Sport `json:"sport"`
	Route       string       `json:"route"`
	TargetPower float64      `json:"target_power,omitempty"` // W, bike legs
	BasePace    float64      `json:"base_pace,omitempty"`    // s/km, run legs
	SpeedKmh    float64      `json:"speed_kmh,omitempty"`    // alternative to base_pace
}

// Plan is an ordered multi-leg event description (e.g. bike then run).
type Plan struct {
	Name string `json:"name"`
	Legs []Leg  `json:"legs"`
}

// Load parses a race-plan JSON file and resolves leg routes against the
// plan's directory.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing race plan %s: %w", path, err)
	}

	if len(p.Legs) == 0 {
		return nil, fmt.Errorf("race plan %s has no legs", path)
	}

	dir := filepath.Dir(path)
	for i, leg := range p.Legs {
		if leg.Sport != domain.SportBike && leg.Sport != domain.SportRun {
			return nil, fmt.Errorf("leg %d: unknown sport %q", i+1, leg.Sport)
		}
		if leg.Route == "" {
			return nil, fmt.Errorf("leg %d: missing route file", i+1)
		}
		if !filepath.IsAbs(leg.Route) {
			p.Legs[i].Route = filepath.Join(dir, leg.Route)
		}
	}

	return &p, nil
}
