package sim

import "github.com/maximeg-tri/Pacing-tri/internal/domain"

// Floor for the power assigned on steep descents. Below this a rider is
// coasting anyway.
const minDescentPower = 50.0 // W

// AssignPower picks the power target for one segment from its grade.
// Ordered guards, first match wins: push harder on climbs (capped at
// critical power on the steep ones), back off on real descents, hold the
// target everywhere else. The inequalities are strict, so a grade of
// exactly 0.05 or 0.02 rides at the next tier down.
func AssignPower(grade, targetPower, criticalPower float64) float64 {
	switch {
	case grade > 0.05:
		return min(1.12*targetPower, criticalPower)
	case grade > 0.02:
		return 1.06 * targetPower
	case grade < -0.03:
		return max(0.60*targetPower, minDescentPower)
	default:
		return targetPower
	}
}

// Pace simulates the bike leg: per segment, assign a power, solve the
// sustainable speed, and derive the time. Output order matches segment
// order, and the whole pass is a pure function of its inputs — rerunning
// it with the same segments and params reproduces the result exactly.
func Pace(segments []domain.Segment, params domain.BikeParams) ([]domain.SegmentResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	engine := NewEngine(params)
	results := make([]domain.SegmentResult, 0, len(segments))

	for _, seg := range segments {
		watts := AssignPower(seg.Grade, params.TargetPower, params.CriticalPower)
		speed := engine.SolveVelocity(watts, seg.Grade)

		seconds := 0.0
		if speed > 0 {
			seconds = seg.Distance / speed
		}

		results = append(results, domain.SegmentResult{
			Segment: seg,
			Power:   watts,
			Speed:   speed,
			Seconds: seconds,
		})
	}
	return results, nil
}
