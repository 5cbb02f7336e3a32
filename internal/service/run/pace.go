package run

import "github.com/maximeg-tri/Pacing-tri/internal/domain"

// Empirical slope adjustments, in seconds per km per percent of grade.
const (
	uphillCostPerPct     = 12.0
	downhillGainPerPct   = 6.0
	maxDownhillGain      = 18.0 // s/km
	maxDownhillImproveTo = 0.85 // floor at 15% under base pace
)

// AdjustPace maps a flat-ground pace (s/km) to the pace sustainable on the
// given grade. Uphills cost 12 s/km per percent. Downhills give back
// 6 s/km per percent, capped at 18 s/km and never more than 15% of the
// base pace; legs can only absorb so much free speed.
func AdjustPace(basePace, grade float64) float64 {
	pct := grade * 100.0
	if pct > 0 {
		return basePace + uphillCostPerPct*pct
	}

	improvement := min(downhillGainPerPct*(-pct), maxDownhillGain)
	return max(basePace-improvement, basePace*maxDownhillImproveTo)
}

// Pace simulates the run leg. The fatigue factor inflates the flat-ground
// pace once for the whole run (it models starting the run off the bike, not
// decay within the run), then each segment gets the slope adjustment.
func Pace(segments []domain.Segment, params domain.RunParams) ([]domain.SegmentResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	basePace := params.ResolveBasePace() * (1.0 + params.FatigueFactor)
	results := make([]domain.SegmentResult, 0, len(segments))

	for _, seg := range segments {
		pace := AdjustPace(basePace, seg.Grade)

		speed := 0.0
		if pace > 0 {
			speed = 1000.0 / pace
		}
		seconds := 0.0
		if speed > 0 {
			seconds = seg.Distance / speed
		}

		results = append(results, domain.SegmentResult{
			Segment: seg,
			Pace:    pace,
			Speed:   speed,
			Seconds: seconds,
		})
	}
	return results, nil
}
