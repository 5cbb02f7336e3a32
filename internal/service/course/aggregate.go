package course

import "github.com/maximeg-tri/Pacing-tri/internal/domain"

// BuildRouteResult wraps per-segment engine output with the running
// cumulative distance (km) and time (min) series, in segment order.
func BuildRouteResult(sport domain.Sport, segments []domain.SegmentResult) domain.RouteResult {
	result := domain.RouteResult{
		Sport:         sport,
		Segments:      segments,
		CumDistanceKm: make([]float64, len(segments)),
		CumTimeMin:    make([]float64, len(segments)),
	}

	var distMeters, timeSeconds float64
	for i, s := range segments {
		distMeters += s.Distance
		timeSeconds += s.Seconds
		result.CumDistanceKm[i] = distMeters / 1000.0
		result.CumTimeMin[i] = timeSeconds / 60.0
	}
	return result
}

// Summarize derives the aggregate statistics for a simulated leg.
// criticalPower is only consulted for bike results (intensity factor and
// TSS); pass 0 for a run. Zero-length routes degrade to zero/nil values,
// never to an error.
func Summarize(result domain.RouteResult, criticalPower float64) domain.Summary {
	var distMeters, timeSeconds, powerTime float64
	for _, s := range result.Segments {
		distMeters += s.Distance
		timeSeconds += s.Seconds
		powerTime += s.Power * s.Seconds
	}

	summary := domain.Summary{
		Sport:      result.Sport,
		DistanceKm: distMeters / 1000.0,
		TimeHours:  timeSeconds / 3600.0,
	}

	switch result.Sport {
	case domain.SportBike:
		if timeSeconds > 0 {
			summary.AvgPower = powerTime / timeSeconds
		}
		if criticalPower > 0 {
			summary.IntensityFactor = summary.AvgPower / criticalPower
		}
		summary.TSS = summary.TimeHours * summary.IntensityFactor * summary.IntensityFactor * 100.0
	case domain.SportRun:
		if summary.DistanceKm > 0 {
			pace := (timeSeconds / 60.0) / summary.DistanceKm
			summary.AvgPaceMinKm = &pace
		}
	}

	return summary
}
