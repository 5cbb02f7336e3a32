package plan

import (
	"fmt"

	"github.com/maximeg-tri/Pacing-tri/internal/domain"
	"github.com/maximeg-tri/Pacing-tri/internal/service/course"
	"github.com/maximeg-tri/Pacing-tri/internal/service/gpx"
	"github.com/maximeg-tri/Pacing-tri/internal/service/run"
	"github.com/maximeg-tri/Pacing-tri/internal/service/sim"
)

// LegResult pairs one leg with its simulation output.
type LegResult struct {
	Leg     Leg
	Points  []domain.TrackPoint
	Result  domain.RouteResult
	Summary domain.Summary
}

// EventResult is the whole simulated event plus overall totals.
type EventResult struct {
	Name       string
	Legs       []LegResult
	DistanceKm float64
	TimeHours  float64
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Simulate runs every leg of the plan in order, filling effort gaps from
// the athlete profile. Run legs that follow a bike leg carry the profile's
// fatigue factor; an opening run does not.
func (s *Service) Simulate(p *Plan, profile domain.Profile) (*EventResult, error) {
	event := &EventResult{Name: p.Name}

	ridden := false
	for i, leg := range p.Legs {
		points, err := gpx.NewService().LoadAndProcess(leg.Route)
		if err != nil {
			return nil, fmt.Errorf("leg %d (%s): %w", i+1, leg.Route, err)
		}

		segments, err := course.Segments(points)
		if err != nil {
			return nil, fmt.Errorf("leg %d (%s): %w", i+1, leg.Route, err)
		}

		var (
			results       []domain.SegmentResult
			criticalPower float64
		)

		switch leg.Sport {
		case domain.SportBike:
			params := domain.BikeParams{
				TotalMass:     profile.RiderMass + profile.BikeMass,
				CdA:           profile.CdA,
				Crr:           profile.Crr,
				TargetPower:   leg.TargetPower,
				CriticalPower: float64(profile.FTP),
			}
			if params.TargetPower == 0 {
				params.TargetPower = float64(profile.FTP)
			}
			criticalPower = params.CriticalPower

			results, err = sim.Pace(segments, params)
			ridden = true

		case domain.SportRun:
			params := domain.RunParams{
				BasePace: leg.BasePace,
				SpeedKmh: leg.SpeedKmh,
			}
			if params.BasePace == 0 && params.SpeedKmh == 0 {
				params.BasePace = profile.ThresholdPace
			}
			if ridden {
				params.FatigueFactor = profile.FatigueFactor
			}

			results, err = run.Pace(segments, params)
		}
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i+1, err)
		}

		routeResult := course.BuildRouteResult(leg.Sport, results)
		summary := course.Summarize(routeResult, criticalPower)

		event.Legs = append(event.Legs, LegResult{
			Leg:     leg,
			Points:  points,
			Result:  routeResult,
			Summary: summary,
		})
		event.DistanceKm += summary.DistanceKm
		event.TimeHours += summary.TimeHours
	}

	return event, nil
}
