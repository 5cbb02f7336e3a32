package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sport identifies which pacing engine produced a result.
type Sport string

const (
	SportBike Sport = "bike"
	SportRun  Sport = "run"
)

// TrackPoint is one raw sample of a recorded route.
// Elevation is 0 when the source file carries none.
type TrackPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Elevation float64 `json:"elevation"`
}

// Segment spans two consecutive track points.
type Segment struct {
	Distance float64 `json:"distance"` // meters
	Grade    float64 `json:"grade"`    // rise/run ratio (0.05 = 5%), negative downhill
}

// BikeParams are the rider, machine and effort inputs for one bike simulation.
// They are immutable for the duration of a run; changing any of them means a
// full recompute.
type BikeParams struct {
	TotalMass     float64 `json:"total_mass"`     // rider + bike (kg)
	CdA           float64 `json:"cda"`            // aerodynamic drag area (m²)
	Crr           float64 `json:"crr"`            // rolling resistance coefficient
	TargetPower   float64 `json:"target_power"`   // goal power (W)
	CriticalPower float64 `json:"critical_power"` // FTP (W)
}

// Validate rejects parameters the physical model cannot handle.
// The velocity solver relies on power being strictly increasing with speed,
// which only holds for positive mass, CdA and Crr.
func (p BikeParams) Validate() error {
	if p.TotalMass <= 0 {
		return fmt.Errorf("total mass must be positive, got %.1f kg", p.TotalMass)
	}
	if p.CdA <= 0 {
		return fmt.Errorf("CdA must be positive, got %.3f m²", p.CdA)
	}
	if p.Crr <= 0 {
		return fmt.Errorf("Crr must be positive, got %.4f", p.Crr)
	}
	return nil
}

// RunParams are the effort inputs for one run simulation. Exactly one of
// BasePace and SpeedKmh is the source of truth; the other must be zero.
type RunParams struct {
	BasePace      float64 `json:"base_pace"`      // s/km on flat ground
	SpeedKmh      float64 `json:"speed_kmh"`      // reference speed, converted to pace
	FatigueFactor float64 `json:"fatigue_factor"` // 0.0–0.20, inflates pace for the whole run
}

var ErrPaceAmbiguous = errors.New("exactly one of base pace and reference speed must be set")

func (p RunParams) Validate() error {
	if (p.BasePace > 0) == (p.SpeedKmh > 0) {
		return ErrPaceAmbiguous
	}
	if p.FatigueFactor < 0 || p.FatigueFactor > 0.20 {
		return fmt.Errorf("fatigue factor must be within [0, 0.20], got %.2f", p.FatigueFactor)
	}
	return nil
}

// ResolveBasePace returns the flat-ground pace in s/km, deriving it from the
// reference speed when that is the configured source.
func (p RunParams) ResolveBasePace() float64 {
	if p.BasePace > 0 {
		return p.BasePace
	}
	return 3600.0 / p.SpeedKmh
}

// SegmentResult is one segment with the engine's per-segment estimate.
// Power is set only by the bike engine, Pace only by the run engine.
type SegmentResult struct {
	Segment
	Power   float64 `json:"power"`   // assigned power (W)
	Pace    float64 `json:"pace"`    // adjusted pace (s/km)
	Speed   float64 `json:"speed"`   // m/s
	Seconds float64 `json:"seconds"` // predicted time on the segment
}

// RouteResult is the full per-segment output of a pacing engine, in route
// order, plus the cumulative series charts and exports are drawn from.
// CumDistanceKm and CumTimeMin are running sums and therefore non-decreasing.
type RouteResult struct {
	Sport         Sport           `json:"sport"`
	Segments      []SegmentResult `json:"segments"`
	CumDistanceKm []float64       `json:"cum_distance_km"`
	CumTimeMin    []float64       `json:"cum_time_min"`
}

// Summary holds the aggregate statistics for one simulated leg.
// Power-based fields are only meaningful for bike results; AvgPaceMinKm is
// nil when the route has zero distance.
type Summary struct {
	Sport           Sport    `json:"sport"`
	DistanceKm      float64  `json:"distance_km"`
	TimeHours       float64  `json:"time_hours"`
	AvgPower        float64  `json:"avg_power"`
	IntensityFactor float64  `json:"intensity_factor"`
	TSS             float64  `json:"tss"`
	AvgPaceMinKm    *float64 `json:"avg_pace_min_km"`
}

// Seconds returns the total predicted time in seconds.
func (s Summary) Seconds() float64 {
	return s.TimeHours * 3600.0
}

// ===============
// DATABASE MODELS
// ===============

// Profile stores the athlete's physical data and default effort settings.
type Profile struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name"`
	RiderMass     float64   `json:"rider_mass"`     // kg
	BikeMass      float64   `json:"bike_mass"`      // kg
	CdA           float64   `json:"cda"`            // m²
	Crr           float64   `json:"crr"`
	FTP           int       `json:"ftp"`            // W
	ThresholdPace float64   `json:"threshold_pace"` // s/km, default run pace
	FatigueFactor float64   `json:"fatigue_factor"`
	Units         string    `json:"units"` // "metric", "imperial"
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Simulation is one saved estimate, kept as history.
type Simulation struct {
	ID              string    `json:"id" gorm:"primaryKey"` // UUID
	RouteName       string    `json:"route_name"`
	Sport           string    `json:"sport"`
	DistanceKm      float64   `json:"distance_km"`
	TimeMinutes     float64   `json:"time_minutes"`
	ElevationGain   float64   `json:"elevation_gain"` // meters
	AvgPower        float64   `json:"avg_power"`
	IntensityFactor float64   `json:"intensity_factor"`
	TSS             float64   `json:"tss"`
	AvgPaceMinKm    float64   `json:"avg_pace_min_km"`
	CreatedAt       time.Time `json:"created_at"`
}
