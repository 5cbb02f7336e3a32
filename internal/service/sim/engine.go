package sim

import (
	"math"

	"github.com/maximeg-tri/Pacing-tri/internal/domain"
)

// Physical constants for cycling
const (
	Gravity = 9.81  // m/s²
	Rho     = 1.225 // Air density (sea level)
)

// Bisection bracket and depth for the velocity solver. 50 halvings of a
// 24.9 m/s bracket land below float64 resolution, so the midpoint is exact
// for this domain.
const (
	solverVMin       = 0.1  // m/s
	solverVMax       = 25.0 // m/s (90 km/h)
	solverIterations = 50
)

// Engine estimates bike speed from power on graded terrain.
type Engine struct {
	params domain.BikeParams
}

func NewEngine(params domain.BikeParams) *Engine {
	return &Engine{params: params}
}

// PowerRequired returns the power in watts needed to hold v (m/s) on the
// given grade. Three additive terms: rolling resistance, aerodynamic drag
// and gravity. Strictly increasing in v on flat and rising ground; on
// descents gravity assists, but the cubic aero term still gives any
// positive power a single crossing, which is all the solver needs.
func (e *Engine) PowerRequired(v, grade float64) float64 {
	theta := math.Atan(grade)
	sinTheta := math.Sin(theta)
	cosTheta := math.Cos(theta)

	rolling := e.params.Crr * e.params.TotalMass * Gravity * cosTheta * v
	aero := 0.5 * Rho * e.params.CdA * v * v * v
	gravity := e.params.TotalMass * Gravity * sinTheta * v

	return rolling + aero + gravity
}

// SolveVelocity finds the speed (m/s) sustainable at the given power on the
// given grade, by bisection over [0.1, 25] m/s.
//
// Powers outside what the bracket endpoints can absorb converge to the
// nearest boundary instead of raising an error; an estimate clamped to
// 0.1 or 25 m/s is acceptable for this tool.
func (e *Engine) SolveVelocity(watts, grade float64) float64 {
	low := solverVMin
	high := solverVMax

	for i := 0; i < solverIterations; i++ {
		mid := (low + high) / 2
		if e.PowerRequired(mid, grade) < watts {
			low = mid
		} else {
			high = mid
		}
	}

	return (low + high) / 2
}
