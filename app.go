// Pacing-tri - Course effort estimator for triathlon pacing.
// Copyright (C) 2026  Maxime Girard
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/maximeg-tri/Pacing-tri/internal/config"
	"github.com/maximeg-tri/Pacing-tri/internal/domain"
	"github.com/maximeg-tri/Pacing-tri/internal/service/course"
	"github.com/maximeg-tri/Pacing-tri/internal/service/export"
	"github.com/maximeg-tri/Pacing-tri/internal/service/fit"
	"github.com/maximeg-tri/Pacing-tri/internal/service/gpx"
	"github.com/maximeg-tri/Pacing-tri/internal/service/plan"
	"github.com/maximeg-tri/Pacing-tri/internal/service/run"
	"github.com/maximeg-tri/Pacing-tri/internal/service/sim"
	"github.com/maximeg-tri/Pacing-tri/internal/service/storage"

	"github.com/google/uuid"
	"github.com/guptarohit/asciigraph"
)

// App wires the services together and carries one estimation session.
type App struct {
	cfg            config.Config
	gpxService     *gpx.Service
	fitService     *fit.Service
	planService    *plan.Service
	storageService *storage.Service
}

// Estimate is one computed leg: the loaded route plus the engine output.
type Estimate struct {
	RouteName string
	Points    []domain.TrackPoint
	Result    domain.RouteResult
	Summary   domain.Summary
}

// NewApp initializes all core services and dependencies.
func NewApp(cfg config.Config) (*App, error) {
	store, err := storage.NewService(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:            cfg,
		gpxService:     gpx.NewService(),
		fitService:     fit.NewService(),
		planService:    plan.NewService(),
		storageService: store,
	}, nil
}

// Profile returns the stored athlete profile.
func (a *App) Profile() (domain.Profile, error) {
	return a.storageService.GetProfile()
}

// EstimateBike simulates the bike leg of a route under the given effort
// policy and records the estimate in the history.
func (a *App) EstimateBike(gpxPath string, params domain.BikeParams) (*Estimate, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	points, err := a.gpxService.LoadAndProcess(gpxPath)
	if err != nil {
		return nil, err
	}

	segments, err := course.Segments(points)
	if err != nil {
		return nil, err
	}

	results, err := sim.Pace(segments, params)
	if err != nil {
		return nil, err
	}

	result := course.BuildRouteResult(domain.SportBike, results)
	summary := course.Summarize(result, params.CriticalPower)

	estimate := &Estimate{
		RouteName: routeName(gpxPath),
		Points:    points,
		Result:    result,
		Summary:   summary,
	}
	a.saveEstimate(estimate)
	return estimate, nil
}

// EstimateRun simulates the run leg of a route and records the estimate.
func (a *App) EstimateRun(gpxPath string, params domain.RunParams) (*Estimate, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	points, err := a.gpxService.LoadAndProcess(gpxPath)
	if err != nil {
		return nil, err
	}

	segments, err := course.Segments(points)
	if err != nil {
		return nil, err
	}

	results, err := run.Pace(segments, params)
	if err != nil {
		return nil, err
	}

	result := course.BuildRouteResult(domain.SportRun, results)
	summary := course.Summarize(result, 0)

	estimate := &Estimate{
		RouteName: routeName(gpxPath),
		Points:    points,
		Result:    result,
		Summary:   summary,
	}
	a.saveEstimate(estimate)
	return estimate, nil
}

// EstimateEvent simulates every leg of a race plan in order.
func (a *App) EstimateEvent(planPath string) (*plan.EventResult, error) {
	p, err := plan.Load(planPath)
	if err != nil {
		return nil, err
	}

	profile, err := a.Profile()
	if err != nil {
		return nil, err
	}

	return a.planService.Simulate(p, profile)
}

// ExportCSV writes the per-segment rows of an estimate.
func (a *App) ExportCSV(filepath string, e *Estimate) error {
	return export.WriteCSV(filepath, e.Result)
}

// ExportFIT writes the estimate as a FIT course (virtual partner).
func (a *App) ExportFIT(filepath string, e *Estimate) error {
	return a.fitService.Export(filepath, e.RouteName, e.Points, e.Result)
}

// History returns the most recent saved estimates.
func (a *App) History(limit int) ([]domain.Simulation, error) {
	return a.storageService.RecentSimulations(limit)
}

// saveEstimate records the estimate in the local history. History is a
// convenience, so failures are reported but never abort an estimation.
func (a *App) saveEstimate(e *Estimate) {
	record := domain.Simulation{
		ID:            uuid.NewString(),
		RouteName:     e.RouteName,
		Sport:         string(e.Summary.Sport),
		DistanceKm:    e.Summary.DistanceKm,
		TimeMinutes:   e.Summary.TimeHours * 60.0,
		ElevationGain: course.ElevationGain(e.Points),
		CreatedAt:     time.Now(),
	}
	if e.Summary.Sport == domain.SportBike {
		record.AvgPower = e.Summary.AvgPower
		record.IntensityFactor = e.Summary.IntensityFactor
		record.TSS = e.Summary.TSS
	} else if e.Summary.AvgPaceMinKm != nil {
		record.AvgPaceMinKm = *e.Summary.AvgPaceMinKm
	}

	if err := a.storageService.SaveSimulation(record); err != nil {
		fmt.Println("Database save error:", err)
	}
}

// ==========
// CLI OUTPUT
// ==========

// PrintEstimate renders the per-segment table, summary and optional charts.
func (a *App) PrintEstimate(e *Estimate, withCharts bool) {
	fmt.Printf("\nRoute: %s (%s)\n", e.RouteName, e.Summary.Sport)
	fmt.Printf("%-4s %10s %8s %10s %10s %10s", "#", "dist (m)", "grade", "speed", "time", "cum (km)")
	if e.Summary.Sport == domain.SportBike {
		fmt.Printf(" %10s\n", "power (W)")
	} else {
		fmt.Printf(" %10s\n", "pace")
	}

	for i, s := range e.Result.Segments {
		fmt.Printf("%-4d %10.0f %7.1f%% %7.1fkm/h %10s %10.2f",
			i+1, s.Distance, s.Grade*100, s.Speed*3.6,
			formatSeconds(s.Seconds), e.Result.CumDistanceKm[i])
		if e.Summary.Sport == domain.SportBike {
			fmt.Printf(" %10.0f\n", s.Power)
		} else {
			fmt.Printf(" %10s\n", formatPaceSec(s.Pace))
		}
	}

	a.PrintSummary(e.Summary)

	if withCharts {
		fmt.Println("\nElevation (m) by point:")
		fmt.Println(asciigraph.Plot(elevationSeries(e.Points),
			asciigraph.Height(8), asciigraph.Width(60), asciigraph.Precision(0)))

		fmt.Println("\nCumulative time (min) by segment:")
		fmt.Println(asciigraph.Plot(e.Result.CumTimeMin,
			asciigraph.Height(8), asciigraph.Width(60), asciigraph.Precision(1)))
	}
}

// PrintSummary renders the aggregate statistics of one leg.
func (a *App) PrintSummary(s domain.Summary) {
	fmt.Printf("\nTotal:  %.2f km in %s\n", s.DistanceKm, formatSeconds(s.Seconds()))
	if s.Sport == domain.SportBike {
		fmt.Printf("Avg power: %.0f W   IF: %.2f   TSS: %.1f\n",
			s.AvgPower, s.IntensityFactor, s.TSS)
	} else if s.AvgPaceMinKm != nil {
		fmt.Printf("Avg pace: %s /km\n", formatPaceMin(*s.AvgPaceMinKm))
	}
}

// PrintEvent renders a multi-leg simulation.
func (a *App) PrintEvent(ev *plan.EventResult, withCharts bool) {
	if ev.Name != "" {
		fmt.Printf("\n=== %s ===\n", ev.Name)
	}
	for i, leg := range ev.Legs {
		fmt.Printf("\n--- Leg %d: %s ---", i+1, leg.Leg.Sport)
		a.PrintEstimate(&Estimate{
			RouteName: routeName(leg.Leg.Route),
			Points:    leg.Points,
			Result:    leg.Result,
			Summary:   leg.Summary,
		}, withCharts)
	}
	fmt.Printf("\n=== Event total: %.2f km in %s ===\n",
		ev.DistanceKm, formatSeconds(ev.TimeHours*3600.0))
}

// PrintHistory lists recent saved estimates plus the lifetime distance.
func (a *App) PrintHistory(limit int) error {
	sims, err := a.History(limit)
	if err != nil {
		return err
	}

	fmt.Printf("%-19s %-6s %-24s %9s %9s %7s %9s\n",
		"date", "sport", "route", "km", "time", "TSS", "pace")
	for _, s := range sims {
		pace := "-"
		if s.AvgPaceMinKm > 0 {
			pace = formatPaceMin(s.AvgPaceMinKm)
		}
		tss := "-"
		if s.TSS > 0 {
			tss = fmt.Sprintf("%.1f", s.TSS)
		}
		fmt.Printf("%-19s %-6s %-24s %9.2f %9s %7s %9s\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.Sport, truncate(s.RouteName, 24),
			s.DistanceKm, formatSeconds(s.TimeMinutes*60.0), tss, pace)
	}
	fmt.Printf("\nLifetime simulated distance: %.1f km\n", a.storageService.TotalDistance())
	return nil
}

// =======
// HELPERS
// =======

func routeName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func elevationSeries(points []domain.TrackPoint) []float64 {
	series := make([]float64, len(points))
	for i, p := range points {
		series[i] = p.Elevation
	}
	return series
}

// formatSeconds renders a duration like 1h04m38s.
func formatSeconds(sec float64) string {
	d := time.Duration(sec * float64(time.Second)).Round(time.Second)
	return d.String()
}

// formatPaceSec renders a pace in s/km as m:ss.
func formatPaceSec(secPerKm float64) string {
	return formatPaceMin(secPerKm / 60.0)
}

// formatPaceMin renders a pace in min/km as m:ss.
func formatPaceMin(minPerKm float64) string {
	totalSec := int(minPerKm*60.0 + 0.5)
	return fmt.Sprintf("%d:%02d", totalSec/60, totalSec%60)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
