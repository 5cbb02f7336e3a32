package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/maximeg-tri/Pacing-tri/internal/config"
	"github.com/maximeg-tri/Pacing-tri/internal/domain"
)

func main() {
	var (
		gpxFile  = flag.String("gpx", "", "Route GPX file to estimate")
		sport    = flag.String("sport", "bike", "Discipline: bike or run")
		planFile = flag.String("plan", "", "Race plan JSON (multi-leg event); overrides -gpx")

		power   = flag.Float64("power", 0, "Target power in W (bike; default: profile FTP)")
		ftp     = flag.Float64("ftp", 0, "Critical power / FTP in W (default: profile)")
		mass    = flag.Float64("mass", 0, "Total mass rider+bike in kg (default: profile)")
		cda     = flag.Float64("cda", 0, "Aerodynamic drag area in m² (default: profile)")
		crr     = flag.Float64("crr", 0, "Rolling resistance coefficient (default: profile)")
		pace    = flag.Float64("pace", 0, "Base run pace in s/km (default: profile threshold pace)")
		speed   = flag.Float64("speed", 0, "Reference run speed in km/h (alternative to -pace)")
		fatigue = flag.Float64("fatigue", -1, "Run fatigue factor 0.0-0.20 (default: profile)")

		csvOut  = flag.String("csv", "", "Write per-segment rows to this CSV file")
		fitOut  = flag.String("fit", "", "Write the estimate as a FIT course file")
		charts  = flag.Bool("charts", false, "Print ASCII elevation and time charts")
		history = flag.Int("history", 0, "List the last N saved estimates and exit")
	)

	flag.Usage = func() {
		fmt.Printf("pacing-tri - estimate course effort from a recorded route\n\n")
		fmt.Printf("usage: pacing-tri -gpx course.gpx [-sport bike|run]\n\n")
		fmt.Printf("examples:\n")
		fmt.Printf("  pacing-tri -gpx alpe.gpx -power 210 -ftp 250\n")
		fmt.Printf("  pacing-tri -gpx parkrun.gpx -sport run -pace 290 -fatigue 0.08\n")
		fmt.Printf("  pacing-tri -plan raceday.json -charts\n")
		fmt.Printf("  pacing-tri -history 10\n\n")
		fmt.Printf("options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if err := runApp(appOptions{
		gpxFile: *gpxFile, sport: *sport, planFile: *planFile,
		power: *power, ftp: *ftp, mass: *mass, cda: *cda, crr: *crr,
		pace: *pace, speed: *speed, fatigue: *fatigue,
		csvOut: *csvOut, fitOut: *fitOut, charts: *charts, history: *history,
	}); err != nil {
		log.Fatal(err)
	}
}

type appOptions struct {
	gpxFile, sport, planFile string
	power, ftp, mass         float64
	cda, crr                 float64
	pace, speed, fatigue     float64
	csvOut, fitOut           string
	charts                   bool
	history                  int
}

func runApp(opts appOptions) error {
	cfg := config.Load()
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}

	if opts.history > 0 {
		return app.PrintHistory(opts.history)
	}

	if opts.planFile != "" {
		event, err := app.EstimateEvent(opts.planFile)
		if err != nil {
			return err
		}
		app.PrintEvent(event, opts.charts)
		return nil
	}

	if opts.gpxFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	profile, err := app.Profile()
	if err != nil {
		return fmt.Errorf("loading athlete profile: %w", err)
	}

	var estimate *Estimate
	switch opts.sport {
	case "bike":
		params := bikeParams(opts, profile)
		estimate, err = app.EstimateBike(opts.gpxFile, params)
	case "run":
		params := runParams(opts, profile)
		estimate, err = app.EstimateRun(opts.gpxFile, params)
	default:
		return fmt.Errorf("unknown sport %q (want bike or run)", opts.sport)
	}
	if err != nil {
		return err
	}

	app.PrintEstimate(estimate, opts.charts)

	if opts.csvOut != "" {
		if err := writeInOutputDir(cfg.OutputDir, opts.csvOut, func(path string) error {
			return app.ExportCSV(path, estimate)
		}); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
	}
	if opts.fitOut != "" {
		if err := writeInOutputDir(cfg.OutputDir, opts.fitOut, func(path string) error {
			return app.ExportFIT(path, estimate)
		}); err != nil {
			return fmt.Errorf("writing FIT course: %w", err)
		}
	}

	return nil
}

// bikeParams resolves flag overrides against the stored profile.
func bikeParams(opts appOptions, profile domain.Profile) domain.BikeParams {
	params := domain.BikeParams{
		TotalMass:     opts.mass,
		CdA:           opts.cda,
		Crr:           opts.crr,
		TargetPower:   opts.power,
		CriticalPower: opts.ftp,
	}
	if params.TotalMass == 0 {
		params.TotalMass = profile.RiderMass + profile.BikeMass
	}
	if params.CdA == 0 {
		params.CdA = profile.CdA
	}
	if params.Crr == 0 {
		params.Crr = profile.Crr
	}
	if params.CriticalPower == 0 {
		params.CriticalPower = float64(profile.FTP)
	}
	if params.TargetPower == 0 {
		params.TargetPower = params.CriticalPower
	}
	return params
}

func runParams(opts appOptions, profile domain.Profile) domain.RunParams {
	params := domain.RunParams{
		BasePace:      opts.pace,
		SpeedKmh:      opts.speed,
		FatigueFactor: opts.fatigue,
	}
	if params.BasePace == 0 && params.SpeedKmh == 0 {
		params.BasePace = profile.ThresholdPace
	}
	if params.FatigueFactor < 0 {
		params.FatigueFactor = profile.FatigueFactor
	}
	return params
}

// writeInOutputDir resolves relative export paths against the configured
// output directory, creating it on demand.
func writeInOutputDir(outputDir, name string, write func(path string) error) error {
	path := name
	if !filepath.IsAbs(name) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return err
		}
		path = filepath.Join(outputDir, name)
	}

	if err := write(path); err != nil {
		return err
	}

	abs, _ := filepath.Abs(path)
	fmt.Println("Wrote", abs)
	return nil
}
