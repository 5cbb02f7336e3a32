package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/maximeg-tri/Pacing-tri/internal/domain"
)

// WriteCSV dumps a route result as delimited rows, one per segment, in
// segment order. Bike rows carry the assigned power, run rows the adjusted
// pace; both carry the cumulative series.
func WriteCSV(filepath string, result domain.RouteResult) error {
	f, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"segment", "distance_m", "grade_pct", "speed_kmh", "time_s", "cum_distance_km", "cum_time_min"}
	if result.Sport == domain.SportBike {
		header = append(header, "power_w")
	} else {
		header = append(header, "pace_s_per_km")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, s := range result.Segments {
		row := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.1f", s.Distance),
			fmt.Sprintf("%.2f", s.Grade*100),
			fmt.Sprintf("%.2f", s.Speed*3.6),
			fmt.Sprintf("%.1f", s.Seconds),
			fmt.Sprintf("%.3f", result.CumDistanceKm[i]),
			fmt.Sprintf("%.2f", result.CumTimeMin[i]),
		}
		if result.Sport == domain.SportBike {
			row = append(row, fmt.Sprintf("%.0f", s.Power))
		} else {
			row = append(row, fmt.Sprintf("%.1f", s.Pace))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
