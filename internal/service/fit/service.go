package fit

import (
	"fmt"
	"os"
	"time"

	"github.com/maximeg-tri/Pacing-tri/internal/domain"

	"github.com/muktihari/fit/encoder"
	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/profile/typedef"
	"github.com/muktihari/fit/proto"
)

// Constant for converting Degrees to Semicircles (FIT Standard)
const degreesToSemicircles = 2147483648.0 / 180.0

// Service writes a simulated leg as a FIT course file. Head units play the
// course back as a virtual partner riding the predicted pace.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Export writes the course to disk. points are the route samples and result
// the engine output for the same route, so len(points) == len(result.Segments)+1.
// Record timestamps are synthesized from the predicted per-segment times.
func (s *Service) Export(filepath, courseName string, points []domain.TrackPoint, result domain.RouteResult) error {
	if len(points) != len(result.Segments)+1 {
		return fmt.Errorf("route has %d points but result covers %d segments", len(points), len(result.Segments))
	}

	f, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := encoder.New(f)
	fit := proto.FIT{}

	startTime := time.Now()

	// File header (File ID)
	fileIdMesg := mesgdef.FileId{
		Type:         typedef.FileCourse,
		Manufacturer: typedef.ManufacturerDevelopment,
		Product:      0,
		SerialNumber: 12345,
		TimeCreated:  startTime,
	}
	fit.Messages = append(fit.Messages, fileIdMesg.ToMesg(nil))

	sport := typedef.SportCycling
	if result.Sport == domain.SportRun {
		sport = typedef.SportRunning
	}

	courseMesg := mesgdef.Course{
		Name:  courseName,
		Sport: sport,
	}
	fit.Messages = append(fit.Messages, courseMesg.ToMesg(nil))

	// Timer start, then one record per track point with the predicted
	// elapsed time and cumulative distance at that point.
	startEvent := mesgdef.Event{
		Timestamp: startTime,
		Event:     typedef.EventTimer,
		EventType: typedef.EventTypeStart,
	}
	fit.Messages = append(fit.Messages, startEvent.ToMesg(nil))

	var elapsed, distMeters float64
	for i, p := range points {
		if i > 0 {
			seg := result.Segments[i-1]
			elapsed += seg.Seconds
			distMeters += seg.Distance
		}

		// Lat/Lon: Degrees -> Semicircles
		lat := int32(p.Latitude * degreesToSemicircles)
		lon := int32(p.Longitude * degreesToSemicircles)

		// Distance: Meters -> cm; Altitude: (Meters + 500) * 5.
		// The 500m offset allows negative elevations without breaking uint32.
		record := &mesgdef.Record{
			Timestamp:        startTime.Add(time.Duration(elapsed * float64(time.Second))),
			PositionLat:      lat,
			PositionLong:     lon,
			Distance:         uint32(distMeters * 100),
			EnhancedAltitude: uint32((p.Elevation + 500.0) * 5.0),
		}
		if i > 0 {
			// Speed: m/s -> mm/s
			record.EnhancedSpeed = uint32(result.Segments[i-1].Speed * 1000)
		}
		fit.Messages = append(fit.Messages, record.ToMesg(nil))
	}

	stopEvent := mesgdef.Event{
		Timestamp: startTime.Add(time.Duration(elapsed * float64(time.Second))),
		Event:     typedef.EventTimer,
		EventType: typedef.EventTypeStopAll,
	}
	fit.Messages = append(fit.Messages, stopEvent.ToMesg(nil))

	// Lap message covering the whole course
	lapMesg := mesgdef.Lap{
		Timestamp:        startTime.Add(time.Duration(elapsed * float64(time.Second))),
		StartTime:        startTime,
		TotalElapsedTime: uint32(elapsed * 1000), // ms
		TotalTimerTime:   uint32(elapsed * 1000), // ms
		TotalDistance:    uint32(distMeters * 100),
		Event:            typedef.EventLap,
		EventType:        typedef.EventTypeStop,
	}
	fit.Messages = append(fit.Messages, lapMesg.ToMesg(nil))

	if err := enc.Encode(&fit); err != nil {
		return err
	}

	return nil
}
