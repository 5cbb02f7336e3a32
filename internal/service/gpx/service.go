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

package gpx

import (
	"fmt"

	"github.com/maximeg-tri/Pacing-tri/internal/domain"
	"github.com/maximeg-tri/Pacing-tri/internal/service/course"

	"github.com/tkrajina/gpxgo/gpx"
)

type Service struct {
	points []domain.TrackPoint
}

func NewService() *Service {
	return &Service{
		points: []domain.TrackPoint{},
	}
}

// LoadAndProcess reads a GPX file into ordered track points. Track segments
// are used when present, route points otherwise. Files without an elevation
// stream yield points at 0 m; the estimate then treats the course as flat.
func (s *Service) LoadAndProcess(filepath string) ([]domain.TrackPoint, error) {
	gpxFile, err := gpx.ParseFile(filepath)
	if err != nil {
		return nil, err
	}

	var points []domain.TrackPoint

	appendPoint := func(p *gpx.GPXPoint) {
		elevation := 0.0
		if p.Elevation.NotNull() {
			elevation = p.Elevation.Value()
		}
		points = append(points, domain.TrackPoint{
			Latitude:  p.Point.Latitude,
			Longitude: p.Point.Longitude,
			Elevation: elevation,
		})
	}

	for _, track := range gpxFile.Tracks {
		for _, segment := range track.Segments {
			for i := range segment.Points {
				appendPoint(&segment.Points[i])
			}
		}
	}

	if len(points) == 0 {
		for _, route := range gpxFile.Routes {
			for i := range route.Points {
				appendPoint(&route.Points[i])
			}
		}
	}

	if len(points) < 2 {
		return nil, fmt.Errorf("the GPX file does not contain valid GPS points")
	}

	s.points = points
	return s.points, nil
}

func (s *Service) Points() []domain.TrackPoint {
	return s.points
}

// TotalDistance returns the great-circle length of the loaded route in meters.
func (s *Service) TotalDistance() float64 {
	var total float64
	for i := 1; i < len(s.points); i++ {
		prev, cur := s.points[i-1], s.points[i]
		total += course.Haversine(prev.Latitude, prev.Longitude, cur.Latitude, cur.Longitude)
	}
	return total
}
