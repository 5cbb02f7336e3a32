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

package domain

// RouteService defines how to load and process recorded routes.
// Decoupled: the engines only ever see TrackPoint slices, never file formats.
type RouteService interface {
	LoadAndProcess(filepath string) ([]TrackPoint, error)
	Points() []TrackPoint
	TotalDistance() float64
}

// CourseExporter defines how to export a simulated leg for a head unit
// (virtual partner with predicted timing).
type CourseExporter interface {
	Export(filepath, courseName string, points []TrackPoint, result RouteResult) error
}

// HistoryService is the persistence layer for profiles and past estimates.
type HistoryService interface {
	GetProfile() (Profile, error)
	UpdateProfile(p Profile) error
	SaveSimulation(s Simulation) error
	RecentSimulations(limit int) ([]Simulation, error)
	TotalDistance() float64
}
