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

package storage

import (
	"fmt"

	"github.com/maximeg-tri/Pacing-tri/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Service encapsulates all database operations.
// It acts as the persistence layer of the application.
type Service struct {
	db *gorm.DB
}

// NewService opens the database, runs migrations and seeds the default
// athlete profile. The application assumes a single-athlete model.
func NewService(dbPath string) (*Service, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", dbPath, err)
	}

	// AutoMigrate creates or updates tables from the domain models.
	if err := db.AutoMigrate(&domain.Profile{}, &domain.Simulation{}); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	// Seed a default profile on first run so every parameter has a
	// workable value before the athlete configures anything.
	var count int64
	db.Model(&domain.Profile{}).Count(&count)
	if count == 0 {
		db.Create(&domain.Profile{
			Name:          "Athlete",
			RiderMass:     75.0,
			BikeMass:      9.0,
			CdA:           0.32,
			Crr:           0.005,
			FTP:           200,
			ThresholdPace: 330.0, // 5:30/km
			FatigueFactor: 0.05,
			Units:         "metric",
		})
	}

	return &Service{db: db}, nil
}

// ============
// ATHLETE PROFILE
// ============

// GetProfile returns the athlete profile. Single-athlete application, so it
// always returns the first (and only) row.
func (s *Service) GetProfile() (domain.Profile, error) {
	var profile domain.Profile
	result := s.db.First(&profile)
	return profile, result.Error
}

// UpdateProfile updates the existing athlete profile.
// The ID is forced to 1 to ensure the same record is updated.
func (s *Service) UpdateProfile(p domain.Profile) error {
	p.ID = 1
	return s.db.Save(&p).Error
}

// ===========
// SIMULATIONS
// ===========

func (s *Service) SaveSimulation(sim domain.Simulation) error {
	return s.db.Create(&sim).Error
}

// RecentSimulations returns the most recent estimates,
// ordered by creation date (descending).
func (s *Service) RecentSimulations(limit int) ([]domain.Simulation, error) {
	var sims []domain.Simulation
	result := s.db.Order("created_at desc").Limit(limit).Find(&sims)
	return sims, result.Error
}

// TotalDistance returns the distance (km) accumulated across all saved
// simulations.
func (s *Service) TotalDistance() float64 {
	// A pointer is used to handle NULL values returned by SQL aggregation.
	var total *float64

	result := s.db.Model(&domain.Simulation{}).Select("sum(distance_km)").Scan(&total)

	if result.Error != nil {
		return 0
	}

	// If the table is empty, the SUM result will be NULL.
	if total == nil {
		return 0
	}

	return *total
}

func (s *Service) SimulationsByRoute(routeName string) ([]domain.Simulation, error) {
	var sims []domain.Simulation
	err := s.db.Where("route_name = ?", routeName).Order("created_at asc").Find(&sims).Error
	return sims, err
}
