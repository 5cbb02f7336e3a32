package domain

import (
	"errors"
	"math"
	"testing"
)

func TestBikeParamsValidate(t *testing.T) {
	valid := BikeParams{TotalMass: 84, CdA: 0.32, Crr: 0.005, TargetPower: 200, CriticalPower: 250}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	tests := []struct {
		name   string
		params BikeParams
	}{
		{"zero mass", BikeParams{CdA: 0.32, Crr: 0.005}},
		{"negative mass", BikeParams{TotalMass: -70, CdA: 0.32, Crr: 0.005}},
		{"zero CdA", BikeParams{TotalMass: 84, Crr: 0.005}},
		{"negative Crr", BikeParams{TotalMass: 84, CdA: 0.32, Crr: -0.01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.params.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestRunParamsValidate(t *testing.T) {
	if err := (RunParams{BasePace: 300}).Validate(); err != nil {
		t.Errorf("base pace only: Validate() = %v, want nil", err)
	}
	if err := (RunParams{SpeedKmh: 12}).Validate(); err != nil {
		t.Errorf("speed only: Validate() = %v, want nil", err)
	}

	if err := (RunParams{}).Validate(); !errors.Is(err, ErrPaceAmbiguous) {
		t.Errorf("neither source: error = %v, want ErrPaceAmbiguous", err)
	}
	if err := (RunParams{BasePace: 300, SpeedKmh: 12}).Validate(); !errors.Is(err, ErrPaceAmbiguous) {
		t.Errorf("both sources: error = %v, want ErrPaceAmbiguous", err)
	}

	if err := (RunParams{BasePace: 300, FatigueFactor: 0.21}).Validate(); err == nil {
		t.Error("fatigue above 0.20 should fail")
	}
	if err := (RunParams{BasePace: 300, FatigueFactor: -0.01}).Validate(); err == nil {
		t.Error("negative fatigue should fail")
	}
	if err := (RunParams{BasePace: 300, FatigueFactor: 0.20}).Validate(); err != nil {
		t.Errorf("fatigue exactly 0.20 is allowed, got %v", err)
	}
}

func TestResolveBasePace(t *testing.T) {
	if got := (RunParams{BasePace: 280}).ResolveBasePace(); got != 280 {
		t.Errorf("ResolveBasePace = %v, want 280", got)
	}

	// 12 km/h → 300 s/km
	if got := (RunParams{SpeedKmh: 12}).ResolveBasePace(); math.Abs(got-300) > 1e-12 {
		t.Errorf("ResolveBasePace = %v, want 300", got)
	}
}
