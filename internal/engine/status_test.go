package engine

import (
	"testing"

	"AgriPulse/internal/domain/models"
)

func TestClassifySoilMoistureLiteralThresholds(t *testing.T) {
	e := New(WithSeed(1))
	p := DefaultProfiles()[TypeSoilMoisture]

	cases := []struct {
		value float64
		want  models.Status
	}{
		{20, models.StatusCritical},
		{90, models.StatusCritical},
		{24.999, models.StatusCritical},
		{30, models.StatusWarning},
		{75, models.StatusWarning},
		{25, models.StatusWarning},
		{85, models.StatusWarning},
		{50, models.StatusNormal},
		{40, models.StatusNormal},
		{70, models.StatusNormal},
	}
	for _, tc := range cases {
		if got := e.classify(TypeSoilMoisture, p, tc.value); got != tc.want {
			t.Fatalf("soil_moisture %v: got %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestClassifyGenericThresholds(t *testing.T) {
	e := New(WithSeed(1))
	// air_temperature: critical outside [2,40], warning below 2*1.2=2.4 or
	// above 40*0.8=32.
	p := DefaultProfiles()[TypeAirTemperature]

	cases := []struct {
		value float64
		want  models.Status
	}{
		{1, models.StatusCritical},
		{41, models.StatusCritical},
		{2.1, models.StatusWarning},
		{33, models.StatusWarning},
		{20, models.StatusNormal},
		{30, models.StatusNormal},
	}
	for _, tc := range cases {
		if got := e.classify(TypeAirTemperature, p, tc.value); got != tc.want {
			t.Fatalf("air_temperature %v: got %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestClassifyIgnoresProfileForSoilMoisture(t *testing.T) {
	e := New(WithSeed(1))
	// Shifted critical bounds must not change soil_moisture's tiers.
	p := TypeProfile{Min: 0, Max: 100, CriticalMin: 0, CriticalMax: 100, Unit: "%"}

	if got := e.classify(TypeSoilMoisture, p, 20); got != models.StatusCritical {
		t.Fatalf("got %q, want critical regardless of profile bounds", got)
	}
	if got := e.classify(TypeSoilMoisture, p, 50); got != models.StatusNormal {
		t.Fatalf("got %q, want normal", got)
	}
}
