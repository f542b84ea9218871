package cheapruler_test

import (
	"encoding/json"
	"errors"
	"testing"

	cheapruler "github.com/apendleton/cheap-ruler"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name string
		want cheapruler.Unit
	}{
		{"kilometers", cheapruler.Kilometers},
		{"miles", cheapruler.Miles},
		{"nauticalmiles", cheapruler.NauticalMiles},
		{"meters", cheapruler.Meters},
		{"metres", cheapruler.Meters},
		{"yards", cheapruler.Yards},
		{"feet", cheapruler.Feet},
		{"inches", cheapruler.Inches},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cheapruler.ParseUnit(tt.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	for _, bad := range []string{
		"", "furlongs", "km",
		"KILOMETERS", " Miles ", "Feet", "Metres", "FEET", " inches ", "kilometres",
	} {
		if _, err := cheapruler.ParseUnit(bad); !errors.Is(err, cheapruler.ErrInvalidArgument) {
			t.Errorf("ParseUnit(%q): expected ErrInvalidArgument, got %v", bad, err)
		}
	}
}

func TestUnit_Multiplier(t *testing.T) {
	tests := []struct {
		unit cheapruler.Unit
		want float64
	}{
		{cheapruler.Kilometers, 1},
		{cheapruler.Meters, 1000},
		{cheapruler.Miles, 1000 / 1609.344},
		{cheapruler.NauticalMiles, 1000.0 / 1852},
		{cheapruler.Yards, 1000 / 0.9144},
		{cheapruler.Feet, 1000 / 0.3048},
		{cheapruler.Inches, 1000 / 0.0254},
	}
	for _, tt := range tests {
		got, err := tt.unit.Multiplier()
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.unit, err)
		}
		if got != tt.want {
			t.Errorf("%v: expected %v, got %v", tt.unit, tt.want, got)
		}
	}

	if _, err := cheapruler.Unit(len(cheapruler.Units())).Multiplier(); !errors.Is(err, cheapruler.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument past the last unit, got %v", err)
	}
}

func TestUnit_JSON(t *testing.T) {
	var cfg struct {
		Units cheapruler.Unit `json:"units"`
	}
	if err := json.Unmarshal([]byte(`{"units":"nauticalmiles"}`), &cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Units != cheapruler.NauticalMiles {
		t.Errorf("expected nauticalmiles, got %v", cfg.Units)
	}

	if err := json.Unmarshal([]byte(`{"units":"leagues"}`), &cfg); !errors.Is(err, cheapruler.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}

	out, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `{"units":"nauticalmiles"}` {
		t.Errorf("unexpected JSON %s", out)
	}
}
