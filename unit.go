package cheapruler

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a ruler is requested with an unknown unit.
var ErrInvalidArgument = errors.New("invalid argument")

// Unit selects the linear unit a Ruler measures in. The zero value is Kilometers.
type Unit int

const (
	Kilometers Unit = iota
	Miles
	NauticalMiles
	Meters
	Yards
	Feet
	Inches
)

// Aliases for the British spellings.
const (
	Kilometres = Kilometers
	Metres     = Meters
)

var unitNames = [...]string{
	Kilometers:    "kilometers",
	Miles:         "miles",
	NauticalMiles: "nauticalmiles",
	Meters:        "meters",
	Yards:         "yards",
	Feet:          "feet",
	Inches:        "inches",
}

// Units returns every supported unit in declaration order.
func Units() []Unit {
	return []Unit{Kilometers, Miles, NauticalMiles, Meters, Yards, Feet, Inches}
}

// ParseUnit maps a unit name to its Unit. Names must match exactly;
// "metres" is the only alternative spelling.
func ParseUnit(name string) (Unit, error) {
	switch name {
	case "kilometers":
		return Kilometers, nil
	case "miles":
		return Miles, nil
	case "nauticalmiles":
		return NauticalMiles, nil
	case "meters", "metres":
		return Meters, nil
	case "yards":
		return Yards, nil
	case "feet":
		return Feet, nil
	case "inches":
		return Inches, nil
	}
	return 0, fmt.Errorf("unknown unit %q: %w", name, ErrInvalidArgument)
}

// Multiplier returns how many of u make up one kilometer.
func (u Unit) Multiplier() (float64, error) {
	switch u {
	case Kilometers:
		return 1, nil
	case Miles:
		return 1000 / 1609.344, nil
	case NauticalMiles:
		return 1000.0 / 1852, nil
	case Meters:
		return 1000, nil
	case Yards:
		return 1000 / 0.9144, nil
	case Feet:
		return 1000 / 0.3048, nil
	case Inches:
		return 1000 / 0.0254, nil
	}
	return 0, fmt.Errorf("unit %d: %w", int(u), ErrInvalidArgument)
}

func (u Unit) String() string {
	if u >= 0 && int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if _, err := u.Multiplier(); err != nil {
		return nil, err
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
