package angle

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Unit selects how a full turn is measured.
type Unit int

const (
	// Degree measures a full circle as 360. It is the zero value and the default.
	Degree Unit = iota
	// Gon (grad) measures a full circle as 400.
	Gon
)

var unitNames = map[Unit]string{
	Degree: "DEGREE",
	Gon:    "GON",
}

var fullCircle = map[Unit]float64{
	Degree: 360,
	Gon:    400,
}

// ErrInvalidUnit is matched by every *UnitError.
var ErrInvalidUnit = errors.New("invalid angle unit")

// UnitError reports a value that names no Unit. Its message is the raw input
// followed by "is not a valid AngleUnit".
type UnitError struct {
	Input any
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("%v is not a valid AngleUnit", e.Input)
}

// Is lets errors.Is match ErrInvalidUnit.
func (e *UnitError) Is(target error) bool {
	return target == ErrInvalidUnit
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Valid reports whether u is Degree or Gon.
func (u Unit) Valid() bool {
	_, ok := fullCircle[u]
	return ok
}

// FullCircle returns the size of a full turn in u: 360 or 400.
func (u Unit) FullCircle() float64 {
	return fullCircle[u]
}

// QuadrantWidth returns a quarter turn in u: 90 or 100.
func (u Unit) QuadrantWidth() float64 {
	return fullCircle[u] / 4
}

// ParseUnit resolves v to a Unit.
//
// A Unit or a value of any integer type is matched against the underlying
// values (Degree=0, Gon=1); a float is accepted when it holds one of those
// integers. A string is
// matched by name regardless of case ("degree", "GON"). Anything else fails
// with a *UnitError carrying v verbatim.
func ParseUnit(v any) (Unit, error) {
	switch u := v.(type) {
	case Unit:
		if u.Valid() {
			return u, nil
		}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		if n, ok := integer(u); ok && n >= int64(Degree) && n <= int64(Gon) {
			return Unit(n), nil
		}
	case float64:
		// JSON numbers decode as float64
		if u == float64(int(u)) && Unit(int(u)).Valid() {
			return Unit(int(u)), nil
		}
	case string:
		for unit, name := range unitNames {
			if strings.ToUpper(u) == name {
				return unit, nil
			}
		}
	}
	return 0, &UnitError{Input: v}
}

// integer returns v as an int64 when it fits.
func integer(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), uint64(n) <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	case uintptr:
		return int64(n), uint64(n) <= math.MaxInt64
	}
	return 0, false
}

// MarshalText encodes the unit by name.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, &UnitError{Input: int(u)}
	}
	return []byte(strings.ToLower(u.String())), nil
}

// UnmarshalText accepts any input ParseUnit accepts as a string.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
