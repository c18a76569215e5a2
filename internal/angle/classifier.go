package angle

import (
	"math"

	"github.com/ironsheep/quadrant-tools-mcp/internal/quadrant"
)

// Angle is a planar angle together with the unit it is measured in.
// The zero Unit is Degree.
type Angle struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// Degrees returns an angle of v degrees.
func Degrees(v float64) Angle {
	return Angle{Value: v, Unit: Degree}
}

// Gons returns an angle of v gon.
func Gons(v float64) Angle {
	return Angle{Value: v, Unit: Gon}
}

// Normalized returns the angle folded into [0, full circle).
func (a Angle) Normalized() float64 {
	return Normalize(a.Value, a.Unit)
}

// Normalize folds value into [0, full circle) for unit u.
//
// A negative value is first reflected to full - (|value| mod full), then any
// value is reduced modulo the full circle. Non-finite input yields NaN.
func Normalize(value float64, u Unit) float64 {
	full := u.FullCircle()
	if value < 0 {
		value = full - math.Mod(math.Abs(value), full)
	}
	return math.Mod(value, full)
}

// Classifier maps angles to quadrants. Quadrant one starts at 0 and runs
// counter-clockwise; each quadrant spans a quarter turn.
//
// Boundaries are compared with exact equality: 90 degrees is on the boundary,
// 89.99999 is not. The zero value is ready to use and safe for concurrent use.
type Classifier struct{}

var _ quadrant.Classifier[Angle] = Classifier{}

// NewClassifier returns an angle classifier.
func NewClassifier() Classifier {
	return Classifier{}
}

// Classify returns the quadrants a falls in. An angle on a quadrant boundary
// belongs to both neighbours; 0 belongs to FIRST and FOURTH.
//
// The only error is a *UnitError for a Unit other than Degree or Gon.
func (Classifier) Classify(a Angle) (quadrant.Set, error) {
	if !a.Unit.Valid() {
		return quadrant.Set{}, &UnitError{Input: a.Unit}
	}

	w := a.Unit.QuadrantWidth()
	deg := a.Normalized()

	switch {
	case deg == 0:
		return quadrant.First.Join(quadrant.Fourth), nil
	case deg < w:
		return quadrant.NewSet(quadrant.First), nil
	case deg == w:
		return quadrant.First.Join(quadrant.Second), nil
	case deg < 2*w:
		return quadrant.NewSet(quadrant.Second), nil
	case deg == 2*w:
		return quadrant.Second.Join(quadrant.Third), nil
	case deg < 3*w:
		return quadrant.NewSet(quadrant.Third), nil
	case deg == 3*w:
		return quadrant.Third.Join(quadrant.Fourth), nil
	default:
		return quadrant.NewSet(quadrant.Fourth), nil
	}
}

// ClassifyUnit classifies value measured in unit, where unit is anything
// ParseUnit accepts. A nil unit means Degree.
func (c Classifier) ClassifyUnit(value float64, unit any) (quadrant.Set, error) {
	u := Degree
	if unit != nil {
		var err error
		if u, err = ParseUnit(unit); err != nil {
			return quadrant.Set{}, err
		}
	}
	return c.Classify(Angle{Value: value, Unit: u})
}
