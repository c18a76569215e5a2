package coords

import (
	"fmt"

	"github.com/ironsheep/quadrant-tools-mcp/internal/quadrant"
)

// Classifier determines in which quadrant around a fixed reference point
// ("here") other points lie. The reference never changes after construction,
// so a Classifier is safe for concurrent use.
type Classifier struct {
	here Point
}

var _ quadrant.Classifier[Pointer] = (*Classifier)(nil)

// New returns a classifier centred on here.
func New(here Pointer) *Classifier {
	return &Classifier{here: here.Point()}
}

// NewFrom is New for any representation ParsePoint accepts.
func NewFrom(here any) (*Classifier, error) {
	p, err := ParsePoint(here)
	if err != nil {
		return nil, fmt.Errorf("reference point: %w", err)
	}
	return New(p), nil
}

// Here returns the reference point.
func (c *Classifier) Here() Point {
	return c.here
}

// Delta returns there - here.
func (c *Classifier) Delta(there Pointer) (dx, dy float64) {
	return there.Point().Sub(c.here)
}

// Classify returns the quadrants there occupies relative to here, comparing
// the coordinate deltas exactly.
//
// A point on an axis belongs to both neighbouring quadrants and a point equal
// to here belongs to all four, with one exception: a point straight along the
// positive x axis (dx > 0, dy == 0) is reported as FOURTH only.
func (c *Classifier) Classify(there Pointer) (quadrant.Set, error) {
	if there == nil {
		return quadrant.Set{}, fmt.Errorf("%w: nil", ErrInvalidPoint)
	}
	dx, dy := c.Delta(there)

	switch {
	case dx == 0 && dy == 0:
		return quadrant.NewSet(quadrant.All[:]...), nil
	case dx > 0 && dy > 0:
		return quadrant.NewSet(quadrant.First), nil
	case dx == 0 && dy > 0:
		return quadrant.First.Join(quadrant.Second), nil
	case dx < 0 && dy > 0:
		return quadrant.NewSet(quadrant.Second), nil
	case dx < 0 && dy == 0:
		return quadrant.Second.Join(quadrant.Third), nil
	case dx < 0 && dy < 0:
		return quadrant.NewSet(quadrant.Third), nil
	case dx == 0 && dy < 0:
		return quadrant.Third.Join(quadrant.Fourth), nil
	default:
		// TODO: dx > 0 && dy == 0 lands here; decide whether it should be [FIRST, FOURTH].
		return quadrant.NewSet(quadrant.Fourth), nil
	}
}

// ClassifyAny is Classify for any representation ParsePoint accepts.
func (c *Classifier) ClassifyAny(there any) (quadrant.Set, error) {
	p, err := ParsePoint(there)
	if err != nil {
		return quadrant.Set{}, err
	}
	return c.Classify(p)
}

// ClassifyAll classifies each point in order.
func (c *Classifier) ClassifyAll(points []Pointer) ([]quadrant.Set, error) {
	out := make([]quadrant.Set, len(points))
	for i, p := range points {
		set, err := c.Classify(p)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = set
	}
	return out, nil
}
