package quadrant

import (
	"errors"
	"fmt"
)

// Quadrant is one of the four regions of a plane split by two perpendicular axes.
type Quadrant int

const (
	First  Quadrant = 1 // x > 0, y > 0
	Second Quadrant = 2 // x < 0, y > 0
	Third  Quadrant = 3 // x < 0, y < 0
	Fourth Quadrant = 4 // x > 0, y < 0
)

// All lists the quadrants in ascending order.
var All = [4]Quadrant{First, Second, Third, Fourth}

var quadrantNames = [4]string{"FIRST", "SECOND", "THIRD", "FOURTH"}

// ErrInvalidOperand is returned when something other than a Quadrant or a Set
// is combined with a quadrant result.
var ErrInvalidOperand = errors.New("only Quadrant or Set operands can be combined")

// Classifier is implemented by anything that maps an input to quadrant membership.
type Classifier[T any] interface {
	Classify(input T) (Set, error)
}

// Valid reports whether q is one of First..Fourth.
func (q Quadrant) Valid() bool {
	return q >= First && q <= Fourth
}

func (q Quadrant) String() string {
	if !q.Valid() {
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
	return quadrantNames[q-1]
}

// Compare returns -1, 0 or +1 depending on whether q orders before, equal to
// or after other.
func (q Quadrant) Compare(other Quadrant) int {
	switch {
	case q < other:
		return -1
	case q > other:
		return 1
	}
	return 0
}

// Join returns the set holding q and others.
func (q Quadrant) Join(others ...Quadrant) Set {
	return NewSet(append([]Quadrant{q}, others...)...)
}

// Combine treats q as a singleton set and combines it with operand.
// See Set.Combine.
func (q Quadrant) Combine(operand any) (Set, error) {
	return NewSet(q).Combine(operand)
}
