package quadrant

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Set is an ordered, duplicate-free collection of quadrants.
//
// The zero value is an empty set. Classifiers never return an empty set.
type Set struct {
	members []Quadrant
}

// NewSet returns the set of the given quadrants, sorted ascending with
// duplicates removed.
func NewSet(qs ...Quadrant) Set {
	if len(qs) == 0 {
		return Set{}
	}

	members := slices.Clone(qs)
	slices.Sort(members)
	return Set{members: slices.Compact(members)}
}

// Quadrants returns the members in ascending order.
func (s Set) Quadrants() []Quadrant {
	out := make([]Quadrant, len(s.members))
	copy(out, s.members)
	return out
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.members)
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	return len(s.members) == 0
}

// Contains reports whether q is a member.
func (s Set) Contains(q Quadrant) bool {
	_, found := slices.BinarySearch(s.members, q)
	return found
}

// Equal reports whether both sets hold the same quadrants.
func (s Set) Equal(other Set) bool {
	if len(s.members) != len(other.members) {
		return false
	}
	for i := range s.members {
		if s.members[i] != other.members[i] {
			return false
		}
	}
	return true
}

// Add returns the union of s and the given quadrants.
func (s Set) Add(qs ...Quadrant) Set {
	return NewSet(append(s.Quadrants(), qs...)...)
}

// Union returns the union of s and others.
func (s Set) Union(others ...Set) Set {
	all := s.Quadrants()
	for _, o := range others {
		all = append(all, o.members...)
	}
	return NewSet(all...)
}

// Combine returns the union of s with operand, which must be a Quadrant or a
// Set (pointers to either are accepted too). Any other operand, or a Quadrant
// outside First..Fourth, yields an error wrapping ErrInvalidOperand.
func (s Set) Combine(operand any) (Set, error) {
	switch v := operand.(type) {
	case Quadrant:
		if !v.Valid() {
			return Set{}, fmt.Errorf("%w: %v is not a quadrant", ErrInvalidOperand, v)
		}
		return s.Add(v), nil
	case *Quadrant:
		if v != nil {
			return s.Combine(*v)
		}
	case Set:
		return s.Union(v), nil
	case *Set:
		if v != nil {
			return s.Union(*v), nil
		}
	}
	return Set{}, fmt.Errorf("%w, got %T", ErrInvalidOperand, operand)
}

// String formats the set as "[FIRST, FOURTH]".
func (s Set) String() string {
	names := make([]string, len(s.members))
	for i, q := range s.members {
		names[i] = q.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// Numbers returns the members as plain integers, e.g. [1 4].
func (s Set) Numbers() []int {
	out := make([]int, len(s.members))
	for i, q := range s.members {
		out[i] = int(q)
	}
	return out
}

// Labels returns the member names, e.g. ["FIRST" "FOURTH"].
func (s Set) Labels() []string {
	out := make([]string, len(s.members))
	for i, q := range s.members {
		out[i] = q.String()
	}
	return out
}

// MarshalJSON encodes the set as an array of quadrant numbers.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Numbers())
}

// UnmarshalJSON decodes an array of quadrant numbers, normalizing the order.
func (s *Set) UnmarshalJSON(data []byte) error {
	var nums []int
	if err := json.Unmarshal(data, &nums); err != nil {
		return err
	}
	qs := make([]Quadrant, len(nums))
	for i, n := range nums {
		q := Quadrant(n)
		if !q.Valid() {
			return fmt.Errorf("invalid quadrant %d", n)
		}
		qs[i] = q
	}
	*s = NewSet(qs...)
	return nil
}
