// Package quadrant defines the four quadrants of a plane and the ordered,
// duplicate-free set used to report simultaneous membership.
//
// A position that lies exactly on a dividing axis belongs to both adjacent
// quadrants, and the origin belongs to all four. Classifiers therefore return
// a Set rather than a single Quadrant.
//
// # Ordering
//
// Quadrants are ordered by their number (First=1 .. Fourth=4). A Set always
// holds its members in ascending order without duplicates, so two sets with
// the same members compare equal element by element:
//
//	quadrant.First.Join(quadrant.Fourth)   // [FIRST, FOURTH]
//	quadrant.NewSet(quadrant.Fourth, quadrant.First, quadrant.First) // [FIRST, FOURTH]
//
// # Immutability
//
// Set values never share their backing storage with callers. Union, Add and
// Combine return new sets, and Quadrants returns a copy. A Set may be used
// from multiple goroutines without synchronization.
//
// # Combination
//
// Combine accepts only a Quadrant or a Set. Any other operand fails with an
// error wrapping ErrInvalidOperand. Typed code should prefer Union and Add,
// which cannot fail; Combine exists for callers holding decoded, untyped
// values such as JSON-RPC arguments.
package quadrant
