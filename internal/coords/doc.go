// Package coords classifies points by the quadrant they occupy relative to
// a reference point.
//
// Positions can be given as a Point, as a raw Pair, or as a go-geom point or
// coordinate; all forms classify identically:
//
//	c := coords.New(coords.Pt(0, 0))
//	c.Classify(coords.Pair{-1, 1})        // [SECOND]
//	c.ClassifyAny(geom.Coord{0, 1})       // [FIRST, SECOND]
//
// The comparison uses exact equality on the coordinate deltas; there is no
// tolerance for points that are merely close to an axis.
package coords
