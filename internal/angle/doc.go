// Package angle classifies planar angles into quadrants.
//
// Angles are measured in degrees (full circle 360) or gon (full circle 400).
// Before classification an angle is normalized into [0, full circle), so any
// two angles a full turn apart classify identically, and -a classifies like
// full-a.
//
// Units may be given as a Unit, as its underlying integer value, or by name in
// any letter case:
//
//	c := angle.NewClassifier()
//	c.Classify(angle.Degrees(90))     // [FIRST, SECOND]
//	c.ClassifyUnit(305, "gon")        // [FOURTH]
//	c.ClassifyUnit(45, "abc")         // error: "abc is not a valid AngleUnit"
package angle
