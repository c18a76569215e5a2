// Package plot renders quadrant results as PNG images.
//
// RenderSet draws the four quadrants of an angle diagram around the canvas
// centre and shades the quadrants of a result set. RenderDistribution draws
// a scatter of positions around a reference point, with axes through the
// reference and the number of positions per quadrant written in each quarter.
//
// # Coordinate System
//
// Canvas pixels use the image convention (origin top-left, Y downward). Plot
// data uses the mathematical convention (Y upward), so quadrant FIRST is the
// top-right quarter of the canvas and FOURTH the bottom-right.
//
// # Output
//
// Both renderers return a Result holding the PNG as base64, ready to embed in
// a JSON response. Result.Save writes the image to disk under a unique name.
package plot
