package coords

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
)

// ErrInvalidPoint is returned when a value cannot be read as a 2D point.
var ErrInvalidPoint = errors.New("invalid point")

// Pointer is implemented by every value usable as a position.
type Pointer interface {
	Point() Point
}

// Point is a position in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Point() Point {
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Sub returns p - o as a vector.
func (p Point) Sub(o Point) (dx, dy float64) {
	return p.X - o.X, p.Y - o.Y
}

// Geom returns p as a go-geom XY point.
func (p Point) Geom() *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{p.X, p.Y})
}

// Pair is a raw (x, y) tuple. It is interchangeable with Point.
type Pair [2]float64

func (p Pair) Point() Point {
	return Point{X: p[0], Y: p[1]}
}

// FromGeom reads the X and Y ordinates of a go-geom point. Z and M
// ordinates are ignored.
func FromGeom(p *geom.Point) (Point, error) {
	if p == nil || p.Empty() {
		return Point{}, fmt.Errorf("%w: empty geometry", ErrInvalidPoint)
	}
	return Point{X: p.X(), Y: p.Y()}, nil
}

// FromCoord reads a go-geom coordinate, which must hold exactly two ordinates.
func FromCoord(c geom.Coord) (Point, error) {
	return fromSlice([]float64(c))
}

func fromSlice(v []float64) (Point, error) {
	if len(v) != 2 {
		return Point{}, fmt.Errorf("%w: expected 2 coordinates, got %d", ErrInvalidPoint, len(v))
	}
	return Point{X: v[0], Y: v[1]}, nil
}

// ParsePoint converts any supported point representation to a Point:
// a Pointer (Point, Pair), [2]float64, a two-element []float64 or []any of
// numbers, a geom.Coord, a *geom.Point, or a map with "x" and "y" keys as
// produced by decoding JSON.
func ParsePoint(v any) (Point, error) {
	switch p := v.(type) {
	case Pointer:
		return p.Point(), nil
	case [2]float64:
		return Pair(p).Point(), nil
	case []float64:
		return fromSlice(p)
	case geom.Coord:
		return FromCoord(p)
	case *geom.Point:
		return FromGeom(p)
	case []any:
		if len(p) != 2 {
			return Point{}, fmt.Errorf("%w: expected 2 coordinates, got %d", ErrInvalidPoint, len(p))
		}
		x, okX := toFloat(p[0])
		y, okY := toFloat(p[1])
		if !okX || !okY {
			return Point{}, fmt.Errorf("%w: coordinates must be numbers", ErrInvalidPoint)
		}
		return Point{X: x, Y: y}, nil
	case map[string]any:
		x, okX := toFloat(p["x"])
		y, okY := toFloat(p["y"])
		if !okX || !okY {
			return Point{}, fmt.Errorf("%w: object needs numeric x and y", ErrInvalidPoint)
		}
		return Point{X: x, Y: y}, nil
	}
	return Point{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidPoint, v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// UnmarshalJSON accepts either [x, y] or {"x": .., "y": ..}.
func (p *Point) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParsePoint(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
