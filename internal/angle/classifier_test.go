package angle

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/quadrant-tools-mcp/internal/quadrant"
)

const (
	q1 = quadrant.First
	q2 = quadrant.Second
	q3 = quadrant.Third
	q4 = quadrant.Fourth
)

func TestClassifyUnit(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  any
		want  []quadrant.Quadrant
	}{
		// Degree
		{"deg 0", 0, Degree, []quadrant.Quadrant{q1, q4}},
		{"deg 0 by name", 0, "degree", []quadrant.Quadrant{q1, q4}},
		{"deg just below 90", 89.99999, Degree, []quadrant.Quadrant{q1}},
		{"deg 90", 90, Degree, []quadrant.Quadrant{q1, q2}},
		{"deg 95", 95, Degree, []quadrant.Quadrant{q2}},
		{"deg 180", 180, Degree, []quadrant.Quadrant{q2, q3}},
		{"deg 185", 185, Degree, []quadrant.Quadrant{q3}},
		{"deg 270", 270, Degree, []quadrant.Quadrant{q3, q4}},
		{"deg 275", 275, Degree, []quadrant.Quadrant{q4}},
		{"deg 725", 725, Degree, []quadrant.Quadrant{q1}},
		{"deg 900", 900, Degree, []quadrant.Quadrant{q2, q3}},
		{"deg -45", -45, Degree, []quadrant.Quadrant{q4}},
		{"deg -90", -90, Degree, []quadrant.Quadrant{q3, q4}},
		{"deg -725", -725, Degree, []quadrant.Quadrant{q4}},
		{"deg -900", -900, Degree, []quadrant.Quadrant{q2, q3}},
		// Gon
		{"gon 0", 0, Gon, []quadrant.Quadrant{q1, q4}},
		{"gon 0 by name", 0, "gon", []quadrant.Quadrant{q1, q4}},
		{"gon just below 100", 99.99999, Gon, []quadrant.Quadrant{q1}},
		{"gon 100", 100, Gon, []quadrant.Quadrant{q1, q2}},
		{"gon 105", 105, Gon, []quadrant.Quadrant{q2}},
		{"gon 200", 200, Gon, []quadrant.Quadrant{q2, q3}},
		{"gon 205", 205, Gon, []quadrant.Quadrant{q3}},
		{"gon 300", 300, Gon, []quadrant.Quadrant{q3, q4}},
		{"gon 305", 305, Gon, []quadrant.Quadrant{q4}},
		{"gon 805", 805, Gon, []quadrant.Quadrant{q1}},
		{"gon 1000", 1000, Gon, []quadrant.Quadrant{q2, q3}},
		{"gon -50", -50, Gon, []quadrant.Quadrant{q4}},
		{"gon -100", -100, Gon, []quadrant.Quadrant{q3, q4}},
		{"gon -805", -805, Gon, []quadrant.Quadrant{q4}},
		{"gon -1000", -1000, Gon, []quadrant.Quadrant{q2, q3}},
		// degree 90 is inside the first gon quadrant
		{"gon 90", 90, Gon, []quadrant.Quadrant{q1}},
	}

	c := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ClassifyUnit(tt.value, tt.unit)
			if err != nil {
				t.Fatalf("ClassifyUnit(%v, %v) failed: %v", tt.value, tt.unit, err)
			}
			if diff := cmp.Diff(tt.want, got.Quadrants()); diff != "" {
				t.Errorf("ClassifyUnit(%v, %v) mismatch (-want +got):\n%s", tt.value, tt.unit, diff)
			}
		})
	}
}

func TestClassify_DefaultUnitIsDegree(t *testing.T) {
	c := NewClassifier()

	got, err := c.Classify(Angle{Value: 90})
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if !got.Equal(q1.Join(q2)) {
		t.Errorf("Classify(90) = %v, want [FIRST, SECOND]", got)
	}

	got, err = c.ClassifyUnit(90, nil)
	if err != nil {
		t.Fatalf("ClassifyUnit(nil unit) failed: %v", err)
	}
	if !got.Equal(q1.Join(q2)) {
		t.Errorf("ClassifyUnit(90, nil) = %v, want [FIRST, SECOND]", got)
	}
}

func TestClassifyUnit_UnitSpellings(t *testing.T) {
	c := NewClassifier()
	want, _ := c.Classify(Degrees(0))

	for _, unit := range []any{Degree, "degree", "DEGREE", "Degree", 0, 0.0} {
		got, err := c.ClassifyUnit(0, unit)
		if err != nil {
			t.Errorf("ClassifyUnit(0, %#v) failed: %v", unit, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ClassifyUnit(0, %#v) = %v, want %v", unit, got, want)
		}
	}
}

func TestClassifyUnit_UnknownUnit(t *testing.T) {
	c := NewClassifier()

	_, err := c.ClassifyUnit(45, "abc")
	if err == nil {
		t.Fatal("expected error for unit \"abc\"")
	}
	if err.Error() != "abc is not a valid AngleUnit" {
		t.Errorf("error message: got %q, want %q", err.Error(), "abc is not a valid AngleUnit")
	}
	if !errors.Is(err, ErrInvalidUnit) {
		t.Error("error should match ErrInvalidUnit")
	}

	var unitErr *UnitError
	if !errors.As(err, &unitErr) || unitErr.Input != "abc" {
		t.Errorf("errors.As: got %#v", unitErr)
	}
}

func TestClassify_InvalidUnitValue(t *testing.T) {
	_, err := NewClassifier().Classify(Angle{Value: 10, Unit: Unit(7)})
	if !errors.Is(err, ErrInvalidUnit) {
		t.Errorf("Classify with Unit(7): got %v, want ErrInvalidUnit", err)
	}
}

func TestClassify_Periodicity(t *testing.T) {
	c := NewClassifier()
	values := []float64{0, 0.5, 45, 90, 123.25, 180, 200, 270, 300, 359.5, -10, -180, -370}

	for _, u := range []Unit{Degree, Gon} {
		full := u.FullCircle()
		for _, v := range values {
			base, err := c.Classify(Angle{Value: v, Unit: u})
			if err != nil {
				t.Fatalf("Classify(%v %v) failed: %v", v, u, err)
			}
			for _, shifted := range []float64{v + full, v - full, v + 3*full} {
				got, _ := c.Classify(Angle{Value: shifted, Unit: u})
				if !got.Equal(base) {
					t.Errorf("%v: Classify(%v) = %v, Classify(%v) = %v", u, v, base, shifted, got)
				}
			}
		}
	}
}

func TestClassify_NegativeReflection(t *testing.T) {
	c := NewClassifier()

	for _, u := range []Unit{Degree, Gon} {
		full := u.FullCircle()
		for _, v := range []float64{0.5, 45, 90, 135, 180, 250, 270, 300} {
			neg, _ := c.Classify(Angle{Value: -v, Unit: u})
			refl, _ := c.Classify(Angle{Value: full - v, Unit: u})
			if !neg.Equal(refl) {
				t.Errorf("%v: Classify(-%v) = %v, Classify(%v) = %v", u, v, neg, full-v, refl)
			}
		}
	}
}

func TestClassify_NeverEmpty(t *testing.T) {
	c := NewClassifier()
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), math.MaxFloat64, -math.SmallestNonzeroFloat64} {
		got, err := c.Classify(Degrees(v))
		if err != nil {
			t.Fatalf("Classify(%v) failed: %v", v, err)
		}
		if got.IsEmpty() {
			t.Errorf("Classify(%v) returned an empty set", v)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		value float64
		unit  Unit
		want  float64
	}{
		{0, Degree, 0},
		{360, Degree, 0},
		{725, Degree, 5},
		{-45, Degree, 315},
		{-360, Degree, 0},
		{-725, Degree, 355},
		{400, Gon, 0},
		{-50, Gon, 350},
		{1000, Gon, 200},
	}

	for _, tt := range tests {
		if got := Normalize(tt.value, tt.unit); got != tt.want {
			t.Errorf("Normalize(%v, %v) = %v, want %v", tt.value, tt.unit, got, tt.want)
		}
	}
}
