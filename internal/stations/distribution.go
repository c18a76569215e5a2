package stations

import (
	"fmt"

	"github.com/ironsheep/quadrant-tools-mcp/internal/coords"
	"github.com/ironsheep/quadrant-tools-mcp/internal/quadrant"
)

// Tally counts quadrant memberships. A station on a boundary adds one to each
// quadrant it belongs to, so the counts can sum to more than Stations.
type Tally struct {
	Counts   map[quadrant.Quadrant]int `json:"-"`
	Stations int                       `json:"stations"`
}

// Count returns the number of memberships in q.
func (t Tally) Count(q quadrant.Quadrant) int {
	return t.Counts[q]
}

// Add records one classified position.
func (t *Tally) Add(set quadrant.Set) {
	if t.Counts == nil {
		t.Counts = make(map[quadrant.Quadrant]int, len(quadrant.All))
	}
	for _, q := range set.Quadrants() {
		t.Counts[q]++
	}
	t.Stations++
}

// ByNumber returns the counts keyed by quadrant number as a string ("1".."4"),
// with every quadrant present.
func (t Tally) ByNumber() map[string]int {
	out := make(map[string]int, len(quadrant.All))
	for _, q := range quadrant.All {
		out[fmt.Sprint(int(q))] = t.Counts[q]
	}
	return out
}

// Classify returns the quadrants of each station relative to
// (latitude, longitude), in the order of stations.
func Classify(latitude, longitude float64, stations []Station) ([]quadrant.Set, error) {
	c := coords.New(coords.Pt(longitude, latitude))

	sets := make([]quadrant.Set, len(stations))
	for i, s := range stations {
		set, err := c.Classify(s.Point())
		if err != nil {
			return nil, fmt.Errorf("station %s: %w", s.ID, err)
		}
		sets[i] = set
	}
	return sets, nil
}

// TallyOf counts the memberships of already classified positions.
func TallyOf(sets []quadrant.Set) Tally {
	t := Tally{Counts: make(map[quadrant.Quadrant]int, len(quadrant.All))}
	for _, set := range sets {
		t.Add(set)
	}
	return t
}

// Distribute classifies every station relative to (latitude, longitude) and
// tallies the result.
func Distribute(latitude, longitude float64, stations []Station) (Tally, error) {
	sets, err := Classify(latitude, longitude, stations)
	if err != nil {
		return Tally{}, err
	}
	return TallyOf(sets), nil
}
