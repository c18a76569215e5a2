package stations

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"sync"

	"github.com/golang/geo/s2"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/ironsheep/quadrant-tools-mcp/internal/coords"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0088

// ErrNoStations is returned when a file holds no point features.
var ErrNoStations = errors.New("no point stations found")

// Station is a named observation site.
type Station struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Distance is set by FilterByDistance, in kilometres.
	Distance float64 `json:"distance_km,omitempty"`
}

// Point returns the station as (longitude, latitude).
func (s Station) Point() coords.Point {
	return coords.Pt(s.Longitude, s.Latitude)
}

// Bounds is a latitude/longitude bounding box.
type Bounds struct {
	MinLatitude  float64 `json:"min_latitude"`
	MinLongitude float64 `json:"min_longitude"`
	MaxLatitude  float64 `json:"max_latitude"`
	MaxLongitude float64 `json:"max_longitude"`
}

// Decode parses a GeoJSON FeatureCollection into stations.
func Decode(data []byte) ([]Station, error) {
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to decode GeoJSON: %w", err)
	}

	stations := make([]Station, 0, len(fc.Features))
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(*geom.Point)
		if !ok || pt.Empty() {
			continue
		}

		id := f.ID
		if id == "" {
			id = stringProperty(f.Properties, "station_id")
		}
		if id == "" {
			id = fmt.Sprintf("%d", i)
		}

		stations = append(stations, Station{
			ID:        id,
			Name:      stringProperty(f.Properties, "name"),
			Latitude:  pt.Y(),
			Longitude: pt.X(),
		})
	}

	if len(stations) == 0 {
		return nil, ErrNoStations
	}
	return stations, nil
}

func stringProperty(props map[string]interface{}, key string) string {
	v, ok := props[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Load reads and decodes a station file.
func Load(path string) ([]Station, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stations: %w", err)
	}
	return Decode(data)
}

// Cache keeps decoded station files keyed by path.
type Cache struct {
	mu       sync.RWMutex
	stations map[string][]Station
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		stations: make(map[string][]Station),
	}
}

// Load returns the stations for path, reading the file only on first use.
func (c *Cache) Load(path string) ([]Station, error) {
	c.mu.RLock()
	if s, ok := c.stations[path]; ok {
		c.mu.RUnlock()
		return s, nil
	}
	c.mu.RUnlock()

	s, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.stations[path] = s
	c.mu.Unlock()

	return s, nil
}

// Evict drops path from the cache.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.stations, path)
	c.mu.Unlock()
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.stations = make(map[string][]Station)
	c.mu.Unlock()
}

// BoundsOf returns the bounding box of stations. It returns the zero Bounds
// for an empty slice.
func BoundsOf(stations []Station) Bounds {
	if len(stations) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinLatitude:  stations[0].Latitude,
		MaxLatitude:  stations[0].Latitude,
		MinLongitude: stations[0].Longitude,
		MaxLongitude: stations[0].Longitude,
	}
	for _, s := range stations[1:] {
		b.MinLatitude = math.Min(b.MinLatitude, s.Latitude)
		b.MaxLatitude = math.Max(b.MaxLatitude, s.Latitude)
		b.MinLongitude = math.Min(b.MinLongitude, s.Longitude)
		b.MaxLongitude = math.Max(b.MaxLongitude, s.Longitude)
	}
	return b
}

// Distance returns the great-circle distance in kilometres between two
// latitude/longitude positions given in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians() * EarthRadiusKm
}

// FilterByDistance returns copies of the stations within km of the given
// position, nearest first, with Distance filled in. The bound is inclusive.
func FilterByDistance(stations []Station, latitude, longitude, km float64) []Station {
	out := make([]Station, 0)
	for _, s := range stations {
		d := Distance(latitude, longitude, s.Latitude, s.Longitude)
		if d <= km {
			s.Distance = d
			out = append(out, s)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}
