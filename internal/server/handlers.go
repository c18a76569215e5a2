package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ironsheep/quadrant-tools-mcp/internal/angle"
	"github.com/ironsheep/quadrant-tools-mcp/internal/coords"
	"github.com/ironsheep/quadrant-tools-mcp/internal/plot"
	"github.com/ironsheep/quadrant-tools-mcp/internal/quadrant"
	"github.com/ironsheep/quadrant-tools-mcp/internal/stations"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "quadrant_from_angle").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.cfg.Debug {
		log.Printf("tools/call %s %s", params.Name, params.Arguments)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Classification
	case "quadrant_from_angle":
		return s.handleQuadrantFromAngle(args)
	case "quadrant_from_coords":
		return s.handleQuadrantFromCoords(args)
	case "quadrant_combine":
		return s.handleQuadrantCombine(args)

	// Visualization
	case "quadrant_plot_angle":
		return s.handleQuadrantPlotAngle(args)

	// Stations
	case "stations_load":
		return s.handleStationsLoad(args)
	case "stations_distribution":
		return s.handleStationsDistribution(args)
	case "stations_plot":
		return s.handleStationsPlot(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// QuadrantResult is the common shape of classification results.
type QuadrantResult struct {
	Quadrants quadrant.Set `json:"quadrants"`
	Labels    []string     `json:"labels"`
}

func newQuadrantResult(set quadrant.Set) QuadrantResult {
	return QuadrantResult{Quadrants: set, Labels: set.Labels()}
}

// === Classification Handlers ===

type angleArgs struct {
	Angle *float64    `json:"angle"`
	Unit  interface{} `json:"unit"`
}

// AngleResult is returned by quadrant_from_angle.
type AngleResult struct {
	QuadrantResult
	Angle           float64    `json:"angle"`
	NormalizedAngle float64    `json:"normalized_angle"`
	Unit            angle.Unit `json:"unit"`
}

// classifyAngle resolves the unit and classifies the angle in a.
func (s *Server) classifyAngle(a angleArgs) (*AngleResult, error) {
	if a.Angle == nil {
		return nil, errors.New("angle is required")
	}

	unit := angle.Degree
	if a.Unit != nil {
		var err error
		if unit, err = angle.ParseUnit(a.Unit); err != nil {
			return nil, err
		}
	}

	in := angle.Angle{Value: *a.Angle, Unit: unit}
	set, err := s.angles.Classify(in)
	if err != nil {
		return nil, err
	}

	return &AngleResult{
		QuadrantResult:  newQuadrantResult(set),
		Angle:           in.Value,
		NormalizedAngle: in.Normalized(),
		Unit:            unit,
	}, nil
}

func (s *Server) handleQuadrantFromAngle(args json.RawMessage) (interface{}, error) {
	var a angleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.classifyAngle(a)
}

type coordsArgs struct {
	Here  interface{} `json:"here"`
	There interface{} `json:"there"`
}

// CoordsResult is returned by quadrant_from_coords.
type CoordsResult struct {
	QuadrantResult
	Here  coords.Point `json:"here"`
	There coords.Point `json:"there"`
	DX    float64      `json:"dx"`
	DY    float64      `json:"dy"`
}

func (s *Server) handleQuadrantFromCoords(args json.RawMessage) (interface{}, error) {
	var a coordsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	c, err := coords.NewFrom(a.Here)
	if err != nil {
		return nil, err
	}
	there, err := coords.ParsePoint(a.There)
	if err != nil {
		return nil, fmt.Errorf("target point: %w", err)
	}

	set, err := c.Classify(there)
	if err != nil {
		return nil, err
	}
	dx, dy := c.Delta(there)

	return &CoordsResult{
		QuadrantResult: newQuadrantResult(set),
		Here:           c.Here(),
		There:          there,
		DX:             dx,
		DY:             dy,
	}, nil
}

type combineArgs struct {
	Left  interface{} `json:"left"`
	Right interface{} `json:"right"`
}

// toOperand converts a decoded JSON value to a Quadrant (integral number) or a
// Set (array of valid quadrant numbers). Other values are returned unchanged
// so that combining them reports the operand error.
func toOperand(v interface{}) interface{} {
	switch val := v.(type) {
	case float64:
		if val == float64(int(val)) {
			return quadrant.Quadrant(int(val))
		}
	case []interface{}:
		qs := make([]quadrant.Quadrant, 0, len(val))
		for _, item := range val {
			q, ok := toOperand(item).(quadrant.Quadrant)
			if !ok || !q.Valid() {
				return v
			}
			qs = append(qs, q)
		}
		return quadrant.NewSet(qs...)
	}
	return v
}

func (s *Server) handleQuadrantCombine(args json.RawMessage) (interface{}, error) {
	var a combineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	right := toOperand(a.Right)

	var set quadrant.Set
	var err error
	switch left := toOperand(a.Left).(type) {
	case quadrant.Quadrant:
		if set, err = (quadrant.Set{}).Combine(left); err == nil {
			set, err = set.Combine(right)
		}
	case quadrant.Set:
		set, err = left.Combine(right)
	default:
		err = fmt.Errorf("%w, got %T", quadrant.ErrInvalidOperand, left)
	}
	if err != nil {
		return nil, err
	}

	return newQuadrantResult(set), nil
}

// === Visualization Handlers ===

type plotAngleArgs struct {
	angleArgs
	Size  int    `json:"size"`
	Color string `json:"color"`
	Save  bool   `json:"save"`
}

// PlotAngleResult is returned by quadrant_plot_angle.
type PlotAngleResult struct {
	*AngleResult
	Plot *plot.Result `json:"plot"`
}

// plotConfig applies per-call overrides to the server's plot defaults.
func (s *Server) plotConfig(size int, shade string) plot.Config {
	cfg := s.cfg.Plot
	if size != 0 {
		cfg.Size = size
	}
	if shade != "" {
		cfg.ShadeColor = shade
	}
	return cfg
}

// finishPlot saves r when requested.
func (s *Server) finishPlot(r *plot.Result, save bool) (*plot.Result, error) {
	if !save {
		return r, nil
	}
	path, err := r.Save(s.cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	if s.cfg.Debug {
		log.Printf("saved plot to %s", path)
	}
	return r, nil
}

func (s *Server) handleQuadrantPlotAngle(args json.RawMessage) (interface{}, error) {
	var a plotAngleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	res, err := s.classifyAngle(a.angleArgs)
	if err != nil {
		return nil, err
	}

	r, err := plot.RenderSet(res.Quadrants, plot.AngleLabels(res.Unit), s.plotConfig(a.Size, a.Color))
	if err != nil {
		return nil, err
	}
	if r, err = s.finishPlot(r, a.Save); err != nil {
		return nil, err
	}

	return &PlotAngleResult{AngleResult: res, Plot: r}, nil
}

// === Station Handlers ===

type stationsLoadArgs struct {
	Path string `json:"path"`
}

// StationsInfo is returned by stations_load.
type StationsInfo struct {
	Path     string          `json:"path"`
	Count    int             `json:"count"`
	Bounds   stations.Bounds `json:"bounds"`
	Stations []string        `json:"station_ids"`
}

func (s *Server) handleStationsLoad(args json.RawMessage) (interface{}, error) {
	var a stationsLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	list, err := s.stations.Load(a.Path)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(list))
	for i, st := range list {
		ids[i] = st.ID
	}

	return &StationsInfo{
		Path:     a.Path,
		Count:    len(list),
		Bounds:   stations.BoundsOf(list),
		Stations: ids,
	}, nil
}

type stationQueryArgs struct {
	Path       string   `json:"path"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	DistanceKm float64  `json:"distance_km"`
}

// query loads the stations of a and applies the distance filter.
func (s *Server) query(a stationQueryArgs) ([]stations.Station, error) {
	if a.Latitude == nil || a.Longitude == nil {
		return nil, errors.New("latitude and longitude are required")
	}

	list, err := s.stations.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if a.DistanceKm > 0 {
		list = stations.FilterByDistance(list, *a.Latitude, *a.Longitude, a.DistanceKm)
	}
	return list, nil
}

// DistributionResult is returned by stations_distribution.
type DistributionResult struct {
	Latitude   float64            `json:"latitude"`
	Longitude  float64            `json:"longitude"`
	DistanceKm float64            `json:"distance_km,omitempty"`
	Stations   int                `json:"stations"`
	Counts     map[string]int     `json:"counts"`
	Members    []StationQuadrants `json:"members"`
}

// StationQuadrants pairs a station with its quadrants.
type StationQuadrants struct {
	stations.Station
	Quadrants quadrant.Set `json:"quadrants"`
}

func (s *Server) handleStationsDistribution(args json.RawMessage) (interface{}, error) {
	var a stationQueryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	list, err := s.query(a)
	if err != nil {
		return nil, err
	}

	sets, err := stations.Classify(*a.Latitude, *a.Longitude, list)
	if err != nil {
		return nil, err
	}

	tally := stations.TallyOf(sets)
	members := make([]StationQuadrants, len(list))
	for i, st := range list {
		members[i] = StationQuadrants{Station: st, Quadrants: sets[i]}
	}

	return &DistributionResult{
		Latitude:   *a.Latitude,
		Longitude:  *a.Longitude,
		DistanceKm: a.DistanceKm,
		Stations:   tally.Stations,
		Counts:     tally.ByNumber(),
		Members:    members,
	}, nil
}

type stationsPlotArgs struct {
	stationQueryArgs
	Size int  `json:"size"`
	Save bool `json:"save"`
}

func (s *Server) handleStationsPlot(args json.RawMessage) (interface{}, error) {
	var a stationsPlotArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	list, err := s.query(a.stationQueryArgs)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no stations within %g km", a.DistanceKm)
	}

	tally, err := stations.Distribute(*a.Latitude, *a.Longitude, list)
	if err != nil {
		return nil, err
	}

	points := make([]coords.Point, len(list))
	for i, st := range list {
		points[i] = st.Point()
	}

	here := coords.Pt(*a.Longitude, *a.Latitude)
	r, err := plot.RenderDistribution(here, points, tally.Counts, s.plotConfig(a.Size, ""))
	if err != nil {
		return nil, err
	}
	return s.finishPlot(r, a.Save)
}
