package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pointSchema accepts [x, y] or {"x": .., "y": ..}.
func pointSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"description": description + ". Either [x, y] or {\"x\": x, \"y\": y}",
		"oneOf": []interface{}{
			map[string]interface{}{
				"type":     "array",
				"items":    map[string]interface{}{"type": "number"},
				"minItems": 2,
				"maxItems": 2,
			},
			map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{"type": "number"},
					"y": map[string]interface{}{"type": "number"},
				},
				"required": []string{"x", "y"},
			},
		},
	}
}

var unitProperty = map[string]interface{}{
	"type":        []string{"string", "integer"},
	"description": "Angle unit: \"degree\" (full circle 360) or \"gon\" (full circle 400), case-insensitive, or 0/1. Default degree",
	"default":     "degree",
}

var sizeProperty = map[string]interface{}{
	"type":        "integer",
	"description": "Optional plot width and height in pixels (64 to 4096)",
}

var saveProperty = map[string]interface{}{
	"type":        "boolean",
	"description": "Also write the PNG to the server's output directory and return its path. Default false",
	"default":     false,
}

func stationQueryProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to a GeoJSON FeatureCollection of station points",
		},
		"latitude": map[string]interface{}{
			"type":        "number",
			"description": "Latitude of the reference location in degrees",
		},
		"longitude": map[string]interface{}{
			"type":        "number",
			"description": "Longitude of the reference location in degrees",
		},
		"distance_km": map[string]interface{}{
			"type":        "number",
			"description": "Only include stations within this great-circle distance. 0 or omitted includes all stations",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	plotStationProps := stationQueryProperties()
	plotStationProps["size"] = sizeProperty
	plotStationProps["save"] = saveProperty

	return []Tool{
		// Classification
		{
			Name:        "quadrant_from_angle",
			Description: "Determine the quadrant(s) an angle points into. Angles on a boundary (0, 90, 180, 270 degrees) belong to both neighbouring quadrants. Negative angles and angles beyond a full turn are normalized.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"angle": map[string]interface{}{
						"type":        "number",
						"description": "The angle to classify",
					},
					"unit": unitProperty,
				},
				"required": []string{"angle"},
			},
		},
		{
			Name:        "quadrant_from_coords",
			Description: "Determine the quadrant(s) a point lies in relative to a reference point. Points on an axis through the reference belong to two quadrants, the reference itself to all four.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"here":  pointSchema("Reference point"),
					"there": pointSchema("Point to classify"),
				},
				"required": []string{"here", "there"},
			},
		},
		{
			Name:        "quadrant_combine",
			Description: "Combine two quadrant results into their sorted, duplicate-free union. Each operand is a quadrant number (1-4) or an array of quadrant numbers.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"left": map[string]interface{}{
						"description": "Quadrant number or array of quadrant numbers",
					},
					"right": map[string]interface{}{
						"description": "Quadrant number or array of quadrant numbers",
					},
				},
				"required": []string{"left", "right"},
			},
		},

		// Visualization
		{
			Name:        "quadrant_plot_angle",
			Description: "Render an angle diagram with the quadrant(s) of the given angle shaded. Returns a base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"angle": map[string]interface{}{
						"type":        "number",
						"description": "The angle to classify and plot",
					},
					"unit": unitProperty,
					"size": sizeProperty,
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Optional shade color in hex format (e.g., #E24A33)",
					},
					"save": saveProperty,
				},
				"required": []string{"angle"},
			},
		},

		// Stations
		{
			Name:        "stations_load",
			Description: "Load a GeoJSON file of station points and return the station count and bounding box.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a GeoJSON FeatureCollection of station points",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "stations_distribution",
			Description: "Count how many stations lie in each quadrant around a location (1=north-east, 2=north-west, 3=south-west, 4=south-east), optionally limited to a radius.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": stationQueryProperties(),
				"required":   []string{"path", "latitude", "longitude"},
			},
		},
		{
			Name:        "stations_plot",
			Description: "Render stations around a location as a scatter plot with axes through the location and the per-quadrant counts. Returns a base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": plotStationProps,
				"required":   []string{"path", "latitude", "longitude"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
