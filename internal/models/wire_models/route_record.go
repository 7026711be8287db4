package wire_models

import (
	"encoding/json"
	"strconv"

	"github.com/lib/pq"

	"wander/internal/models/db_models"
	"wander/pkg/utils"
)

// RouteRecord is the wire shape of a route as written by the legacy clients.
// Coordinates may arrive under camelCase or snake_case keys depending on the
// client version; camelCase wins when both are present. Normalize is the only
// place this ambiguity is resolved — canonical code never sees the wire shape.
type RouteRecord struct {
	ID          string      `json:"id"`
	TripID      string      `json:"trip_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Index       interface{} `json:"index"`

	LatStart interface{} `json:"latStart"`
	LngStart interface{} `json:"lngStart"`
	LatEnd   interface{} `json:"latEnd"`
	LngEnd   interface{} `json:"lngEnd"`

	LatStartSnake interface{} `json:"lat_start"`
	LngStartSnake interface{} `json:"lng_start"`
	LatEndSnake   interface{} `json:"lat_end"`
	LngEndSnake   interface{} `json:"lng_end"`

	Details interface{} `json:"details"`
}

// Normalize maps the record onto the canonical route shape. A coordinate that
// fails validation is stored as the 0 sentinel, which later excludes the route
// from valid-route views. Costs are never populated here; they are fetched and
// attached per route by the trip service.
func (r *RouteRecord) Normalize() db_models.Route {
	return db_models.Route{
		Title:       r.Title,
		Description: r.Description,
		Index:       int(toNumber(r.Index)),
		LatStart:    coordinate(r.LatStart, r.LatStartSnake, utils.IsValidLatitude),
		LngStart:    coordinate(r.LngStart, r.LngStartSnake, utils.IsValidLongitude),
		LatEnd:      coordinate(r.LatEnd, r.LatEndSnake, utils.IsValidLatitude),
		LngEnd:      coordinate(r.LngEnd, r.LngEndSnake, utils.IsValidLongitude),
		Details:     toStringList(r.Details),
		Costs:       []db_models.Cost{},
	}
}

func coordinate(camel, snake interface{}, valid func(float64) bool) float64 {
	v := camel
	if v == nil {
		v = snake
	}
	n := toNumber(v)
	if !valid(n) {
		return 0
	}
	return n
}

func toNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// toStringList keeps details only when the wire value is an ordered list of
// strings; anything else becomes an empty list rather than an error.
func toStringList(v interface{}) pq.StringArray {
	switch list := v.(type) {
	case []string:
		return pq.StringArray(list)
	case []interface{}:
		out := make(pq.StringArray, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return pq.StringArray{}
			}
			out = append(out, s)
		}
		return out
	default:
		return pq.StringArray{}
	}
}
