package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"wander/pkg/utils"
)

// Route is one ordered leg of a trip. Index is the ordering key; it is
// assigned as currentMax+1 on append and is not necessarily contiguous.
// Unset coordinates are stored as 0 (see utils coordinate validators).
type Route struct {
	BaseModel
	TripID      uuid.UUID
	Title       string
	Description string
	Index       int
	LatStart    float64
	LngStart    float64
	LatEnd      float64
	LngEnd      float64
	Details     pq.StringArray `gorm:"type:text[]"`

	Costs []Cost
}

// HasValidCoordinates reports whether both endpoint pairs are renderable.
// Routes failing this check are dropped from the detail and map views.
func (r *Route) HasValidCoordinates() bool {
	return utils.IsValidCoordinate(r.LatStart, r.LngStart) &&
		utils.IsValidCoordinate(r.LatEnd, r.LngEnd)
}
