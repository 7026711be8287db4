package request_models

type CreateGroupRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	DestinationID string `json:"destination_id" binding:"omitempty,uuid4"`
	// RFC3339
	StartDate  string `json:"start_date"`
	MaxMembers int    `json:"max_members" binding:"omitempty,min=2"`
}
