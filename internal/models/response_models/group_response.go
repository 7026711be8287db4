package response_models

type GroupResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	DestinationID string `json:"destination_id,omitempty"`
	StartDate     string `json:"start_date"`
	MaxMembers    int    `json:"max_members"`
	MemberCount   int    `json:"member_count"`
}
