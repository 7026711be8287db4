package response_models

type DestinationResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Region      string   `json:"region"`
	Country     string   `json:"country"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images"`
	Tags        []string `json:"tags"`
}
