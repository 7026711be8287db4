package response_models

type ContactResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

type SOSAlertResponse struct {
	ID            string  `json:"id"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Message       string  `json:"message,omitempty"`
	Status        string  `json:"status"`
	NotifiedCount int     `json:"notified_count"`
	CreatedAt     string  `json:"created_at"`
}
