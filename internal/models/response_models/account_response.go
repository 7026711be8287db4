package response_models

type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}
