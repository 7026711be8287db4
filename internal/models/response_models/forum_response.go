package response_models

type AuthorSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type PostResponse struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Category     string        `json:"category"`
	Author       AuthorSummary `json:"author"`
	LikeCount    int           `json:"like_count"`
	CommentCount int           `json:"comment_count"`
	CreatedAt    string        `json:"created_at"`
}

type PostDetailResponse struct {
	PostResponse
	Comments []CommentResponse `json:"comments"`
}

type CommentResponse struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Author    AuthorSummary `json:"author"`
	CreatedAt string        `json:"created_at"`
}
