package request_models

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required,oneof=experience question companion review general"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
