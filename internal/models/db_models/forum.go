package db_models

import "github.com/google/uuid"

const (
	PostCategoryExperience = "experience"
	PostCategoryQuestion   = "question"
	PostCategoryCompanion  = "companion"
	PostCategoryReview     = "review"
	PostCategoryGeneral    = "general"
)

type Post struct {
	BaseModel
	AuthorID uuid.UUID
	Title    string
	Content  string
	Category string

	Author   Account `gorm:"foreignKey:AuthorID"`
	Comments []Comment
	Likes    []PostLike
}

type Comment struct {
	BaseModel
	PostID   uuid.UUID
	AuthorID uuid.UUID
	Content  string

	Author Account `gorm:"foreignKey:AuthorID"`
}

type PostLike struct {
	BaseModel
	PostID    uuid.UUID `gorm:"uniqueIndex:idx_post_account"`
	AccountID uuid.UUID `gorm:"uniqueIndex:idx_post_account"`
}

func IsValidPostCategory(c string) bool {
	switch c {
	case PostCategoryExperience, PostCategoryQuestion, PostCategoryCompanion,
		PostCategoryReview, PostCategoryGeneral:
		return true
	}
	return false
}
