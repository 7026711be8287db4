package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wander/internal/models/db_models"
)

const (
	PostSortNewest  = "newest"
	PostSortPopular = "popular"
)

type ForumRepository interface {
	CreatePost(ctx context.Context, post *db_models.Post) error
	// GetPostById preloads author, comments and likes so the detail view is
	// assembled in one round trip.
	GetPostById(ctx context.Context, postId string) (*db_models.Post, error)
	ListPosts(ctx context.Context, category, sort string, page, pageSize int) ([]db_models.Post, error)
	CreateComment(ctx context.Context, comment *db_models.Comment) error
	HasLike(ctx context.Context, postId, accountId string) (bool, error)
	CreateLike(ctx context.Context, like *db_models.PostLike) error
	DeleteLike(ctx context.Context, postId, accountId string) error
}

type forumRepository struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

func (r *forumRepository) CreatePost(ctx context.Context, post *db_models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *forumRepository) GetPostById(ctx context.Context, postId string) (*db_models.Post, error) {
	var post db_models.Post
	err := r.db.WithContext(ctx).
		Where("id = ?", postId).
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Preload("Likes").
		First(&post).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

func (r *forumRepository) ListPosts(ctx context.Context, category, sort string, page, pageSize int) ([]db_models.Post, error) {
	q := r.db.WithContext(ctx).
		Model(&db_models.Post{}).
		Preload("Author").
		Preload("Comments").
		Preload("Likes")

	if category != "" {
		q = q.Where("category = ?", category)
	}

	switch sort {
	case PostSortPopular:
		q = q.Order("(SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id AND post_likes.deleted_at IS NULL) DESC")
	default: // PostSortNewest
		q = q.Order("created_at DESC")
	}

	var posts []db_models.Post
	err := q.Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *forumRepository) CreateComment(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *forumRepository) HasLike(ctx context.Context, postId, accountId string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.PostLike{}).
		Where("post_id = ? AND account_id = ?", postId, accountId).
		Count(&count).Error

	return count > 0, err
}

func (r *forumRepository) CreateLike(ctx context.Context, like *db_models.PostLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// DeleteLike removes the row for real. A soft-deleted like would keep
// occupying the unique (post, account) index and block re-liking.
func (r *forumRepository) DeleteLike(ctx context.Context, postId, accountId string) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Where("post_id = ? AND account_id = ?", postId, accountId).
		Delete(&db_models.PostLike{}).Error
}
