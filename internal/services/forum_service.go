package services

import (
	"context"

	"github.com/google/uuid"

	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type ForumServiceInterface interface {
	CreatePost(ctx context.Context, authorId string, req request_models.CreatePostRequest) (*response_models.PostResponse, error)
	ListPosts(ctx context.Context, category, sort string, page, pageSize int) ([]response_models.PostResponse, error)
	GetPostDetail(ctx context.Context, postId string) (*response_models.PostDetailResponse, error)
	AddComment(ctx context.Context, postId, authorId string, req request_models.AddCommentRequest) (*response_models.PostDetailResponse, error)
	ToggleLike(ctx context.Context, postId, accountId string) (liked bool, err error)
}

type ForumService struct {
	forumRepo repositories.ForumRepository
}

func NewForumService(forumRepo repositories.ForumRepository) ForumServiceInterface {
	return &ForumService{forumRepo: forumRepo}
}

func (f *ForumService) CreatePost(ctx context.Context, authorId string, req request_models.CreatePostRequest) (*response_models.PostResponse, error) {
	authorUUID, err := uuid.Parse(authorId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if !db_models.IsValidPostCategory(req.Category) {
		return nil, utils.ErrInvalidInput
	}

	post := &db_models.Post{
		AuthorID: authorUUID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	}
	if err := f.forumRepo.CreatePost(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Re-read so the author association is populated for the response.
	created, err := f.forumRepo.GetPostById(ctx, post.ID.String())
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildPostResponse(created)
	return &out, nil
}

func (f *ForumService) ListPosts(ctx context.Context, category, sort string, page, pageSize int) ([]response_models.PostResponse, error) {
	if category != "" && !db_models.IsValidPostCategory(category) {
		return nil, utils.ErrInvalidInput
	}

	posts, err := f.forumRepo.ListPosts(ctx, category, sort, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, buildPostResponse(&posts[i]))
	}
	return out, nil
}

func (f *ForumService) GetPostDetail(ctx context.Context, postId string) (*response_models.PostDetailResponse, error) {
	post, err := f.forumRepo.GetPostById(ctx, postId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	return buildPostDetailResponse(post), nil
}

func (f *ForumService) AddComment(ctx context.Context, postId, authorId string, req request_models.AddCommentRequest) (*response_models.PostDetailResponse, error) {
	authorUUID, err := uuid.Parse(authorId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	post, err := f.forumRepo.GetPostById(ctx, postId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	comment := &db_models.Comment{
		PostID:   post.ID,
		AuthorID: authorUUID,
		Content:  req.Content,
	}
	if err := f.forumRepo.CreateComment(ctx, comment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	updated, err := f.forumRepo.GetPostById(ctx, postId)
	if err != nil || updated == nil {
		return nil, utils.ErrDatabaseError
	}
	return buildPostDetailResponse(updated), nil
}

func (f *ForumService) ToggleLike(ctx context.Context, postId, accountId string) (bool, error) {
	accountUUID, err := uuid.Parse(accountId)
	if err != nil {
		return false, utils.ErrInvalidInput
	}

	post, err := f.forumRepo.GetPostById(ctx, postId)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if post == nil {
		return false, utils.ErrPostNotFound
	}

	liked, err := f.forumRepo.HasLike(ctx, postId, accountId)
	if err != nil {
		return false, utils.ErrDatabaseError
	}

	if liked {
		if err := f.forumRepo.DeleteLike(ctx, postId, accountId); err != nil {
			return false, utils.ErrDatabaseError
		}
		return false, nil
	}

	if err := f.forumRepo.CreateLike(ctx, &db_models.PostLike{PostID: post.ID, AccountID: accountUUID}); err != nil {
		return false, utils.ErrDatabaseError
	}
	return true, nil
}

func buildPostResponse(post *db_models.Post) response_models.PostResponse {
	return response_models.PostResponse{
		ID:       post.ID.String(),
		Title:    post.Title,
		Content:  post.Content,
		Category: post.Category,
		Author: response_models.AuthorSummary{
			ID:        post.Author.ID.String(),
			Name:      post.Author.Name,
			AvatarURL: post.Author.AvatarURL,
		},
		LikeCount:    len(post.Likes),
		CommentCount: len(post.Comments),
		CreatedAt:    utils.FormatRFC3339VN(utils.FromUnixSecondsVN(post.CreatedAt)),
	}
}

func buildPostDetailResponse(post *db_models.Post) *response_models.PostDetailResponse {
	comments := make([]response_models.CommentResponse, 0, len(post.Comments))
	for _, comment := range post.Comments {
		comments = append(comments, response_models.CommentResponse{
			ID:      comment.ID.String(),
			Content: comment.Content,
			Author: response_models.AuthorSummary{
				ID:        comment.Author.ID.String(),
				Name:      comment.Author.Name,
				AvatarURL: comment.Author.AvatarURL,
			},
			CreatedAt: utils.FormatRFC3339VN(utils.FromUnixSecondsVN(comment.CreatedAt)),
		})
	}

	return &response_models.PostDetailResponse{
		PostResponse: buildPostResponse(post),
		Comments:     comments,
	}
}
