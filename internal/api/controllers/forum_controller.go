package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type ForumController struct {
	forumService services.ForumServiceInterface
}

func NewForumController(forumService services.ForumServiceInterface) *ForumController {
	return &ForumController{
		forumService: forumService,
	}
}

// CreatePost godoc
// @Summary Create a forum post
// @Tags Forum
// @Accept json
// @Produce json
// @Param request body request_models.CreatePostRequest true "Post payload"
// @Success 200 {object} response_models.PostResponse
// @Security BearerAuth
// @Router /forum/posts [post]
func (f *ForumController) CreatePost(c *gin.Context) {
	var req request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title, content and a valid category are required")
		return
	}

	authorId := c.GetString("user_id")

	post, err := f.forumService.CreatePost(c.Request.Context(), authorId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post created successfully")
}

// ListPosts godoc
// @Summary List forum posts
// @Description Filter by category and sort by newest or popular
// @Tags Forum
// @Produce json
// @Param category query string false "Post category"
// @Param sort query string false "newest or popular" default(newest)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.PostResponse
// @Router /forum/posts [get]
func (f *ForumController) ListPosts(c *gin.Context) {
	page, pageSize, ok := parsePaging(c, 10)
	if !ok {
		return
	}

	category := c.Query("category")
	sort := c.DefaultQuery("sort", "newest")
	if sort != "newest" && sort != "popular" {
		utils.RespondError(c, http.StatusBadRequest, "Sort must be newest or popular")
		return
	}

	posts, err := f.forumService.ListPosts(c.Request.Context(), category, sort, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Posts fetched successfully")
}

// GetPostDetail godoc
// @Summary Get a post with its comments
// @Tags Forum
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} response_models.PostDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Router /forum/posts/{postId} [get]
func (f *ForumController) GetPostDetail(c *gin.Context) {
	postId := c.Param("postId")
	if postId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Post ID is required")
		return
	}

	post, err := f.forumService.GetPostDetail(c.Request.Context(), postId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post detail fetched successfully")
}

// AddComment godoc
// @Summary Comment on a post
// @Tags Forum
// @Accept json
// @Produce json
// @Param postId path string true "Post ID"
// @Param request body request_models.AddCommentRequest true "Comment payload"
// @Success 200 {object} response_models.PostDetailResponse
// @Security BearerAuth
// @Router /forum/posts/{postId}/comments [post]
func (f *ForumController) AddComment(c *gin.Context) {
	postId := c.Param("postId")

	var req request_models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Comment content is required")
		return
	}

	authorId := c.GetString("user_id")

	post, err := f.forumService.AddComment(c.Request.Context(), postId, authorId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Comment added successfully")
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Tags Forum
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /forum/posts/{postId}/like [post]
func (f *ForumController) ToggleLike(c *gin.Context) {
	postId := c.Param("postId")
	accountId := c.GetString("user_id")

	liked, err := f.forumService.ToggleLike(c.Request.Context(), postId, accountId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if liked {
		utils.RespondSuccess(c, gin.H{"liked": true}, "Post liked")
		return
	}
	utils.RespondSuccess(c, gin.H{"liked": false}, "Post unliked")
}
