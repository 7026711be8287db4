package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type GroupsController struct {
	groupService services.GroupServiceInterface
}

func NewGroupsController(groupService services.GroupServiceInterface) *GroupsController {
	return &GroupsController{
		groupService: groupService,
	}
}

// CreateGroup godoc
// @Summary Create a travel group
// @Tags Group
// @Accept json
// @Produce json
// @Param request body request_models.CreateGroupRequest true "Group payload"
// @Success 200 {object} response_models.GroupResponse
// @Security BearerAuth
// @Router /groups [post]
func (g *GroupsController) CreateGroup(c *gin.Context) {
	var req request_models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Group name is required")
		return
	}

	ownerId := c.GetString("user_id")

	group, err := g.groupService.CreateGroup(c.Request.Context(), ownerId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, group, "Group created successfully")
}

// SearchGroups godoc
// @Summary Search travel groups by name
// @Tags Group
// @Produce json
// @Param name query string false "Name filter"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.GroupResponse
// @Router /groups [get]
func (g *GroupsController) SearchGroups(c *gin.Context) {
	page, pageSize, ok := parsePaging(c, 10)
	if !ok {
		return
	}

	groups, err := g.groupService.SearchGroups(c.Request.Context(), c.Query("name"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, groups, "Groups fetched successfully")
}

// GetGroup godoc
// @Summary Get a travel group by ID
// @Tags Group
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {object} response_models.GroupResponse
// @Failure 404 {object} utils.APIResponse
// @Router /groups/{groupId} [get]
func (g *GroupsController) GetGroup(c *gin.Context) {
	groupId := c.Param("groupId")
	if groupId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Group ID is required")
		return
	}

	group, err := g.groupService.GetGroup(c.Request.Context(), groupId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, group, "Group fetched successfully")
}

// JoinGroup godoc
// @Summary Join a travel group
// @Tags Group
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /groups/{groupId}/join [post]
func (g *GroupsController) JoinGroup(c *gin.Context) {
	groupId := c.Param("groupId")
	accountId := c.GetString("user_id")

	if err := g.groupService.JoinGroup(c.Request.Context(), groupId, accountId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Joined group successfully")
}

// LeaveGroup godoc
// @Summary Leave a travel group
// @Tags Group
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /groups/{groupId}/leave [post]
func (g *GroupsController) LeaveGroup(c *gin.Context) {
	groupId := c.Param("groupId")
	accountId := c.GetString("user_id")

	if err := g.groupService.LeaveGroup(c.Request.Context(), groupId, accountId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Left group successfully")
}
