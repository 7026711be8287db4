package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type GroupServiceInterface interface {
	CreateGroup(ctx context.Context, ownerId string, req request_models.CreateGroupRequest) (*response_models.GroupResponse, error)
	SearchGroups(ctx context.Context, name string, page, pageSize int) ([]response_models.GroupResponse, error)
	GetGroup(ctx context.Context, groupId string) (*response_models.GroupResponse, error)
	JoinGroup(ctx context.Context, groupId, accountId string) error
	LeaveGroup(ctx context.Context, groupId, accountId string) error
}

type GroupService struct {
	groupRepo repositories.GroupRepository
}

func NewGroupService(groupRepo repositories.GroupRepository) GroupServiceInterface {
	return &GroupService{groupRepo: groupRepo}
}

func (g *GroupService) CreateGroup(ctx context.Context, ownerId string, req request_models.CreateGroupRequest) (*response_models.GroupResponse, error) {
	ownerUUID, err := uuid.Parse(ownerId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	var startDate int64
	if req.StartDate != "" {
		start, err := time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		startDate = start.Unix()
	}

	group := &db_models.TravelGroup{
		OwnerID:     ownerUUID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		MaxMembers:  req.MaxMembers,
	}
	if req.DestinationID != "" {
		destUUID, err := uuid.Parse(req.DestinationID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		group.DestinationID = destUUID
	}

	if err := g.groupRepo.Create(ctx, group); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := g.groupRepo.AddMember(ctx, &db_models.GroupMember{GroupID: group.ID, AccountID: ownerUUID}); err != nil {
		log.Printf("add owner membership for group %s failed: %v", group.ID, err)
	}

	out := buildGroupResponse(group, 1)
	return &out, nil
}

func (g *GroupService) SearchGroups(ctx context.Context, name string, page, pageSize int) ([]response_models.GroupResponse, error) {
	groups, err := g.groupRepo.Search(ctx, name, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.GroupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, buildGroupResponse(&groups[i], len(groups[i].Members)))
	}
	return out, nil
}

func (g *GroupService) GetGroup(ctx context.Context, groupId string) (*response_models.GroupResponse, error) {
	group, err := g.groupRepo.GetById(ctx, groupId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if group == nil {
		return nil, utils.ErrGroupNotFound
	}

	out := buildGroupResponse(group, len(group.Members))
	return &out, nil
}

func (g *GroupService) JoinGroup(ctx context.Context, groupId, accountId string) error {
	accountUUID, err := uuid.Parse(accountId)
	if err != nil {
		return utils.ErrInvalidInput
	}

	group, err := g.groupRepo.GetById(ctx, groupId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if group == nil {
		return utils.ErrGroupNotFound
	}

	member, err := g.groupRepo.IsMember(ctx, groupId, accountId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member {
		return utils.ErrAlreadyMember
	}

	if group.MaxMembers > 0 {
		count, err := g.groupRepo.CountMembers(ctx, groupId)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if count >= int64(group.MaxMembers) {
			return utils.ErrInvalidInput
		}
	}

	if err := g.groupRepo.AddMember(ctx, &db_models.GroupMember{GroupID: group.ID, AccountID: accountUUID}); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (g *GroupService) LeaveGroup(ctx context.Context, groupId, accountId string) error {
	group, err := g.groupRepo.GetById(ctx, groupId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if group == nil {
		return utils.ErrGroupNotFound
	}

	rows, err := g.groupRepo.RemoveMember(ctx, groupId, accountId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrNotMember
	}
	return nil
}

func buildGroupResponse(group *db_models.TravelGroup, memberCount int) response_models.GroupResponse {
	destinationID := ""
	if group.DestinationID != uuid.Nil {
		destinationID = group.DestinationID.String()
	}

	return response_models.GroupResponse{
		ID:            group.ID.String(),
		Name:          group.Name,
		Description:   group.Description,
		DestinationID: destinationID,
		StartDate:     utils.FormatRFC3339VN(utils.FromUnixSecondsVN(group.StartDate)),
		MaxMembers:    group.MaxMembers,
		MemberCount:   memberCount,
	}
}
