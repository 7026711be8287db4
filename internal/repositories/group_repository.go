package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wander/internal/models/db_models"
)

type GroupRepository interface {
	Create(ctx context.Context, group *db_models.TravelGroup) error
	GetById(ctx context.Context, groupId string) (*db_models.TravelGroup, error)
	Search(ctx context.Context, name string, page, pageSize int) ([]db_models.TravelGroup, error)
	AddMember(ctx context.Context, member *db_models.GroupMember) error
	RemoveMember(ctx context.Context, groupId, accountId string) (int64, error)
	IsMember(ctx context.Context, groupId, accountId string) (bool, error)
	CountMembers(ctx context.Context, groupId string) (int64, error)
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *db_models.TravelGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *groupRepository) GetById(ctx context.Context, groupId string) (*db_models.TravelGroup, error) {
	var group db_models.TravelGroup
	err := r.db.WithContext(ctx).
		Where("id = ?", groupId).
		Preload("Members").
		First(&group).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &group, nil
}

func (r *groupRepository) Search(ctx context.Context, name string, page, pageSize int) ([]db_models.TravelGroup, error) {
	q := r.db.WithContext(ctx).Model(&db_models.TravelGroup{}).Preload("Members")

	if name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}

	var groups []db_models.TravelGroup
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&groups).Error

	if err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *groupRepository) AddMember(ctx context.Context, member *db_models.GroupMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// RemoveMember hard-deletes so a later rejoin does not collide with the
// unique (group, account) index.
func (r *groupRepository) RemoveMember(ctx context.Context, groupId, accountId string) (int64, error) {
	res := r.db.WithContext(ctx).
		Unscoped().
		Where("group_id = ? AND account_id = ?", groupId, accountId).
		Delete(&db_models.GroupMember{})

	return res.RowsAffected, res.Error
}

func (r *groupRepository) IsMember(ctx context.Context, groupId, accountId string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.GroupMember{}).
		Where("group_id = ? AND account_id = ?", groupId, accountId).
		Count(&count).Error

	return count > 0, err
}

func (r *groupRepository) CountMembers(ctx context.Context, groupId string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.GroupMember{}).
		Where("group_id = ?", groupId).
		Count(&count).Error

	return count, err
}
