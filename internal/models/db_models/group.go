package db_models

import "github.com/google/uuid"

type TravelGroup struct {
	BaseModel
	OwnerID       uuid.UUID
	Name          string
	Description   string
	DestinationID uuid.UUID
	StartDate     int64
	MaxMembers    int

	Members []GroupMember `gorm:"foreignKey:GroupID"`
}

type GroupMember struct {
	BaseModel
	GroupID   uuid.UUID `gorm:"uniqueIndex:idx_group_account"`
	AccountID uuid.UUID `gorm:"uniqueIndex:idx_group_account"`
}
