package group_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(provideGroupRepo, provideGroupService)

func provideGroupRepo(db *gorm.DB) repositories.GroupRepository {
	return repositories.NewGroupRepository(db)
}

func provideGroupService(groupRepo repositories.GroupRepository) services.GroupServiceInterface {
	return services.NewGroupService(groupRepo)
}
