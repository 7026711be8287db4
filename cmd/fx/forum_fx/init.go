package forum_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(provideForumRepo, provideForumService)

func provideForumRepo(db *gorm.DB) repositories.ForumRepository {
	return repositories.NewForumRepository(db)
}

func provideForumService(forumRepo repositories.ForumRepository) services.ForumServiceInterface {
	return services.NewForumService(forumRepo)
}
