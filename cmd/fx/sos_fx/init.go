package sos_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(provideSOSRepo, provideSOSService)

func provideSOSRepo(db *gorm.DB) repositories.SOSRepository {
	return repositories.NewSOSRepository(db)
}

func provideSOSService(
	sosRepo repositories.SOSRepository,
	accountRepo repositories.AccountRepository,
	mailService services.IMailService,
) services.SOSServiceInterface {
	return services.NewSOSService(sosRepo, accountRepo, mailService)
}
