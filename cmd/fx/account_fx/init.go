package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wander/internal/repositories"
	"wander/internal/services"
	mem "wander/pkg/memcache"
)

var Module = fx.Provide(provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens mem.ResetTokenStore,
	mailService services.IMailService,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetTokens, mailService)
}
