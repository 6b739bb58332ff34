package account_fx

import (
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderly/internal/repositories"
	"wanderly/internal/services"
	"wanderly/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

// provideAccountService grants the admin role to emails listed in
// ADMIN_EMAILS (comma separated) when they register.
func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	admins := strings.Split(utils.GetEnvWithDefault("ADMIN_EMAILS", ""), ",")
	return services.NewAccountService(accountRepo, admins...)
}
