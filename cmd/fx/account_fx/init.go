package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfare/internal/repositories"
	"wayfare/internal/services"
	"wayfare/pkg/config"
	"wayfare/pkg/utils"
)

var Module = fx.Provide(
	provideJWTMaker, provideUserRepo, provideAccountService)

func provideJWTMaker(cfg *config.Config) *utils.JWTMaker {
	return utils.NewJWTMaker(cfg.JWTSecret, cfg.JWTTTL)
}

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, jwtMaker *utils.JWTMaker) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, jwtMaker)
}
