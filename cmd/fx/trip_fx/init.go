package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfare/internal/repositories"
	"wayfare/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, userRepo repositories.UserRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo, userRepo)
}
