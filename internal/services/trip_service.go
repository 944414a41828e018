package services

import (
	"context"

	"github.com/google/uuid"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, userID string, req request_models.TripRequest) error
	ListTrips(ctx context.Context, userID string) ([]response_models.SavedTrip, error)
	GetProfile(ctx context.Context, userID string) (*response_models.Profile, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	userRepo repositories.UserRepository
}

func NewTripService(tripRepo repositories.TripRepository, userRepo repositories.UserRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		userRepo: userRepo,
	}
}

func (t *TripService) SaveTrip(ctx context.Context, userID string, req request_models.TripRequest) error {
	if err := ValidateTripRequest(req); err != nil {
		return err
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrAccountNotFound
	}

	trip := &db_models.Trip{
		UserID:      uid,
		Destination: req.Destination,
		Budget:      req.Budget,
		Days:        req.Days,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Transport:   req.Transport,
		Requirement: req.Requirement,
		Child:       req.Child,
	}

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (t *TripService) ListTrips(ctx context.Context, userID string) ([]response_models.SavedTrip, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}

	trips, err := t.tripRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	saved := make([]response_models.SavedTrip, 0, len(trips))
	for _, trip := range trips {
		saved = append(saved, response_models.SavedTrip{
			ID:          trip.ID.String(),
			Destination: trip.Destination,
			Budget:      trip.Budget,
			Days:        trip.Days,
			StartDate:   trip.StartDate,
			EndDate:     trip.EndDate,
			Transport:   trip.Transport,
			Requirement: trip.Requirement,
			Child:       trip.Child,
		})
	}

	return saved, nil
}

func (t *TripService) GetProfile(ctx context.Context, userID string) (*response_models.Profile, error) {
	user, err := t.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.Profile{
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
