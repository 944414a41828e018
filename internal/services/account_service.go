package services

import (
	"context"
	"log"
	"time"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResult, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
	jwtMaker *utils.JWTMaker
}

func NewAccountService(userRepo repositories.UserRepository, jwtMaker *utils.JWTMaker) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		jwtMaker: jwtMaker,
	}
}

func (a *AccountService) Register(ctx context.Context, req request_models.RegisterRequest) error {
	existing, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResult, error) {
	startTime := time.Now()

	user, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.jwtMaker.CreateToken(user.ID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	log.Printf("Login for %s took %s", req.Email, time.Since(startTime))

	return &response_models.LoginResult{
		UserID: user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		Token:  token,
	}, nil
}
