package services

import (
	"context"

	"famboard/internal/models/db_models"
	"famboard/internal/models/request_models"
	"famboard/internal/models/response_models"
	"famboard/internal/repositories"
	"famboard/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	GetProfile(ctx context.Context, userID string) (*response_models.UserResponse, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	existingUser, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingUser != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Email:        &request.Email,
		PasswordHash: &hashedPassword,
		DisplayName:  request.DisplayName,
		AvatarURL:    request.AvatarURL,
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {

	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil || user.PasswordHash == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(*user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, request.Email)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID string) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(user *db_models.User) response_models.UserResponse {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	return response_models.UserResponse{
		ID:          user.ID.String(),
		Email:       email,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		IsVirtual:   user.IsVirtual,
	}
}
