package services

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
)

// AuthSvcFacade handles registration and login for application users.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.AppUser, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
