package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/buildcrew/construction_mgmt_app/internal/platform/config"
	"github.com/buildcrew/construction_mgmt_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredentials is returned when the username/password pair does
// not match. Deliberately the same for unknown users and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	BaseService
	userRepo portsrepo.AppUserRepositoryFacade
	cfg      *config.Config
}

func NewAuthService(userRepo portsrepo.AppUserRepositoryFacade, cfg *config.Config) portssvc.AuthSvcFacade {
	return &AuthService{userRepo: userRepo, cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.AppUser, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.AppUser{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	userID, err := s.userRepo.SaveAppUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to register user")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	user.UserID = userID

	s.LogInfo(ctx, "User registered", "user_id", userID)
	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindAppUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, expiresIn, err := s.issueToken(user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue token", "user_id", user.UserID)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", "user_id", user.UserID)
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      dto.ToUserResponse(user),
	}, nil
}

func (s *AuthService) issueToken(userID int64) (string, int64, error) {
	now := time.Now()
	expiry := now.Add(s.cfg.JWTExpiryDuration)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiry),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", 0, err
	}
	return signed, int64(s.cfg.JWTExpiryDuration.Seconds()), nil
}
