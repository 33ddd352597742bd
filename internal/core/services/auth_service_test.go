package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/buildcrew/construction_mgmt_app/internal/core/services"
	"github.com/buildcrew/construction_mgmt_app/internal/dto"
	"github.com/buildcrew/construction_mgmt_app/internal/platform/config"
	"github.com/buildcrew/construction_mgmt_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAppUserRepository is a mock implementation of the app user repository facade.
type MockAppUserRepository struct {
	mock.Mock
}

func (m *MockAppUserRepository) SaveAppUser(ctx context.Context, user domain.AppUser) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppUserRepository) FindAppUserByID(ctx context.Context, userID int64) (*domain.AppUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppUser), args.Error(1)
}

func (m *MockAppUserRepository) FindAppUserByUsername(ctx context.Context, username string) (*domain.AppUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppUser), args.Error(1)
}

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockAppUserRepository
	cfg          *config.Config
	service      portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockAppUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTIssuer:         "cma-test",
		JWTExpiryDuration: time.Hour,
	}
	suite.service = services.NewAuthService(suite.mockUserRepo, suite.cfg)
}

func (suite *AuthServiceTestSuite) TestRegister_HashesPassword() {
	ctx := context.Background()
	suite.mockUserRepo.On("SaveAppUser", ctx, mock.MatchedBy(func(u domain.AppUser) bool {
		return u.Username == "siteboss" &&
			u.PasswordHash != "hunter2longer" &&
			utils.CheckPasswordHash("hunter2longer", u.PasswordHash)
	})).Return(int64(1), nil).Once()

	user, err := suite.service.Register(ctx, dto.RegisterRequest{
		Username: "siteboss",
		Password: "hunter2longer",
		Name:     "Site Boss",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(1), user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()
	suite.mockUserRepo.On("SaveAppUser", ctx, mock.Anything).
		Return(int64(0), apperrors.ErrDuplicate).Once()

	_, err := suite.service.Register(ctx, dto.RegisterRequest{
		Username: "siteboss",
		Password: "hunter2longer",
		Name:     "Site Boss",
	})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AuthServiceTestSuite) storedUser(password string) *domain.AppUser {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.AppUser{UserID: 42, Username: "siteboss", PasswordHash: hash, Name: "Site Boss"}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindAppUserByUsername", ctx, "siteboss").
		Return(suite.storedUser("hunter2longer"), nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Username: "siteboss", Password: "hunter2longer"})

	suite.Require().NoError(err)
	suite.Equal(int64(42), resp.User.UserID)
	suite.Equal(int64(3600), resp.ExpiresIn)

	// The token must verify against the configured secret and carry the
	// user ID as its subject.
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(suite.cfg.JWTSecret), nil
	})
	suite.Require().NoError(err)
	suite.True(token.Valid)
	suite.Equal("42", claims.Subject)
	suite.Equal("cma-test", claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindAppUserByUsername", ctx, "siteboss").
		Return(suite.storedUser("hunter2longer"), nil).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{Username: "siteboss", Password: "wrong-password"})

	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUserSameError() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindAppUserByUsername", ctx, "nobody").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "whatever-pass"})

	// Indistinguishable from a wrong password on purpose.
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
