package service

import (
	"context"
	"fmt"
	"net/mail"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storefront/internal/auth"
	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and the login/refresh/verify session
// protocol. Token verification is stateless: logout and refresh rotation
// never revoke already-issued tokens before their natural expiry.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string, role model.Role) (*model.User, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *model.User, err error)
	Refresh(ctx context.Context, refreshToken string) (accessToken, newRefreshToken string, user *model.User, err error)
	Authenticate(ctx context.Context, accessToken string) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, email, password, fullName string, role model.Role) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	if role == "" {
		role = model.RoleClient
	}
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		FullName:     fullName,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *model.User, err error) {
	user, err = s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, errors.ErrInvalidCredentials
	}

	accessToken, err = s.jwtService.GenerateAccessToken(user.Email)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err = s.jwtService.GenerateRefreshToken(user.Email)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// Refresh validates a refresh token and rotates it, issuing a new
// access/refresh pair for the same subject.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (accessToken, newRefreshToken string, user *model.User, err error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != auth.TokenTypeRefresh || claims.Subject == "" {
		return "", "", nil, errors.ErrInvalidToken
	}

	user, err = s.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return "", "", nil, errors.ErrUserNotFound
	}

	accessToken, err = s.jwtService.GenerateAccessToken(user.Email)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	newRefreshToken, err = s.jwtService.GenerateRefreshToken(user.Email)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return accessToken, newRefreshToken, user, nil
}

// Authenticate verifies a bearer access token and resolves its subject to
// a user record. The subject must still parse as an email address.
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*model.User, error) {
	claims, err := s.jwtService.ValidateToken(accessToken)
	if err != nil || claims.TokenType != auth.TokenTypeAccess {
		return nil, errors.ErrInvalidToken
	}

	if _, err := mail.ParseAddress(claims.Subject); err != nil {
		return nil, errors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}

	return user, nil
}
