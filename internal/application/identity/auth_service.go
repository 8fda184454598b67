package identity

import (
	"context"
	"errors"
	"time"

	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/hostel/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	MaxLoginAttempts int           // Maximum failed login attempts before lock
	LockDuration     time.Duration // How long to lock account after max attempts
	RevokeTTL        time.Duration // How long a user-wide revocation is kept
}

// DefaultAuthServiceConfig returns default configuration
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		MaxLoginAttempts: 5,
		LockDuration:     15 * time.Minute,
		RevokeTTL:        7 * 24 * time.Hour,
	}
}

// Authentication errors
var (
	ErrInvalidCredentials = shared.NewDomainError(shared.KindUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
	ErrAccountLocked      = shared.NewDomainError(shared.KindForbidden, "ACCOUNT_LOCKED", "Account is locked. Please try again later")
	ErrAccountInactive    = shared.NewDomainError(shared.KindForbidden, "ACCOUNT_INACTIVE", "Account has been deactivated")
)

// AuthService is the identity adapter: it authenticates credentials against
// the user store and manages token sessions.
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	config     AuthServiceConfig
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		config:     config,
		logger:     logger,
	}
}

// IsPrivileged reports whether the identity has administrative rights
func (s *AuthService) IsPrivileged(id identity.Identity) bool {
	return id.IsPrivileged()
}

// Authenticate checks credentials and returns the identity on success.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*identity.Identity, error) {
	user, err := s.authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	id := user.Identity()
	return &id, nil
}

func (s *AuthService) authenticate(ctx context.Context, username, password string) (*identity.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login for unknown user", zap.String("username", username))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CanLogin() {
		if user.IsLocked() {
			s.logger.Warn("Login attempt for locked account", zap.String("username", username))
			return nil, ErrAccountLocked
		}
		s.logger.Warn("Login attempt for inactive account", zap.String("username", username))
		return nil, ErrAccountInactive
	}

	if !user.VerifyPassword(password) {
		locked := user.RecordLoginFailure(s.config.MaxLoginAttempts, s.config.LockDuration)
		if err := s.userRepo.Update(ctx, user); err != nil {
			s.logger.Error("Failed to update user after login failure", zap.Error(err))
		}

		if locked {
			s.logger.Warn("Account locked after too many failed attempts",
				zap.String("username", username),
				zap.Int("attempts", s.config.MaxLoginAttempts))
			return nil, ErrAccountLocked
		}

		s.logger.Warn("Invalid password attempt",
			zap.String("username", username),
			zap.Int("failed_attempts", user.FailedAttempts))
		return nil, ErrInvalidCredentials
	}

	user.RecordLoginSuccess()
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user after successful login", zap.Error(err))
	}

	return user, nil
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	pair, err := s.jwtService.GenerateTokenPair(user.Identity())
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, err
	}

	s.logger.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("user_id", user.ID.String()),
		zap.Bool("staff", user.IsStaff))

	return &LoginResult{TokenResult: toTokenResult(pair), User: toUserInfo(user)}, nil
}

// Refresh rotates a refresh token, reloading the user so that
// deactivation and privilege changes take effect.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, mapTokenError(err)
	}

	userID, err := claims.UserUUID()
	if err != nil {
		return nil, mapTokenError(auth.ErrInvalidClaims)
	}

	revoked, err := s.blacklist.IsUserRevoked(ctx, claims.UserID, claims.IssuedAtTime())
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, mapTokenError(auth.ErrTokenBlacklisted)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, mapTokenError(auth.ErrInvalidClaims)
		}
		return nil, err
	}
	if !user.CanLogin() {
		return nil, ErrAccountInactive
	}

	pair, err := s.jwtService.RefreshTokenPair(refreshToken, user.Identity())
	if err != nil {
		return nil, mapTokenError(err)
	}

	result := toTokenResult(pair)
	return &result, nil
}

// Logout revokes the presented access token
func (s *AuthService) Logout(ctx context.Context, actor identity.Identity, input LogoutInput) error {
	if input.TokenJTI != "" {
		if err := s.blacklist.Revoke(ctx, input.TokenJTI, input.TokenTTL); err != nil {
			s.logger.Error("Failed to revoke token", zap.Error(err))
			return err
		}
	}

	s.logger.Info("User logged out", zap.String("user_id", actor.UserID.String()))
	return nil
}

// Me returns the current user's information
func (s *AuthService) Me(ctx context.Context, actor identity.Identity) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	info := toUserInfo(user)
	return &info, nil
}

// ChangePassword changes the caller's password and revokes their other sessions
func (s *AuthService) ChangePassword(ctx context.Context, actor identity.Identity, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user after password change", zap.Error(err))
		return err
	}

	if err := s.blacklist.RevokeUser(ctx, user.ID.String(), s.config.RevokeTTL); err != nil {
		s.logger.Warn("Failed to revoke sessions after password change", zap.Error(err))
	}

	s.logger.Info("User password changed", zap.String("user_id", user.ID.String()))
	return nil
}

// CreateAdmin creates a staff account, or promotes an existing user with the
// same username. Running it twice is harmless.
func (s *AuthService) CreateAdmin(ctx context.Context, input CreateAdminInput) (*CreateAdminResult, error) {
	existing, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.IsStaff {
			s.logger.Info("Admin already exists", zap.String("username", existing.Username))
			return &CreateAdminResult{User: toUserInfo(existing)}, nil
		}
		existing.GrantStaff()
		if err := s.userRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		s.logger.Info("Promoted existing user to admin", zap.String("username", existing.Username))
		return &CreateAdminResult{User: toUserInfo(existing)}, nil
	}

	user, err := identity.NewStaffUser(input.Username, input.Password)
	if err != nil {
		return nil, err
	}
	if err := user.SetEmail(input.Email); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Admin created", zap.String("username", user.Username))
	return &CreateAdminResult{User: toUserInfo(user), Created: true}, nil
}

func toTokenResult(pair *auth.TokenPair) TokenResult {
	return TokenResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.NewDomainError(shared.KindUnauthorized, "TOKEN_EXPIRED", "Refresh token has expired")
	case errors.Is(err, auth.ErrMaxRefreshExceeded):
		return shared.NewDomainError(shared.KindUnauthorized, "TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	case errors.Is(err, auth.ErrTokenBlacklisted):
		return shared.NewDomainError(shared.KindUnauthorized, "TOKEN_REVOKED", "Token has been revoked")
	default:
		return shared.NewDomainError(shared.KindUnauthorized, "TOKEN_INVALID", "Invalid refresh token")
	}
}
