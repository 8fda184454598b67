package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/identity"
)

// LoginInput contains the input for user login
type LoginInput struct {
	Username string
	Password string
}

// TokenResult contains an issued token pair
type TokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	TokenResult
	User UserInfo
}

// UserInfo contains basic user information
type UserInfo struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	Email       string
	IsStaff     bool
	LastLoginAt *time.Time
}

// LogoutInput identifies the access token to revoke
type LogoutInput struct {
	TokenJTI string
	TokenTTL time.Duration
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// CreateAdminInput contains the input for staff account creation
type CreateAdminInput struct {
	Username string
	Email    string
	Password string
}

// CreateAdminResult reports what CreateAdmin did
type CreateAdminResult struct {
	User    UserInfo
	Created bool // false when the user existed and was promoted
}

func toUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.GetDisplayNameOrUsername(),
		Email:       u.Email,
		IsStaff:     u.IsStaff,
		LastLoginAt: u.LastLoginAt,
	}
}
