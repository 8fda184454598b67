package identity

import "github.com/hostel/backend/internal/domain/shared"

const AggregateTypeUser = "User"

const (
	EventTypeUserCreated         = "UserCreated"
	EventTypeUserPasswordChanged = "UserPasswordChanged"
	EventTypeUserLocked          = "UserLocked"
)

// Every user event is raised by the account itself.
func userEvent(u *User, eventType string) shared.BaseDomainEvent {
	return shared.NewBaseDomainEvent(eventType, AggregateTypeUser, u.ID, u.ID)
}

// UserCreatedEvent records a new account, staff or tenant.
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
}

func NewUserCreatedEvent(u *User) *UserCreatedEvent {
	return &UserCreatedEvent{userEvent(u, EventTypeUserCreated), u.Username, u.IsStaff}
}

type UserPasswordChangedEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
}

func NewUserPasswordChangedEvent(u *User) *UserPasswordChangedEvent {
	return &UserPasswordChangedEvent{userEvent(u, EventTypeUserPasswordChanged), u.Username}
}

// UserLockedEvent records an account locked after too many failed logins.
type UserLockedEvent struct {
	shared.BaseDomainEvent
	Username       string `json:"username"`
	FailedAttempts int    `json:"failed_attempts"`
}

func NewUserLockedEvent(u *User) *UserLockedEvent {
	return &UserLockedEvent{userEvent(u, EventTypeUserLocked), u.Username, u.FailedAttempts}
}
