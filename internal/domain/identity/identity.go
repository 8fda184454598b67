package identity

import "github.com/google/uuid"

// Identity is the resolved caller of an operation. It is passed explicitly
// into every service call; nothing reads the current user from ambient state.
type Identity struct {
	UserID     uuid.UUID
	Username   string
	Privileged bool
}

// IsPrivileged reports whether the identity has administrative rights.
func (i Identity) IsPrivileged() bool {
	return i.Privileged
}

// IsZero reports whether the identity is unset.
func (i Identity) IsZero() bool {
	return i.UserID == uuid.Nil
}
