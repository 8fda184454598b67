package hostel

import (
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/domain/shared"
)

// PrivilegeChecker decides whether an identity has administrative rights.
// The identity adapter implements it.
type PrivilegeChecker interface {
	IsPrivileged(id identity.Identity) bool
}

type claimChecker struct{}

func (claimChecker) IsPrivileged(id identity.Identity) bool { return id.IsPrivileged() }

// Gate enforces the two access rules of the hostel: admin-only operations,
// and operations restricted to the tenant who owns the record.
// Privileged identities pass every check.
type Gate struct {
	privileges PrivilegeChecker
}

// NewGate creates a gate. A nil checker trusts the identity's own flag.
func NewGate(privileges PrivilegeChecker) *Gate {
	if privileges == nil {
		privileges = claimChecker{}
	}
	return &Gate{privileges: privileges}
}

// IsPrivileged reports whether actor is an administrator
func (g *Gate) IsPrivileged(actor identity.Identity) bool {
	return !actor.IsZero() && g.privileges.IsPrivileged(actor)
}

// RequireAuthenticated rejects the zero identity
func (g *Gate) RequireAuthenticated(actor identity.Identity) error {
	if actor.IsZero() {
		return shared.ErrUnauthorized
	}
	return nil
}

// RequirePrivileged allows administrators only
func (g *Gate) RequirePrivileged(actor identity.Identity) error {
	if err := g.RequireAuthenticated(actor); err != nil {
		return err
	}
	if !g.privileges.IsPrivileged(actor) {
		return shared.NewForbiddenError("Administrator privileges required")
	}
	return nil
}

// RequireOwner allows administrators and the user the tenant belongs to
func (g *Gate) RequireOwner(actor identity.Identity, tenant *hostel.Tenant) error {
	if err := g.RequireAuthenticated(actor); err != nil {
		return err
	}
	if g.privileges.IsPrivileged(actor) || tenant.OwnedBy(actor.UserID) {
		return nil
	}
	return shared.NewForbiddenError("You can only access your own records")
}
