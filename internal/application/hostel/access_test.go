package hostel

import (
	"errors"
	"testing"

	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

type revokedPrivileges struct{}

func (revokedPrivileges) IsPrivileged(identity.Identity) bool { return false }

func TestGate(t *testing.T) {
	gate := NewGate(nil)
	admin := adminIdentity()
	owner := residentIdentity()
	stranger := residentIdentity()
	tenant := newTestTenant(t, owner)

	assert.NoError(t, gate.RequirePrivileged(admin))
	assert.True(t, errors.Is(gate.RequirePrivileged(owner), shared.ErrForbidden))
	assert.True(t, errors.Is(gate.RequirePrivileged(identity.Identity{}), shared.ErrUnauthorized))

	assert.NoError(t, gate.RequireOwner(admin, tenant))
	assert.NoError(t, gate.RequireOwner(owner, tenant))
	assert.True(t, errors.Is(gate.RequireOwner(stranger, tenant), shared.ErrForbidden))
	assert.True(t, errors.Is(gate.RequireOwner(identity.Identity{}, tenant), shared.ErrUnauthorized))
}

func TestGate_UsesPrivilegeChecker(t *testing.T) {
	gate := NewGate(revokedPrivileges{})
	err := gate.RequirePrivileged(adminIdentity())
	assert.True(t, errors.Is(err, shared.ErrForbidden))
	assert.False(t, gate.IsPrivileged(adminIdentity()))
}
