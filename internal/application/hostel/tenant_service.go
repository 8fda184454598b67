package hostel

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/domain/shared"
	"go.uber.org/zap"
)

var tenantOrderFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"join_date":  true,
}

// TenantService manages resident profiles and room assignment
type TenantService struct {
	txScope TransactionScope
	gate    *Gate
	events  publisher
	logger  *zap.Logger
	now     func() time.Time
}

// NewTenantService creates a new TenantService
func NewTenantService(txScope TransactionScope, gate *Gate, logger *zap.Logger) *TenantService {
	return &TenantService{
		txScope: txScope,
		gate:    gate,
		events:  publisher{logger: logger},
		logger:  logger,
		now:     time.Now,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *TenantService) SetEventPublisher(p shared.EventPublisher) {
	s.events.bus = p
}

// Register creates a non-privileged account together with its tenant profile
func (s *TenantService) Register(ctx context.Context, input RegisterTenantInput) (*TenantResponse, error) {
	user, err := identity.NewUser(input.Username, input.Password)
	if err != nil {
		return nil, err
	}
	if err := user.SetEmail(input.Email); err != nil {
		return nil, err
	}
	if input.DisplayName != "" {
		if err := user.SetDisplayName(input.DisplayName); err != nil {
			return nil, err
		}
	}

	tenant, err := hostel.NewTenant(user.ID, s.now())
	if err != nil {
		return nil, err
	}
	if err := tenant.UpdateContact(input.Phone, input.Address); err != nil {
		return nil, err
	}

	pending := newPendingEvents(user.Identity())
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.Users().ExistsByUsername(ctx, user.Username)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewValidationError("USERNAME_EXISTS", "Username %s is already taken", user.Username)
		}
		if err := repos.Users().Create(ctx, user); err != nil {
			return err
		}
		if err := repos.Tenants().Create(ctx, tenant); err != nil {
			return err
		}
		pending.collect(user, tenant)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.events.publish(ctx, pending)

	s.logger.Info("Tenant registered",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("username", user.Username))

	resp := ToTenantResponse(tenant, user, nil)
	return &resp, nil
}

// AssignRoom moves a tenant into a room, or out of any room when
// input.RoomID is nil.
func (s *TenantService) AssignRoom(ctx context.Context, actor identity.Identity, tenantID uuid.UUID, input AssignRoomInput) (*TenantResponse, error) {
	if err := s.gate.RequirePrivileged(actor); err != nil {
		return nil, err
	}

	var resp TenantResponse
	pending := newPendingEvents(actor)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenant, err := repos.Tenants().FindByID(ctx, tenantID)
		if err != nil {
			return err
		}

		if input.RoomID == nil {
			tenant.Unassign()
		} else {
			room, err := repos.Rooms().FindByIDForUpdate(ctx, *input.RoomID)
			if err != nil {
				return err
			}
			occupancy, err := repos.Tenants().CountByRoom(ctx, room.ID)
			if err != nil {
				return err
			}
			if err := tenant.AssignRoom(room, occupancy); err != nil {
				return err
			}
		}

		if err := repos.Tenants().Update(ctx, tenant); err != nil {
			return err
		}
		pending.collect(tenant)

		resp, err = tenantResponse(ctx, repos, tenant)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.events.publish(ctx, pending)

	s.logger.Info("Tenant room assignment changed",
		zap.String("tenant_id", tenantID.String()),
		zap.Stringp("room_id", uuidStringp(input.RoomID)))

	return &resp, nil
}

// UpdateProfile changes a tenant's contact details
func (s *TenantService) UpdateProfile(ctx context.Context, actor identity.Identity, tenantID uuid.UUID, input UpdateProfileInput) (*TenantResponse, error) {
	var resp TenantResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenant, err := repos.Tenants().FindByID(ctx, tenantID)
		if err != nil {
			return err
		}
		if err := s.gate.RequireOwner(actor, tenant); err != nil {
			return err
		}

		if err := tenant.UpdateContact(input.Phone, input.Address); err != nil {
			return err
		}
		if err := repos.Tenants().Update(ctx, tenant); err != nil {
			return err
		}

		resp, err = tenantResponse(ctx, repos, tenant)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateMyProfile changes the caller's own contact details
func (s *TenantService) UpdateMyProfile(ctx context.Context, actor identity.Identity, input UpdateProfileInput) (*TenantResponse, error) {
	mine, err := s.Mine(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.UpdateProfile(ctx, actor, mine.ID, input)
}

// Get returns a tenant. Residents may only read their own record.
func (s *TenantService) Get(ctx context.Context, actor identity.Identity, tenantID uuid.UUID) (*TenantResponse, error) {
	var resp TenantResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenant, err := repos.Tenants().FindByID(ctx, tenantID)
		if err != nil {
			return err
		}
		if err := s.gate.RequireOwner(actor, tenant); err != nil {
			return err
		}
		resp, err = tenantResponse(ctx, repos, tenant)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Mine returns the tenant record of the caller
func (s *TenantService) Mine(ctx context.Context, actor identity.Identity) (*TenantResponse, error) {
	if err := s.gate.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	var resp TenantResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenant, err := repos.Tenants().FindByUserID(ctx, actor.UserID)
		if err != nil {
			return err
		}
		resp, err = tenantResponse(ctx, repos, tenant)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns a page of tenants. Admin-only.
func (s *TenantService) List(ctx context.Context, actor identity.Identity, filter TenantListFilter) (*shared.Paginated[TenantResponse], error) {
	if err := s.gate.RequirePrivileged(actor); err != nil {
		return nil, err
	}

	domainFilter := hostel.TenantFilter{
		Filter:     filter.toShared(tenantOrderFields),
		RoomID:     filter.RoomID,
		Unassigned: filter.Unassigned,
	}

	var page shared.Paginated[TenantResponse]
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenants, total, err := repos.Tenants().FindAll(ctx, domainFilter)
		if err != nil {
			return err
		}
		items, err := tenantResponses(ctx, repos, tenants)
		if err != nil {
			return err
		}
		page = shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func uuidStringp(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
