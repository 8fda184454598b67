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

var complaintOrderFields = map[string]bool{
	"created_at":  true,
	"updated_at":  true,
	"status":      true,
	"resolved_at": true,
}

// ComplaintService handles filing and resolving complaints
type ComplaintService struct {
	txScope TransactionScope
	gate    *Gate
	events  publisher
	logger  *zap.Logger
	now     func() time.Time
}

// NewComplaintService creates a new ComplaintService
func NewComplaintService(txScope TransactionScope, gate *Gate, logger *zap.Logger) *ComplaintService {
	return &ComplaintService{
		txScope: txScope,
		gate:    gate,
		events:  publisher{logger: logger},
		logger:  logger,
		now:     time.Now,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ComplaintService) SetEventPublisher(p shared.EventPublisher) {
	s.events.bus = p
}

// File records a pending complaint. Residents file for themselves;
// administrators must name the tenant they file for.
func (s *ComplaintService) File(ctx context.Context, actor identity.Identity, input FileComplaintInput) (*ComplaintResponse, error) {
	if err := s.gate.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	var resp ComplaintResponse
	pending := newPendingEvents(actor)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenant, err := s.resolveTenant(ctx, repos, actor, input.TenantID)
		if err != nil {
			return err
		}
		if err := s.gate.RequireOwner(actor, tenant); err != nil {
			return err
		}

		complaint, err := hostel.NewComplaint(tenant.ID, input.Subject, input.Message)
		if err != nil {
			return err
		}
		if err := repos.Complaints().Create(ctx, complaint); err != nil {
			return err
		}
		pending.collect(complaint)

		names, err := tenantUsernames(ctx, repos, []uuid.UUID{tenant.ID})
		if err != nil {
			return err
		}
		resp = ToComplaintResponse(complaint, names[tenant.ID])
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.events.publish(ctx, pending)

	s.logger.Info("Complaint filed",
		zap.String("complaint_id", resp.ID.String()),
		zap.String("tenant_id", resp.TenantID.String()))

	return &resp, nil
}

// Resolve closes a pending complaint. Admin-only.
func (s *ComplaintService) Resolve(ctx context.Context, actor identity.Identity, complaintID uuid.UUID) (*ComplaintResponse, error) {
	if err := s.gate.RequirePrivileged(actor); err != nil {
		return nil, err
	}

	var resp ComplaintResponse
	pending := newPendingEvents(actor)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		complaint, err := repos.Complaints().FindByID(ctx, complaintID)
		if err != nil {
			return err
		}
		if err := complaint.Resolve(s.now()); err != nil {
			return err
		}
		ok, err := repos.Complaints().MarkResolved(ctx, complaint)
		if err != nil {
			return err
		}
		if !ok {
			return hostel.ErrComplaintAlreadyResolved
		}
		pending.collect(complaint)

		names, err := tenantUsernames(ctx, repos, []uuid.UUID{complaint.TenantID})
		if err != nil {
			return err
		}
		resp = ToComplaintResponse(complaint, names[complaint.TenantID])
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.events.publish(ctx, pending)

	s.logger.Info("Complaint resolved", zap.String("complaint_id", complaintID.String()))
	return &resp, nil
}

// List returns a page of complaints. Residents only see their own.
func (s *ComplaintService) List(ctx context.Context, actor identity.Identity, filter ComplaintListFilter) (*shared.Paginated[ComplaintResponse], error) {
	if err := s.gate.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	domainFilter := hostel.ComplaintFilter{
		Filter:   filter.toShared(complaintOrderFields),
		TenantID: filter.TenantID,
	}
	if filter.Status != "" {
		status, err := hostel.ParseComplaintStatus(filter.Status)
		if err != nil {
			return nil, err
		}
		domainFilter.Status = &status
	}

	var page shared.Paginated[ComplaintResponse]
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if !s.gate.IsPrivileged(actor) {
			tenant, err := repos.Tenants().FindByUserID(ctx, actor.UserID)
			if err != nil {
				return err
			}
			domainFilter.TenantID = &tenant.ID
		}

		complaints, total, err := repos.Complaints().FindAll(ctx, domainFilter)
		if err != nil {
			return err
		}
		items, err := complaintResponses(ctx, repos, complaints)
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

func (s *ComplaintService) resolveTenant(ctx context.Context, repos TransactionalRepositories, actor identity.Identity, tenantID *uuid.UUID) (*hostel.Tenant, error) {
	if tenantID != nil {
		return repos.Tenants().FindByID(ctx, *tenantID)
	}
	tenant, err := repos.Tenants().FindByUserID(ctx, actor.UserID)
	if err != nil && s.gate.IsPrivileged(actor) && shared.KindOf(err) == shared.KindNotFound {
		return nil, shared.NewValidationError("TENANT_REQUIRED", "tenant_id is required when filing on behalf of a tenant")
	}
	return tenant, err
}
