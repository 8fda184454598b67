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

var billOrderFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"month":      true,
	"amount":     true,
	"status":     true,
	"paid_at":    true,
}

// BillService handles bill generation and settlement
type BillService struct {
	txScope TransactionScope
	gate    *Gate
	events  publisher
	logger  *zap.Logger
	now     func() time.Time
}

// NewBillService creates a new BillService
func NewBillService(txScope TransactionScope, gate *Gate, logger *zap.Logger) *BillService {
	return &BillService{
		txScope: txScope,
		gate:    gate,
		events:  publisher{logger: logger},
		logger:  logger,
		now:     time.Now,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *BillService) SetEventPublisher(p shared.EventPublisher) {
	s.events.bus = p
}

// Create issues an unpaid bill to a tenant. Admin-only.
func (s *BillService) Create(ctx context.Context, actor identity.Identity, input CreateBillInput) (*BillResponse, error) {
	if err := s.gate.RequirePrivileged(actor); err != nil {
		return nil, err
	}

	var resp BillResponse
	pending := newPendingEvents(actor)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		tenant, err := repos.Tenants().FindByID(ctx, input.TenantID)
		if err != nil {
			return err
		}

		bill, err := hostel.NewBill(tenant.ID, input.Month, input.Amount)
		if err != nil {
			return err
		}

		exists, err := repos.Bills().ExistsForMonth(ctx, tenant.ID, bill.Month, nil)
		if err != nil {
			return err
		}
		if exists {
			return duplicateBill(bill.Month)
		}

		if err := repos.Bills().Create(ctx, bill); err != nil {
			return err
		}
		pending.collect(bill)

		names, err := tenantUsernames(ctx, repos, []uuid.UUID{tenant.ID})
		if err != nil {
			return err
		}
		resp = ToBillResponse(bill, names[tenant.ID])
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.events.publish(ctx, pending)

	s.logger.Info("Bill created",
		zap.String("bill_id", resp.ID.String()),
		zap.String("tenant_id", resp.TenantID.String()),
		zap.String("month", resp.Month),
		zap.String("amount", resp.Amount.String()))

	return &resp, nil
}

// Pay settles a bill. The bill owner or an administrator may pay it.
// Of two concurrent payments exactly one succeeds; the other sees a conflict.
func (s *BillService) Pay(ctx context.Context, actor identity.Identity, billID uuid.UUID) (*BillResponse, error) {
	var resp BillResponse
	pending := newPendingEvents(actor)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		bill, tenant, err := s.loadBill(ctx, repos, billID)
		if err != nil {
			return err
		}
		if err := s.gate.RequireOwner(actor, tenant); err != nil {
			return err
		}

		if err := bill.Pay(s.now()); err != nil {
			return err
		}
		ok, err := repos.Bills().MarkPaid(ctx, bill)
		if err != nil {
			return err
		}
		if !ok {
			return hostel.ErrBillAlreadyPaid
		}
		pending.collect(bill)

		names, err := tenantUsernames(ctx, repos, []uuid.UUID{tenant.ID})
		if err != nil {
			return err
		}
		resp = ToBillResponse(bill, names[tenant.ID])
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.events.publish(ctx, pending)

	s.logger.Info("Bill paid",
		zap.String("bill_id", billID.String()),
		zap.String("actor", actor.UserID.String()))

	return &resp, nil
}

// Update edits month or amount of an unpaid bill. Admin-only.
func (s *BillService) Update(ctx context.Context, actor identity.Identity, billID uuid.UUID, input UpdateBillInput) (*BillResponse, error) {
	if err := s.gate.RequirePrivileged(actor); err != nil {
		return nil, err
	}

	var resp BillResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		bill, err := repos.Bills().FindByID(ctx, billID)
		if err != nil {
			return err
		}

		if err := bill.Update(hostel.BillUpdate{Month: input.Month, Amount: input.Amount}); err != nil {
			return err
		}

		if input.Month != nil {
			exists, err := repos.Bills().ExistsForMonth(ctx, bill.TenantID, bill.Month, &bill.ID)
			if err != nil {
				return err
			}
			if exists {
				return duplicateBill(bill.Month)
			}
		}

		if err := repos.Bills().Update(ctx, bill); err != nil {
			return err
		}

		names, err := tenantUsernames(ctx, repos, []uuid.UUID{bill.TenantID})
		if err != nil {
			return err
		}
		resp = ToBillResponse(bill, names[bill.TenantID])
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Bill updated", zap.String("bill_id", billID.String()))
	return &resp, nil
}

// Delete removes a bill. Admin-only.
func (s *BillService) Delete(ctx context.Context, actor identity.Identity, billID uuid.UUID) error {
	if err := s.gate.RequirePrivileged(actor); err != nil {
		return err
	}

	pending := newPendingEvents(actor)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		bill, err := repos.Bills().FindByID(ctx, billID)
		if err != nil {
			return err
		}
		if err := repos.Bills().Delete(ctx, bill.ID); err != nil {
			return err
		}
		pending.add(hostel.NewBillDeletedEvent(bill))
		return nil
	})
	if err != nil {
		return err
	}
	s.events.publish(ctx, pending)

	s.logger.Info("Bill deleted", zap.String("bill_id", billID.String()))
	return nil
}

// Get returns a bill visible to the caller
func (s *BillService) Get(ctx context.Context, actor identity.Identity, billID uuid.UUID) (*BillResponse, error) {
	var resp BillResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		bill, tenant, err := s.loadBill(ctx, repos, billID)
		if err != nil {
			return err
		}
		if err := s.gate.RequireOwner(actor, tenant); err != nil {
			return err
		}
		names, err := tenantUsernames(ctx, repos, []uuid.UUID{tenant.ID})
		if err != nil {
			return err
		}
		resp = ToBillResponse(bill, names[tenant.ID])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns a page of bills. Residents only ever see their own bills,
// whatever tenant filter they pass.
func (s *BillService) List(ctx context.Context, actor identity.Identity, filter BillListFilter) (*BillListResult, error) {
	if err := s.gate.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	domainFilter := hostel.BillFilter{
		Filter:   filter.toShared(billOrderFields),
		TenantID: filter.TenantID,
		Month:    filter.Month,
	}
	if filter.Status != "" {
		status, err := hostel.ParseBillStatus(filter.Status)
		if err != nil {
			return nil, err
		}
		domainFilter.Status = &status
	}

	var result BillListResult
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if !s.gate.IsPrivileged(actor) {
			tenant, err := repos.Tenants().FindByUserID(ctx, actor.UserID)
			if err != nil {
				return err
			}
			domainFilter.TenantID = &tenant.ID
		}

		bills, total, err := repos.Bills().FindAll(ctx, domainFilter)
		if err != nil {
			return err
		}
		items, err := billResponses(ctx, repos, bills)
		if err != nil {
			return err
		}
		result.Paginated = shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)

		if domainFilter.TenantID != nil {
			totals, err := repos.Bills().SumByTenant(ctx, *domainFilter.TenantID)
			if err != nil {
				return err
			}
			result.Totals = &BillTotalsResponse{TotalPaid: totals.Paid, TotalUnpaid: totals.Unpaid}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *BillService) loadBill(ctx context.Context, repos TransactionalRepositories, billID uuid.UUID) (*hostel.Bill, *hostel.Tenant, error) {
	bill, err := repos.Bills().FindByID(ctx, billID)
	if err != nil {
		return nil, nil, err
	}
	tenant, err := repos.Tenants().FindByID(ctx, bill.TenantID)
	if err != nil {
		return nil, nil, err
	}
	return bill, tenant, nil
}

func duplicateBill(month string) error {
	return shared.NewConflictError("BILL_EXISTS", "A bill for %s already exists for this tenant", month)
}
