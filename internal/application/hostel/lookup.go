package hostel

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/hostel"
)

// tenantResponses resolves users and rooms for a batch of tenants.
func tenantResponses(ctx context.Context, repos TransactionalRepositories, tenants []*hostel.Tenant) ([]TenantResponse, error) {
	userIDs := make([]uuid.UUID, 0, len(tenants))
	roomIDs := make([]uuid.UUID, 0, len(tenants))
	for _, t := range tenants {
		userIDs = append(userIDs, t.UserID)
		if t.RoomID != nil {
			roomIDs = append(roomIDs, *t.RoomID)
		}
	}

	if len(tenants) == 0 {
		return []TenantResponse{}, nil
	}

	users, err := repos.Users().FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	rooms := map[uuid.UUID]*hostel.Room{}
	if len(roomIDs) > 0 {
		rooms, err = repos.Rooms().FindByIDs(ctx, roomIDs)
		if err != nil {
			return nil, err
		}
	}

	out := make([]TenantResponse, len(tenants))
	for i, t := range tenants {
		var room *hostel.Room
		if t.RoomID != nil {
			room = rooms[*t.RoomID]
		}
		out[i] = ToTenantResponse(t, users[t.UserID], room)
	}
	return out, nil
}

func tenantResponse(ctx context.Context, repos TransactionalRepositories, tenant *hostel.Tenant) (TenantResponse, error) {
	out, err := tenantResponses(ctx, repos, []*hostel.Tenant{tenant})
	if err != nil {
		return TenantResponse{}, err
	}
	return out[0], nil
}

// tenantUsernames maps tenant IDs to the usernames of their accounts.
func tenantUsernames(ctx context.Context, repos TransactionalRepositories, tenantIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(tenantIDs))
	if len(tenantIDs) == 0 {
		return names, nil
	}

	tenants, err := repos.Tenants().FindByIDs(ctx, tenantIDs)
	if err != nil {
		return nil, err
	}
	userIDs := make([]uuid.UUID, 0, len(tenants))
	for _, t := range tenants {
		userIDs = append(userIDs, t.UserID)
	}
	users, err := repos.Users().FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	for id, t := range tenants {
		if u, ok := users[t.UserID]; ok {
			names[id] = u.Username
		}
	}
	return names, nil
}

func billResponses(ctx context.Context, repos TransactionalRepositories, bills []*hostel.Bill) ([]BillResponse, error) {
	ids := make([]uuid.UUID, len(bills))
	for i, b := range bills {
		ids[i] = b.TenantID
	}
	names, err := tenantUsernames(ctx, repos, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}

	out := make([]BillResponse, len(bills))
	for i, b := range bills {
		out[i] = ToBillResponse(b, names[b.TenantID])
	}
	return out, nil
}

func complaintResponses(ctx context.Context, repos TransactionalRepositories, complaints []*hostel.Complaint) ([]ComplaintResponse, error) {
	ids := make([]uuid.UUID, len(complaints))
	for i, c := range complaints {
		ids[i] = c.TenantID
	}
	names, err := tenantUsernames(ctx, repos, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}

	out := make([]ComplaintResponse, len(complaints))
	for i, c := range complaints {
		out[i] = ToComplaintResponse(c, names[c.TenantID])
	}
	return out, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
