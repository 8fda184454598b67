package hostel

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/domain/shared"
	"go.uber.org/zap"
)

var roomOrderFields = map[string]bool{
	"created_at":  true,
	"updated_at":  true,
	"room_number": true,
	"capacity":    true,
	"rent":        true,
}

// RoomService manages rooms. Every operation is admin-only.
type RoomService struct {
	txScope TransactionScope
	gate    *Gate
	events  publisher
	logger  *zap.Logger
}

// NewRoomService creates a new RoomService
func NewRoomService(txScope TransactionScope, gate *Gate, logger *zap.Logger) *RoomService {
	return &RoomService{
		txScope: txScope,
		gate:    gate,
		events:  publisher{logger: logger},
		logger:  logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *RoomService) SetEventPublisher(p shared.EventPublisher) {
	s.events.bus = p
}

// Create adds a new room
func (s *RoomService) Create(ctx context.Context, actor identity.Identity, input CreateRoomInput) (*RoomResponse, error) {
	if err := s.gate.RequirePrivileged(actor); err != nil {
		return nil, err
	}

	room, err := hostel.NewRoom(input.RoomNumber, input.Capacity, input.Rent)
	if err != nil {
		return nil, err
	}

	pending := newPendingEvents(actor)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.Rooms().ExistsByNumber(ctx, room.Number, nil)
		if err != nil {
			return err
		}
		if exists {
			return duplicateRoomNumber(room.Number)
		}
		if err := repos.Rooms().Create(ctx, room); err != nil {
			return err
		}
		pending.collect(room)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.events.publish(ctx, pending)

	s.logger.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("room_number", room.Number),
		zap.Int("capacity", room.Capacity))

	resp := ToRoomResponse(room, 0)
	return &resp, nil
}

// Update edits a room. Capacity cannot drop below the current occupancy.
func (s *RoomService) Update(ctx context.Context, actor identity.Identity, roomID uuid.UUID, input UpdateRoomInput) (*RoomResponse, error) {
	if err := s.gate.RequirePrivileged(actor); err != nil {
		return nil, err
	}

	var resp RoomResponse
	pending := newPendingEvents(actor)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		room, err := repos.Rooms().FindByIDForUpdate(ctx, roomID)
		if err != nil {
			return err
		}

		occupancy, err := repos.Tenants().CountByRoom(ctx, room.ID)
		if err != nil {
			return err
		}

		if err := room.Update(hostel.RoomUpdate{
			Number:   input.RoomNumber,
			Capacity: input.Capacity,
			Rent:     input.Rent,
		}); err != nil {
			return err
		}
		if !room.CanShrinkTo(room.Capacity, occupancy) {
			return shared.NewValidationError("CAPACITY_BELOW_OCCUPANCY",
				"Capacity %d is below the %d tenants currently in the room", room.Capacity, occupancy)
		}

		if input.RoomNumber != nil {
			exists, err := repos.Rooms().ExistsByNumber(ctx, room.Number, &room.ID)
			if err != nil {
				return err
			}
			if exists {
				return duplicateRoomNumber(room.Number)
			}
		}

		if err := repos.Rooms().Update(ctx, room); err != nil {
			return err
		}
		pending.collect(room)
		resp = ToRoomResponse(room, occupancy)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.events.publish(ctx, pending)

	s.logger.Info("Room updated", zap.String("room_id", roomID.String()))
	return &resp, nil
}

// Delete removes an empty room. Rooms with tenants are rejected.
func (s *RoomService) Delete(ctx context.Context, actor identity.Identity, roomID uuid.UUID) error {
	if err := s.gate.RequirePrivileged(actor); err != nil {
		return err
	}

	pending := newPendingEvents(actor)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		room, err := repos.Rooms().FindByIDForUpdate(ctx, roomID)
		if err != nil {
			return err
		}

		occupancy, err := repos.Tenants().CountByRoom(ctx, room.ID)
		if err != nil {
			return err
		}
		if occupancy > 0 {
			return shared.NewConflictError("ROOM_OCCUPIED",
				"Room %s still has %d tenant(s) assigned", room.Number, occupancy)
		}

		if err := repos.Rooms().Delete(ctx, room.ID); err != nil {
			return err
		}
		pending.add(hostel.NewRoomDeletedEvent(room))
		return nil
	})
	if err != nil {
		return err
	}
	s.events.publish(ctx, pending)

	s.logger.Info("Room deleted", zap.String("room_id", roomID.String()))
	return nil
}

// Get returns a room with its occupancy
func (s *RoomService) Get(ctx context.Context, actor identity.Identity, roomID uuid.UUID) (*RoomResponse, error) {
	if err := s.gate.RequirePrivileged(actor); err != nil {
		return nil, err
	}

	var resp RoomResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		room, err := repos.Rooms().FindByID(ctx, roomID)
		if err != nil {
			return err
		}
		occupancy, err := repos.Tenants().CountByRoom(ctx, room.ID)
		if err != nil {
			return err
		}
		resp = ToRoomResponse(room, occupancy)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns a page of rooms with their occupancy
func (s *RoomService) List(ctx context.Context, actor identity.Identity, filter RoomListFilter) (*shared.Paginated[RoomResponse], error) {
	if err := s.gate.RequirePrivileged(actor); err != nil {
		return nil, err
	}

	domainFilter := hostel.RoomFilter{Filter: filter.toShared(roomOrderFields)}

	var page shared.Paginated[RoomResponse]
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		rooms, total, err := repos.Rooms().FindAll(ctx, domainFilter)
		if err != nil {
			return err
		}

		ids := make([]uuid.UUID, len(rooms))
		for i, r := range rooms {
			ids[i] = r.ID
		}
		counts, err := repos.Tenants().CountByRooms(ctx, ids)
		if err != nil {
			return err
		}

		items := make([]RoomResponse, len(rooms))
		for i, r := range rooms {
			items[i] = ToRoomResponse(r, counts[r.ID])
		}
		page = shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func duplicateRoomNumber(number string) error {
	return shared.NewValidationError("DUPLICATE_ROOM_NUMBER", "Room number %s already exists", number)
}
