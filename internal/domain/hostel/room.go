package hostel

import (
	"strings"
	"unicode/utf8"

	"github.com/hostel/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Room number length limit
const MaxRoomNumberLength = 10

// Room is a lettable room. Occupancy is derived from the tenants that
// reference it and is never stored on the room itself.
type Room struct {
	shared.BaseAggregateRoot
	Number   string
	Capacity int
	Rent     decimal.Decimal
}

// RoomUpdate carries the optional fields of a room edit
type RoomUpdate struct {
	Number   *string
	Capacity *int
	Rent     *decimal.Decimal
}

// NewRoom creates a new room
func NewRoom(number string, capacity int, rent decimal.Decimal) (*Room, error) {
	number = strings.TrimSpace(number)
	if err := validateRoomNumber(number); err != nil {
		return nil, err
	}
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	if err := validateMoney("rent", rent); err != nil {
		return nil, err
	}

	room := &Room{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		Capacity:          capacity,
		Rent:              rent,
	}
	room.Raise(NewRoomCreatedEvent(room))

	return room, nil
}

// Update applies the given fields. Either all fields are applied or none.
func (r *Room) Update(u RoomUpdate) error {
	number := r.Number
	if u.Number != nil {
		number = strings.TrimSpace(*u.Number)
		if err := validateRoomNumber(number); err != nil {
			return err
		}
	}
	capacity := r.Capacity
	if u.Capacity != nil {
		capacity = *u.Capacity
		if err := validateCapacity(capacity); err != nil {
			return err
		}
	}
	rent := r.Rent
	if u.Rent != nil {
		rent = *u.Rent
		if err := validateMoney("rent", rent); err != nil {
			return err
		}
	}

	r.Number = number
	r.Capacity = capacity
	r.Rent = rent
	r.MarkChanged()
	r.Raise(NewRoomUpdatedEvent(r))

	return nil
}

// HasSpaceFor reports whether one more tenant fits given the current occupancy
func (r *Room) HasSpaceFor(occupancy int64) bool {
	return occupancy < int64(r.Capacity)
}

// CanShrinkTo reports whether capacity may be lowered to n with the given occupancy
func (r *Room) CanShrinkTo(n int, occupancy int64) bool {
	return int64(n) >= occupancy
}

func validateRoomNumber(number string) error {
	if number == "" {
		return shared.NewValidationError("INVALID_ROOM_NUMBER", "Room number cannot be empty")
	}
	if utf8.RuneCountInString(number) > MaxRoomNumberLength {
		return shared.NewValidationError("INVALID_ROOM_NUMBER", "Room number cannot exceed %d characters", MaxRoomNumberLength)
	}
	return nil
}

func validateCapacity(capacity int) error {
	if capacity < 1 {
		return shared.NewValidationError("INVALID_CAPACITY", "Capacity must be at least 1")
	}
	return nil
}

func validateMoney(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return shared.NewValidationError("INVALID_"+strings.ToUpper(field), "%s cannot be negative", field)
	}
	return nil
}
