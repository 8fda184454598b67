package event

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/domain/shared"
)

// Codec encodes domain events as JSON and decodes them back into their
// concrete type, keyed by event type.
type Codec struct {
	mu    sync.RWMutex
	kinds map[string]func() shared.DomainEvent
}

// NewCodec returns a codec that knows no event types
func NewCodec() *Codec {
	return &Codec{kinds: make(map[string]func() shared.DomainEvent)}
}

// NewHostelCodec returns a codec that knows every identity and hostel event
func NewHostelCodec() *Codec {
	c := NewCodec()

	Register[identity.UserCreatedEvent](c, identity.EventTypeUserCreated)
	Register[identity.UserPasswordChangedEvent](c, identity.EventTypeUserPasswordChanged)
	Register[identity.UserLockedEvent](c, identity.EventTypeUserLocked)

	Register[hostel.RoomCreatedEvent](c, hostel.EventTypeRoomCreated)
	Register[hostel.RoomUpdatedEvent](c, hostel.EventTypeRoomUpdated)
	Register[hostel.RoomDeletedEvent](c, hostel.EventTypeRoomDeleted)
	Register[hostel.TenantRegisteredEvent](c, hostel.EventTypeTenantRegistered)
	Register[hostel.TenantRoomAssignedEvent](c, hostel.EventTypeTenantRoomAssigned)
	Register[hostel.BillCreatedEvent](c, hostel.EventTypeBillCreated)
	Register[hostel.BillPaidEvent](c, hostel.EventTypeBillPaid)
	Register[hostel.BillDeletedEvent](c, hostel.EventTypeBillDeleted)
	Register[hostel.ComplaintFiledEvent](c, hostel.EventTypeComplaintFiled)
	Register[hostel.ComplaintResolvedEvent](c, hostel.EventTypeComplaintResolved)

	return c
}

// Register teaches c to decode eventType into a *T
func Register[T any, PT interface {
	*T
	shared.DomainEvent
}](c *Codec, eventType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.kinds[eventType] = func() shared.DomainEvent { return PT(new(T)) }
}

// Knows reports whether eventType was registered
func (c *Codec) Knows(eventType string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.kinds[eventType]
	return ok
}

// Types lists the registered event types in sorted order
func (c *Codec) Types() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	types := make([]string, 0, len(c.kinds))
	for t := range c.kinds {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Encode marshals an event of a registered type
func (c *Codec) Encode(event shared.DomainEvent) ([]byte, error) {
	if !c.Knows(event.EventType()) {
		return nil, fmt.Errorf("unknown event type: %s", event.EventType())
	}
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", event.EventType(), err)
	}
	return data, nil
}

// Decode unmarshals data into a new event of the type registered for eventType
func (c *Codec) Decode(eventType string, data []byte) (shared.DomainEvent, error) {
	c.mu.RLock()
	newEvent, ok := c.kinds[eventType]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	event := newEvent()
	if err := json.Unmarshal(data, event); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", eventType, err)
	}
	return event, nil
}
