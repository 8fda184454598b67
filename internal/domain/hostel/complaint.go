package hostel

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/shared"
)

// ComplaintStatus is the handling state of a complaint. Pending -> Resolved only.
type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "Pending"
	ComplaintStatusResolved ComplaintStatus = "Resolved"
)

// MaxSubjectLength is the longest accepted complaint subject
const MaxSubjectLength = 200

// IsValid reports whether s is a known status
func (s ComplaintStatus) IsValid() bool {
	return s == ComplaintStatusPending || s == ComplaintStatusResolved
}

// ParseComplaintStatus parses a status, case-insensitively
func ParseComplaintStatus(s string) (ComplaintStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return ComplaintStatusPending, nil
	case "resolved":
		return ComplaintStatusResolved, nil
	}
	return "", shared.NewValidationError("INVALID_COMPLAINT_STATUS", "Unknown complaint status %q", s)
}

// Complaint is an issue raised by a tenant
type Complaint struct {
	shared.BaseAggregateRoot
	TenantID   uuid.UUID
	Subject    string
	Message    string
	Status     ComplaintStatus
	ResolvedAt *time.Time
}

// ErrComplaintAlreadyResolved is returned when resolving a complaint twice
var ErrComplaintAlreadyResolved = shared.NewConflictError("COMPLAINT_ALREADY_RESOLVED", "Complaint is already resolved")

// NewComplaint files a pending complaint
func NewComplaint(tenantID uuid.UUID, subject, message string) (*Complaint, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, shared.NewValidationError("INVALID_SUBJECT", "Subject cannot be empty")
	}
	if utf8.RuneCountInString(subject) > MaxSubjectLength {
		return nil, shared.NewValidationError("INVALID_SUBJECT", "Subject cannot exceed %d characters", MaxSubjectLength)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, shared.NewValidationError("INVALID_MESSAGE", "Message cannot be empty")
	}

	complaint := &Complaint{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TenantID:          tenantID,
		Subject:           subject,
		Message:           message,
		Status:            ComplaintStatusPending,
	}
	complaint.Raise(NewComplaintFiledEvent(complaint))

	return complaint, nil
}

// IsResolved reports whether the complaint has been closed
func (c *Complaint) IsResolved() bool {
	return c.Status == ComplaintStatusResolved
}

// Resolve closes the complaint
func (c *Complaint) Resolve(now time.Time) error {
	if c.IsResolved() {
		return ErrComplaintAlreadyResolved
	}

	c.Status = ComplaintStatusResolved
	c.ResolvedAt = &now
	c.MarkChangedAt(now)
	c.Raise(NewComplaintResolvedEvent(c))

	return nil
}
