package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/Eenot/shareit/internal/domain"
)

// ItemRef is the read-only projection of the booked item that the booking
// engine needs: identity, ownership and the availability gate.
type ItemRef struct {
	ID        uuid.UUID
	Name      string
	OwnerID   uuid.UUID
	Available bool
}

// UserRef is the read-only projection of the booker.
type UserRef struct {
	ID   uuid.UUID
	Name string
}

// Booking is the aggregate root for the booking domain: one reservation of an
// item by a user for a time window. The item and booker references are
// exclusively read, never mutated after creation.
type Booking struct {
	id        uuid.UUID
	item      ItemRef
	booker    UserRef
	start     time.Time
	end       time.Time
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a new Booking in WAITING status. The time window must be
// strictly ordered and strictly in the future relative to the single captured
// "now" the caller passes in; both comparisons use that same instant.
func NewBooking(item ItemRef, booker UserRef, start, end, now time.Time) (*Booking, error) {
	if booker.ID == uuid.Nil {
		return nil, domain.NewValidationError("booker id is required")
	}
	if item.OwnerID == booker.ID {
		return nil, domain.NewForbiddenError("owner cannot book own item")
	}
	if !item.Available {
		return nil, domain.NewValidationError("item is not available for booking")
	}
	if !end.After(start) {
		return nil, domain.NewValidationError("booking end must be after start")
	}
	if !start.After(now) || !end.After(now) {
		return nil, domain.NewValidationError("booking dates must be in the future")
	}

	created := now.UTC()
	return &Booking{
		id:        uuid.New(),
		item:      item,
		booker:    booker,
		start:     start,
		end:       end,
		status:    StatusWaiting,
		createdAt: created,
		updatedAt: created,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(id uuid.UUID, item ItemRef, booker UserRef, start, end time.Time, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		item:      item,
		booker:    booker,
		start:     start,
		end:       end,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Item() ItemRef        { return b.item }
func (b *Booking) Booker() UserRef      { return b.booker }
func (b *Booking) Start() time.Time     { return b.start }
func (b *Booking) End() time.Time       { return b.end }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// IsOwnedBy reports whether the given user owns the booked item.
func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.item.OwnerID == userID
}

// IsBookedBy reports whether the given user requested the booking.
func (b *Booking) IsBookedBy(userID uuid.UUID) bool {
	return b.booker.ID == userID
}

// Approve transitions the booking to APPROVED. Re-approving an already
// approved booking fails.
func (b *Booking) Approve() error {
	if b.status == StatusApproved {
		return domain.NewValidationError("booking is already approved")
	}
	b.status = StatusApproved
	b.updatedAt = time.Now().UTC()
	return nil
}

// Reject transitions the booking to REJECTED. Re-rejecting an already
// rejected booking fails, symmetric with the Approve guard.
func (b *Booking) Reject() error {
	if b.status == StatusRejected {
		return domain.NewValidationError("booking is already rejected")
	}
	b.status = StatusRejected
	b.updatedAt = time.Now().UTC()
	return nil
}

// Cancel transitions the booking to CANCELED. Only a waiting booking can be
// withdrawn by its booker.
func (b *Booking) Cancel() error {
	if b.status != StatusWaiting {
		return domain.NewValidationError("only a waiting booking can be canceled")
	}
	b.status = StatusCanceled
	b.updatedAt = time.Now().UTC()
	return nil
}
