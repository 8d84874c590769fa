package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Eenot/shareit/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

// BookingRepository defines the persistence contract for booking aggregates.
// Every finder returns bookings ordered by start descending, ties broken by id,
// sliced by the given page. The engine re-fetches on every operation and never
// caches across calls.
type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// Save persists a new booking.
	Save(ctx context.Context, booking *Booking) error

	// UpdateStatus persists a status transition conditionally: the row must
	// still carry the from status at commit time. A lost race surfaces as a
	// ConflictError.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error

	// By-booker views.
	FindAllByBookerID(ctx context.Context, bookerID uuid.UUID, page domain.Page) ([]*Booking, error)
	FindAllByBookerIDAndStatus(ctx context.Context, bookerID uuid.UUID, statuses []Status, page domain.Page) ([]*Booking, error)
	FindAllCurrentByBookerID(ctx context.Context, bookerID uuid.UUID, now time.Time, page domain.Page) ([]*Booking, error)
	FindAllPastByBookerID(ctx context.Context, bookerID uuid.UUID, now time.Time, page domain.Page) ([]*Booking, error)
	FindAllFutureByBookerID(ctx context.Context, bookerID uuid.UUID, now time.Time, page domain.Page) ([]*Booking, error)

	// By-owner-items views. itemIDs is the complete set of items the owner holds.
	FindAllByItemIDs(ctx context.Context, itemIDs []uuid.UUID, page domain.Page) ([]*Booking, error)
	FindAllByItemIDsAndStatus(ctx context.Context, itemIDs []uuid.UUID, statuses []Status, page domain.Page) ([]*Booking, error)
	FindAllCurrentByItemIDs(ctx context.Context, itemIDs []uuid.UUID, now time.Time, page domain.Page) ([]*Booking, error)
	FindAllPastByItemIDs(ctx context.Context, itemIDs []uuid.UUID, now time.Time, page domain.Page) ([]*Booking, error)
	FindAllFutureByItemIDs(ctx context.Context, itemIDs []uuid.UUID, now time.Time, page domain.Page) ([]*Booking, error)

	// FindAllByItemID returns every booking of one item, used for the owner's
	// item view.
	FindAllByItemID(ctx context.Context, itemID uuid.UUID) ([]*Booking, error)

	// FindAllFinishedByBookerIDAndItemID returns the booker's bookings of the
	// item whose end lies before now. Backs the comment precondition.
	FindAllFinishedByBookerIDAndItemID(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) ([]*Booking, error)
}
