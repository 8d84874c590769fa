package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Eenot/shareit/internal/domain"
	bookingDomain "github.com/Eenot/shareit/internal/domain/booking"
	itemDomain "github.com/Eenot/shareit/internal/domain/item"
	userDomain "github.com/Eenot/shareit/internal/domain/user"
	"github.com/Eenot/shareit/internal/events"
	"github.com/Eenot/shareit/internal/kafka"
)

const eventSource = "shareit-server"

// EventPublisher publishes cloud events. Satisfied by kafka.Producer.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error
}

// CreateBookingRequest holds the data needed to create a new booking. The
// dates stay pointers so absent values reach the engine as nil and fail with
// a domain error rather than a binding error.
type CreateBookingRequest struct {
	ItemID uuid.UUID  `json:"itemId"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

// BookingItemDTO is the nested item summary of a booking response.
type BookingItemDTO struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"ownerId"`
}

// BookingUserDTO is the nested booker summary of a booking response.
type BookingUserDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID        uuid.UUID      `json:"id"`
	Start     time.Time      `json:"start"`
	End       time.Time      `json:"end"`
	Status    string         `json:"status"`
	Item      BookingItemDTO `json:"item"`
	Booker    BookingUserDTO `json:"booker"`
	CreatedAt time.Time      `json:"created_at"`
}

// BookingService is the application service orchestrating the booking domain:
// creation, the owner decision, the booker cancellation, authorization-gated
// reads and the six-view list queries.
type BookingService struct {
	bookings bookingDomain.BookingRepository
	items    itemDomain.ItemRepository
	users    userDomain.UserRepository
	producer EventPublisher
	logger   *zap.Logger

	// now supplies the single per-call instant every temporal comparison
	// uses. Tests pin it.
	now func() time.Time
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.BookingRepository,
	items itemDomain.ItemRepository,
	users userDomain.UserRepository,
	producer EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		items:    items,
		users:    users,
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateBooking creates a WAITING booking of the requested item for the booker.
func (s *BookingService) CreateBooking(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error) {
	booker, err := s.resolveUser(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	if req.ItemID == uuid.Nil {
		return nil, domain.NewValidationError("item id is required")
	}
	it, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if req.Start == nil || req.End == nil {
		return nil, domain.NewValidationError("booking dates must not be empty")
	}

	bk, err := bookingDomain.NewBooking(
		bookingDomain.ItemRef{
			ID:        it.ID(),
			Name:      it.Name(),
			OwnerID:   it.OwnerID(),
			Available: it.Available(),
		},
		bookingDomain.UserRef{
			ID:   booker.ID(),
			Name: booker.Name(),
		},
		*req.Start,
		*req.End,
		s.now(),
	)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Save(ctx, bk); err != nil {
		return nil, err
	}

	evt := events.BookingCreatedEvent{
		BookingID:  bk.ID(),
		ItemID:     bk.Item().ID,
		OwnerID:    bk.Item().OwnerID,
		BookerID:   bk.Booker().ID,
		Start:      bk.Start(),
		End:        bk.End(),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.BookingCreated, bk.ID(), evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// ApproveBooking applies the owner's decision to a waiting booking. The
// decision is the literal "true" or "false", case-insensitive; anything else
// is invalid input.
func (s *BookingService) ApproveBooking(ctx context.Context, bookingID, ownerID uuid.UUID, decision string) (*BookingDTO, error) {
	dec, err := bookingDomain.ParseDecision(decision)
	if err != nil {
		return nil, err
	}

	if _, err := s.resolveUser(ctx, ownerID); err != nil {
		return nil, err
	}

	bk, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !bk.IsOwnedBy(ownerID) {
		return nil, domain.NewForbiddenError("user " + ownerID.String() + " is not the item owner")
	}

	prev := bk.Status()
	if dec == bookingDomain.DecisionApprove {
		err = bk.Approve()
	} else {
		err = bk.Reject()
	}
	if err != nil {
		return nil, err
	}

	if err := s.persistTransition(ctx, bk, prev); err != nil {
		return nil, err
	}

	eventType := events.BookingApproved
	if dec == bookingDomain.DecisionReject {
		eventType = events.BookingRejected
	}
	s.publishDecided(ctx, eventType, bk)

	result := toBookingDTO(bk)
	return &result, nil
}

// CancelBooking withdraws a waiting booking. Only the booker may cancel.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, bookerID uuid.UUID) (*BookingDTO, error) {
	if _, err := s.resolveUser(ctx, bookerID); err != nil {
		return nil, err
	}

	bk, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !bk.IsBookedBy(bookerID) {
		return nil, domain.NewForbiddenError("only the booker can cancel a booking")
	}

	prev := bk.Status()
	if err := bk.Cancel(); err != nil {
		return nil, err
	}

	if err := s.persistTransition(ctx, bk, prev); err != nil {
		return nil, err
	}

	s.publishDecided(ctx, events.BookingCanceled, bk)

	result := toBookingDTO(bk)
	return &result, nil
}

// GetBookingInfo returns the booking projection to its booker or to the owner
// of the booked item; anyone else is refused.
func (s *BookingService) GetBookingInfo(ctx context.Context, bookingID, userID uuid.UUID) (*BookingDTO, error) {
	if _, err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}

	bk, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !bk.IsOwnedBy(userID) && !bk.IsBookedBy(userID) {
		return nil, domain.NewForbiddenError("user " + userID.String() + " is neither the owner nor the booker")
	}

	result := toBookingDTO(bk)
	return &result, nil
}

// ListBookingsByBooker returns the user's bookings filtered by the given
// state view, ordered by start descending.
func (s *BookingService) ListBookingsByBooker(ctx context.Context, bookerID uuid.UUID, state string, page domain.Page) ([]BookingDTO, error) {
	if _, err := s.resolveUser(ctx, bookerID); err != nil {
		return nil, err
	}

	st, err := bookingDomain.ParseState(state)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var bookings []*bookingDomain.Booking
	switch st {
	case bookingDomain.StateWaiting:
		bookings, err = s.bookings.FindAllByBookerIDAndStatus(ctx, bookerID, []bookingDomain.Status{bookingDomain.StatusWaiting}, page)
	case bookingDomain.StateRejected:
		bookings, err = s.bookings.FindAllByBookerIDAndStatus(ctx, bookerID, []bookingDomain.Status{bookingDomain.StatusRejected, bookingDomain.StatusCanceled}, page)
	case bookingDomain.StateCurrent:
		bookings, err = s.bookings.FindAllCurrentByBookerID(ctx, bookerID, now, page)
	case bookingDomain.StatePast:
		bookings, err = s.bookings.FindAllPastByBookerID(ctx, bookerID, now, page)
	case bookingDomain.StateFuture:
		bookings, err = s.bookings.FindAllFutureByBookerID(ctx, bookerID, now, page)
	default:
		bookings, err = s.bookings.FindAllByBookerID(ctx, bookerID, page)
	}
	if err != nil {
		return nil, err
	}

	return toBookingDTOs(bookings), nil
}

// ListBookingsByOwner returns the bookings of every item the owner holds,
// filtered by the given state view. Owning no items is a hard precondition
// failure, not an empty result.
func (s *BookingService) ListBookingsByOwner(ctx context.Context, ownerID uuid.UUID, state string, page domain.Page) ([]BookingDTO, error) {
	if _, err := s.resolveUser(ctx, ownerID); err != nil {
		return nil, err
	}

	st, err := bookingDomain.ParseState(state)
	if err != nil {
		return nil, err
	}

	itemIDs, err := s.items.IDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(itemIDs) == 0 {
		return nil, domain.NewValidationError("this view requires the user to own at least one item")
	}

	now := s.now()
	var bookings []*bookingDomain.Booking
	switch st {
	case bookingDomain.StateWaiting:
		bookings, err = s.bookings.FindAllByItemIDsAndStatus(ctx, itemIDs, []bookingDomain.Status{bookingDomain.StatusWaiting}, page)
	case bookingDomain.StateRejected:
		bookings, err = s.bookings.FindAllByItemIDsAndStatus(ctx, itemIDs, []bookingDomain.Status{bookingDomain.StatusRejected, bookingDomain.StatusCanceled}, page)
	case bookingDomain.StateCurrent:
		bookings, err = s.bookings.FindAllCurrentByItemIDs(ctx, itemIDs, now, page)
	case bookingDomain.StatePast:
		bookings, err = s.bookings.FindAllPastByItemIDs(ctx, itemIDs, now, page)
	case bookingDomain.StateFuture:
		bookings, err = s.bookings.FindAllFutureByItemIDs(ctx, itemIDs, now, page)
	default:
		bookings, err = s.bookings.FindAllByItemIDs(ctx, itemIDs, page)
	}
	if err != nil {
		return nil, err
	}

	return toBookingDTOs(bookings), nil
}

// --- Helpers ---

func (s *BookingService) resolveUser(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("user id is required")
	}
	return s.users.FindByID(ctx, id)
}

func (s *BookingService) findBooking(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("booking id is required")
	}
	return s.bookings.FindByID(ctx, id)
}

// persistTransition commits a status change already applied to the in-memory
// aggregate. Losing the conditional update to a concurrent decision is the
// same caller error as re-deciding an already decided booking.
func (s *BookingService) persistTransition(ctx context.Context, bk *bookingDomain.Booking, from bookingDomain.Status) error {
	err := s.bookings.UpdateStatus(ctx, bk.ID(), from, bk.Status())
	if err == nil {
		return nil
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return domain.NewValidationError("booking was decided by a concurrent request")
	}
	return err
}

func (s *BookingService) publishDecided(ctx context.Context, eventType string, bk *bookingDomain.Booking) {
	evt := events.BookingDecidedEvent{
		BookingID:  bk.ID(),
		ItemID:     bk.Item().ID,
		OwnerID:    bk.Item().OwnerID,
		BookerID:   bk.Booker().ID,
		Status:     bk.Status().String(),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, eventType, bk.ID(), evt)
}

func (s *BookingService) publishEvent(ctx context.Context, eventType string, bookingID uuid.UUID, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.producer.PublishEvent(ctx, events.TopicBookingEvents, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.String("booking_id", bookingID.String()),
			zap.Error(err),
		)
	}
}

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:     bk.ID(),
		Start:  bk.Start(),
		End:    bk.End(),
		Status: bk.Status().String(),
		Item: BookingItemDTO{
			ID:      bk.Item().ID,
			Name:    bk.Item().Name,
			OwnerID: bk.Item().OwnerID,
		},
		Booker: BookingUserDTO{
			ID:   bk.Booker().ID,
			Name: bk.Booker().Name,
		},
		CreatedAt: bk.CreatedAt(),
	}
}

func toBookingDTOs(bookings []*bookingDomain.Booking) []BookingDTO {
	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos
}
