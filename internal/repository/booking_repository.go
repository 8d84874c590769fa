package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Eenot/shareit/internal/domain"
	bookingDomain "github.com/Eenot/shareit/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID    uuid.UUID `gorm:"type:uuid;index;not null"`
	BookerID  uuid.UUID `gorm:"type:uuid;index;not null"`
	StartDate time.Time `gorm:"not null;index"`
	EndDate   time.Time `gorm:"not null"`
	Status    string    `gorm:"not null;size:20;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Item   ItemModel `gorm:"foreignKey:ItemID"`
	Booker UserModel `gorm:"foreignKey:BookerID"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id.String())
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model)
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

// UpdateStatus persists a status transition conditionally: the row must still
// carry the from status, otherwise a concurrent decision won and the update
// fails with a ConflictError.
func (r *GormBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to bookingDomain.Status) error {
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Updates(map[string]interface{}{
			"status":     to.String(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update booking status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("booking status was changed by another transaction")
	}
	return nil
}

// --- By-booker views ---

func (r *GormBookingRepository) FindAllByBookerID(ctx context.Context, bookerID uuid.UUID, page domain.Page) ([]*bookingDomain.Booking, error) {
	return r.findAll(ctx, page, "booker_id = ?", bookerID)
}

func (r *GormBookingRepository) FindAllByBookerIDAndStatus(ctx context.Context, bookerID uuid.UUID, statuses []bookingDomain.Status, page domain.Page) ([]*bookingDomain.Booking, error) {
	return r.findAll(ctx, page, "booker_id = ? AND status IN ?", bookerID, statusStrings(statuses))
}

func (r *GormBookingRepository) FindAllCurrentByBookerID(ctx context.Context, bookerID uuid.UUID, now time.Time, page domain.Page) ([]*bookingDomain.Booking, error) {
	return r.findAll(ctx, page, "booker_id = ? AND start_date <= ? AND end_date >= ?", bookerID, now, now)
}

func (r *GormBookingRepository) FindAllPastByBookerID(ctx context.Context, bookerID uuid.UUID, now time.Time, page domain.Page) ([]*bookingDomain.Booking, error) {
	return r.findAll(ctx, page, "booker_id = ? AND end_date < ?", bookerID, now)
}

func (r *GormBookingRepository) FindAllFutureByBookerID(ctx context.Context, bookerID uuid.UUID, now time.Time, page domain.Page) ([]*bookingDomain.Booking, error) {
	return r.findAll(ctx, page, "booker_id = ? AND start_date > ?", bookerID, now)
}

// --- By-owner-items views ---

func (r *GormBookingRepository) FindAllByItemIDs(ctx context.Context, itemIDs []uuid.UUID, page domain.Page) ([]*bookingDomain.Booking, error) {
	return r.findAll(ctx, page, "item_id IN ?", itemIDs)
}

func (r *GormBookingRepository) FindAllByItemIDsAndStatus(ctx context.Context, itemIDs []uuid.UUID, statuses []bookingDomain.Status, page domain.Page) ([]*bookingDomain.Booking, error) {
	return r.findAll(ctx, page, "item_id IN ? AND status IN ?", itemIDs, statusStrings(statuses))
}

func (r *GormBookingRepository) FindAllCurrentByItemIDs(ctx context.Context, itemIDs []uuid.UUID, now time.Time, page domain.Page) ([]*bookingDomain.Booking, error) {
	return r.findAll(ctx, page, "item_id IN ? AND start_date <= ? AND end_date >= ?", itemIDs, now, now)
}

func (r *GormBookingRepository) FindAllPastByItemIDs(ctx context.Context, itemIDs []uuid.UUID, now time.Time, page domain.Page) ([]*bookingDomain.Booking, error) {
	return r.findAll(ctx, page, "item_id IN ? AND end_date < ?", itemIDs, now)
}

func (r *GormBookingRepository) FindAllFutureByItemIDs(ctx context.Context, itemIDs []uuid.UUID, now time.Time, page domain.Page) ([]*bookingDomain.Booking, error) {
	return r.findAll(ctx, page, "item_id IN ? AND start_date > ?", itemIDs, now)
}

// FindAllByItemID retrieves every booking of a single item.
func (r *GormBookingRepository) FindAllByItemID(ctx context.Context, itemID uuid.UUID) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where("item_id = ?", itemID).
		Order("start_date DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings by item: %w", err)
	}
	return toDomainBookings(models)
}

// FindAllFinishedByBookerIDAndItemID retrieves the booker's bookings of the
// item that already ended.
func (r *GormBookingRepository) FindAllFinishedByBookerIDAndItemID(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where("booker_id = ? AND item_id = ? AND end_date < ?", bookerID, itemID, now).
		Order("start_date DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find finished bookings: %w", err)
	}
	return toDomainBookings(models)
}

// findAll runs one of the partitioned finder queries. Ordering is start
// descending with the id as a deterministic tie-breaker; a zero page size
// yields an empty page.
func (r *GormBookingRepository) findAll(ctx context.Context, page domain.Page, query string, args ...interface{}) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where(query, args...).
		Order("start_date DESC, id DESC").
		Offset(page.From).
		Limit(page.Size).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	return toDomainBookings(models)
}

// --- Conversion helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:        bk.ID(),
		ItemID:    bk.Item().ID,
		BookerID:  bk.Booker().ID,
		StartDate: bk.Start(),
		EndDate:   bk.End(),
		Status:    bk.Status().String(),
		CreatedAt: bk.CreatedAt(),
		UpdatedAt: bk.UpdatedAt(),
	}
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}

	return bookingDomain.Reconstruct(
		m.ID,
		bookingDomain.ItemRef{
			ID:        m.Item.ID,
			Name:      m.Item.Name,
			OwnerID:   m.Item.OwnerID,
			Available: m.Item.Available,
		},
		bookingDomain.UserRef{
			ID:   m.Booker.ID,
			Name: m.Booker.Name,
		},
		m.StartDate,
		m.EndDate,
		status,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toDomainBookings(models []BookingModel) ([]*bookingDomain.Booking, error) {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bk, err := toDomainBooking(&models[i])
		if err != nil {
			return nil, err
		}
		bookings[i] = bk
	}
	return bookings, nil
}

func statusStrings(statuses []bookingDomain.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
