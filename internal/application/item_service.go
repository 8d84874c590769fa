package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Eenot/shareit/internal/domain"
	bookingDomain "github.com/Eenot/shareit/internal/domain/booking"
	itemDomain "github.com/Eenot/shareit/internal/domain/item"
	userDomain "github.com/Eenot/shareit/internal/domain/user"
)

// CreateItemRequest holds the data needed to list a new item.
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
}

// UpdateItemRequest holds a partial item update; absent fields stay untouched.
type UpdateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
}

// CommentDTO is the response representation of an item comment.
type CommentDTO struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemDTO is the response representation of an item. Bookings are populated
// only when the caller owns the item.
type ItemDTO struct {
	ID          uuid.UUID    `json:"id"`
	OwnerID     uuid.UUID    `json:"ownerId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Available   bool         `json:"available"`
	Comments    []CommentDTO `json:"comments,omitempty"`
	Bookings    []BookingDTO `json:"bookings,omitempty"`
}

// ItemService is the application service for item listing, lookup, search and
// post-booking comments.
type ItemService struct {
	items    itemDomain.ItemRepository
	comments itemDomain.CommentRepository
	bookings bookingDomain.BookingRepository
	users    userDomain.UserRepository
	logger   *zap.Logger

	now func() time.Time
}

// NewItemService creates a new ItemService.
func NewItemService(
	items itemDomain.ItemRepository,
	comments itemDomain.CommentRepository,
	bookings bookingDomain.BookingRepository,
	users userDomain.UserRepository,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		comments: comments,
		bookings: bookings,
		users:    users,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateItem lists a new item for the given owner.
func (s *ItemService) CreateItem(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*ItemDTO, error) {
	if _, err := s.resolveUser(ctx, ownerID); err != nil {
		return nil, err
	}

	it, err := itemDomain.NewItem(ownerID, req.Name, req.Description, req.Available)
	if err != nil {
		return nil, err
	}

	if err := s.items.Save(ctx, it); err != nil {
		return nil, err
	}

	result := toItemDTO(it)
	return &result, nil
}

// UpdateItem applies a partial update. Only the owner may change an item.
func (s *ItemService) UpdateItem(ctx context.Context, ownerID, itemID uuid.UUID, req UpdateItemRequest) (*ItemDTO, error) {
	if _, err := s.resolveUser(ctx, ownerID); err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if it.OwnerID() != ownerID {
		return nil, domain.NewForbiddenError("user " + ownerID.String() + " is not the item owner")
	}

	it.ApplyUpdate(req.Name, req.Description, req.Available)
	if err := s.items.Update(ctx, it); err != nil {
		return nil, err
	}

	result := toItemDTO(it)
	return &result, nil
}

// GetItem returns the item with its comments. When the caller owns the item
// the projection also carries the item's bookings.
func (s *ItemService) GetItem(ctx context.Context, itemID, userID uuid.UUID) (*ItemDTO, error) {
	if _, err := s.resolveUser(ctx, userID); err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.FindAllByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	result := toItemDTO(it)
	result.Comments = toCommentDTOs(comments)

	if it.OwnerID() == userID {
		bookings, err := s.bookings.FindAllByItemID(ctx, itemID)
		if err != nil {
			return nil, err
		}
		result.Bookings = toBookingDTOs(bookings)
	}

	return &result, nil
}

// ListItemsByOwner returns the owner's items, paginated.
func (s *ItemService) ListItemsByOwner(ctx context.Context, ownerID uuid.UUID, page domain.Page) ([]ItemDTO, error) {
	if _, err := s.resolveUser(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.items.FindByOwnerID(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}

	return toItemDTOs(items), nil
}

// SearchItems finds available items matching the text. An empty query yields
// an empty result, not an error.
func (s *ItemService) SearchItems(ctx context.Context, text string, page domain.Page) ([]ItemDTO, error) {
	if text == "" {
		return []ItemDTO{}, nil
	}

	items, err := s.items.Search(ctx, text, page)
	if err != nil {
		return nil, err
	}

	return toItemDTOs(items), nil
}

// AddComment attaches feedback to an item. The author must have at least one
// booking of the item that already finished.
func (s *ItemService) AddComment(ctx context.Context, userID, itemID uuid.UUID, text string) (*CommentDTO, error) {
	author, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	now := s.now()
	finished, err := s.bookings.FindAllFinishedByBookerIDAndItemID(ctx, userID, itemID, now)
	if err != nil {
		return nil, err
	}
	if len(finished) == 0 {
		return nil, domain.NewValidationError("user has no finished bookings of this item")
	}

	comment, err := itemDomain.NewComment(itemID, author.ID(), author.Name(), text, now.UTC())
	if err != nil {
		return nil, err
	}

	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, err
	}

	result := toCommentDTO(comment)
	return &result, nil
}

func (s *ItemService) resolveUser(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("user id is required")
	}
	return s.users.FindByID(ctx, id)
}

func toItemDTO(it *itemDomain.Item) ItemDTO {
	return ItemDTO{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
	}
}

func toItemDTOs(items []*itemDomain.Item) []ItemDTO {
	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		dtos[i] = toItemDTO(it)
	}
	return dtos
}

func toCommentDTO(c *itemDomain.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		Text:       c.Text(),
		AuthorName: c.AuthorName(),
		Created:    c.Created(),
	}
}

func toCommentDTOs(comments []*itemDomain.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, c := range comments {
		dtos[i] = toCommentDTO(c)
	}
	return dtos
}
