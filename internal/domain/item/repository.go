package item

import (
	"context"

	"github.com/google/uuid"

	"github.com/Eenot/shareit/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

// ItemRepository defines persistence operations for items.
type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindByOwnerID retrieves the owner's items ordered by creation, paginated.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID, page domain.Page) ([]*Item, error)

	// IDsByOwner returns the ids of every item owned by the given user. Used
	// by the owner-scoped booking queries.
	IDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)

	// Search finds available items whose name or description contains the
	// given text, case-insensitively.
	Search(ctx context.Context, text string, page domain.Page) ([]*Item, error)

	Save(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
}

// CommentRepository defines persistence operations for item comments.
type CommentRepository interface {
	FindAllByItemID(ctx context.Context, itemID uuid.UUID) ([]*Comment, error)
	Save(ctx context.Context, comment *Comment) error
}
