package item_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eenot/shareit/internal/domain"
	"github.com/Eenot/shareit/internal/domain/item"
)

func boolPtr(b bool) *bool { return &b }

func TestNewItem(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates item", func(t *testing.T) {
		it, err := item.NewItem(ownerID, "drill", "cordless drill", boolPtr(true))

		require.NoError(t, err)
		assert.Equal(t, ownerID, it.OwnerID())
		assert.True(t, it.Available())
	})

	for name, tc := range map[string]struct {
		name        string
		description string
		available   *bool
	}{
		"empty name":        {"", "cordless drill", boolPtr(true)},
		"empty description": {"drill", "", boolPtr(true)},
		"nil availability":  {"drill", "cordless drill", nil},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := item.NewItem(ownerID, tc.name, tc.description, tc.available)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestApplyUpdate(t *testing.T) {
	it, err := item.NewItem(uuid.New(), "drill", "cordless drill", boolPtr(true))
	require.NoError(t, err)

	it.ApplyUpdate("", "", boolPtr(false))

	assert.Equal(t, "drill", it.Name())
	assert.Equal(t, "cordless drill", it.Description())
	assert.False(t, it.Available())
}
