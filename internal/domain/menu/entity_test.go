//go:build unit

package menu_test

import (
	"testing"
	"time"

	"tiffintime-api/internal/domain/menu"
	"tiffintime-api/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem() menu.ItemInput {
	return menu.ItemInput{
		Name:     "Chicken Biryani",
		Category: "Rice",
		Price:    120,
		PrepTime: 15,
	}
}

func TestNewItem(t *testing.T) {
	now := time.Now()
	vendorID := uuid.New()

	t.Run("valid item", func(t *testing.T) {
		item, err := menu.NewItem(vendorID, validItem(), now)
		require.NoError(t, err)

		assert.Equal(t, vendorID, item.VendorID())
		assert.Equal(t, menu.Category("Rice"), item.Category())
		assert.Equal(t, 120.0, item.Price().Value())
		assert.Equal(t, now, item.CreatedAt())
	})

	testCases := []struct {
		name   string
		mutate func(*menu.ItemInput)
		errIs  error
	}{
		{name: "unknown category", mutate: func(in *menu.ItemInput) { in.Category = "Pizza" }, errIs: menu.ErrInvalidCategory},
		{name: "category is case sensitive", mutate: func(in *menu.ItemInput) { in.Category = "rice" }, errIs: menu.ErrInvalidCategory},
		{name: "zero price", mutate: func(in *menu.ItemInput) { in.Price = 0 }, errIs: menu.ErrInvalidPrice},
		{name: "negative prep time", mutate: func(in *menu.ItemInput) { in.PrepTime = -1 }, errIs: menu.ErrInvalidPrepTime},
		{name: "blank name", mutate: func(in *menu.ItemInput) { in.Name = " " }, errIs: menu.ErrEmptyItemName},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := validItem()
			tc.mutate(&in)

			_, err := menu.NewItem(vendorID, in, now)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}

	t.Run("zero prep time is allowed", func(t *testing.T) {
		in := validItem()
		in.PrepTime = 0
		_, err := menu.NewItem(vendorID, in, now)
		assert.NoError(t, err)
	})
}

func TestItemApply(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	vendorID := uuid.New()
	item := func() *menu.Item {
		return menu.ReconstructItem(uuid.New(), vendorID, "Dal", "Curry", 40, 5, nil, nil, created, created)
	}

	t.Run("applies present fields", func(t *testing.T) {
		i := item()
		now := time.Now()
		require.NoError(t, i.Apply(menu.ItemPatch{Price: ptr.Of(45.0)}, now))
		assert.Equal(t, 45.0, i.Price().Value())
		assert.Equal(t, "Dal", i.Name().Value())
		assert.Equal(t, now, i.UpdatedAt())
	})

	t.Run("one bad field leaves the item untouched", func(t *testing.T) {
		i := item()
		err := i.Apply(menu.ItemPatch{Name: ptr.Of("Dal Fry"), Category: ptr.Of("Soup")}, time.Now())
		assert.ErrorIs(t, err, menu.ErrInvalidCategory)
		assert.Equal(t, "Dal", i.Name().Value())
	})

	t.Run("empty patch", func(t *testing.T) {
		assert.ErrorIs(t, item().Apply(menu.ItemPatch{}, time.Now()), menu.ErrEmptyPatch)
	})

	t.Run("ownership", func(t *testing.T) {
		assert.NoError(t, item().EnsureOwnedBy(vendorID))
		assert.ErrorIs(t, item().EnsureOwnedBy(uuid.New()), menu.ErrNotOwner)
	})
}
