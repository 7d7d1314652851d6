//go:build unit

package availability_test

import (
	"testing"
	"time"

	"tiffintime-api/internal/domain/availability"
	"tiffintime-api/internal/domain/menu"
	"tiffintime-api/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	resolveDate = time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	vendorA     = uuid.MustParse("0a000000-0000-0000-0000-000000000001")
	itemRice    = uuid.MustParse("1a000000-0000-0000-0000-000000000001")
	itemCurry   = uuid.MustParse("1a000000-0000-0000-0000-000000000002")
	itemSamosa  = uuid.MustParse("1a000000-0000-0000-0000-000000000003")
)

func weeklyRow(id uuid.UUID, name string, price float64) availability.SourceRow {
	return availability.SourceRow{
		ItemID:     ptr.Of(id),
		VendorID:   ptr.Of(vendorA),
		VendorName: ptr.Of("Campus Kitchen"),
		Name:       ptr.Of(name),
		Category:   ptr.Of("Rice"),
		PrepTime:   ptr.Of(int32(10)),
		BasePrice:  ptr.Of(price),
	}
}

func specialRow(id uuid.UUID, name string, base float64, special *float64, qty *int32) availability.SourceRow {
	row := weeklyRow(id, name, base)
	row.SpecialDate = ptr.Of(resolveDate)
	row.SpecialPrice = special
	row.Quantity = qty
	return row
}

func TestResolve(t *testing.T) {
	t.Run("listings carry the calendar day regardless of input zone", func(t *testing.T) {
		dhaka := time.FixedZone("Asia/Dhaka", 6*60*60)
		localDate := time.Date(2025, 3, 12, 0, 0, 0, 0, dhaka)

		res := availability.Resolve(localDate,
			[]availability.SourceRow{weeklyRow(itemRice, "Chicken Biryani", 120)},
			[]availability.SourceRow{specialRow(itemCurry, "Beef Curry", 150, nil, nil)},
		)

		require.Len(t, res.Listings, 2)
		assert.Equal(t, resolveDate, res.Listings[0].Date)
		assert.Equal(t, resolveDate, res.Listings[1].Date)
		assert.True(t, res.Listings[0].Date.Equal(res.Listings[1].Date))
	})

	t.Run("weekly only rows keep base price and weekly source", func(t *testing.T) {
		res := availability.Resolve(resolveDate, []availability.SourceRow{
			weeklyRow(itemRice, "Chicken Biryani", 120),
			weeklyRow(itemCurry, "Beef Curry", 150),
		}, nil)

		require.Len(t, res.Listings, 2)
		assert.Empty(t, res.Skipped)
		for _, l := range res.Listings {
			assert.Equal(t, availability.SourceWeekly, l.Source)
			assert.Nil(t, l.SpecialPrice)
			assert.Nil(t, l.Quantity)
			assert.Equal(t, resolveDate, l.Date)
		}
		assert.Equal(t, 120.0, res.Listings[0].Price)
		assert.Equal(t, "Campus Kitchen", res.Listings[0].VendorName)
	})

	t.Run("special replaces weekly entry for the same item and keeps position", func(t *testing.T) {
		res := availability.Resolve(resolveDate,
			[]availability.SourceRow{
				weeklyRow(itemRice, "Chicken Biryani", 120),
				weeklyRow(itemCurry, "Beef Curry", 150),
			},
			[]availability.SourceRow{
				specialRow(itemRice, "Chicken Biryani", 120, ptr.Of(99.5), ptr.Of(int32(20))),
			},
		)

		require.Len(t, res.Listings, 2)
		first := res.Listings[0]
		assert.Equal(t, itemRice, first.ItemID)
		assert.Equal(t, availability.SourceSpecial, first.Source)
		assert.Equal(t, 99.5, first.Price)
		assert.Equal(t, ptr.Of(99.5), first.SpecialPrice)
		assert.Equal(t, ptr.Of(int32(20)), first.Quantity)
		assert.Equal(t, ptr.Of(120.0), first.BasePrice)
		assert.Equal(t, itemCurry, res.Listings[1].ItemID)
	})

	t.Run("special without override price falls back to base price", func(t *testing.T) {
		res := availability.Resolve(resolveDate, nil, []availability.SourceRow{
			specialRow(itemSamosa, "Samosa", 15, nil, nil),
		})

		require.Len(t, res.Listings, 1)
		assert.Equal(t, 15.0, res.Listings[0].Price)
		assert.Nil(t, res.Listings[0].SpecialPrice)
		assert.Equal(t, availability.SourceSpecial, res.Listings[0].Source)
	})

	t.Run("new special rows are appended after weekly rows", func(t *testing.T) {
		res := availability.Resolve(resolveDate,
			[]availability.SourceRow{weeklyRow(itemCurry, "Beef Curry", 150)},
			[]availability.SourceRow{specialRow(itemSamosa, "Samosa", 15, ptr.Of(12.0), nil)},
		)

		got := make([]uuid.UUID, 0, len(res.Listings))
		for _, l := range res.Listings {
			got = append(got, l.ItemID)
		}
		if diff := cmp.Diff([]uuid.UUID{itemCurry, itemSamosa}, got); diff != "" {
			t.Errorf("listing order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("later duplicate in the same source overwrites the earlier row", func(t *testing.T) {
		res := availability.Resolve(resolveDate, []availability.SourceRow{
			weeklyRow(itemRice, "Chicken Biryani", 120),
			weeklyRow(itemRice, "Chicken Biryani XL", 140),
		}, nil)

		require.Len(t, res.Listings, 1)
		assert.Equal(t, "Chicken Biryani XL", res.Listings[0].Name)
		assert.Equal(t, 140.0, res.Listings[0].Price)
	})

	t.Run("missing vendor name falls back to Unknown Vendor", func(t *testing.T) {
		row := weeklyRow(itemRice, "Chicken Biryani", 120)
		row.VendorName = nil

		res := availability.Resolve(resolveDate, []availability.SourceRow{row}, nil)

		require.Len(t, res.Listings, 1)
		assert.Equal(t, "Unknown Vendor", res.Listings[0].VendorName)
	})

	t.Run("image reference passes through untouched", func(t *testing.T) {
		row := weeklyRow(itemRice, "Chicken Biryani", 120)
		row.Image = &menu.ImageRef{Bucket: "menu-images", Path: vendorA.String() + "/rice.png"}

		res := availability.Resolve(resolveDate, []availability.SourceRow{row}, nil)

		require.Len(t, res.Listings, 1)
		assert.Equal(t, row.Image, res.Listings[0].Image)
	})

	t.Run("incomplete rows are skipped with a reason", func(t *testing.T) {
		noID := weeklyRow(itemRice, "Chicken Biryani", 120)
		noID.ItemID = nil
		noName := weeklyRow(itemCurry, "", 150)
		noPrice := specialRow(itemSamosa, "Samosa", 0, nil, nil)
		noPrice.BasePrice = nil

		res := availability.Resolve(resolveDate, []availability.SourceRow{noID, noName}, []availability.SourceRow{noPrice})

		assert.Empty(t, res.Listings)
		require.Len(t, res.Skipped, 3)
		assert.Nil(t, res.Skipped[0].ItemID)
		assert.Equal(t, "missing item id", res.Skipped[0].Reason)
		assert.Equal(t, "missing item name", res.Skipped[1].Reason)
		assert.Equal(t, "missing price", res.Skipped[2].Reason)
	})

	t.Run("missing vendor id is skipped", func(t *testing.T) {
		row := weeklyRow(itemRice, "Chicken Biryani", 120)
		row.VendorID = ptr.Of(uuid.Nil)

		res := availability.Resolve(resolveDate, []availability.SourceRow{row}, nil)

		assert.Empty(t, res.Listings)
		require.Len(t, res.Skipped, 1)
		assert.Equal(t, "missing vendor id", res.Skipped[0].Reason)
	})

	t.Run("undecodable price skips the row with its reason", func(t *testing.T) {
		row := weeklyRow(itemRice, "Chicken Biryani", 120)
		row.BasePrice = nil
		row.Defect = "unreadable base price"

		res := availability.Resolve(resolveDate, []availability.SourceRow{row}, nil)

		assert.Empty(t, res.Listings)
		require.Len(t, res.Skipped, 1)
		assert.Equal(t, itemRice, *res.Skipped[0].ItemID)
		assert.Equal(t, "unreadable base price", res.Skipped[0].Reason)
	})

	t.Run("defective special never falls back to the base price", func(t *testing.T) {
		special := specialRow(itemCurry, "Beef Curry", 150, nil, ptr.Of(int32(5)))
		special.Defect = "unreadable special price"

		res := availability.Resolve(resolveDate,
			[]availability.SourceRow{weeklyRow(itemCurry, "Beef Curry", 150)},
			[]availability.SourceRow{special},
		)

		assert.Empty(t, res.Listings)
		require.Len(t, res.Skipped, 1)
		assert.Equal(t, "unreadable special price", res.Skipped[0].Reason)
	})

	t.Run("empty inputs give an empty, non-nil listing slice", func(t *testing.T) {
		res := availability.Resolve(resolveDate, nil, nil)

		assert.NotNil(t, res.Listings)
		assert.Empty(t, res.Listings)
	})

	t.Run("same input resolves to the same output", func(t *testing.T) {
		weekly := []availability.SourceRow{weeklyRow(itemRice, "Chicken Biryani", 120), weeklyRow(itemCurry, "Beef Curry", 150)}
		specials := []availability.SourceRow{specialRow(itemCurry, "Beef Curry", 150, ptr.Of(130.0), ptr.Of(int32(5)))}

		first := availability.Resolve(resolveDate, weekly, specials)
		second := availability.Resolve(resolveDate, weekly, specials)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("resolution is not deterministic (-first +second):\n%s", diff)
		}
	})
}

func TestWeekdayAndDates(t *testing.T) {
	t.Run("weekday numbering starts at Sunday", func(t *testing.T) {
		sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, availability.WeekdayOf(sunday).Int())
		assert.Equal(t, 6, availability.WeekdayOf(sunday.AddDate(0, 0, 6)).Int())
	})

	t.Run("weekday range is checked", func(t *testing.T) {
		for _, v := range []int{-1, 7} {
			_, err := availability.NewWeekday(v)
			assert.ErrorIs(t, err, availability.ErrInvalidWeekday)
		}
		w, err := availability.NewWeekday(3)
		require.NoError(t, err)
		assert.Equal(t, "Wednesday", w.String())
	})

	t.Run("dates parse in the given zone", func(t *testing.T) {
		dhaka := time.FixedZone("BDT", 6*60*60)
		d, err := availability.ParseDate("2025-03-12", dhaka)
		require.NoError(t, err)
		assert.Equal(t, dhaka, d.Location())
		assert.Equal(t, 12, d.Day())

		_, err = availability.ParseDate("12/03/2025", dhaka)
		assert.ErrorIs(t, err, availability.ErrInvalidDate)
	})
}

func TestDateSpecial(t *testing.T) {
	today := resolveDate

	t.Run("today is accepted and price is rounded", func(t *testing.T) {
		s, err := availability.NewDateSpecial(itemRice, today, ptr.Of(int32(10)), ptr.Of(89.999), today)
		require.NoError(t, err)
		assert.Equal(t, ptr.Of(90.0), s.SpecialPrice())
	})

	t.Run("past dates are rejected", func(t *testing.T) {
		_, err := availability.NewDateSpecial(itemRice, today.AddDate(0, 0, -1), nil, nil, today)
		assert.ErrorIs(t, err, availability.ErrDateInPast)
	})

	t.Run("negative quantity and non-positive price are rejected", func(t *testing.T) {
		_, err := availability.NewDateSpecial(itemRice, today, ptr.Of(int32(-1)), nil, today)
		assert.ErrorIs(t, err, availability.ErrInvalidQuantity)

		_, err = availability.NewDateSpecial(itemRice, today, nil, ptr.Of(0.0), today)
		assert.ErrorIs(t, err, availability.ErrInvalidSpecialPrice)
	})

	t.Run("empty patch is rejected and partial patch keeps other fields", func(t *testing.T) {
		s := availability.ReconstructDateSpecial(uuid.New(), itemRice, today, ptr.Of(int32(5)), ptr.Of(50.0))

		assert.ErrorIs(t, s.Apply(availability.SpecialPatch{}), availability.ErrEmptySpecialPatch)

		require.NoError(t, s.Apply(availability.SpecialPatch{Quantity: ptr.Of(int32(8))}))
		assert.Equal(t, ptr.Of(int32(8)), s.Quantity())
		assert.Equal(t, ptr.Of(50.0), s.SpecialPrice())
	})

	t.Run("weekly rule validates the weekday", func(t *testing.T) {
		_, err := availability.NewWeeklyRule(itemRice, 9)
		assert.ErrorIs(t, err, availability.ErrInvalidWeekday)

		r, err := availability.NewWeeklyRule(itemRice, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, r.Weekday().Int())
	})
}
