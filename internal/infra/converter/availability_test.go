//go:build unit

package converter_test

import (
	"testing"
	"time"

	"tiffintime-api/internal/domain/availability"
	"tiffintime-api/internal/infra/converter"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
	"tiffintime-api/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklySourceRow(t *testing.T) {
	itemID := uuid.New()

	testCases := []struct {
		name       string
		row        sqlc.ListWeeklySourceRowsRow
		wantPrice  *float64
		wantDefect string
	}{
		{
			name:      "price is read",
			row:       sqlc.ListWeeklySourceRowsRow{MenuItemID: itemID, BasePrice: pgconv.Float64ToNumeric(120)},
			wantPrice: ptr.Of(120.0),
		},
		{
			name: "null price stays nil without a defect",
			row:  sqlc.ListWeeklySourceRowsRow{MenuItemID: itemID},
		},
		{
			name:       "NaN price is a defect",
			row:        sqlc.ListWeeklySourceRowsRow{MenuItemID: itemID, BasePrice: pgtype.Numeric{NaN: true, Valid: true}},
			wantDefect: "unreadable base price",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := converter.WeeklySourceRow(tc.row)

			require.NotNil(t, got.ItemID)
			assert.Equal(t, itemID, *got.ItemID)
			assert.Equal(t, tc.wantPrice, got.BasePrice)
			assert.Equal(t, tc.wantDefect, got.Defect)
			assert.Nil(t, got.VendorID)
			assert.Nil(t, got.Image)
		})
	}
}

func TestSpecialSourceRow(t *testing.T) {
	date := pgtype.Date{Time: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), Valid: true}
	base := func() sqlc.ListSpecialSourceRowsRow {
		return sqlc.ListSpecialSourceRowsRow{
			MenuItemID: uuid.New(),
			BasePrice:  pgconv.Float64ToNumeric(80),
			Date:       date,
		}
	}

	t.Run("null special price and quantity stay nil", func(t *testing.T) {
		got := converter.SpecialSourceRow(base())

		assert.Nil(t, got.SpecialPrice)
		assert.Nil(t, got.Quantity)
		assert.Equal(t, date.Time, *got.SpecialDate)
		assert.Empty(t, got.Defect)
	})

	t.Run("NaN special price is a defect", func(t *testing.T) {
		row := base()
		row.SpecialPrice = pgtype.Numeric{NaN: true, Valid: true}

		got := converter.SpecialSourceRow(row)

		assert.Nil(t, got.SpecialPrice)
		assert.Equal(t, "unreadable special price", got.Defect)
	})

	t.Run("NaN base price is a defect", func(t *testing.T) {
		row := base()
		row.BasePrice = pgtype.Numeric{NaN: true, Valid: true}

		got := converter.SpecialSourceRow(row)

		assert.Equal(t, "unreadable base price", got.Defect)
	})
}

func TestDateSpecialRoundTripKeepsCalendarDay(t *testing.T) {
	dhaka := time.FixedZone("Asia/Dhaka", 6*60*60)
	s := availability.ReconstructDateSpecial(uuid.New(), uuid.New(), time.Date(2025, 3, 12, 0, 0, 0, 0, dhaka), ptr.Of(int32(5)), ptr.Of(99.0))

	params := converter.DateSpecialToCreateParams(s)

	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), params.Date.Time)
	assert.Equal(t, pgtype.Int4{Int32: 5, Valid: true}, params.Quantity)
}
