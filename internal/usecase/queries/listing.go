package queries

import (
	"context"
	"log/slog"
	"time"

	"tiffintime-api/internal/domain/availability"
	"tiffintime-api/internal/pkg/clock"
	"tiffintime-api/internal/pkg/errs"
	"tiffintime-api/internal/pkg/metrics"
)

// ListingSourceStore fetches the raw inputs of the availability merge.
// Both queries are ordered by vendor name, then item name.
type ListingSourceStore interface {
	WeeklyRows(ctx context.Context, day availability.Weekday) ([]availability.SourceRow, error)
	SpecialRows(ctx context.Context, date time.Time) ([]availability.SourceRow, error)
}

type ListingQueries interface {
	Today(ctx context.Context) ([]ListingView, error)
	ByDate(ctx context.Context, rawDate string) ([]ListingView, error)
}

type listingQueriesImpl struct {
	store  ListingSourceStore
	signer ImageSigner
	clock  clock.Clock
	loc    *time.Location
}

func NewListingQueries(store ListingSourceStore, signer ImageSigner, clk clock.Clock, loc *time.Location) ListingQueries {
	return &listingQueriesImpl{store: store, signer: signer, clock: clk, loc: loc}
}

func (q *listingQueriesImpl) Today(ctx context.Context) ([]ListingView, error) {
	return q.resolve(ctx, clock.Today(q.clock, q.loc))
}

func (q *listingQueriesImpl) ByDate(ctx context.Context, rawDate string) ([]ListingView, error) {
	date, err := availability.ParseDate(rawDate, q.loc)
	if err != nil {
		return nil, err
	}
	return q.resolve(ctx, date)
}

func (q *listingQueriesImpl) resolve(ctx context.Context, date time.Time) ([]ListingView, error) {
	weekly, err := q.store.WeeklyRows(ctx, availability.WeekdayOf(date))
	if err != nil {
		return nil, errs.Mark(err, ErrListingUnavailable)
	}
	specials, err := q.store.SpecialRows(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, ErrListingUnavailable)
	}

	res := availability.Resolve(date, weekly, specials)
	for _, s := range res.Skipped {
		item := "<nil>"
		if s.ItemID != nil {
			item = s.ItemID.String()
		}
		slog.Warn("skipping availability row", "menu_item_id", item, "reason", s.Reason, "date", date.Format(availability.DateLayout))
		metrics.ListingRowSkipped(s.Reason)
	}

	views := make([]ListingView, 0, len(res.Listings))
	for _, l := range res.Listings {
		views = append(views, ListingView{
			MenuItemID:   l.ItemID,
			VendorID:     l.VendorID,
			VendorName:   l.VendorName,
			Name:         l.Name,
			Category:     l.Category,
			Description:  l.Description,
			PrepTime:     l.PrepTime,
			BasePrice:    l.BasePrice,
			Price:        l.Price,
			SpecialPrice: l.SpecialPrice,
			Quantity:     l.Quantity,
			Date:         l.Date.Format(availability.DateLayout),
			ImgURL:       signImage(ctx, q.signer, l.Image, l.ItemID.String()),
			Source:       string(l.Source),
		})
	}
	return views, nil
}
