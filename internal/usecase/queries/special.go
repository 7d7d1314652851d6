package queries

import (
	"context"
	"time"

	"tiffintime-api/internal/domain/availability"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type SpecialReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DateSpecialView, error)
	ListByDate(ctx context.Context, date time.Time) ([]*DateSpecialView, error)
	// ListUpcomingByVendor returns specials dated on or after from, by date.
	ListUpcomingByVendor(ctx context.Context, vendorID uuid.UUID, from time.Time) ([]*DateSpecialView, error)
}

type SpecialQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*DateSpecialView, error)
	Today(ctx context.Context) ([]*DateSpecialView, error)
	ByDate(ctx context.Context, rawDate string) ([]*DateSpecialView, error)
	Mine(ctx context.Context, vendorID uuid.UUID) ([]*DateSpecialView, error)
}

type specialQueriesImpl struct {
	store  SpecialReadStore
	signer ImageSigner
	clock  clock.Clock
	loc    *time.Location
}

func NewSpecialQueries(store SpecialReadStore, signer ImageSigner, clk clock.Clock, loc *time.Location) SpecialQueries {
	return &specialQueriesImpl{store: store, signer: signer, clock: clk, loc: loc}
}

func (q *specialQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*DateSpecialView, error) {
	s, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpecialNotFound
		}
		return nil, err
	}
	s.ImgURL = signImage(ctx, q.signer, s.Image, s.MenuItemID.String())
	return s, nil
}

func (q *specialQueriesImpl) Today(ctx context.Context) ([]*DateSpecialView, error) {
	return q.byDate(ctx, clock.Today(q.clock, q.loc))
}

func (q *specialQueriesImpl) ByDate(ctx context.Context, rawDate string) ([]*DateSpecialView, error) {
	date, err := availability.ParseDate(rawDate, q.loc)
	if err != nil {
		return nil, err
	}
	return q.byDate(ctx, date)
}

func (q *specialQueriesImpl) Mine(ctx context.Context, vendorID uuid.UUID) ([]*DateSpecialView, error) {
	specials, err := q.store.ListUpcomingByVendor(ctx, vendorID, clock.Today(q.clock, q.loc))
	if err != nil {
		return nil, err
	}
	return q.sign(ctx, specials), nil
}

func (q *specialQueriesImpl) byDate(ctx context.Context, date time.Time) ([]*DateSpecialView, error) {
	specials, err := q.store.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return q.sign(ctx, specials), nil
}

func (q *specialQueriesImpl) sign(ctx context.Context, specials []*DateSpecialView) []*DateSpecialView {
	for _, s := range specials {
		s.ImgURL = signImage(ctx, q.signer, s.Image, s.MenuItemID.String())
	}
	return specials
}
