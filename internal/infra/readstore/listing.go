package readstore

import (
	"context"
	"time"

	"tiffintime-api/internal/domain/availability"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/infra/converter"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type ListingSourceQueries interface {
	ListWeeklySourceRows(ctx context.Context, db sqlc.DBTX, dayOfWeek int16) ([]sqlc.ListWeeklySourceRowsRow, error)
	ListSpecialSourceRows(ctx context.Context, db sqlc.DBTX, date pgtype.Date) ([]sqlc.ListSpecialSourceRowsRow, error)
}

// ListingSourceStore feeds the availability resolver. Join columns stay
// nullable here; the resolver decides what is usable.
type ListingSourceStore struct {
	queries ListingSourceQueries
	db      sqlc.DBTX
}

func NewListingSourceStore(queries ListingSourceQueries, db sqlc.DBTX) *ListingSourceStore {
	return &ListingSourceStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingSourceStore) WeeklyRows(ctx context.Context, day availability.Weekday) ([]availability.SourceRow, error) {
	rows, err := r.queries.ListWeeklySourceRows(ctx, r.db, int16(day))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch weekly availability", err)
	}
	result := make([]availability.SourceRow, len(rows))
	for i, row := range rows {
		result[i] = converter.WeeklySourceRow(row)
	}
	return result, nil
}

func (r *ListingSourceStore) SpecialRows(ctx context.Context, date time.Time) ([]availability.SourceRow, error) {
	rows, err := r.queries.ListSpecialSourceRows(ctx, r.db, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch date specials", err)
	}
	result := make([]availability.SourceRow, len(rows))
	for i, row := range rows {
		result[i] = converter.SpecialSourceRow(row)
	}
	return result, nil
}
