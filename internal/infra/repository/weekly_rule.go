package repository

import (
	"context"

	"tiffintime-api/internal/domain/availability"
	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
	"tiffintime-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type WeeklyRuleQueries interface {
	UpsertWeeklyAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertWeeklyAvailabilityParams) (sqlc.WeeklyAvailability, error)
	DeleteWeeklyAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteWeeklyAvailabilityParams) (int64, error)
}

type WeeklyRuleRepository struct {
	queries WeeklyRuleQueries
}

func NewWeeklyRuleRepository(queries WeeklyRuleQueries) *WeeklyRuleRepository {
	return &WeeklyRuleRepository{queries: queries}
}

func (r *WeeklyRuleRepository) Upsert(ctx context.Context, tx sqlc.DBTX, rule *availability.WeeklyRule) (*shared.WeeklyRuleSnapshot, error) {
	row, err := r.queries.UpsertWeeklyAvailability(ctx, tx, sqlc.UpsertWeeklyAvailabilityParams{
		ID:         uuid.New(),
		MenuItemID: rule.MenuItemID(),
		DayOfWeek:  int16(rule.Weekday()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert weekly availability", err)
	}
	return &shared.WeeklyRuleSnapshot{
		ID:         row.ID,
		MenuItemID: row.MenuItemID,
		DayOfWeek:  int(row.DayOfWeek),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

// Delete is idempotent: removing an absent rule is not an error.
func (r *WeeklyRuleRepository) Delete(ctx context.Context, tx sqlc.DBTX, rule *availability.WeeklyRule) error {
	_, err := r.queries.DeleteWeeklyAvailability(ctx, tx, sqlc.DeleteWeeklyAvailabilityParams{
		MenuItemID: rule.MenuItemID(),
		DayOfWeek:  int16(rule.Weekday()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete weekly availability", err)
	}
	return nil
}
