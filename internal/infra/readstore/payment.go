package readstore

import (
	"context"

	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
	"tiffintime-api/internal/usecase/queries"
)

type PaymentReadQueries interface {
	GetPaymentByTranID(ctx context.Context, db sqlc.DBTX, tranID string) (sqlc.Payments, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindByTranID(ctx context.Context, tranID string) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentByTranID(ctx, r.db, tranID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment", err)
	}
	amount, err := pgconv.Float64FromNumeric(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment amount", err)
	}
	return &queries.PaymentView{
		ID:            row.ID,
		UserID:        row.UserID,
		TranID:        row.TranID,
		Amount:        amount,
		Currency:      row.Currency,
		Status:        row.Status,
		ValID:         pgconv.StringPtrFromPgtype(row.ValID),
		GatewayStatus: pgconv.StringPtrFromPgtype(row.GatewayStatus),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
