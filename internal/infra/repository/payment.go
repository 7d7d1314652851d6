package repository

import (
	"context"

	"tiffintime-api/internal/domain/payment"
	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
	"tiffintime-api/internal/pkg/ptr"
)

type PaymentQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) error
	GetPaymentByTranIDForUpdate(ctx context.Context, db sqlc.DBTX, tranID string) (sqlc.Payments, error)
	UpdatePaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentStatusParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentQueries
}

func NewPaymentRepository(queries PaymentQueries) *PaymentRepository {
	return &PaymentRepository{queries: queries}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment, sessionKey string) error {
	err := r.queries.CreatePayment(ctx, tx, sqlc.CreatePaymentParams{
		ID:         p.ID(),
		UserID:     p.UserID(),
		TranID:     p.TranID(),
		Amount:     pgconv.Float64ToNumeric(p.Amount()),
		Currency:   p.Currency(),
		Status:     p.Status().String(),
		SessionKey: pgconv.StringPtrToPgtype(ptr.NonEmpty(sessionKey)),
		CreatedAt:  pgconv.TimeToPgtype(p.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByTranIDForUpdate(ctx context.Context, tx sqlc.DBTX, tranID string) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByTranIDForUpdate(ctx, tx, tranID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}
	amount, err := pgconv.Float64FromNumeric(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment amount", err)
	}
	status, err := payment.NewStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("unexpected payment status", err)
	}
	return payment.ReconstructPayment(row.ID, row.UserID, row.TranID, amount, row.Currency, status, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *payment.Payment, valID, gatewayStatus *string) error {
	n, err := r.queries.UpdatePaymentStatus(ctx, tx, sqlc.UpdatePaymentStatusParams{
		TranID:        p.TranID(),
		Status:        p.Status().String(),
		ValID:         pgconv.StringPtrToPgtype(valID),
		GatewayStatus: pgconv.StringPtrToPgtype(gatewayStatus),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
