package queries

import (
	"context"
	"log/slog"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/infra"
)

type PaymentReadStore interface {
	FindByTranID(ctx context.Context, tranID string) (*PaymentView, error)
}

// TransactionStatusReader asks the payment gateway for its view of a
// transaction.
type TransactionStatusReader interface {
	TransactionStatus(ctx context.Context, tranID string) (string, error)
}

type PaymentQueries interface {
	Status(ctx context.Context, tranID string, subject account.Subject) (*PaymentView, error)
}

type paymentQueriesImpl struct {
	store   PaymentReadStore
	gateway TransactionStatusReader
}

func NewPaymentQueries(store PaymentReadStore, gateway TransactionStatusReader) PaymentQueries {
	return &paymentQueriesImpl{store: store, gateway: gateway}
}

func (q *paymentQueriesImpl) Status(ctx context.Context, tranID string, subject account.Subject) (*PaymentView, error) {
	p, err := q.store.FindByTranID(ctx, tranID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if !subject.IsAdmin() && p.UserID != subject.ID {
		return nil, ErrPaymentAccess
	}

	// the stored status stays authoritative when the gateway is unreachable
	gwStatus, err := q.gateway.TransactionStatus(ctx, tranID)
	if err != nil {
		slog.Warn("gateway transaction query failed", "tran_id", tranID, "error", err.Error())
		return p, nil
	}
	if gwStatus != "" {
		p.GatewayStatus = &gwStatus
	}
	return p, nil
}
