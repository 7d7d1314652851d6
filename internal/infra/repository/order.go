package repository

import (
	"context"

	"tiffintime-api/internal/domain/order"
	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	GetOrderForUpdate(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (sqlc.Orders, error)
	UpdateOrderDelivered(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderDeliveredParams) (int64, error)
	ListOrderOwners(ctx context.Context, db sqlc.DBTX, orderIds []uuid.UUID) ([]sqlc.ListOrderOwnersRow, error)
	LinkOrdersToPayment(ctx context.Context, db sqlc.DBTX, arg sqlc.LinkOrdersToPaymentParams) (int64, error)
}

type OrderRepository struct {
	queries OrderQueries
}

func NewOrderRepository(queries OrderQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	err := r.queries.CreateOrder(ctx, tx, sqlc.CreateOrderParams{
		OrderID:    o.ID(),
		UserID:     o.UserID(),
		VendorID:   o.VendorID(),
		MenuItemID: o.MenuItemID(),
		Quantity:   o.Quantity(),
		UnitPrice:  pgconv.Float64ToNumeric(o.UnitPrice()),
		TotalPrice: pgconv.Float64ToNumeric(o.TotalPrice()),
		Pickup:     o.Pickup(),
		OrderDate:  pgconv.TimeToPgtype(o.OrderDate()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	unit, err := pgconv.Float64FromNumeric(row.UnitPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode order unit price", err)
	}
	total, err := pgconv.Float64FromNumeric(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode order total", err)
	}
	return order.Reconstruct(
		row.OrderID,
		row.UserID,
		row.VendorID,
		row.MenuItemID,
		row.Quantity,
		unit,
		total,
		row.Pickup,
		pgconv.TimeFromPgtype(row.OrderDate),
		row.IsDelivered,
		pgconv.UUIDPtrFromPgtype(row.PaymentID),
	), nil
}

func (r *OrderRepository) UpdateDelivered(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	n, err := r.queries.UpdateOrderDelivered(ctx, tx, sqlc.UpdateOrderDeliveredParams{
		OrderID:     o.ID(),
		IsDelivered: o.IsDelivered(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

// OwnersOf maps each existing order id to its user; unknown ids are absent.
func (r *OrderRepository) OwnersOf(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	rows, err := r.queries.ListOrderOwners(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order owners", err)
	}
	owners := make(map[uuid.UUID]uuid.UUID, len(rows))
	for _, row := range rows {
		owners[row.OrderID] = row.UserID
	}
	return owners, nil
}

func (r *OrderRepository) LinkPayment(ctx context.Context, tx sqlc.DBTX, paymentID uuid.UUID, orderIDs []uuid.UUID) error {
	_, err := r.queries.LinkOrdersToPayment(ctx, tx, sqlc.LinkOrdersToPaymentParams{
		PaymentID: pgconv.UUIDToPgtype(paymentID),
		OrderIds:  orderIDs,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to link orders to payment", err)
	}
	return nil
}
