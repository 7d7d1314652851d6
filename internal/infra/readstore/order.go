package readstore

import (
	"context"

	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
	"tiffintime-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadQueries interface {
	ListOrdersByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListOrdersByUserRow, error)
	ListOrdersByVendor(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByVendorParams) ([]sqlc.ListOrdersByVendorRow, error)
	GetOrderNotice(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (sqlc.GetOrderNoticeRow, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.UserOrderView, error) {
	rows, err := r.queries.ListOrdersByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}
	result := make([]*queries.UserOrderView, len(rows))
	for i, row := range rows {
		unit, total, err := decodeAmounts(row.UnitPrice, row.TotalPrice)
		if err != nil {
			return nil, err
		}
		result[i] = &queries.UserOrderView{
			OrderID:     row.OrderID,
			VendorID:    row.VendorID,
			VendorName:  row.VendorName,
			MenuItemID:  row.MenuItemID,
			ItemName:    row.ItemName,
			Quantity:    row.Quantity,
			UnitPrice:   unit,
			TotalPrice:  total,
			Pickup:      row.Pickup,
			OrderDate:   pgconv.TimeFromPgtype(row.OrderDate),
			IsDelivered: row.IsDelivered,
		}
	}
	return result, nil
}

func (r *OrderReadStore) ListByVendor(ctx context.Context, vendorID uuid.UUID, delivered *bool) ([]*queries.VendorOrderView, error) {
	rows, err := r.queries.ListOrdersByVendor(ctx, r.db, sqlc.ListOrdersByVendorParams{
		VendorID:  vendorID,
		Delivered: pgconv.BoolPtrToPgtype(delivered),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by vendor", err)
	}
	result := make([]*queries.VendorOrderView, len(rows))
	for i, row := range rows {
		unit, total, err := decodeAmounts(row.UnitPrice, row.TotalPrice)
		if err != nil {
			return nil, err
		}
		result[i] = &queries.VendorOrderView{
			OrderID:     row.OrderID,
			UserID:      row.UserID,
			UserName:    row.UserName,
			MenuItemID:  row.MenuItemID,
			ItemName:    row.ItemName,
			Quantity:    row.Quantity,
			UnitPrice:   unit,
			TotalPrice:  total,
			Pickup:      row.Pickup,
			OrderDate:   pgconv.TimeFromPgtype(row.OrderDate),
			IsDelivered: row.IsDelivered,
		}
	}
	return result, nil
}

// FindNotice loads what a delivery email needs about one order.
func (r *OrderReadStore) FindNotice(ctx context.Context, orderID uuid.UUID) (sqlc.GetOrderNoticeRow, error) {
	row, err := r.queries.GetOrderNotice(ctx, r.db, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.GetOrderNoticeRow{}, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return sqlc.GetOrderNoticeRow{}, infra.WrapRepoErr("failed to get order notice", err)
	}
	return row, nil
}

func decodeAmounts(unitPrice, totalPrice pgtype.Numeric) (float64, float64, error) {
	unit, err := pgconv.Float64FromNumeric(unitPrice)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to decode unit price", err)
	}
	total, err := pgconv.Float64FromNumeric(totalPrice)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to decode total price", err)
	}
	return unit, total, nil
}
