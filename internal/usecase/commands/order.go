package commands

import (
	"context"
	"log/slog"
	"time"

	"tiffintime-api/internal/domain/order"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/pkg/clock"
	"tiffintime-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// DeliveryNotifier accepts notices without blocking the caller.
type DeliveryNotifier interface {
	Enqueue(n shared.OrderNoticeSnapshot) bool
}

type PlaceOrderInput struct {
	VendorID   uuid.UUID
	MenuItemID uuid.UUID
	Quantity   int32
	UnitPrice  float64
	Pickup     string
}

type PlaceOrderResult struct {
	OrderID    uuid.UUID
	TotalPrice float64
}

type OrderStatusResult struct {
	OrderID     uuid.UUID
	UserID      uuid.UUID
	MenuItemID  uuid.UUID
	Quantity    int32
	TotalPrice  float64
	Pickup      string
	OrderDate   time.Time
	IsDelivered bool
}

type OrderCommands interface {
	Place(ctx context.Context, userID uuid.UUID, in PlaceOrderInput) (*PlaceOrderResult, error)
	SetDelivered(ctx context.Context, vendorID, orderID uuid.UUID, delivered bool) (*OrderStatusResult, error)
}

type orderCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier DeliveryNotifier
	clock    clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, notifier DeliveryNotifier, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
	}
}

func (o *orderCommandsImpl) Place(ctx context.Context, userID uuid.UUID, in PlaceOrderInput) (*PlaceOrderResult, error) {
	placed, err := order.Place(order.PlaceInput{
		UserID:     userID,
		VendorID:   in.VendorID,
		MenuItemID: in.MenuItemID,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		Pickup:     in.Pickup,
	}, o.clock.Now())
	if err != nil {
		return nil, err
	}

	reads := o.uow.CommandReads()
	exists, err := reads.VendorExists(ctx, in.VendorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrVendorNotFound
	}
	item, err := reads.MenuItemByID(ctx, in.MenuItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	if item.VendorID != in.VendorID {
		return nil, ErrItemVendorMismatch
	}

	err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().Create(ctx, tx.DB(), placed)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	return &PlaceOrderResult{OrderID: placed.ID(), TotalPrice: placed.TotalPrice()}, nil
}

// SetDelivered enqueues a delivery notice after commit when the order moves
// from undelivered to delivered.
func (o *orderCommandsImpl) SetDelivered(ctx context.Context, vendorID, orderID uuid.UUID, delivered bool) (*OrderStatusResult, error) {
	var (
		updated *order.Order
		notice  *shared.OrderNoticeSnapshot
	)
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ord, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		change, err := ord.SetDelivered(vendorID, delivered)
		if err != nil {
			return err
		}
		if err := tx.Orders().UpdateDelivered(ctx, tx.DB(), ord); err != nil {
			return err
		}
		updated = ord

		if change.BecameDelivered() {
			n, err := tx.Reads().OrderNotice(ctx, orderID)
			if err != nil {
				slog.Warn("Failed to load delivery notice", "order_id", orderID.String(), "error", err.Error())
				return nil
			}
			notice = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if notice != nil {
		o.notifier.Enqueue(*notice)
	}

	return &OrderStatusResult{
		OrderID:     updated.ID(),
		UserID:      updated.UserID(),
		MenuItemID:  updated.MenuItemID(),
		Quantity:    updated.Quantity(),
		TotalPrice:  updated.TotalPrice(),
		Pickup:      updated.Pickup(),
		OrderDate:   updated.OrderDate(),
		IsDelivered: updated.IsDelivered(),
	}, nil
}
