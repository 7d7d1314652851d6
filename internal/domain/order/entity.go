package order

import (
	"math"
	"strings"
	"time"

	"tiffintime-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const maxPickupLength = 200

var (
	ErrInvalidQuantity  = errs.Class("quantity must be at least 1", errs.ErrValidation)
	ErrInvalidUnitPrice = errs.Class("unit price must be greater than zero", errs.ErrValidation)
	ErrInvalidPickup    = errs.Class("pickup must be between 1 and 200 characters", errs.ErrValidation)
	ErrNotVendorOrder   = errs.Class("order belongs to another vendor", errs.ErrForbidden)
)

type Order struct {
	id          uuid.UUID
	userID      uuid.UUID
	vendorID    uuid.UUID
	menuItemID  uuid.UUID
	quantity    int32
	unitPrice   float64
	totalPrice  float64
	pickup      string
	orderDate   time.Time
	isDelivered bool
	paymentID   *uuid.UUID
}

type PlaceInput struct {
	UserID     uuid.UUID
	VendorID   uuid.UUID
	MenuItemID uuid.UUID
	Quantity   int32
	UnitPrice  float64
	Pickup     string
}

// Place builds a new undelivered order with its total computed.
func Place(in PlaceInput, now time.Time) (*Order, error) {
	if in.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if math.IsNaN(in.UnitPrice) || math.IsInf(in.UnitPrice, 0) || in.UnitPrice <= 0 {
		return nil, ErrInvalidUnitPrice
	}
	pickup := strings.TrimSpace(in.Pickup)
	if pickup == "" || len(pickup) > maxPickupLength {
		return nil, ErrInvalidPickup
	}

	return &Order{
		id:          uuid.New(),
		userID:      in.UserID,
		vendorID:    in.VendorID,
		menuItemID:  in.MenuItemID,
		quantity:    in.Quantity,
		unitPrice:   roundMoney(in.UnitPrice),
		totalPrice:  Total(in.UnitPrice, in.Quantity),
		pickup:      pickup,
		orderDate:   now,
		isDelivered: false,
	}, nil
}

func Reconstruct(id, userID, vendorID, menuItemID uuid.UUID, quantity int32, unitPrice, totalPrice float64, pickup string, orderDate time.Time, isDelivered bool, paymentID *uuid.UUID) *Order {
	return &Order{
		id:          id,
		userID:      userID,
		vendorID:    vendorID,
		menuItemID:  menuItemID,
		quantity:    quantity,
		unitPrice:   unitPrice,
		totalPrice:  totalPrice,
		pickup:      pickup,
		orderDate:   orderDate,
		isDelivered: isDelivered,
		paymentID:   paymentID,
	}
}

// Total is unit price times quantity rounded to two decimals.
func Total(unitPrice float64, quantity int32) float64 {
	return roundMoney(unitPrice * float64(quantity))
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// DeliveryChange describes the outcome of a status update.
type DeliveryChange struct {
	Before bool
	After  bool
}

// BecameDelivered is true only for the false to true transition.
func (c DeliveryChange) BecameDelivered() bool {
	return !c.Before && c.After
}

// SetDelivered is restricted to the vendor the order was placed with.
func (o *Order) SetDelivered(vendorID uuid.UUID, delivered bool) (DeliveryChange, error) {
	if o.vendorID != vendorID {
		return DeliveryChange{}, ErrNotVendorOrder
	}
	change := DeliveryChange{Before: o.isDelivered, After: delivered}
	o.isDelivered = delivered
	return change, nil
}

func (o *Order) ID() uuid.UUID         { return o.id }
func (o *Order) UserID() uuid.UUID     { return o.userID }
func (o *Order) VendorID() uuid.UUID   { return o.vendorID }
func (o *Order) MenuItemID() uuid.UUID { return o.menuItemID }
func (o *Order) Quantity() int32       { return o.quantity }
func (o *Order) UnitPrice() float64    { return o.unitPrice }
func (o *Order) TotalPrice() float64   { return o.totalPrice }
func (o *Order) Pickup() string        { return o.pickup }
func (o *Order) OrderDate() time.Time  { return o.orderDate }
func (o *Order) IsDelivered() bool     { return o.isDelivered }
func (o *Order) PaymentID() *uuid.UUID { return o.paymentID }

// ShortCode is the human-facing order reference used in notifications.
func ShortCode(id uuid.UUID) string {
	return strings.ToUpper(id.String()[:8])
}
