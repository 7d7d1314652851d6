//go:build unit || e2e

package builder

import (
	reqdto "tiffintime-api/internal/handler/dto/request"
	"tiffintime-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	VendorID   uuid.UUID
	MenuItemID uuid.UUID
	Quantity   int32
	UnitPrice  float64
	Pickup     string
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		VendorID:   uuid.New(),
		MenuItemID: uuid.New(),
		Quantity:   2,
		UnitPrice:  45.5,
		Pickup:     "Library entrance",
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) BuildDTO() reqdto.PlaceOrderRequest {
	return reqdto.PlaceOrderRequest{
		VendorID:   o.VendorID,
		MenuItemID: o.MenuItemID,
		Quantity:   o.Quantity,
		UnitPrice:  o.UnitPrice,
		Pickup:     o.Pickup,
	}
}

func (o *OrderBuilder) BuildInput() commands.PlaceOrderInput {
	dto := o.BuildDTO()
	return dto.ToInput()
}
