package request

import (
	"tiffintime-api/internal/domain/review"
	"tiffintime-api/internal/infra/gateway"
	"tiffintime-api/internal/pkg/ptr"
	"tiffintime-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	VendorID   uuid.UUID `json:"vendor_id" binding:"required"`
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity   int32     `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	Pickup     string    `json:"pickup"`
}

func (r *PlaceOrderRequest) ToInput() commands.PlaceOrderInput {
	return commands.PlaceOrderInput{
		VendorID:   r.VendorID,
		MenuItemID: r.MenuItemID,
		Quantity:   r.Quantity,
		UnitPrice:  r.UnitPrice,
		Pickup:     r.Pickup,
	}
}

type UpdateOrderStatusRequest struct {
	IsDelivered *bool `json:"is_delivered" binding:"required"`
}

type CreateSubscriptionRequest struct {
	VendorID uuid.UUID `json:"vendor_id" binding:"required"`
	Plan     string    `json:"plan" binding:"required"`
}

type RateVendorRequest struct {
	VendorID uuid.UUID `json:"vendor_id" binding:"required"`
	Rating   int       `json:"rating"`
}

type CreateReviewRequest struct {
	VendorID           uuid.UUID `json:"vendor_id" binding:"required"`
	FoodQuality        string    `json:"food_quality" binding:"required"`
	DeliveryExperience string    `json:"delivery_experience" binding:"required"`
	Comment            *string   `json:"comment"`
}

func (r *CreateReviewRequest) ToInput() review.Input {
	return review.Input{
		VendorID:           r.VendorID,
		FoodQuality:        r.FoodQuality,
		DeliveryExperience: r.DeliveryExperience,
		Comment:            r.Comment,
	}
}

type ReplyReviewRequest struct {
	Reply string `json:"reply"`
}

type CustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   string  `json:"phone" binding:"required"`
	Address *string `json:"address"`
}

type InitPaymentRequest struct {
	OrderIDs []uuid.UUID     `json:"order_ids" binding:"required,min=1"`
	Amount   float64         `json:"amount"`
	Customer CustomerRequest `json:"customer" binding:"required"`
}

func (r *InitPaymentRequest) ToInput() commands.InitPaymentInput {
	return commands.InitPaymentInput{
		OrderIDs: r.OrderIDs,
		Amount:   r.Amount,
		Customer: gateway.Customer{
			Name:    r.Customer.Name,
			Email:   r.Customer.Email,
			Phone:   r.Customer.Phone,
			Address: ptr.Deref(r.Customer.Address),
		},
	}
}

// PaymentCallbackForm is what the gateway posts to the browser redirects.
type PaymentCallbackForm struct {
	TranID string `form:"tran_id" binding:"required"`
	ValID  string `form:"val_id"`
}
