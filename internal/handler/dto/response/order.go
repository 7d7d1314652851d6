package response

import (
	"time"

	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PlaceOrderResponse struct {
	OrderID    uuid.UUID `json:"order_id"`
	TotalPrice float64   `json:"total_price"`
}

type OrderStatusResponse struct {
	OrderID     uuid.UUID `json:"order_id"`
	UserID      uuid.UUID `json:"user_id"`
	MenuItemID  uuid.UUID `json:"menu_item_id"`
	Quantity    int32     `json:"quantity"`
	TotalPrice  float64   `json:"total_price"`
	Pickup      string    `json:"pickup"`
	OrderDate   time.Time `json:"order_date"`
	IsDelivered bool      `json:"is_delivered"`
}

func FromOrderStatus(r *commands.OrderStatusResult) (*OrderStatusResponse, error) {
	var res OrderStatusResponse
	if err := copier.Copy(&res, r); err != nil {
		return nil, err
	}
	return &res, nil
}

type SubscriptionResponse struct {
	ID        uuid.UUID `json:"id"`
	VendorID  uuid.UUID `json:"vendor_id"`
	Plan      string    `json:"plan"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func FromSubscriptionResult(r *commands.SubscriptionResult) (*SubscriptionResponse, error) {
	var res SubscriptionResponse
	if err := copier.Copy(&res, r); err != nil {
		return nil, err
	}
	return &res, nil
}

type WeeklyRuleResponse struct {
	ID          uuid.UUID `json:"id"`
	MenuItemID  uuid.UUID `json:"menu_item_id"`
	DayOfWeek   int       `json:"day_of_week"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromWeeklyRule(s *shared.WeeklyRuleSnapshot) *WeeklyRuleResponse {
	return &WeeklyRuleResponse{
		ID:          s.ID,
		MenuItemID:  s.MenuItemID,
		DayOfWeek:   s.DayOfWeek,
		IsAvailable: true,
		CreatedAt:   s.CreatedAt,
	}
}

type RatingResponse struct {
	VendorID uuid.UUID `json:"vendor_id"`
	Rating   int       `json:"rating"`
}

type ReviewResponse struct {
	ReviewID           int64     `json:"review_id"`
	VendorID           uuid.UUID `json:"vendor_id"`
	FoodQuality        string    `json:"food_quality"`
	DeliveryExperience string    `json:"delivery_experience"`
	Comment            *string   `json:"comment"`
	Reply              *string   `json:"reply"`
	IsReplied          bool      `json:"is_replied"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromCreatedReview(r *commands.CreateReviewResult) *ReviewResponse {
	return &ReviewResponse{
		ReviewID:           r.ReviewID,
		VendorID:           r.VendorID,
		FoodQuality:        r.FoodQuality,
		DeliveryExperience: r.DeliveryExperience,
		Comment:            r.Comment,
		CreatedAt:          r.CreatedAt,
	}
}

type UploadResponse struct {
	Bucket string  `json:"bucket"`
	Path   string  `json:"path"`
	URL    *string `json:"url"`
}

type InitPaymentResponse struct {
	PaymentID  uuid.UUID `json:"payment_id"`
	TranID     string    `json:"tran_id"`
	GatewayURL string    `json:"gateway_url"`
	SessionKey string    `json:"session_key"`
}

func FromInitPayment(r *commands.InitPaymentResult) *InitPaymentResponse {
	return &InitPaymentResponse{
		PaymentID:  r.PaymentID,
		TranID:     r.TranID,
		GatewayURL: r.GatewayURL,
		SessionKey: r.SessionKey,
	}
}
