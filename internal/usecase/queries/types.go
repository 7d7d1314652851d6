package queries

import (
	"time"

	"tiffintime-api/internal/domain/menu"

	"github.com/google/uuid"
)

// AccountView is the public part of a student or vendor account.
type AccountView struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
}

type VendorView struct {
	ID              uuid.UUID      `json:"id"`
	Name            string         `json:"name"`
	Description     *string        `json:"description"`
	IsOpen          bool           `json:"is_open"`
	Image           *menu.ImageRef `json:"-"`
	ImgURL          *string        `json:"img_url"`
	DeliveryTimeMin int32          `json:"delivery_time_min"`
	DeliveryTimeMax int32          `json:"delivery_time_max"`
}

type MenuItemView struct {
	ID            uuid.UUID      `json:"id"`
	VendorID      uuid.UUID      `json:"vendor_id"`
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	Price         float64        `json:"price"`
	PrepTime      int32          `json:"prep_time"`
	Description   *string        `json:"description"`
	Image         *menu.ImageRef `json:"-"`
	ImgURL        *string        `json:"img_url"`
	AvailableDays []int          `json:"available_days"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// DateSpecialView joins a special with its item and vendor.
type DateSpecialView struct {
	ID           uuid.UUID      `json:"id"`
	MenuItemID   uuid.UUID      `json:"menu_item_id"`
	VendorID     uuid.UUID      `json:"vendor_id"`
	VendorName   string         `json:"vendor_name"`
	ItemName     string         `json:"item_name"`
	Category     string         `json:"category"`
	BasePrice    float64        `json:"base_price"`
	Date         time.Time      `json:"date"`
	Quantity     *int32         `json:"quantity"`
	SpecialPrice *float64       `json:"special_price"`
	Image        *menu.ImageRef `json:"-"`
	ImgURL       *string        `json:"img_url"`
}

type WeeklyRuleView struct {
	ID         uuid.UUID `json:"id"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	DayOfWeek  int       `json:"day_of_week"`
	ItemName   string    `json:"item_name"`
	Price      float64   `json:"price"`
}

// ListingView is one orderable item on a resolved date.
type ListingView struct {
	MenuItemID   uuid.UUID `json:"menu_item_id"`
	VendorID     uuid.UUID `json:"vendor_id"`
	VendorName   string    `json:"vendor_name"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Description  *string   `json:"description"`
	PrepTime     *int32    `json:"prep_time"`
	BasePrice    *float64  `json:"base_price"`
	Price        float64   `json:"price"`
	SpecialPrice *float64  `json:"special_price"`
	Quantity     *int32    `json:"quantity"`
	Date         string    `json:"date"`
	ImgURL       *string   `json:"img_url"`
	Source       string    `json:"source"`
}

type UserOrderView struct {
	OrderID     uuid.UUID `json:"order_id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	VendorName  string    `json:"vendor_name"`
	MenuItemID  uuid.UUID `json:"menu_item_id"`
	ItemName    string    `json:"item_name"`
	Quantity    int32     `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
	Pickup      string    `json:"pickup"`
	OrderDate   time.Time `json:"order_date"`
	IsDelivered bool      `json:"is_delivered"`
}

type VendorOrderView struct {
	OrderID     uuid.UUID `json:"order_id"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	MenuItemID  uuid.UUID `json:"menu_item_id"`
	ItemName    string    `json:"item_name"`
	Quantity    int32     `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
	Pickup      string    `json:"pickup"`
	OrderDate   time.Time `json:"order_date"`
	IsDelivered bool      `json:"is_delivered"`
}

// SubscriptionView is a subscription from the subscriber's side.
type SubscriptionView struct {
	ID            uuid.UUID `json:"id"`
	VendorID      uuid.UUID `json:"vendor_id"`
	VendorName    string    `json:"vendor_name"`
	Plan          string    `json:"plan"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	RemainingDays int       `json:"remaining_days"`
}

// SubscriberView is a subscription from the vendor's side.
type SubscriberView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Plan      string    `json:"plan"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type UserDetailsView struct {
	AccountView
	Subscriptions []SubscriptionView `json:"subscriptions"`
}

type RatingStatsView struct {
	VendorID uuid.UUID `json:"vendor_id"`
	Average  float64   `json:"average"`
	Count    int64     `json:"count"`
}

type RatingView struct {
	VendorID uuid.UUID `json:"vendor_id"`
	Rating   int       `json:"rating"`
}

type ReviewView struct {
	ReviewID           int64     `json:"review_id"`
	UserID             uuid.UUID `json:"user_id"`
	Username           string    `json:"username"`
	FoodQuality        string    `json:"food_quality"`
	DeliveryExperience string    `json:"delivery_experience"`
	Comment            *string   `json:"comment"`
	Reply              *string   `json:"reply"`
	IsReplied          bool      `json:"is_replied"`
	CreatedAt          time.Time `json:"created_at"`
}

// PaymentView is the locally stored payment. GatewayStatus is filled from
// the gateway's transaction query when it answers.
type PaymentView struct {
	ID            uuid.UUID `json:"payment_id"`
	UserID        uuid.UUID `json:"-"`
	TranID        string    `json:"tran_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	ValID         *string   `json:"val_id"`
	GatewayStatus *string   `json:"gateway_status"`
	CreatedAt     time.Time `json:"created_at"`
}
