package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side views.

type AccountSnapshot struct {
	ID           uuid.UUID
	Role         string
	Name         string
	Email        string
	PasswordHash string
}

type MenuItemSnapshot struct {
	ID       uuid.UUID
	VendorID uuid.UUID
	Name     string
	Price    float64
}

type WeeklyRuleSnapshot struct {
	ID         uuid.UUID
	MenuItemID uuid.UUID
	DayOfWeek  int
	CreatedAt  time.Time
}

// OrderNoticeSnapshot carries what the delivery email needs.
type OrderNoticeSnapshot struct {
	OrderID    uuid.UUID
	Pickup     string
	TotalPrice float64
	UserEmail  string
	UserName   string
	ItemName   string
	VendorName string
}
