package subscription

import (
	"time"

	"tiffintime-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlan   = errs.Class("plan must be weekly or monthly", errs.ErrValidation)
	ErrNotSubscriber = errs.Class("subscription belongs to another account", errs.ErrForbidden)
)

type Plan string

const (
	PlanWeekly  Plan = "weekly"
	PlanMonthly Plan = "monthly"
)

const day = 24 * time.Hour

func NewPlan(s string) (Plan, error) {
	switch Plan(s) {
	case PlanWeekly, PlanMonthly:
		return Plan(s), nil
	default:
		return "", ErrInvalidPlan
	}
}

// Period is the subscription length: 7 days for weekly, 30 for monthly.
func (p Plan) Period() time.Duration {
	switch p {
	case PlanMonthly:
		return 30 * day
	default:
		return 7 * day
	}
}

func (p Plan) String() string { return string(p) }

type Subscription struct {
	id        uuid.UUID
	userID    uuid.UUID
	vendorID  uuid.UUID
	plan      Plan
	startDate time.Time
	endDate   time.Time
}

func New(userID, vendorID uuid.UUID, plan Plan, now time.Time) *Subscription {
	return &Subscription{
		id:        uuid.New(),
		userID:    userID,
		vendorID:  vendorID,
		plan:      plan,
		startDate: now,
		endDate:   now.Add(plan.Period()),
	}
}

func Reconstruct(id, userID, vendorID uuid.UUID, plan Plan, startDate, endDate time.Time) *Subscription {
	return &Subscription{
		id:        id,
		userID:    userID,
		vendorID:  vendorID,
		plan:      plan,
		startDate: startDate,
		endDate:   endDate,
	}
}

func (s *Subscription) ID() uuid.UUID        { return s.id }
func (s *Subscription) UserID() uuid.UUID    { return s.userID }
func (s *Subscription) VendorID() uuid.UUID  { return s.vendorID }
func (s *Subscription) Plan() Plan           { return s.plan }
func (s *Subscription) StartDate() time.Time { return s.startDate }
func (s *Subscription) EndDate() time.Time   { return s.endDate }

// RemainingDays is the number of whole days until end, never negative.
func RemainingDays(end, now time.Time) int {
	if !end.After(now) {
		return 0
	}
	return int(end.Sub(now) / day)
}

// CanCancel allows the subscriber, the subscribed vendor, or an admin.
func CanCancel(subscriberID, vendorID, actorID uuid.UUID, actorIsAdmin bool) error {
	if actorIsAdmin || actorID == subscriberID || actorID == vendorID {
		return nil
	}
	return ErrNotSubscriber
}
