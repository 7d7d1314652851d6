package payment

import (
	"math"
	"strings"
	"time"

	"tiffintime-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount     = errs.Class("amount must be greater than zero", errs.ErrValidation)
	ErrNoOrders          = errs.Class("at least one order is required", errs.ErrValidation)
	ErrInvalidStatus     = errs.Class("unknown payment status", errs.ErrValidation)
	ErrInvalidTransition = errs.Class("payment status is already final", errs.ErrConflict)
	ErrNotPayer          = errs.Class("payment belongs to another account", errs.ErrForbidden)
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusSuccess, StatusFailed, StatusCancelled:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) IsFinal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusCancelled
}

func (s Status) String() string { return string(s) }

// Transition reports whether moving from current to next changes anything.
// Pending may move to any final state; a final state only accepts itself.
func Transition(current, next Status) (changed bool, err error) {
	if current == next {
		return false, nil
	}
	if current != StatusPending || !next.IsFinal() {
		return false, ErrInvalidTransition
	}
	return true, nil
}

// StatusFromValidation maps a gateway validation status onto ours.
func StatusFromValidation(gatewayStatus string) Status {
	switch strings.ToUpper(strings.TrimSpace(gatewayStatus)) {
	case "VALID", "VALIDATED":
		return StatusSuccess
	case "CANCELLED":
		return StatusCancelled
	default:
		return StatusFailed
	}
}

const tranIDPrefix = "TT-"

func NewTranID() string {
	return tranIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

type Payment struct {
	id        uuid.UUID
	userID    uuid.UUID
	tranID    string
	amount    float64
	currency  string
	status    Status
	orderIDs  []uuid.UUID
	createdAt time.Time
}

func NewPending(userID uuid.UUID, amount float64, currency string, orderIDs []uuid.UUID, now time.Time) (*Payment, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(orderIDs) == 0 {
		return nil, ErrNoOrders
	}
	return &Payment{
		id:        uuid.New(),
		userID:    userID,
		tranID:    NewTranID(),
		amount:    math.Round(amount*100) / 100,
		currency:  currency,
		status:    StatusPending,
		orderIDs:  dedupe(orderIDs),
		createdAt: now,
	}, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) UserID() uuid.UUID     { return p.userID }
func (p *Payment) TranID() string        { return p.tranID }
func (p *Payment) Amount() float64       { return p.amount }
func (p *Payment) Currency() string      { return p.currency }
func (p *Payment) Status() Status        { return p.status }
func (p *Payment) OrderIDs() []uuid.UUID { return p.orderIDs }
func (p *Payment) CreatedAt() time.Time  { return p.createdAt }

func ReconstructPayment(id, userID uuid.UUID, tranID string, amount float64, currency string, status Status, createdAt time.Time) *Payment {
	return &Payment{
		id:        id,
		userID:    userID,
		tranID:    tranID,
		amount:    amount,
		currency:  currency,
		status:    status,
		createdAt: createdAt,
	}
}

// MoveTo applies a gateway outcome. A repeated final status is a no-op.
func (p *Payment) MoveTo(next Status) (changed bool, err error) {
	changed, err = Transition(p.status, next)
	if err != nil || !changed {
		return false, err
	}
	p.status = next
	return true, nil
}

func (p *Payment) EnsureVisibleTo(actorID uuid.UUID, actorIsAdmin bool) error {
	if actorIsAdmin || actorID == p.userID {
		return nil
	}
	return ErrNotPayer
}
