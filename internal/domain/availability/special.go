package availability

import (
	"math"
	"time"

	"tiffintime-api/internal/pkg/patch"

	"github.com/google/uuid"
)

// DateSpecial marks a menu item purchasable on one calendar date, with an
// optional stock cap and override price. Unique per (item, date).
type DateSpecial struct {
	id           uuid.UUID
	menuItemID   uuid.UUID
	date         time.Time
	quantity     *int32
	specialPrice *float64
}

func NewDateSpecial(menuItemID uuid.UUID, date time.Time, quantity *int32, specialPrice *float64, today time.Time) (*DateSpecial, error) {
	if !sameOrAfter(date, today) {
		return nil, ErrDateInPast
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	price, err := normalizeSpecialPrice(specialPrice)
	if err != nil {
		return nil, err
	}
	return &DateSpecial{
		id:           uuid.New(),
		menuItemID:   menuItemID,
		date:         date,
		quantity:     quantity,
		specialPrice: price,
	}, nil
}

func ReconstructDateSpecial(id, menuItemID uuid.UUID, date time.Time, quantity *int32, specialPrice *float64) *DateSpecial {
	return &DateSpecial{
		id:           id,
		menuItemID:   menuItemID,
		date:         date,
		quantity:     quantity,
		specialPrice: specialPrice,
	}
}

type SpecialPatch struct {
	Quantity     *int32
	SpecialPrice *float64
}

func (p SpecialPatch) IsEmpty() bool {
	return !patch.AnySet(p.Quantity != nil, p.SpecialPrice != nil)
}

func (s *DateSpecial) Apply(p SpecialPatch) error {
	if p.IsEmpty() {
		return ErrEmptySpecialPatch
	}
	if err := validateQuantity(p.Quantity); err != nil {
		return err
	}
	price, err := normalizeSpecialPrice(p.SpecialPrice)
	if err != nil {
		return err
	}
	s.quantity = patch.CoalescePtr(p.Quantity, s.quantity)
	s.specialPrice = patch.CoalescePtr(price, s.specialPrice)
	return nil
}

func (s *DateSpecial) ID() uuid.UUID          { return s.id }
func (s *DateSpecial) MenuItemID() uuid.UUID  { return s.menuItemID }
func (s *DateSpecial) Date() time.Time        { return s.date }
func (s *DateSpecial) Quantity() *int32       { return s.quantity }
func (s *DateSpecial) SpecialPrice() *float64 { return s.specialPrice }

func validateQuantity(q *int32) error {
	if q != nil && *q < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

func normalizeSpecialPrice(p *float64) (*float64, error) {
	if p == nil {
		return nil, nil
	}
	if math.IsNaN(*p) || math.IsInf(*p, 0) || *p <= 0 {
		return nil, ErrInvalidSpecialPrice
	}
	v := math.Round(*p*100) / 100
	return &v, nil
}
