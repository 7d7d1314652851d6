package availability

import "github.com/google/uuid"

// WeeklyRule marks a menu item available on one weekday. The absence of a
// rule means the item is not recurring-available that day.
type WeeklyRule struct {
	menuItemID uuid.UUID
	weekday    Weekday
}

func NewWeeklyRule(menuItemID uuid.UUID, day int) (*WeeklyRule, error) {
	weekday, err := NewWeekday(day)
	if err != nil {
		return nil, err
	}
	return &WeeklyRule{menuItemID: menuItemID, weekday: weekday}, nil
}

func (r *WeeklyRule) MenuItemID() uuid.UUID { return r.menuItemID }
func (r *WeeklyRule) Weekday() Weekday      { return r.weekday }
