package availability

import "tiffintime-api/internal/pkg/errs"

var (
	ErrInvalidWeekday      = errs.Class("day_of_week must be between 0 (Sunday) and 6 (Saturday)", errs.ErrValidation)
	ErrDateInPast          = errs.Class("special date cannot be in the past", errs.ErrValidation)
	ErrInvalidQuantity     = errs.Class("quantity cannot be negative", errs.ErrValidation)
	ErrInvalidSpecialPrice = errs.Class("special price must be greater than zero", errs.ErrValidation)
	ErrEmptySpecialPatch   = errs.Class("no fields to update", errs.ErrValidation)
	ErrInvalidDate         = errs.Class("date must be formatted as YYYY-MM-DD", errs.ErrValidation)
)
