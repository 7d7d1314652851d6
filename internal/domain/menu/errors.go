package menu

import "tiffintime-api/internal/pkg/errs"

var (
	ErrInvalidCategory    = errs.Class("category must be one of Rice, Curry, Snacks, Drinks, Desserts", errs.ErrValidation)
	ErrInvalidPrice       = errs.Class("price must be greater than zero", errs.ErrValidation)
	ErrInvalidPrepTime    = errs.Class("prep time cannot be negative", errs.ErrValidation)
	ErrEmptyItemName      = errs.Class("item name cannot be empty", errs.ErrValidation)
	ErrItemNameTooLong    = errs.Class("item name exceeds maximum length", errs.ErrValidation)
	ErrDescriptionTooLong = errs.Class("description exceeds maximum length", errs.ErrValidation)
	ErrEmptyPatch         = errs.Class("no fields to update", errs.ErrValidation)
	ErrNotOwner           = errs.Class("menu item belongs to another vendor", errs.ErrForbidden)
)
