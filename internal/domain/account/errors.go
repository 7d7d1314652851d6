package account

import "tiffintime-api/internal/pkg/errs"

var (
	ErrInvalidEmail     = errs.Class("invalid email format", errs.ErrValidation)
	ErrInvalidRole      = errs.Class("role must be student or vendor", errs.ErrValidation)
	ErrPasswordTooWeak  = errs.Class("password must be at least 6 characters long", errs.ErrValidation)
	ErrPasswordMismatch = errs.Class("password and confirm_password do not match", errs.ErrValidation)
	ErrEmptyName        = errs.Class("name cannot be empty", errs.ErrValidation)
	ErrNameTooLong      = errs.Class("name exceeds maximum length", errs.ErrValidation)
	ErrInvalidPhone     = errs.Class("invalid phone number", errs.ErrValidation)
)
