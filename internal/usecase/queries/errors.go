package queries

import "tiffintime-api/internal/pkg/errs"

var (
	ErrAccountNotFound    = errs.Class("account not found", errs.ErrNotFound)
	ErrVendorNotFound     = errs.Class("vendor not found", errs.ErrNotFound)
	ErrMenuItemNotFound   = errs.Class("menu item not found", errs.ErrNotFound)
	ErrSpecialNotFound    = errs.Class("date special not found", errs.ErrNotFound)
	ErrRatingNotFound     = errs.Class("rating not found", errs.ErrNotFound)
	ErrPaymentNotFound    = errs.Class("payment not found", errs.ErrNotFound)
	ErrPaymentAccess      = errs.Class("payment belongs to another user", errs.ErrForbidden)
	ErrListingUnavailable = errs.Class("menu availability is temporarily unavailable", errs.ErrUnavailable)
)
