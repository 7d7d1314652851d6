package commands

import "tiffintime-api/internal/pkg/errs"

var (
	ErrAccountExists      = errs.Class("an account with these details already exists", errs.ErrConflict)
	ErrAccountNotFound    = errs.Class("account not found", errs.ErrNotFound)
	ErrInvalidCredentials = errs.Class("invalid credentials", errs.ErrUnauthenticated)
	ErrTokenGeneration    = errs.New("token generation failed")

	ErrVendorNotFound     = errs.Class("vendor not found", errs.ErrNotFound)
	ErrMenuItemNotFound   = errs.Class("menu item not found", errs.ErrNotFound)
	ErrItemVendorMismatch = errs.Class("menu item does not belong to this vendor", errs.ErrValidation)
	ErrForeignImage       = errs.Class("image belongs to another vendor", errs.ErrForbidden)

	ErrSpecialNotFound  = errs.Class("date special not found", errs.ErrNotFound)
	ErrSpecialNotOwned  = errs.Class("date special belongs to another vendor", errs.ErrForbidden)
	ErrDuplicateSpecial = errs.Class("a special already exists for this item and date", errs.ErrConflict)

	ErrOrderNotFound        = errs.Class("order not found", errs.ErrNotFound)
	ErrSubscriptionNotFound = errs.Class("subscription not found", errs.ErrNotFound)
	ErrReviewNotFound       = errs.Class("review not found", errs.ErrNotFound)

	ErrPaymentNotFound = errs.Class("payment not found", errs.ErrNotFound)
	ErrOrderNotOwned   = errs.Class("order belongs to another account", errs.ErrForbidden)
	ErrInvalidIPN      = errs.Class("invalid IPN signature", errs.ErrValidation)

	ErrUnsupportedImage = errs.Class("file must be an image", errs.ErrUnsupportedMedia)
	ErrFileTooLarge     = errs.Class("file exceeds the upload size limit", errs.ErrValidation)
	ErrEmptyFile        = errs.Class("file is empty", errs.ErrValidation)
)
