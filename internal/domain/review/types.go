package review

import "tiffintime-api/internal/pkg/errs"

var (
	ErrInvalidFoodQuality        = errs.Class("food_quality must be one of excellent, good, average, poor", errs.ErrValidation)
	ErrInvalidDeliveryExperience = errs.Class("delivery_experience must be one of on_time, slightly_late, late, not_delivered", errs.ErrValidation)
	ErrCommentTooLong            = errs.Class("comment exceeds maximum length", errs.ErrValidation)
	ErrEmptyReply                = errs.Class("reply cannot be empty", errs.ErrValidation)
	ErrReplyTooLong              = errs.Class("reply exceeds maximum length", errs.ErrValidation)
	ErrAlreadyReplied            = errs.Class("review already has a reply", errs.ErrConflict)
	ErrNotVendorReview           = errs.Class("review belongs to another vendor", errs.ErrForbidden)
)
