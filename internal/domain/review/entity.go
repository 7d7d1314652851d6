package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id                 int64
	userID             uuid.UUID
	vendorID           uuid.UUID
	foodQuality        FoodQuality
	deliveryExperience DeliveryExperience
	comment            Comment
	reply              *Reply
	createdAt          time.Time
}

type Input struct {
	VendorID           uuid.UUID
	FoodQuality        string
	DeliveryExperience string
	Comment            *string
}

// NewReview validates a new review; the id is assigned by the store.
func NewReview(userID uuid.UUID, in Input, now time.Time) (*Review, error) {
	food, err := NewFoodQuality(in.FoodQuality)
	if err != nil {
		return nil, err
	}
	delivery, err := NewDeliveryExperience(in.DeliveryExperience)
	if err != nil {
		return nil, err
	}
	comment, err := NewComment(in.Comment)
	if err != nil {
		return nil, err
	}

	return &Review{
		userID:             userID,
		vendorID:           in.VendorID,
		foodQuality:        food,
		deliveryExperience: delivery,
		comment:            comment,
		createdAt:          now,
	}, nil
}

func ReconstructReview(id int64, userID, vendorID uuid.UUID, food, delivery string, comment, reply *string, createdAt time.Time) *Review {
	r := &Review{
		id:                 id,
		userID:             userID,
		vendorID:           vendorID,
		foodQuality:        FoodQuality(food),
		deliveryExperience: DeliveryExperience(delivery),
		createdAt:          createdAt,
	}
	if comment != nil {
		r.comment = Comment{text: *comment}
	}
	if reply != nil {
		r.reply = &Reply{text: *reply}
	}
	return r
}

// AttachReply sets the vendor's single reply.
func (r *Review) AttachReply(vendorID uuid.UUID, text string) error {
	if r.vendorID != vendorID {
		return ErrNotVendorReview
	}
	if r.reply != nil {
		return ErrAlreadyReplied
	}
	reply, err := NewReply(text)
	if err != nil {
		return err
	}
	r.reply = &reply
	return nil
}

func (r *Review) ID() int64                              { return r.id }
func (r *Review) UserID() uuid.UUID                      { return r.userID }
func (r *Review) VendorID() uuid.UUID                    { return r.vendorID }
func (r *Review) FoodQuality() FoodQuality               { return r.foodQuality }
func (r *Review) DeliveryExperience() DeliveryExperience { return r.deliveryExperience }
func (r *Review) Comment() Comment                       { return r.comment }
func (r *Review) Reply() *Reply                          { return r.reply }
func (r *Review) IsReplied() bool                        { return r.reply != nil }
func (r *Review) CreatedAt() time.Time                   { return r.createdAt }
