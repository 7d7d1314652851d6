package review

import "strings"

const (
	MaxCommentLength = 1000
	MaxReplyLength   = 1000
	AnonymousName    = "Anonymous"
)

type FoodQuality string

const (
	FoodExcellent FoodQuality = "excellent"
	FoodGood      FoodQuality = "good"
	FoodAverage   FoodQuality = "average"
	FoodPoor      FoodQuality = "poor"
)

func NewFoodQuality(s string) (FoodQuality, error) {
	switch q := FoodQuality(s); q {
	case FoodExcellent, FoodGood, FoodAverage, FoodPoor:
		return q, nil
	default:
		return "", ErrInvalidFoodQuality
	}
}

type DeliveryExperience string

const (
	DeliveryOnTime       DeliveryExperience = "on_time"
	DeliverySlightlyLate DeliveryExperience = "slightly_late"
	DeliveryLate         DeliveryExperience = "late"
	DeliveryNotDelivered DeliveryExperience = "not_delivered"
)

func NewDeliveryExperience(s string) (DeliveryExperience, error) {
	switch d := DeliveryExperience(s); d {
	case DeliveryOnTime, DeliverySlightlyLate, DeliveryLate, DeliveryNotDelivered:
		return d, nil
	default:
		return "", ErrInvalidDeliveryExperience
	}
}

// Comment is optional; blank input is stored as no comment.
type Comment struct {
	text string
}

func NewComment(s *string) (Comment, error) {
	if s == nil {
		return Comment{}, nil
	}
	t := strings.TrimSpace(*s)
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

func (c Comment) Ptr() *string {
	if c.text == "" {
		return nil
	}
	t := c.text
	return &t
}

type Reply struct {
	text string
}

func NewReply(s string) (Reply, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Reply{}, ErrEmptyReply
	}
	if len(t) > MaxReplyLength {
		return Reply{}, ErrReplyTooLong
	}
	return Reply{text: t}, nil
}

func (r Reply) String() string { return r.text }

// DisplayName falls back to AnonymousName when the reviewer has no name.
func DisplayName(name *string) string {
	if name == nil || strings.TrimSpace(*name) == "" {
		return AnonymousName
	}
	return *name
}
