package menu

import (
	"math"
	"strings"
)

const (
	MaxItemNameLength    = 120
	MaxDescriptionLength = 1000
)

type Category string

const (
	CategoryRice     Category = "Rice"
	CategoryCurry    Category = "Curry"
	CategorySnacks   Category = "Snacks"
	CategoryDrinks   Category = "Drinks"
	CategoryDesserts Category = "Desserts"
)

func Categories() []Category {
	return []Category{CategoryRice, CategoryCurry, CategorySnacks, CategoryDrinks, CategoryDesserts}
}

func NewCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

func (c Category) String() string { return string(c) }

// Price is a positive amount with two decimal places.
type Price struct {
	value float64
}

func NewPrice(v float64) (Price, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Price{}, ErrInvalidPrice
	}
	return Price{value: math.Round(v*100) / 100}, nil
}

func (p Price) Value() float64 { return p.value }

type PrepTime struct {
	minutes int32
}

func NewPrepTime(minutes int32) (PrepTime, error) {
	if minutes < 0 {
		return PrepTime{}, ErrInvalidPrepTime
	}
	return PrepTime{minutes: minutes}, nil
}

func (p PrepTime) Minutes() int32 { return p.minutes }

type ItemName struct {
	value string
}

func NewItemName(s string) (ItemName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ItemName{}, ErrEmptyItemName
	}
	if len(s) > MaxItemNameLength {
		return ItemName{}, ErrItemNameTooLong
	}
	return ItemName{value: s}, nil
}

func (n ItemName) Value() string { return n.value }

// ImageRef points at an object in the storage service. It is resolved to a
// signed URL on every read.
type ImageRef struct {
	Bucket string
	Path   string
}

func NewImageRef(bucket, path *string) *ImageRef {
	if bucket == nil || path == nil || *bucket == "" || *path == "" {
		return nil
	}
	return &ImageRef{Bucket: *bucket, Path: *path}
}

func normalizeDescription(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil, nil
	}
	if len(t) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	return &t, nil
}
