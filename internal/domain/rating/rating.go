package rating

import (
	"math"

	"tiffintime-api/internal/pkg/errs"
)

var ErrInvalidRating = errs.Class("rating must be between 1 and 5", errs.ErrValidation)

type Value struct {
	value int
}

func NewValue(v int) (Value, error) {
	if v < 1 || v > 5 {
		return Value{}, ErrInvalidRating
	}
	return Value{value: v}, nil
}

func (v Value) Int() int { return v.value }

// Stats is a vendor's aggregate. The zero value is the no-ratings state.
type Stats struct {
	Average float64
	Count   int64
}

// NewStats averages sum over count, rounded to one decimal place.
func NewStats(sum, count int64) Stats {
	if count <= 0 {
		return Stats{}
	}
	avg := float64(sum) / float64(count)
	return Stats{Average: math.Round(avg*10) / 10, Count: count}
}

func FromValues(values []int) Stats {
	var sum int64
	for _, v := range values {
		sum += int64(v)
	}
	return NewStats(sum, int64(len(values)))
}
