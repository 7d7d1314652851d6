package availability

import (
	"time"

	"tiffintime-api/internal/domain/menu"
	"tiffintime-api/internal/domain/vendor"

	"github.com/google/uuid"
)

type Source string

const (
	SourceWeekly  Source = "weekly"
	SourceSpecial Source = "special"
)

// SourceRow is one joined row from either source query. Pointer fields are
// the nullable join columns; presence is checked here, not by the caller.
type SourceRow struct {
	ItemID      *uuid.UUID
	VendorID    *uuid.UUID
	VendorName  *string
	Name        *string
	Category    *string
	Description *string
	PrepTime    *int32
	BasePrice   *float64
	Image       *menu.ImageRef

	// Set on date-special rows only.
	SpecialDate  *time.Time
	SpecialPrice *float64
	Quantity     *int32

	// Defect names a column that could not be decoded. A defective row is
	// skipped rather than listed with a guessed price.
	Defect string
}

// Listing is one purchasable menu item on the resolved date.
type Listing struct {
	ItemID       uuid.UUID
	VendorID     uuid.UUID
	VendorName   string
	Name         string
	Category     string
	Description  *string
	PrepTime     *int32
	BasePrice    *float64
	Price        float64
	SpecialPrice *float64
	Quantity     *int32
	Date         time.Time
	Image        *menu.ImageRef
	Source       Source
}

// SkippedRow records a merged entry dropped for missing required fields.
type SkippedRow struct {
	ItemID *uuid.UUID
	Reason string
}

type Resolution struct {
	Listings []Listing
	Skipped  []SkippedRow
}

const (
	reasonMissingItemID   = "missing item id"
	reasonMissingName     = "missing item name"
	reasonMissingPrice    = "missing price"
	reasonMissingVendorID = "missing vendor id"
)

type mergedEntry struct {
	row    SourceRow
	price  *float64
	date   time.Time
	source Source
}

// Resolve merges recurring weekly rows and one-off special rows for date.
// Entries are keyed by item id; specials are applied second so they replace
// a weekly entry for the same item. Output order is the order in which each
// item id was first seen. Every listing carries the calendar day of date,
// whatever zone the inputs were read in. Resolve is pure: equal inputs give
// equal output.
func Resolve(date time.Time, weekly, specials []SourceRow) Resolution {
	date = CalendarDay(date)
	order := make([]uuid.UUID, 0, len(weekly)+len(specials))
	merged := make(map[uuid.UUID]mergedEntry, len(weekly)+len(specials))
	var skipped []SkippedRow

	put := func(id uuid.UUID, e mergedEntry) {
		if _, seen := merged[id]; !seen {
			order = append(order, id)
		}
		merged[id] = e
	}

	for _, row := range weekly {
		if row.ItemID == nil {
			skipped = append(skipped, SkippedRow{Reason: reasonMissingItemID})
			continue
		}
		put(*row.ItemID, mergedEntry{
			row:    row,
			price:  row.BasePrice,
			date:   date,
			source: SourceWeekly,
		})
	}

	for _, row := range specials {
		if row.ItemID == nil {
			skipped = append(skipped, SkippedRow{Reason: reasonMissingItemID})
			continue
		}
		price := row.SpecialPrice
		if price == nil {
			price = row.BasePrice
		}
		sourceDate := date
		if row.SpecialDate != nil {
			sourceDate = CalendarDay(*row.SpecialDate)
		}
		put(*row.ItemID, mergedEntry{
			row:    row,
			price:  price,
			date:   sourceDate,
			source: SourceSpecial,
		})
	}

	listings := make([]Listing, 0, len(order))
	for _, id := range order {
		e := merged[id]
		if reason := missingField(e); reason != "" {
			itemID := id
			skipped = append(skipped, SkippedRow{ItemID: &itemID, Reason: reason})
			continue
		}
		listings = append(listings, toListing(id, e))
	}

	return Resolution{Listings: listings, Skipped: skipped}
}

func missingField(e mergedEntry) string {
	switch {
	case e.row.Defect != "":
		return e.row.Defect
	case e.row.Name == nil || *e.row.Name == "":
		return reasonMissingName
	case e.price == nil:
		return reasonMissingPrice
	case e.row.VendorID == nil || *e.row.VendorID == uuid.Nil:
		return reasonMissingVendorID
	default:
		return ""
	}
}

func toListing(id uuid.UUID, e mergedEntry) Listing {
	l := Listing{
		ItemID:      id,
		VendorID:    *e.row.VendorID,
		VendorName:  vendor.DisplayName(e.row.VendorName),
		Name:        *e.row.Name,
		Description: e.row.Description,
		PrepTime:    e.row.PrepTime,
		BasePrice:   e.row.BasePrice,
		Price:       *e.price,
		Date:        e.date,
		Image:       e.row.Image,
		Source:      e.source,
	}
	if e.row.Category != nil {
		l.Category = *e.row.Category
	}
	if e.source == SourceSpecial {
		l.SpecialPrice = e.row.SpecialPrice
		l.Quantity = e.row.Quantity
	}
	return l
}
