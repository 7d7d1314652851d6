package converter

import (
	"time"

	"tiffintime-api/internal/domain/availability"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
)

func DateSpecialToCreateParams(s *availability.DateSpecial) sqlc.CreateDateSpecialParams {
	return sqlc.CreateDateSpecialParams{
		ID:           s.ID(),
		MenuItemID:   s.MenuItemID(),
		Date:         pgconv.DateToPgtype(s.Date()),
		Quantity:     pgconv.Int32PtrToPgtype(s.Quantity()),
		SpecialPrice: pgconv.Float64PtrToNumeric(s.SpecialPrice()),
	}
}

func DateSpecialFromRow(row sqlc.GetDateSpecialForUpdateRow) (*availability.DateSpecial, error) {
	price, err := pgconv.Float64PtrFromNumeric(row.SpecialPrice)
	if err != nil {
		return nil, err
	}
	var date time.Time
	if d := pgconv.DatePtrFromPgtype(row.Date); d != nil {
		date = *d
	}
	return availability.ReconstructDateSpecial(row.ID, row.MenuItemID, date, pgconv.Int32PtrFromPgtype(row.Quantity), price), nil
}

const (
	defectBasePrice    = "unreadable base price"
	defectSpecialPrice = "unreadable special price"
)

// WeeklySourceRow keeps every nullable join column as a pointer; the
// resolver decides which rows are usable.
func WeeklySourceRow(row sqlc.ListWeeklySourceRowsRow) availability.SourceRow {
	itemID := row.MenuItemID
	var defect string
	basePrice, err := pgconv.Float64PtrFromNumeric(row.BasePrice)
	if err != nil {
		defect = defectBasePrice
	}
	return availability.SourceRow{
		ItemID:      &itemID,
		VendorID:    pgconv.UUIDPtrFromPgtype(row.VendorID),
		VendorName:  pgconv.StringPtrFromPgtype(row.VendorName),
		Name:        pgconv.StringPtrFromPgtype(row.ItemName),
		Category:    pgconv.StringPtrFromPgtype(row.Category),
		Description: pgconv.StringPtrFromPgtype(row.Description),
		PrepTime:    pgconv.Int32PtrFromPgtype(row.PrepTime),
		BasePrice:   basePrice,
		Image:       ImageFromColumns(row.ImgBucket, row.ImgPath),
		Defect:      defect,
	}
}

func SpecialSourceRow(row sqlc.ListSpecialSourceRowsRow) availability.SourceRow {
	itemID := row.MenuItemID
	var defect string
	basePrice, err := pgconv.Float64PtrFromNumeric(row.BasePrice)
	if err != nil {
		defect = defectBasePrice
	}
	specialPrice, err := pgconv.Float64PtrFromNumeric(row.SpecialPrice)
	if err != nil {
		defect = defectSpecialPrice
	}
	return availability.SourceRow{
		ItemID:       &itemID,
		VendorID:     pgconv.UUIDPtrFromPgtype(row.VendorID),
		VendorName:   pgconv.StringPtrFromPgtype(row.VendorName),
		Name:         pgconv.StringPtrFromPgtype(row.ItemName),
		Category:     pgconv.StringPtrFromPgtype(row.Category),
		Description:  pgconv.StringPtrFromPgtype(row.Description),
		PrepTime:     pgconv.Int32PtrFromPgtype(row.PrepTime),
		BasePrice:    basePrice,
		Image:        ImageFromColumns(row.ImgBucket, row.ImgPath),
		SpecialDate:  pgconv.DatePtrFromPgtype(row.Date),
		SpecialPrice: specialPrice,
		Quantity:     pgconv.Int32PtrFromPgtype(row.Quantity),
		Defect:       defect,
	}
}
