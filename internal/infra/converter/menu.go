package converter

import (
	"tiffintime-api/internal/domain/menu"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/errs"
	"tiffintime-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ImageFromColumns(bucket, path pgtype.Text) *menu.ImageRef {
	return menu.NewImageRef(pgconv.StringPtrFromPgtype(bucket), pgconv.StringPtrFromPgtype(path))
}

func ImageToColumns(img *menu.ImageRef) (bucket, path pgtype.Text) {
	if img == nil {
		return pgtype.Text{}, pgtype.Text{}
	}
	return pgconv.StringToPgtype(img.Bucket), pgconv.StringToPgtype(img.Path)
}

func MenuItemFromRow(row sqlc.MenuItems) (*menu.Item, error) {
	price, err := pgconv.Float64FromNumeric(row.Price)
	if err != nil {
		return nil, errs.Wrap(err, "menu item price")
	}
	return menu.ReconstructItem(
		row.ID,
		row.VendorID,
		row.Name,
		row.Category,
		price,
		row.PrepTime,
		pgconv.StringPtrFromPgtype(row.Description),
		ImageFromColumns(row.ImgBucket, row.ImgPath),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func MenuItemToCreateParams(item *menu.Item) sqlc.CreateMenuItemParams {
	bucket, path := ImageToColumns(item.Image())
	return sqlc.CreateMenuItemParams{
		ID:          item.ID(),
		VendorID:    item.VendorID(),
		Name:        item.Name().Value(),
		Category:    item.Category().String(),
		Price:       pgconv.Float64ToNumeric(item.Price().Value()),
		PrepTime:    item.PrepTime().Minutes(),
		Description: pgconv.StringPtrToPgtype(item.Description()),
		ImgBucket:   bucket,
		ImgPath:     path,
		CreatedAt:   pgconv.TimeToPgtype(item.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(item.UpdatedAt()),
	}
}

func MenuItemToUpdateParams(item *menu.Item) sqlc.UpdateMenuItemParams {
	bucket, path := ImageToColumns(item.Image())
	return sqlc.UpdateMenuItemParams{
		ID:          item.ID(),
		Name:        item.Name().Value(),
		Category:    item.Category().String(),
		Price:       pgconv.Float64ToNumeric(item.Price().Value()),
		PrepTime:    item.PrepTime().Minutes(),
		Description: pgconv.StringPtrToPgtype(item.Description()),
		ImgBucket:   bucket,
		ImgPath:     path,
		UpdatedAt:   pgconv.TimeToPgtype(item.UpdatedAt()),
	}
}
