package response

import (
	"tiffintime-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DeliveryTime struct {
	Min int32 `json:"min"`
	Max int32 `json:"max"`
}

type VendorResponse struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Description  *string      `json:"description"`
	IsOpen       bool         `json:"is_open"`
	ImgURL       *string      `json:"img_url"`
	DeliveryTime DeliveryTime `json:"delivery_time"`
}

func FromVendorView(v *queries.VendorView) (*VendorResponse, error) {
	var res VendorResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	res.DeliveryTime = DeliveryTime{Min: v.DeliveryTimeMin, Max: v.DeliveryTimeMax}
	return &res, nil
}

func FromVendorViews(views []*queries.VendorView) ([]*VendorResponse, error) {
	res := make([]*VendorResponse, 0, len(views))
	for _, v := range views {
		r, err := FromVendorView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
