package request

import (
	"tiffintime-api/internal/domain/availability"
	"tiffintime-api/internal/domain/menu"
	"tiffintime-api/internal/domain/vendor"
	"tiffintime-api/internal/usecase/commands"

	"github.com/google/uuid"
)

// ImageRequest references an object returned by an upload endpoint.
type ImageRequest struct {
	Bucket string `json:"bucket" binding:"required"`
	Path   string `json:"path" binding:"required"`
}

func (r *ImageRequest) toRef() *menu.ImageRef {
	if r == nil {
		return nil
	}
	return &menu.ImageRef{Bucket: r.Bucket, Path: r.Path}
}

type UpdateVendorRequest struct {
	Description     *string       `json:"description"`
	IsOpen          *bool         `json:"is_open"`
	DeliveryTimeMin *int32        `json:"delivery_time_min"`
	DeliveryTimeMax *int32        `json:"delivery_time_max"`
	Image           *ImageRequest `json:"image"`
}

func (r *UpdateVendorRequest) ToPatch() vendor.ProfilePatch {
	return vendor.ProfilePatch{
		Description: r.Description,
		IsOpen:      r.IsOpen,
		DeliveryMin: r.DeliveryTimeMin,
		DeliveryMax: r.DeliveryTimeMax,
		Image:       r.Image.toRef(),
	}
}

type CreateMenuItemRequest struct {
	Name        string        `json:"name" binding:"required"`
	Category    string        `json:"category" binding:"required"`
	Price       float64       `json:"price"`
	PrepTime    int32         `json:"prep_time"`
	Description *string       `json:"description"`
	Image       *ImageRequest `json:"image"`
}

func (r *CreateMenuItemRequest) ToInput() menu.ItemInput {
	return menu.ItemInput{
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		PrepTime:    r.PrepTime,
		Description: r.Description,
		Image:       r.Image.toRef(),
	}
}

type UpdateMenuItemRequest struct {
	Name        *string       `json:"name"`
	Category    *string       `json:"category"`
	Price       *float64      `json:"price"`
	PrepTime    *int32        `json:"prep_time"`
	Description *string       `json:"description"`
	Image       *ImageRequest `json:"image"`
}

func (r *UpdateMenuItemRequest) ToPatch() menu.ItemPatch {
	return menu.ItemPatch{
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		PrepTime:    r.PrepTime,
		Description: r.Description,
		Image:       r.Image.toRef(),
	}
}

type CreateSpecialRequest struct {
	MenuItemID   uuid.UUID `json:"menu_item_id" binding:"required"`
	Date         string    `json:"date" binding:"required"`
	Quantity     *int32    `json:"quantity"`
	SpecialPrice *float64  `json:"special_price"`
}

func (r *CreateSpecialRequest) ToInput() commands.CreateSpecialInput {
	return commands.CreateSpecialInput{
		MenuItemID:   r.MenuItemID,
		Date:         r.Date,
		Quantity:     r.Quantity,
		SpecialPrice: r.SpecialPrice,
	}
}

type UpdateSpecialRequest struct {
	Quantity     *int32   `json:"quantity"`
	SpecialPrice *float64 `json:"special_price"`
}

func (r *UpdateSpecialRequest) ToPatch() availability.SpecialPatch {
	return availability.SpecialPatch{
		Quantity:     r.Quantity,
		SpecialPrice: r.SpecialPrice,
	}
}

// SetWeeklyRequest uses pointers so that Sunday (0) and false still count
// as present.
type SetWeeklyRequest struct {
	MenuItemID  uuid.UUID `json:"menu_item_id" binding:"required"`
	DayOfWeek   *int      `json:"day_of_week" binding:"required"`
	IsAvailable *bool     `json:"is_available" binding:"required"`
}

func (r *SetWeeklyRequest) ToInput() commands.SetWeeklyInput {
	return commands.SetWeeklyInput{
		MenuItemID:  r.MenuItemID,
		DayOfWeek:   *r.DayOfWeek,
		IsAvailable: *r.IsAvailable,
	}
}
