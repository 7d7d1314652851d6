package menu

import (
	"time"

	"tiffintime-api/internal/pkg/patch"

	"github.com/google/uuid"
)

type Item struct {
	id          uuid.UUID
	vendorID    uuid.UUID
	name        ItemName
	category    Category
	price       Price
	prepTime    PrepTime
	description *string
	image       *ImageRef
	createdAt   time.Time
	updatedAt   time.Time
}

type ItemInput struct {
	Name        string
	Category    string
	Price       float64
	PrepTime    int32
	Description *string
	Image       *ImageRef
}

func NewItem(vendorID uuid.UUID, in ItemInput, now time.Time) (*Item, error) {
	name, err := NewItemName(in.Name)
	if err != nil {
		return nil, err
	}
	category, err := NewCategory(in.Category)
	if err != nil {
		return nil, err
	}
	price, err := NewPrice(in.Price)
	if err != nil {
		return nil, err
	}
	prep, err := NewPrepTime(in.PrepTime)
	if err != nil {
		return nil, err
	}
	description, err := normalizeDescription(in.Description)
	if err != nil {
		return nil, err
	}

	return &Item{
		id:          uuid.New(),
		vendorID:    vendorID,
		name:        name,
		category:    category,
		price:       price,
		prepTime:    prep,
		description: description,
		image:       in.Image,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructItem rebuilds an item from stored values without re-validation.
func ReconstructItem(id, vendorID uuid.UUID, name, category string, price float64, prepTime int32, description *string, image *ImageRef, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:          id,
		vendorID:    vendorID,
		name:        ItemName{value: name},
		category:    Category(category),
		price:       Price{value: price},
		prepTime:    PrepTime{minutes: prepTime},
		description: description,
		image:       image,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

type ItemPatch struct {
	Name        *string
	Category    *string
	Price       *float64
	PrepTime    *int32
	Description *string
	Image       *ImageRef
}

func (p ItemPatch) IsEmpty() bool {
	return !patch.AnySet(p.Name != nil, p.Category != nil, p.Price != nil, p.PrepTime != nil, p.Description != nil, p.Image != nil)
}

// Apply validates every present field before mutating anything.
func (i *Item) Apply(p ItemPatch, now time.Time) error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}

	next := *i
	if p.Name != nil {
		name, err := NewItemName(*p.Name)
		if err != nil {
			return err
		}
		next.name = name
	}
	if p.Category != nil {
		category, err := NewCategory(*p.Category)
		if err != nil {
			return err
		}
		next.category = category
	}
	if p.Price != nil {
		price, err := NewPrice(*p.Price)
		if err != nil {
			return err
		}
		next.price = price
	}
	if p.PrepTime != nil {
		prep, err := NewPrepTime(*p.PrepTime)
		if err != nil {
			return err
		}
		next.prepTime = prep
	}
	if p.Description != nil {
		description, err := normalizeDescription(p.Description)
		if err != nil {
			return err
		}
		next.description = description
	}
	next.image = patch.CoalescePtr(p.Image, i.image)
	next.updatedAt = now

	*i = next
	return nil
}

func (i *Item) EnsureOwnedBy(vendorID uuid.UUID) error {
	if i.vendorID != vendorID {
		return ErrNotOwner
	}
	return nil
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) VendorID() uuid.UUID  { return i.vendorID }
func (i *Item) Name() ItemName       { return i.name }
func (i *Item) Category() Category   { return i.category }
func (i *Item) Price() Price         { return i.price }
func (i *Item) PrepTime() PrepTime   { return i.prepTime }
func (i *Item) Description() *string { return i.description }
func (i *Item) Image() *ImageRef     { return i.image }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
