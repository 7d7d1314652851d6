package commands

import (
	"context"
	"strings"

	"tiffintime-api/internal/domain/menu"
	"tiffintime-api/internal/domain/vendor"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type VendorCommands interface {
	UpdateProfile(ctx context.Context, vendorID uuid.UUID, patch vendor.ProfilePatch) error
}

type vendorCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewVendorCommands(uow shared.UnitOfWork) VendorCommands {
	return &vendorCommandsImpl{uow: uow}
}

func (v *vendorCommandsImpl) UpdateProfile(ctx context.Context, vendorID uuid.UUID, patch vendor.ProfilePatch) error {
	if err := ensureOwnImage(patch.Image, vendorID); err != nil {
		return err
	}

	return v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		profile, err := tx.Vendors().FindProfileForUpdate(ctx, tx.DB(), vendorID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVendorNotFound
			}
			return err
		}
		if err := profile.Apply(patch); err != nil {
			return err
		}
		return tx.Vendors().UpdateProfile(ctx, tx.DB(), profile)
	})
}

// ensureOwnImage accepts only objects uploaded under the vendor's own prefix.
func ensureOwnImage(ref *menu.ImageRef, vendorID uuid.UUID) error {
	if ref == nil {
		return nil
	}
	if !strings.HasPrefix(ref.Path, vendorID.String()+"/") {
		return ErrForeignImage
	}
	return nil
}
