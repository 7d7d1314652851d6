package repository

import (
	"context"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
)

type AccountQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	CreateVendor(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVendorParams) error
}

// AccountRepository stores students in users and vendors in vendors.
type AccountRepository struct {
	queries AccountQueries
}

func NewAccountRepository(queries AccountQueries) *AccountRepository {
	return &AccountRepository{queries: queries}
}

func (r *AccountRepository) Create(ctx context.Context, tx sqlc.DBTX, acc *account.Account) error {
	var err error
	switch acc.Role() {
	case account.RoleVendor:
		err = r.queries.CreateVendor(ctx, tx, sqlc.CreateVendorParams{
			ID:           acc.ID(),
			Name:         acc.Name().Value(),
			Email:        acc.Email().Value(),
			PhoneNumber:  acc.Phone().Value(),
			PasswordHash: acc.PasswordHash(),
			Description:  pgconv.StringPtrToPgtype(acc.Description()),
		})
	default:
		err = r.queries.CreateUser(ctx, tx, sqlc.CreateUserParams{
			ID:           acc.ID(),
			Name:         acc.Name().Value(),
			Email:        acc.Email().Value(),
			PhoneNumber:  acc.Phone().Value(),
			PasswordHash: acc.PasswordHash(),
		})
	}
	if err != nil {
		return infra.WrapRepoErr("failed to create "+acc.Role().String()+" account", err)
	}
	return nil
}
