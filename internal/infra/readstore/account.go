package readstore

import (
	"context"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
	"tiffintime-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccountReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	GetVendorByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vendors, error)
	GetVendorByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Vendors, error)
}

// AccountReadStore reads students from users and vendors from vendors;
// the role picks the table.
type AccountReadStore struct {
	queries AccountReadQueries
	db      sqlc.DBTX
}

func NewAccountReadStore(queries AccountReadQueries, db sqlc.DBTX) *AccountReadStore {
	return &AccountReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AccountReadStore) FindByID(ctx context.Context, role account.Role, id uuid.UUID) (*queries.AccountView, error) {
	rec, err := r.find(role, func(db sqlc.DBTX) (accountRecord, error) {
		if role == account.RoleVendor {
			v, err := r.queries.GetVendorByID(ctx, db, id)
			return vendorRecord(v), err
		}
		u, err := r.queries.GetUserByID(ctx, db, id)
		return userRecord(u), err
	})
	if err != nil {
		return nil, err
	}
	return rec.view(role), nil
}

// FindByEmail also returns the stored password hash for login checks.
func (r *AccountReadStore) FindByEmail(ctx context.Context, role account.Role, email string) (*queries.AccountView, string, error) {
	rec, err := r.find(role, func(db sqlc.DBTX) (accountRecord, error) {
		if role == account.RoleVendor {
			v, err := r.queries.GetVendorByEmail(ctx, db, email)
			return vendorRecord(v), err
		}
		u, err := r.queries.GetUserByEmail(ctx, db, email)
		return userRecord(u), err
	})
	if err != nil {
		return nil, "", err
	}
	return rec.view(role), rec.passwordHash, nil
}

type accountRecord struct {
	id           uuid.UUID
	name         string
	email        string
	phone        string
	passwordHash string
}

func (a accountRecord) view(role account.Role) *queries.AccountView {
	return &queries.AccountView{
		ID:          a.id,
		Role:        role.String(),
		Name:        a.name,
		Email:       a.email,
		PhoneNumber: a.phone,
	}
}

func userRecord(u sqlc.Users) accountRecord {
	return accountRecord{id: u.ID, name: u.Name, email: u.Email, phone: u.PhoneNumber, passwordHash: u.PasswordHash}
}

func vendorRecord(v sqlc.Vendors) accountRecord {
	return accountRecord{id: v.ID, name: v.Name, email: v.Email, phone: v.PhoneNumber, passwordHash: v.PasswordHash}
}

func (r *AccountReadStore) find(role account.Role, fetch func(db sqlc.DBTX) (accountRecord, error)) (accountRecord, error) {
	if role != account.RoleStudent && role != account.RoleVendor {
		return accountRecord{}, infra.WrapRepoErr("no stored accounts for role "+role.String(), nil, infra.KindNotFound)
	}
	rec, err := fetch(r.db)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return accountRecord{}, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return accountRecord{}, infra.WrapRepoErr("failed to get account", err)
	}
	return rec, nil
}
