package account

import (
	"github.com/google/uuid"
)

// Subject is the authenticated principal behind a request.
type Subject struct {
	ID   uuid.UUID
	Role Role
}

func (s Subject) IsAdmin() bool   { return s.Role == RoleAdmin }
func (s Subject) IsStudent() bool { return s.Role == RoleStudent }
func (s Subject) IsVendor() bool  { return s.Role == RoleVendor }

// Account is the credential-bearing identity stored for either role.
type Account struct {
	id           uuid.UUID
	role         Role
	name         Name
	email        Email
	phone        Phone
	passwordHash string
	description  *string
}

func NewAccount(reg *Registration, passwordHash string) *Account {
	return &Account{
		id:           uuid.New(),
		role:         reg.Role(),
		name:         reg.Name(),
		email:        reg.Email(),
		phone:        reg.Phone(),
		passwordHash: passwordHash,
		description:  reg.Description(),
	}
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Role() Role           { return a.role }
func (a *Account) Name() Name           { return a.name }
func (a *Account) Email() Email         { return a.email }
func (a *Account) Phone() Phone         { return a.phone }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Description() *string { return a.description }
