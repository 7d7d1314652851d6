//go:build unit || e2e

package builder

import (
	"tiffintime-api/internal/domain/account"
	reqdto "tiffintime-api/internal/handler/dto/request"
	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RegisterBuilder struct {
	Role        string
	Name        string
	Email       string
	PhoneNumber string
	Password    string
	Confirm     string
	Description *string
}

func NewRegisterBuilder() *RegisterBuilder {
	return &RegisterBuilder{
		Role:        "student",
		Name:        "Farhan Ahmed",
		Email:       "farhan@campus.edu",
		PhoneNumber: "01711223344",
		Password:    "password123",
		Confirm:     "password123",
	}
}

func (r *RegisterBuilder) With(mutate func(*RegisterBuilder)) *RegisterBuilder {
	mutate(r)
	return r
}

func (r *RegisterBuilder) BuildDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Role:            r.Role,
		Name:            r.Name,
		Email:           r.Email,
		PhoneNumber:     r.PhoneNumber,
		Password:        r.Password,
		ConfirmPassword: r.Confirm,
		Description:     r.Description,
	}
}

func (r *RegisterBuilder) BuildInput() account.RegistrationInput {
	dto := r.BuildDTO()
	return dto.ToInput()
}

type LoginBuilder struct {
	Role     string
	Email    string
	Password string
}

func NewLoginBuilder() *LoginBuilder {
	return &LoginBuilder{
		Role:     "student",
		Email:    "farhan@campus.edu",
		Password: "password123",
	}
}

func (l *LoginBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Role:     l.Role,
		Email:    l.Email,
		Password: l.Password,
	}
}

func (l *LoginBuilder) BuildInput() commands.LoginInput {
	dto := l.BuildDTO()
	return dto.ToInput()
}

type AccountBuilder struct {
	ID          uuid.UUID
	Role        string
	Name        string
	Email       string
	PhoneNumber string
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		ID:          uuid.New(),
		Role:        "student",
		Name:        "Farhan Ahmed",
		Email:       "farhan@campus.edu",
		PhoneNumber: "01711223344",
	}
}

func (a *AccountBuilder) BuildResult() *commands.AccountResult {
	return &commands.AccountResult{
		ID:    a.ID,
		Role:  a.Role,
		Name:  a.Name,
		Email: a.Email,
	}
}

func (a *AccountBuilder) BuildView() *queries.AccountView {
	return &queries.AccountView{
		ID:          a.ID,
		Role:        a.Role,
		Name:        a.Name,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
	}
}
