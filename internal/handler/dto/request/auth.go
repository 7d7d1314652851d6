package request

import (
	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/usecase/commands"
)

type RegisterRequest struct {
	Role            string  `json:"role" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required"`
	PhoneNumber     string  `json:"phone_number" binding:"required"`
	Password        string  `json:"password" binding:"required"`
	ConfirmPassword string  `json:"confirm_password" binding:"required"`
	Description     *string `json:"description"`
}

func (r *RegisterRequest) ToInput() account.RegistrationInput {
	return account.RegistrationInput{
		Role:            r.Role,
		Name:            r.Name,
		Email:           r.Email,
		PhoneNumber:     r.PhoneNumber,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		Description:     r.Description,
	}
}

type LoginRequest struct {
	Role     string `json:"role" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{
		Role:     r.Role,
		Email:    r.Email,
		Password: r.Password,
	}
}
