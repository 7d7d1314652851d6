package response

import (
	"tiffintime-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type AccountResponse struct {
	ID    uuid.UUID `json:"id"`
	Role  string    `json:"role"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int64           `json:"expires_in"`
	Subject     AccountResponse `json:"subject"`
}

func FromAccountResult(r *commands.AccountResult) AccountResponse {
	return AccountResponse{
		ID:    r.ID,
		Role:  r.Role,
		Name:  r.Name,
		Email: r.Email,
	}
}

// FromLoginResult reports expires_in in seconds.
func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
		Subject:     FromAccountResult(&r.Account),
	}
}
