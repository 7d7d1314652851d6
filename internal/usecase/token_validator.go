package usecase

import (
	"crypto/subtle"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/pkg/jwt"
)

// TokenValidator resolves a bearer credential into the request subject.
type TokenValidator interface {
	ValidateToken(tokenString string) (account.Subject, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	apiKey     []byte
}

func NewTokenValidator(jwtService *jwt.Service, cfg config.Config) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		apiKey:     []byte(cfg.Auth.APIKey),
	}
}

// ValidateToken treats the static API key as an admin with no subject id.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (account.Subject, error) {
	if len(t.apiKey) > 0 && subtle.ConstantTimeCompare([]byte(tokenString), t.apiKey) == 1 {
		return account.Subject{Role: account.RoleAdmin}, nil
	}

	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return account.Subject{}, err
	}

	role, err := account.NewRole(claims.Role)
	if err != nil || !role.CanRegister() {
		return account.Subject{}, jwt.ErrInvalidToken
	}

	return account.Subject{ID: claims.SubjectID, Role: role}, nil
}
