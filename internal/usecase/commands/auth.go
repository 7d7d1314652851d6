package commands

import (
	"context"
	"errors"
	"time"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/pkg/errs"
	"tiffintime-api/internal/pkg/password"
	"tiffintime-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type AccountResult struct {
	ID    uuid.UUID
	Role  string
	Name  string
	Email string
}

type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	Account     AccountResult
}

type LoginInput struct {
	Role     string
	Email    string
	Password string
}

type TokenIssuer interface {
	GenerateToken(subjectID uuid.UUID, role account.Role) (string, error)
	TokenDuration() time.Duration
}

type AuthCommands interface {
	Register(ctx context.Context, in account.RegistrationInput) (*AccountResult, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in account.RegistrationInput) (*AccountResult, error) {
	reg, err := account.NewRegistration(in)
	if err != nil {
		return nil, err
	}

	_, err = a.uow.CommandReads().AccountByEmail(ctx, reg.Role(), reg.Email().Value())
	switch {
	case err == nil:
		return nil, ErrAccountExists
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}

	hash, err := password.HashPassword(reg.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}
	acc := account.NewAccount(reg, hash)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Accounts().Create(ctx, tx.DB(), acc)
	})
	if err != nil {
		// vendor names are unique as well as emails
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrAccountExists
		}
		return nil, err
	}

	return &AccountResult{
		ID:    acc.ID(),
		Role:  acc.Role().String(),
		Name:  acc.Name().Value(),
		Email: acc.Email().Value(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	creds, err := account.NewCredentials(in.Role, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, account.ErrPasswordTooWeak) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	snap, err := a.uow.CommandReads().AccountByEmail(ctx, creds.Role(), creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if err := password.ComparePassword(snap.PasswordHash, creds.Password().Value()); err != nil {
		if errors.Is(err, password.ErrComparisonFailed) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "failed to verify password")
	}

	token, err := a.tokens.GenerateToken(snap.ID, creds.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
		Account: AccountResult{
			ID:    snap.ID,
			Role:  snap.Role,
			Name:  snap.Name,
			Email: snap.Email,
		},
	}, nil
}
