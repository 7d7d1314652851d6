//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/pkg/password"
	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/shared"
	commandsmock "tiffintime-api/tests/mock/commands"
	sharedmock "tiffintime-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	h        *txHarness
	accounts *sharedmock.MockAccountRepository
	tokens   *commandsmock.MockTokenIssuer
	cmds     commands.AuthCommands
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.h = newTxHarness(s.T())
	s.accounts = sharedmock.NewMockAccountRepository(s.h.ctrl)
	s.tokens = commandsmock.NewMockTokenIssuer(s.h.ctrl)
	s.h.tx.EXPECT().Accounts().Return(s.accounts).AnyTimes()
	s.cmds = commands.NewAuthCommands(s.h.uow, s.tokens)
}

func studentRegistration() account.RegistrationInput {
	return account.RegistrationInput{
		Role:            "student",
		Name:            "Nusrat Jahan",
		Email:           "Nusrat@Campus.edu",
		PhoneNumber:     "01712345678",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func (s *AuthCommandsTestSuite) TestRegister_Success() {
	ctx := context.Background()
	s.h.reads.EXPECT().AccountByEmail(ctx, account.RoleStudent, "nusrat@campus.edu").Return(nil, notFound("account"))

	var stored *account.Account
	s.accounts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, acc *account.Account) error {
			stored = acc
			return nil
		})

	result, err := s.cmds.Register(ctx, studentRegistration())

	s.Require().NoError(err)
	s.Equal("nusrat@campus.edu", result.Email)
	s.Equal("student", result.Role)
	s.Require().NotNil(stored)
	s.Equal(result.ID, stored.ID())
	s.NoError(password.ComparePassword(stored.PasswordHash(), "secret123"))
}

func (s *AuthCommandsTestSuite) TestRegister_Rejections() {
	ctx := context.Background()

	s.Run("password mismatch", func() {
		in := studentRegistration()
		in.ConfirmPassword = "other"
		_, err := s.cmds.Register(ctx, in)
		s.ErrorIs(err, account.ErrPasswordMismatch)
	})

	s.Run("email already registered for the role", func() {
		s.h.reads.EXPECT().AccountByEmail(ctx, account.RoleStudent, "nusrat@campus.edu").
			Return(&shared.AccountSnapshot{ID: uuid.New()}, nil)
		_, err := s.cmds.Register(ctx, studentRegistration())
		s.ErrorIs(err, commands.ErrAccountExists)
	})

	s.Run("unique violation on insert", func() {
		s.h.reads.EXPECT().AccountByEmail(ctx, account.RoleStudent, "nusrat@campus.edu").Return(nil, notFound("account"))
		s.accounts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create account", nil, infra.KindDuplicateKey))
		_, err := s.cmds.Register(ctx, studentRegistration())
		s.ErrorIs(err, commands.ErrAccountExists)
	})

	s.Run("lookup failure", func() {
		boom := errors.New("db down")
		s.h.reads.EXPECT().AccountByEmail(ctx, account.RoleStudent, "nusrat@campus.edu").Return(nil, boom)
		_, err := s.cmds.Register(ctx, studentRegistration())
		s.ErrorIs(err, boom)
	})
}

func (s *AuthCommandsTestSuite) storedAccount(pw string) *shared.AccountSnapshot {
	hash, err := password.HashPasswordWithCost(pw, bcrypt.MinCost)
	s.Require().NoError(err)
	return &shared.AccountSnapshot{
		ID:           uuid.New(),
		Role:         "vendor",
		Name:         "Mama's Kitchen",
		Email:        "kitchen@campus.edu",
		PasswordHash: hash,
	}
}

func (s *AuthCommandsTestSuite) TestLogin_Success() {
	ctx := context.Background()
	snap := s.storedAccount("vendorpass")
	s.h.reads.EXPECT().AccountByEmail(ctx, account.RoleVendor, "kitchen@campus.edu").Return(snap, nil)
	s.tokens.EXPECT().GenerateToken(snap.ID, account.RoleVendor).Return("signed.jwt.token", nil)
	s.tokens.EXPECT().TokenDuration().Return(time.Hour)

	result, err := s.cmds.Login(ctx, commands.LoginInput{Role: "vendor", Email: "Kitchen@campus.edu", Password: "vendorpass"})

	s.Require().NoError(err)
	s.Equal("signed.jwt.token", result.AccessToken)
	s.Equal(time.Hour, result.ExpiresIn)
	s.Equal(snap.ID, result.Account.ID)
	s.Equal("Mama's Kitchen", result.Account.Name)
}

func (s *AuthCommandsTestSuite) TestLogin_Failures() {
	ctx := context.Background()

	s.Run("wrong password", func() {
		snap := s.storedAccount("vendorpass")
		s.h.reads.EXPECT().AccountByEmail(ctx, account.RoleVendor, "kitchen@campus.edu").Return(snap, nil)
		_, err := s.cmds.Login(ctx, commands.LoginInput{Role: "vendor", Email: "kitchen@campus.edu", Password: "guessing"})
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("too short to be any stored password", func() {
		_, err := s.cmds.Login(ctx, commands.LoginInput{Role: "vendor", Email: "kitchen@campus.edu", Password: "abc"})
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("unknown account", func() {
		s.h.reads.EXPECT().AccountByEmail(ctx, account.RoleStudent, "ghost@campus.edu").Return(nil, notFound("account"))
		_, err := s.cmds.Login(ctx, commands.LoginInput{Role: "student", Email: "ghost@campus.edu", Password: "whatever"})
		s.ErrorIs(err, commands.ErrAccountNotFound)
	})

	s.Run("unknown role", func() {
		_, err := s.cmds.Login(ctx, commands.LoginInput{Role: "chef", Email: "kitchen@campus.edu", Password: "vendorpass"})
		s.ErrorIs(err, account.ErrInvalidRole)
	})

	s.Run("token signing failure", func() {
		snap := s.storedAccount("vendorpass")
		s.h.reads.EXPECT().AccountByEmail(ctx, account.RoleVendor, "kitchen@campus.edu").Return(snap, nil)
		s.tokens.EXPECT().GenerateToken(snap.ID, account.RoleVendor).Return("", errors.New("bad key"))
		_, err := s.cmds.Login(ctx, commands.LoginInput{Role: "vendor", Email: "kitchen@campus.edu", Password: "vendorpass"})
		s.ErrorIs(err, commands.ErrTokenGeneration)
	})
}
