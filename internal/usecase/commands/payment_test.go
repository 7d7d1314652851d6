//go:build unit

package commands_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"tiffintime-api/internal/domain/payment"
	"tiffintime-api/internal/infra/gateway"
	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/pkg/ptr"
	"tiffintime-api/internal/usecase/commands"
	commandsmock "tiffintime-api/tests/mock/commands"
	sharedmock "tiffintime-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	h        *txHarness
	orders   *sharedmock.MockOrderRepository
	payments *sharedmock.MockPaymentRepository
	gateway  *commandsmock.MockPaymentGateway
	cmds     commands.PaymentCommands

	userID uuid.UUID
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.h = newTxHarness(s.T())
	s.orders = sharedmock.NewMockOrderRepository(s.h.ctrl)
	s.payments = sharedmock.NewMockPaymentRepository(s.h.ctrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.h.ctrl)
	s.h.tx.EXPECT().Orders().Return(s.orders).AnyTimes()
	s.h.tx.EXPECT().Payments().Return(s.payments).AnyTimes()

	s.cmds = commands.NewPaymentCommands(s.h.uow, s.gateway, fixedClock(), config.NewTestConfig())
	s.userID = uuid.New()
}

func (s *PaymentCommandsTestSuite) pending(tranID string) *payment.Payment {
	return payment.ReconstructPayment(uuid.New(), s.userID, tranID, 250, "BDT", payment.StatusPending,
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
}

func (s *PaymentCommandsTestSuite) TestInit_Success() {
	ctx := context.Background()
	first, second := uuid.New(), uuid.New()
	orderIDs := []uuid.UUID{first, second, first}
	apiURL := strings.TrimRight(config.NewTestConfig().App.APIURL, "/")

	s.orders.EXPECT().OwnersOf(gomock.Any(), gomock.Any(), []uuid.UUID{first, second}).
		Return(map[uuid.UUID]uuid.UUID{first: s.userID, second: s.userID}, nil)

	var sentTranID string
	s.gateway.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req gateway.SessionRequest) (*gateway.Session, error) {
			sentTranID = req.TranID
			s.True(strings.HasPrefix(req.TranID, "TT-"))
			s.Equal(250.0, req.Amount)
			s.Equal("BDT", req.Currency)
			s.Equal(2, req.NumOfItems)
			s.Equal(apiURL+"/api/payments/success", req.SuccessURL)
			s.Equal(apiURL+"/api/payments/ipn", req.IPNURL)
			return &gateway.Session{SessionKey: "sess-123", GatewayURL: "https://sandbox.example/pay"}, nil
		})

	var createdID uuid.UUID
	s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), "sess-123").DoAndReturn(
		func(_ context.Context, _ any, p *payment.Payment, _ string) error {
			createdID = p.ID()
			s.Equal(payment.StatusPending, p.Status())
			return nil
		})
	s.orders.EXPECT().LinkPayment(gomock.Any(), gomock.Any(), gomock.Any(), []uuid.UUID{first, second}).Return(nil)

	result, err := s.cmds.Init(ctx, s.userID, commands.InitPaymentInput{OrderIDs: orderIDs, Amount: 250})

	s.Require().NoError(err)
	s.Equal(sentTranID, result.TranID)
	s.Equal(createdID, result.PaymentID)
	s.Equal("https://sandbox.example/pay", result.GatewayURL)
	s.Equal("sess-123", result.SessionKey)
}

func (s *PaymentCommandsTestSuite) TestInit_Rejections() {
	ctx := context.Background()
	orderID := uuid.New()

	s.Run("non-positive amount", func() {
		_, err := s.cmds.Init(ctx, s.userID, commands.InitPaymentInput{OrderIDs: []uuid.UUID{orderID}, Amount: 0})
		s.ErrorIs(err, payment.ErrInvalidAmount)
	})

	s.Run("no orders", func() {
		_, err := s.cmds.Init(ctx, s.userID, commands.InitPaymentInput{Amount: 100})
		s.ErrorIs(err, payment.ErrNoOrders)
	})

	s.Run("order of another student never reaches the gateway", func() {
		s.orders.EXPECT().OwnersOf(gomock.Any(), gomock.Any(), []uuid.UUID{orderID}).
			Return(map[uuid.UUID]uuid.UUID{orderID: uuid.New()}, nil)
		_, err := s.cmds.Init(ctx, s.userID, commands.InitPaymentInput{OrderIDs: []uuid.UUID{orderID}, Amount: 100})
		s.ErrorIs(err, commands.ErrOrderNotOwned)
	})

	s.Run("unknown order", func() {
		s.orders.EXPECT().OwnersOf(gomock.Any(), gomock.Any(), []uuid.UUID{orderID}).
			Return(map[uuid.UUID]uuid.UUID{}, nil)
		_, err := s.cmds.Init(ctx, s.userID, commands.InitPaymentInput{OrderIDs: []uuid.UUID{orderID}, Amount: 100})
		s.ErrorIs(err, commands.ErrOrderNotFound)
	})

	s.Run("gateway failure stores nothing", func() {
		s.orders.EXPECT().OwnersOf(gomock.Any(), gomock.Any(), []uuid.UUID{orderID}).
			Return(map[uuid.UUID]uuid.UUID{orderID: s.userID}, nil)
		s.gateway.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil, errors.New("gateway down"))
		_, err := s.cmds.Init(ctx, s.userID, commands.InitPaymentInput{OrderIDs: []uuid.UUID{orderID}, Amount: 100})
		s.Error(err)
	})
}

func (s *PaymentCommandsTestSuite) TestSucceed_ValidatedByGateway() {
	ctx := context.Background()
	pay := s.pending("TT-abc")

	s.gateway.EXPECT().Validate(ctx, "val-1").Return(&gateway.Validation{Status: "VALID", TranID: "TT-abc"}, nil)
	s.payments.EXPECT().FindByTranIDForUpdate(gomock.Any(), gomock.Any(), "TT-abc").Return(pay, nil)
	s.payments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), pay, ptr.Of("val-1"), ptr.Of("VALID")).Return(nil)

	outcome, err := s.cmds.Succeed(ctx, "TT-abc", "val-1")

	s.Require().NoError(err)
	s.Equal(payment.StatusSuccess, outcome.Status)
	s.Equal("TT-abc", outcome.TranID)
}

func (s *PaymentCommandsTestSuite) TestSucceed_Failures() {
	ctx := context.Background()

	s.Run("validation unavailable leaves the payment pending", func() {
		s.gateway.EXPECT().Validate(ctx, "val-2").Return(nil, errors.New("timeout"))
		_, err := s.cmds.Succeed(ctx, "TT-abc", "val-2")
		s.Error(err)
	})

	s.Run("invalid validation fails the payment", func() {
		pay := s.pending("TT-abc")
		s.gateway.EXPECT().Validate(ctx, "val-3").Return(&gateway.Validation{Status: "INVALID_TRANSACTION"}, nil)
		s.payments.EXPECT().FindByTranIDForUpdate(gomock.Any(), gomock.Any(), "TT-abc").Return(pay, nil)
		s.payments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), pay, gomock.Any(), gomock.Any()).Return(nil)

		outcome, err := s.cmds.Succeed(ctx, "TT-abc", "val-3")
		s.Require().NoError(err)
		s.Equal(payment.StatusFailed, outcome.Status)
	})

	s.Run("validation for another transaction fails the payment", func() {
		pay := s.pending("TT-abc")
		s.gateway.EXPECT().Validate(ctx, "val-4").Return(&gateway.Validation{Status: "VALID", TranID: "TT-other"}, nil)
		s.payments.EXPECT().FindByTranIDForUpdate(gomock.Any(), gomock.Any(), "TT-abc").Return(pay, nil)
		s.payments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), pay, gomock.Any(), gomock.Any()).Return(nil)

		outcome, err := s.cmds.Succeed(ctx, "TT-abc", "val-4")
		s.Require().NoError(err)
		s.Equal(payment.StatusFailed, outcome.Status)
	})

	s.Run("unknown transaction", func() {
		s.gateway.EXPECT().Validate(ctx, "val-5").Return(&gateway.Validation{Status: "VALID"}, nil)
		s.payments.EXPECT().FindByTranIDForUpdate(gomock.Any(), gomock.Any(), "TT-missing").Return(nil, notFound("payment"))
		_, err := s.cmds.Succeed(ctx, "TT-missing", "val-5")
		s.ErrorIs(err, commands.ErrPaymentNotFound)
	})
}

func (s *PaymentCommandsTestSuite) TestFinalStatusIsSticky() {
	ctx := context.Background()
	settled := payment.ReconstructPayment(uuid.New(), s.userID, "TT-done", 250, "BDT", payment.StatusSuccess,
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	s.payments.EXPECT().FindByTranIDForUpdate(gomock.Any(), gomock.Any(), "TT-done").Return(settled, nil).Times(2)

	outcome, err := s.cmds.Fail(ctx, "TT-done")
	s.Require().NoError(err)
	s.Equal(payment.StatusSuccess, outcome.Status)

	outcome, err = s.cmds.Cancel(ctx, "TT-done")
	s.Require().NoError(err)
	s.Equal(payment.StatusSuccess, outcome.Status)
}

func (s *PaymentCommandsTestSuite) TestRepeatedCallbackIsNoop() {
	cancelled := payment.ReconstructPayment(uuid.New(), s.userID, "TT-x", 80, "BDT", payment.StatusCancelled,
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	s.payments.EXPECT().FindByTranIDForUpdate(gomock.Any(), gomock.Any(), "TT-x").Return(cancelled, nil)

	outcome, err := s.cmds.Cancel(context.Background(), "TT-x")

	s.Require().NoError(err)
	s.Equal(payment.StatusCancelled, outcome.Status)
}

func (s *PaymentCommandsTestSuite) TestHandleIPN() {
	ctx := context.Background()
	form := url.Values{
		"tran_id":     {"TT-ipn"},
		"val_id":      {"val-9"},
		"status":      {"VALID"},
		"verify_sign": {"deadbeef"},
	}

	s.Run("invalid signature", func() {
		s.gateway.EXPECT().VerifyIPN(form).Return(false)
		_, err := s.cmds.HandleIPN(ctx, form)
		s.ErrorIs(err, commands.ErrInvalidIPN)
	})

	s.Run("verified notification settles the payment", func() {
		pay := s.pending("TT-ipn")
		s.gateway.EXPECT().VerifyIPN(form).Return(true)
		s.payments.EXPECT().FindByTranIDForUpdate(gomock.Any(), gomock.Any(), "TT-ipn").Return(pay, nil)
		s.payments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), pay, ptr.Of("val-9"), ptr.Of("VALID")).Return(nil)

		outcome, err := s.cmds.HandleIPN(ctx, form)
		s.Require().NoError(err)
		s.Equal(payment.StatusSuccess, outcome.Status)
	})
}
