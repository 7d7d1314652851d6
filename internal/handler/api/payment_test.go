//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/domain/payment"
	"tiffintime-api/internal/handler/api"
	resdto "tiffintime-api/internal/handler/dto/response"
	"tiffintime-api/internal/infra/gateway"
	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/queries"
	"tiffintime-api/tests/common/httptest"
	commandsmock "tiffintime-api/tests/mock/commands"
	queriesmock "tiffintime-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const clientStatusURL = "http://localhost:3000/payment/status?"

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	auth         testAuth
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
	studentID    uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.auth = newTestAuth(s.T())
	s.studentID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	handler := api.NewPaymentHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	payments := s.router.Group("/payments")
	payments.POST("/success", handler.Success)
	payments.POST("/fail", handler.Fail)
	payments.POST("/cancel", handler.Cancel)
	payments.POST("/ipn", handler.IPN)
	payments.POST("/init", s.auth.mw.RequireAuth(), s.auth.mw.RequireRole(account.RoleStudent), handler.Init)
	payments.GET("/:tran_id/status", s.auth.mw.RequireAuth(), handler.Status)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestInit() {
	orderID := uuid.New()
	reqBody := map[string]any{
		"order_ids": []string{orderID.String()},
		"amount":    136.5,
		"customer": map[string]any{
			"name":  "Farhan Ahmed",
			"email": "farhan@campus.edu",
			"phone": "01711223344",
		},
	}
	token := s.auth.tokens.GenerateToken(s.T(), s.studentID, account.RoleStudent)

	s.Run("success: returns the gateway session", func() {
		s.mockCommands.EXPECT().Init(gomock.Any(), s.studentID, commands.InitPaymentInput{
			OrderIDs: []uuid.UUID{orderID},
			Amount:   136.5,
			Customer: gateway.Customer{Name: "Farhan Ahmed", Email: "farhan@campus.edu", Phone: "01711223344"},
		}).Return(&commands.InitPaymentResult{
			PaymentID:  uuid.New(),
			TranID:     "TT-abc",
			GatewayURL: "https://sandbox.sslcommerz.com/gwprocess/v4/abc",
			SessionKey: "SESSIONKEY",
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/init", reqBody, token)

		var response resdto.InitPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("TT-abc", response.TranID)
		s.Equal("SESSIONKEY", response.SessionKey)
	})

	s.Run("error: 400 without orders", func() {
		body := map[string]any{"order_ids": []string{}, "amount": 10, "customer": reqBody["customer"]}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/init", body, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 502 when the gateway refuses the session", func() {
		upstream := fmt.Errorf("session status FAILED: %w", gateway.ErrSessionRejected)
		s.mockCommands.EXPECT().Init(gomock.Any(), s.studentID, gomock.Any()).Return(nil, upstream)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/init", reqBody, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "rejected the session")
	})
}

func (s *PaymentHandlerTestSuite) TestCallbacks() {
	testCases := []struct {
		name   string
		path   string
		form   url.Values
		expect func()
		status string
	}{
		{
			name: "success validated",
			path: "/payments/success",
			form: url.Values{"tran_id": {"TT-1"}, "val_id": {"VAL-1"}},
			expect: func() {
				s.mockCommands.EXPECT().Succeed(gomock.Any(), "TT-1", "VAL-1").
					Return(&commands.PaymentOutcome{TranID: "TT-1", Status: payment.StatusSuccess}, nil)
			},
			status: "success",
		},
		{
			name: "fail",
			path: "/payments/fail",
			form: url.Values{"tran_id": {"TT-1"}},
			expect: func() {
				s.mockCommands.EXPECT().Fail(gomock.Any(), "TT-1").
					Return(&commands.PaymentOutcome{TranID: "TT-1", Status: payment.StatusFailed}, nil)
			},
			status: "failed",
		},
		{
			name: "cancel",
			path: "/payments/cancel",
			form: url.Values{"tran_id": {"TT-1"}},
			expect: func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), "TT-1").
					Return(&commands.PaymentOutcome{TranID: "TT-1", Status: payment.StatusCancelled}, nil)
			},
			status: "cancelled",
		},
		{
			name: "usecase failure",
			path: "/payments/success",
			form: url.Values{"tran_id": {"TT-1"}, "val_id": {"VAL-1"}},
			expect: func() {
				s.mockCommands.EXPECT().Succeed(gomock.Any(), "TT-1", "VAL-1").Return(nil, commands.ErrPaymentNotFound)
			},
			status: "error",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.expect()

			rec := httptest.PerformFormRequest(s.T(), s.router, tc.path, tc.form)

			s.Equal(http.StatusSeeOther, rec.Code)
			s.Equal(clientStatusURL+url.Values{"status": {tc.status}, "tran_id": {"TT-1"}}.Encode(), rec.Header().Get("Location"))
		})
	}

	s.Run("missing tran_id redirects without one", func() {
		rec := httptest.PerformFormRequest(s.T(), s.router, "/payments/fail", url.Values{})

		s.Equal(http.StatusSeeOther, rec.Code)
		s.Equal(clientStatusURL+"status=error", rec.Header().Get("Location"))
	})
}

func (s *PaymentHandlerTestSuite) TestIPN() {
	form := url.Values{"tran_id": {"TT-1"}, "status": {"VALID"}, "verify_sign": {"abc"}, "verify_key": {"status,tran_id"}}

	s.Run("success: acknowledges", func() {
		s.mockCommands.EXPECT().HandleIPN(gomock.Any(), form).
			Return(&commands.PaymentOutcome{TranID: "TT-1", Status: payment.StatusSuccess}, nil)

		rec := httptest.PerformFormRequest(s.T(), s.router, "/payments/ipn", form)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"status":"ok"}`, rec.Body.String())
	})

	s.Run("error: 400 on a bad signature", func() {
		s.mockCommands.EXPECT().HandleIPN(gomock.Any(), form).Return(nil, commands.ErrInvalidIPN)

		rec := httptest.PerformFormRequest(s.T(), s.router, "/payments/ipn", form)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid IPN signature")
	})
}

func (s *PaymentHandlerTestSuite) TestStatus() {
	token := s.auth.tokens.GenerateToken(s.T(), s.studentID, account.RoleStudent)
	subject := account.Subject{ID: s.studentID, Role: account.RoleStudent}

	s.Run("success: returns the payment view", func() {
		s.mockQueries.EXPECT().Status(gomock.Any(), "TT-1", subject).Return(&queries.PaymentView{
			ID:       uuid.New(),
			TranID:   "TT-1",
			Amount:   136.5,
			Currency: "BDT",
			Status:   "pending",
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/TT-1/status", nil, token)

		var response queries.PaymentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("pending", response.Status)
		s.Equal("BDT", response.Currency)
	})

	s.Run("error: 403 for another student's payment", func() {
		s.mockQueries.EXPECT().Status(gomock.Any(), "TT-2", subject).Return(nil, queries.ErrPaymentAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/TT-2/status", nil, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another user")
	})
}
