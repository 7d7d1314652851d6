package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"tiffintime-api/internal/domain/payment"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/infra/gateway"
	"tiffintime-api/internal/pkg/clock"
	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/pkg/ptr"
	"tiffintime-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentGateway interface {
	CreateSession(ctx context.Context, in gateway.SessionRequest) (*gateway.Session, error)
	Validate(ctx context.Context, valID string) (*gateway.Validation, error)
	VerifyIPN(form url.Values) bool
}

type InitPaymentInput struct {
	OrderIDs []uuid.UUID
	Amount   float64
	Customer gateway.Customer
}

type InitPaymentResult struct {
	PaymentID  uuid.UUID
	TranID     string
	GatewayURL string
	SessionKey string
}

// PaymentOutcome is what the gateway callbacks report back to the browser.
type PaymentOutcome struct {
	TranID string
	Status payment.Status
}

type PaymentCommands interface {
	Init(ctx context.Context, userID uuid.UUID, in InitPaymentInput) (*InitPaymentResult, error)
	Succeed(ctx context.Context, tranID, valID string) (*PaymentOutcome, error)
	Fail(ctx context.Context, tranID string) (*PaymentOutcome, error)
	Cancel(ctx context.Context, tranID string) (*PaymentOutcome, error)
	HandleIPN(ctx context.Context, form url.Values) (*PaymentOutcome, error)
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	clock    clock.Clock
	currency string
	apiURL   string
}

func NewPaymentCommands(uow shared.UnitOfWork, gw PaymentGateway, clk clock.Clock, cfg config.Config) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		gateway:  gw,
		clock:    clk,
		currency: cfg.Payment.Currency,
		apiURL:   strings.TrimRight(cfg.App.APIURL, "/"),
	}
}

func (p *paymentCommandsImpl) Init(ctx context.Context, userID uuid.UUID, in InitPaymentInput) (*InitPaymentResult, error) {
	pay, err := payment.NewPending(userID, in.Amount, p.currency, in.OrderIDs, p.clock.Now())
	if err != nil {
		return nil, err
	}

	// ownership is checked before the gateway is involved
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return ensureOrdersOwned(ctx, tx, userID, pay.OrderIDs())
	})
	if err != nil {
		return nil, err
	}

	session, err := p.gateway.CreateSession(ctx, gateway.SessionRequest{
		TranID:      pay.TranID(),
		Amount:      pay.Amount(),
		Currency:    pay.Currency(),
		Customer:    in.Customer,
		NumOfItems:  len(pay.OrderIDs()),
		ProductName: "TiffinTime order",
		SuccessURL:  p.apiURL + "/api/payments/success",
		FailURL:     p.apiURL + "/api/payments/fail",
		CancelURL:   p.apiURL + "/api/payments/cancel",
		IPNURL:      p.apiURL + "/api/payments/ipn",
	})
	if err != nil {
		return nil, err
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Payments().Create(ctx, tx.DB(), pay, session.SessionKey); err != nil {
			return err
		}
		return tx.Orders().LinkPayment(ctx, tx.DB(), pay.ID(), pay.OrderIDs())
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Payment session created", "tran_id", pay.TranID(), "orders", len(pay.OrderIDs()))
	return &InitPaymentResult{
		PaymentID:  pay.ID(),
		TranID:     pay.TranID(),
		GatewayURL: session.GatewayURL,
		SessionKey: session.SessionKey,
	}, nil
}

// Succeed trusts only the gateway's validation of valID, never the redirect.
// A validation request that fails leaves the payment pending.
func (p *paymentCommandsImpl) Succeed(ctx context.Context, tranID, valID string) (*PaymentOutcome, error) {
	validation, err := p.gateway.Validate(ctx, valID)
	if err != nil {
		slog.Warn("Payment validation unavailable", "tran_id", tranID, "error", err.Error())
		return nil, err
	}

	next := payment.StatusFromValidation(validation.Status)
	if validation.TranID != "" && validation.TranID != tranID {
		slog.Warn("Validated transaction does not match callback", "tran_id", tranID, "validated_tran_id", validation.TranID)
		next = payment.StatusFailed
	}
	return p.apply(ctx, tranID, next, ptr.NonEmpty(valID), ptr.NonEmpty(validation.Status))
}

func (p *paymentCommandsImpl) Fail(ctx context.Context, tranID string) (*PaymentOutcome, error) {
	return p.apply(ctx, tranID, payment.StatusFailed, nil, nil)
}

func (p *paymentCommandsImpl) Cancel(ctx context.Context, tranID string) (*PaymentOutcome, error) {
	return p.apply(ctx, tranID, payment.StatusCancelled, nil, nil)
}

func (p *paymentCommandsImpl) HandleIPN(ctx context.Context, form url.Values) (*PaymentOutcome, error) {
	if !p.gateway.VerifyIPN(form) {
		slog.Warn("Rejected IPN with invalid signature", "tran_id", form.Get("tran_id"))
		return nil, ErrInvalidIPN
	}
	gatewayStatus := form.Get("status")
	next := payment.StatusFromValidation(gatewayStatus)
	return p.apply(ctx, form.Get("tran_id"), next, ptr.NonEmpty(form.Get("val_id")), ptr.NonEmpty(gatewayStatus))
}

// apply moves the payment to next. Repeats of the current status and late
// callbacks that contradict a final status leave the stored state untouched.
func (p *paymentCommandsImpl) apply(ctx context.Context, tranID string, next payment.Status, valID, gatewayStatus *string) (*PaymentOutcome, error) {
	var outcome PaymentOutcome
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pay, err := tx.Payments().FindByTranIDForUpdate(ctx, tx.DB(), tranID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
		outcome = PaymentOutcome{TranID: pay.TranID(), Status: pay.Status()}

		changed, err := pay.MoveTo(next)
		if errors.Is(err, payment.ErrInvalidTransition) {
			slog.Warn("Ignoring payment transition from a final status",
				"tran_id", tranID,
				"current", pay.Status().String(),
				"requested", next.String(),
			)
			return nil
		}
		if err != nil || !changed {
			return err
		}

		if err := tx.Payments().UpdateStatus(ctx, tx.DB(), pay, valID, gatewayStatus); err != nil {
			return err
		}
		outcome.Status = pay.Status()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}

func ensureOrdersOwned(ctx context.Context, tx shared.Tx, userID uuid.UUID, orderIDs []uuid.UUID) error {
	owners, err := tx.Orders().OwnersOf(ctx, tx.DB(), orderIDs)
	if err != nil {
		return err
	}
	for _, id := range orderIDs {
		owner, ok := owners[id]
		if !ok {
			return ErrOrderNotFound
		}
		if owner != userID {
			return ErrOrderNotOwned
		}
	}
	return nil
}
