package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	reqdto "tiffintime-api/internal/handler/dto/request"
	resdto "tiffintime-api/internal/handler/dto/response"
	"tiffintime-api/internal/handler/httperr"
	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// statusError is reported to the browser when a callback could not be applied.
const statusError = "error"

type PaymentHandler struct {
	cmds      commands.PaymentCommands
	q         queries.PaymentQueries
	clientURL string
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries, cfg config.Config) *PaymentHandler {
	return &PaymentHandler{
		cmds:      cmds,
		q:         q,
		clientURL: strings.TrimRight(cfg.App.ClientOriginURL, "/"),
	}
}

// @Summary Start a payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InitPaymentRequest true "Orders and customer"
// @Success 201 {object} resdto.InitPaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/init [post]
func (h *PaymentHandler) Init(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	var req reqdto.InitPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Init(c.Request.Context(), s.ID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Failed to start payment")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromInitPayment(result))
}

// @Summary Gateway success callback
// @Tags payments
// @Accept x-www-form-urlencoded
// @Param tran_id formData string true "Transaction ID"
// @Param val_id formData string true "Validation ID"
// @Success 303 "Redirect to the client"
// @Router /payments/success [post]
func (h *PaymentHandler) Success(c *gin.Context) {
	h.callback(c, func(ctx context.Context, form reqdto.PaymentCallbackForm) (*commands.PaymentOutcome, error) {
		return h.cmds.Succeed(ctx, form.TranID, form.ValID)
	})
}

// @Summary Gateway failure callback
// @Tags payments
// @Param tran_id formData string true "Transaction ID"
// @Success 303 "Redirect to the client"
// @Router /payments/fail [post]
func (h *PaymentHandler) Fail(c *gin.Context) {
	h.callback(c, func(ctx context.Context, form reqdto.PaymentCallbackForm) (*commands.PaymentOutcome, error) {
		return h.cmds.Fail(ctx, form.TranID)
	})
}

// @Summary Gateway cancel callback
// @Tags payments
// @Param tran_id formData string true "Transaction ID"
// @Success 303 "Redirect to the client"
// @Router /payments/cancel [post]
func (h *PaymentHandler) Cancel(c *gin.Context) {
	h.callback(c, func(ctx context.Context, form reqdto.PaymentCallbackForm) (*commands.PaymentOutcome, error) {
		return h.cmds.Cancel(ctx, form.TranID)
	})
}

// @Summary Gateway instant payment notification
// @Tags payments
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Router /payments/ipn [post]
func (h *PaymentHandler) IPN(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid form", nil)
		return
	}
	if _, err := h.cmds.HandleIPN(c.Request.Context(), c.Request.PostForm); err != nil {
		httperr.Abort(c, err, "Failed to process IPN")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Payment status
// @Description Local status plus the gateway's transaction status when reachable
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param tran_id path string true "Transaction ID"
// @Success 200 {object} queries.PaymentView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{tran_id}/status [get]
func (h *PaymentHandler) Status(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	view, err := h.q.Status(c.Request.Context(), c.Param("tran_id"), s)
	if err != nil {
		httperr.Abort(c, err, "Failed to load payment")
		return
	}
	c.JSON(http.StatusOK, view)
}

type callbackFunc func(ctx context.Context, form reqdto.PaymentCallbackForm) (*commands.PaymentOutcome, error)

// callback always answers with a redirect back to the client app.
func (h *PaymentHandler) callback(c *gin.Context, apply callbackFunc) {
	var form reqdto.PaymentCallbackForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("Malformed payment callback", "path", c.FullPath(), "error", err.Error())
		h.redirect(c, statusError, "")
		return
	}

	outcome, err := apply(c.Request.Context(), form)
	if err != nil {
		slog.Warn("Payment callback not applied", "tran_id", form.TranID, "error", err.Error())
		h.redirect(c, statusError, form.TranID)
		return
	}
	h.redirect(c, outcome.Status.String(), outcome.TranID)
}

func (h *PaymentHandler) redirect(c *gin.Context, status, tranID string) {
	q := url.Values{"status": {status}}
	if tranID != "" {
		q.Set("tran_id", tranID)
	}
	c.Redirect(http.StatusSeeOther, h.clientURL+"/payment/status?"+q.Encode())
}
