package api

import (
	"net/http"

	reqdto "tiffintime-api/internal/handler/dto/request"
	resdto "tiffintime-api/internal/handler/dto/response"
	"tiffintime-api/internal/handler/httperr"
	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	cmds commands.SubscriptionCommands
	q    queries.SubscriptionQueries
}

func NewSubscriptionHandler(cmds commands.SubscriptionCommands, q queries.SubscriptionQueries) *SubscriptionHandler {
	return &SubscriptionHandler{cmds: cmds, q: q}
}

// @Summary Subscribe to a vendor
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSubscriptionRequest true "Subscription"
// @Success 201 {object} resdto.SubscriptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Create(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	var req reqdto.CreateSubscriptionRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Subscribe(c.Request.Context(), s.ID, req.VendorID, req.Plan)
	if err != nil {
		httperr.Abort(c, err, "Failed to subscribe")
		return
	}
	res, err := resdto.FromSubscriptionResult(result)
	if err != nil {
		httperr.Abort(c, err, "Failed to subscribe")
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Own subscriptions
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.SubscriptionView
// @Router /subscriptions/mine [get]
func (h *SubscriptionHandler) Mine(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	views, err := h.q.Mine(c.Request.Context(), s.ID)
	if err != nil {
		httperr.Abort(c, err, "Failed to list subscriptions")
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Vendor subscribers
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.SubscriberView
// @Router /subscriptions/vendor [get]
func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	views, err := h.q.Subscribers(c.Request.Context(), s.ID)
	if err != nil {
		httperr.Abort(c, err, "Failed to list subscribers")
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Cancel subscription
// @Description Allowed for the subscriber, the vendor, or an admin
// @Tags subscriptions
// @Security BearerAuth
// @Param id path string true "Subscription ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /subscriptions/{id} [delete]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), s, id); err != nil {
		httperr.Abort(c, err, "Failed to cancel subscription")
		return
	}
	c.Status(http.StatusNoContent)
}
