package api

import (
	"net/http"
	"strconv"

	reqdto "tiffintime-api/internal/handler/dto/request"
	resdto "tiffintime-api/internal/handler/dto/response"
	"tiffintime-api/internal/handler/httperr"
	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Place order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlaceOrderRequest true "Order"
// @Success 201 {object} resdto.PlaceOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	var req reqdto.PlaceOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Place(c.Request.Context(), s.ID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Failed to place order")
		return
	}
	c.JSON(http.StatusCreated, resdto.PlaceOrderResponse{OrderID: result.OrderID, TotalPrice: result.TotalPrice})
}

// @Summary Own orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.UserOrderView
// @Router /orders/mine [get]
func (h *OrderHandler) Mine(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	views, err := h.q.Mine(c.Request.Context(), s.ID)
	if err != nil {
		httperr.Abort(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Vendor orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param delivered query bool false "Filter on delivery status"
// @Success 200 {array} queries.VendorOrderView
// @Failure 400 {object} httperr.Response
// @Router /orders/vendor [get]
func (h *OrderHandler) ForVendor(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	var delivered *bool
	if raw, present := c.GetQuery("delivered"); present {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "delivered must be true or false", nil)
			return
		}
		delivered = &v
	}
	views, err := h.q.ForVendor(c.Request.Context(), s.ID, delivered)
	if err != nil {
		httperr.Abort(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Update delivery status
// @Description Marking an order delivered emails the student once the change is committed
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Status"
// @Success 200 {object} resdto.OrderStatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.SetDelivered(c.Request.Context(), s.ID, id, *req.IsDelivered)
	if err != nil {
		httperr.Abort(c, err, "Failed to update order")
		return
	}
	res, err := resdto.FromOrderStatus(result)
	if err != nil {
		httperr.Abort(c, err, "Failed to update order")
		return
	}
	c.JSON(http.StatusOK, res)
}
