package api

import (
	"net/http"

	reqdto "tiffintime-api/internal/handler/dto/request"
	resdto "tiffintime-api/internal/handler/dto/response"
	"tiffintime-api/internal/handler/httperr"
	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VendorHandler struct {
	cmds commands.VendorCommands
	q    queries.VendorQueries
}

func NewVendorHandler(cmds commands.VendorCommands, q queries.VendorQueries) *VendorHandler {
	return &VendorHandler{cmds: cmds, q: q}
}

// @Summary List vendors
// @Tags vendors
// @Produce json
// @Success 200 {array} resdto.VendorResponse
// @Router /vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to list vendors")
		return
	}
	res, err := resdto.FromVendorViews(views)
	if err != nil {
		httperr.Abort(c, err, "Failed to list vendors")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get vendor
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} resdto.VendorResponse
// @Failure 404 {object} httperr.Response
// @Router /vendors/{id} [get]
func (h *VendorHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	h.respondVendor(c, id)
}

// @Summary Update own storefront
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateVendorRequest true "Profile patch"
// @Success 200 {object} resdto.VendorResponse
// @Failure 400 {object} httperr.Response
// @Router /vendors/me [patch]
func (h *VendorHandler) UpdateMe(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	var req reqdto.UpdateVendorRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateProfile(c.Request.Context(), s.ID, req.ToPatch()); err != nil {
		httperr.Abort(c, err, "Failed to update vendor")
		return
	}
	h.respondVendor(c, s.ID)
}

func (h *VendorHandler) respondVendor(c *gin.Context, id uuid.UUID) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load vendor")
		return
	}
	res, err := resdto.FromVendorView(view)
	if err != nil {
		httperr.Abort(c, err, "Failed to load vendor")
		return
	}
	c.JSON(http.StatusOK, res)
}
