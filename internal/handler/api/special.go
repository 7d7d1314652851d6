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

type AvailabilityHandler struct {
	specials commands.SpecialCommands
	weekly   commands.WeeklyCommands
	sq       queries.SpecialQueries
	wq       queries.WeeklyQueries
}

func NewAvailabilityHandler(specials commands.SpecialCommands, weekly commands.WeeklyCommands, sq queries.SpecialQueries, wq queries.WeeklyQueries) *AvailabilityHandler {
	return &AvailabilityHandler{specials: specials, weekly: weekly, sq: sq, wq: wq}
}

// @Summary Create date special
// @Tags specials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSpecialRequest true "Special"
// @Success 201 {object} queries.DateSpecialView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /specials [post]
func (h *AvailabilityHandler) CreateSpecial(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	var req reqdto.CreateSpecialRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.specials.Create(c.Request.Context(), s.ID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Failed to create special")
		return
	}
	h.respondSpecial(c, http.StatusCreated, id)
}

// @Summary Own upcoming specials
// @Tags specials
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.DateSpecialView
// @Router /specials/mine [get]
func (h *AvailabilityHandler) MySpecials(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	views, err := h.sq.Mine(c.Request.Context(), s.ID)
	if err != nil {
		httperr.Abort(c, err, "Failed to list specials")
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Specials today
// @Tags specials
// @Produce json
// @Success 200 {array} queries.DateSpecialView
// @Router /specials/today [get]
func (h *AvailabilityHandler) SpecialsToday(c *gin.Context) {
	views, err := h.sq.Today(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to list specials")
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Specials on a date
// @Tags specials
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} queries.DateSpecialView
// @Failure 400 {object} httperr.Response
// @Router /specials/by-date/{date} [get]
func (h *AvailabilityHandler) SpecialsByDate(c *gin.Context) {
	views, err := h.sq.ByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.Abort(c, err, "Failed to list specials")
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Update date special
// @Tags specials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Special ID"
// @Param request body reqdto.UpdateSpecialRequest true "Quantity and/or special price"
// @Success 200 {object} queries.DateSpecialView
// @Router /specials/{id} [put]
func (h *AvailabilityHandler) UpdateSpecial(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateSpecialRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.specials.Update(c.Request.Context(), s.ID, id, req.ToPatch()); err != nil {
		httperr.Abort(c, err, "Failed to update special")
		return
	}
	h.respondSpecial(c, http.StatusOK, id)
}

// @Summary Delete date special
// @Tags specials
// @Security BearerAuth
// @Param id path string true "Special ID"
// @Success 204 "No Content"
// @Router /specials/{id} [delete]
func (h *AvailabilityHandler) DeleteSpecial(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.specials.Delete(c.Request.Context(), s.ID, id); err != nil {
		httperr.Abort(c, err, "Failed to delete special")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set weekly availability
// @Description is_available=true upserts the rule (200), false removes it (204)
// @Tags weekly-menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetWeeklyRequest true "Rule"
// @Success 200 {object} resdto.WeeklyRuleResponse
// @Success 204 "No Content"
// @Router /weekly-menu [post]
func (h *AvailabilityHandler) SetWeekly(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	var req reqdto.SetWeeklyRequest
	if !bindJSON(c, &req) {
		return
	}
	rule, err := h.weekly.Set(c.Request.Context(), s.ID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Failed to update weekly menu")
		return
	}
	if rule == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWeeklyRule(rule))
}

// @Summary Own weekly rules
// @Tags weekly-menu
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.WeeklyRuleView
// @Router /weekly-menu/mine [get]
func (h *AvailabilityHandler) MyWeekly(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	views, err := h.wq.Mine(c.Request.Context(), s.ID)
	if err != nil {
		httperr.Abort(c, err, "Failed to list weekly menu")
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *AvailabilityHandler) respondSpecial(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.sq.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load special")
		return
	}
	c.JSON(status, view)
}
