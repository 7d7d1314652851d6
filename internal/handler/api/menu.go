package api

import (
	"net/http"

	reqdto "tiffintime-api/internal/handler/dto/request"
	"tiffintime-api/internal/handler/httperr"
	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MenuHandler struct {
	cmds     commands.MenuCommands
	q        queries.MenuQueries
	listings queries.ListingQueries
}

func NewMenuHandler(cmds commands.MenuCommands, q queries.MenuQueries, listings queries.ListingQueries) *MenuHandler {
	return &MenuHandler{cmds: cmds, q: q, listings: listings}
}

// @Summary Menu available today
// @Description Weekly items for today's weekday merged with today's specials; a special overrides the weekly entry for the same item
// @Tags menu
// @Produce json
// @Success 200 {array} queries.ListingView
// @Failure 503 {object} httperr.Response
// @Router /menu/today [get]
func (h *MenuHandler) Today(c *gin.Context) {
	listings, err := h.listings.Today(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to resolve menu")
		return
	}
	c.JSON(http.StatusOK, listings)
}

// @Summary Menu available on a date
// @Tags menu
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} queries.ListingView
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /menu/by-date/{date} [get]
func (h *MenuHandler) ByDate(c *gin.Context) {
	listings, err := h.listings.ByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.Abort(c, err, "Failed to resolve menu")
		return
	}
	c.JSON(http.StatusOK, listings)
}

// @Summary Vendor menu
// @Tags menu
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {array} queries.MenuItemView
// @Router /vendors/{id}/menu [get]
func (h *MenuHandler) ListByVendor(c *gin.Context) {
	vendorID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	items, err := h.q.ListByVendor(c.Request.Context(), vendorID)
	if err != nil {
		httperr.Abort(c, err, "Failed to list menu items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get menu item
// @Tags menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} queries.MenuItemView
// @Failure 404 {object} httperr.Response
// @Router /menu/items/{id} [get]
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	h.respondItem(c, http.StatusOK, id)
}

// @Summary Create menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} queries.MenuItemView
// @Failure 400 {object} httperr.Response
// @Router /menu/items [post]
func (h *MenuHandler) Create(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	var req reqdto.CreateMenuItemRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.CreateItem(c.Request.Context(), s.ID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Failed to create menu item")
		return
	}
	h.respondItem(c, http.StatusCreated, id)
}

// @Summary Update menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body reqdto.UpdateMenuItemRequest true "Partial update"
// @Success 200 {object} queries.MenuItemView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /menu/items/{id} [put]
func (h *MenuHandler) Update(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateMenuItemRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateItem(c.Request.Context(), s.ID, id, req.ToPatch()); err != nil {
		httperr.Abort(c, err, "Failed to update menu item")
		return
	}
	h.respondItem(c, http.StatusOK, id)
}

// @Summary Delete menu item
// @Tags menu
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 204 "No Content"
// @Router /menu/items/{id} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteItem(c.Request.Context(), s.ID, id); err != nil {
		httperr.Abort(c, err, "Failed to delete menu item")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MenuHandler) respondItem(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load menu item")
		return
	}
	c.JSON(status, view)
}
