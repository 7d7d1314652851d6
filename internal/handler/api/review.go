package api

import (
	"net/http"
	"strconv"
	"strings"

	reqdto "tiffintime-api/internal/handler/dto/request"
	resdto "tiffintime-api/internal/handler/dto/response"
	"tiffintime-api/internal/handler/httperr"
	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler serves star ratings and written reviews.
type FeedbackHandler struct {
	ratings commands.RatingCommands
	reviews commands.ReviewCommands
	rq      queries.RatingQueries
	vq      queries.ReviewQueries
}

func NewFeedbackHandler(ratings commands.RatingCommands, reviews commands.ReviewCommands, rq queries.RatingQueries, vq queries.ReviewQueries) *FeedbackHandler {
	return &FeedbackHandler{ratings: ratings, reviews: reviews, rq: rq, vq: vq}
}

// @Summary Rate a vendor
// @Description One rating per student and vendor; rating again overwrites it
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RateVendorRequest true "Rating"
// @Success 200 {object} resdto.RatingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /ratings [post]
func (h *FeedbackHandler) Rate(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	var req reqdto.RateVendorRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.ratings.Rate(c.Request.Context(), s.ID, req.VendorID, req.Rating)
	if err != nil {
		httperr.Abort(c, err, "Failed to save rating")
		return
	}
	c.JSON(http.StatusOK, resdto.RatingResponse{VendorID: result.VendorID, Rating: result.Rating})
}

// @Summary Vendor rating stats
// @Tags ratings
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} queries.RatingStatsView
// @Router /vendors/{id}/ratings/stats [get]
func (h *FeedbackHandler) Stats(c *gin.Context) {
	vendorID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	stats, err := h.rq.Stats(c.Request.Context(), vendorID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load rating stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Own rating of a vendor
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vendor ID"
// @Success 200 {object} queries.RatingView
// @Failure 404 {object} httperr.Response
// @Router /vendors/{id}/ratings/me [get]
func (h *FeedbackHandler) MyRating(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	vendorID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.rq.Mine(c.Request.Context(), s.ID, vendorID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load rating")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews [post]
func (h *FeedbackHandler) CreateReview(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.reviews.Create(c.Request.Context(), s.ID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Failed to create review")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreatedReview(result))
}

// @Summary Vendor reviews
// @Description Newest first
// @Tags reviews
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {array} queries.ReviewView
// @Router /vendors/{id}/reviews [get]
func (h *FeedbackHandler) ListReviews(c *gin.Context) {
	vendorID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	views, err := h.vq.ListByVendor(c.Request.Context(), vendorID)
	if err != nil {
		httperr.Abort(c, err, "Failed to list reviews")
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Reply to a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param request body reqdto.ReplyReviewRequest true "Reply"
// @Success 200 {object} map[string]any
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews/{id}/reply [post]
func (h *FeedbackHandler) Reply(c *gin.Context) {
	s, ok := subject(c)
	if !ok {
		return
	}
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || reviewID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, requestError("bad review id"), "Invalid id", nil)
		return
	}
	var req reqdto.ReplyReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.reviews.Reply(c.Request.Context(), s.ID, reviewID, req.Reply); err != nil {
		httperr.Abort(c, err, "Failed to reply to review")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"review_id":  reviewID,
		"reply":      strings.TrimSpace(req.Reply),
		"is_replied": true,
	})
}
