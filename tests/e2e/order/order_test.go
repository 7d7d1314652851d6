//go:build e2e

package order_test

import (
	"net/http"
	"testing"
	"time"

	resdto "tiffintime-api/internal/handler/dto/response"
	"tiffintime-api/internal/pkg/ptr"
	"tiffintime-api/internal/usecase/queries"
	"tiffintime-api/tests/common/authtest"
	"tiffintime-api/tests/common/builder"
	"tiffintime-api/tests/common/dbtest"
	"tiffintime-api/tests/common/httptest"
	"tiffintime-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type orderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(orderSuite))
}

func (s *orderSuite) today() time.Time {
	return time.Now().In(s.Config.App.Location())
}

func (s *orderSuite) findListing(views []queries.ListingView, itemID uuid.UUID) *queries.ListingView {
	for i := range views {
		if views[i].MenuItemID == itemID {
			return &views[i]
		}
	}
	return nil
}

func (s *orderSuite) TestListings() {
	s.Run("weekly item is listed for today", func() {
		vendorID := dbtest.CreateTestVendor(s.T(), s.DB, "Kacchi Corner", "kacchi@vendors.bd")
		itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, vendorID, "Kacchi Biryani", 180)
		dbtest.AddWeeklyAvailability(s.T(), s.DB, itemID, s.today().Weekday())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/menu/today", nil, "")

		var views []queries.ListingView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &views)
		got := s.findListing(views, itemID)
		require.NotNil(s.T(), got)
		s.Equal("weekly", got.Source)
		s.Equal("Kacchi Corner", got.VendorName)
		s.InDelta(180.0, got.Price, 0.001)
	})

	s.Run("special overrides the weekly price on its date", func() {
		vendorID := dbtest.CreateTestVendor(s.T(), s.DB, "Kacchi Corner", "kacchi@vendors.bd")
		itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, vendorID, "Kacchi Biryani", 180)
		date := s.today().AddDate(0, 0, 2)
		dbtest.AddWeeklyAvailability(s.T(), s.DB, itemID, date.Weekday())
		dbtest.CreateTestSpecial(s.T(), s.DB, itemID, date, ptr.Of(150.0), ptr.Of(int32(20)))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/menu/by-date/"+date.Format("2006-01-02"), nil, "")

		var views []queries.ListingView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &views)
		got := s.findListing(views, itemID)
		require.NotNil(s.T(), got)
		s.Equal("special", got.Source)
		s.InDelta(150.0, got.Price, 0.001)
		require.NotNil(s.T(), got.Quantity)
		s.Equal(int32(20), *got.Quantity)
	})

	s.Run("malformed date is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/menu/by-date/10-03-2025", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("empty day is an empty array", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/menu/by-date/2001-01-01", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`[]`, w.Body.String())
	})
}

func (s *orderSuite) TestOrderLifecycle() {
	s.Run("student orders and vendor delivers", func() {
		vendorID, vendorToken := authtest.CreateVendorAndLogin(s.T(), s.DB, s.Router, "Kacchi Corner", "kacchi@vendors.bd")
		itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, vendorID, "Kacchi Biryani", 180)
		_, studentToken := authtest.CreateStudentAndLogin(s.T(), s.DB, s.Router, "farhan@campus.edu")

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.VendorID = vendorID
			b.MenuItemID = itemID
			b.Quantity = 3
			b.UnitPrice = 45.5
		}).BuildDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", reqBody, studentToken)
		var placed resdto.PlaceOrderResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &placed)
		s.InDelta(136.5, placed.TotalPrice, 0.001)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/vendor?delivered=false", nil, vendorToken)
		var pending []queries.VendorOrderView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &pending)
		require.Len(s.T(), pending, 1)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/orders/"+placed.OrderID.String()+"/status",
			map[string]any{"is_delivered": true}, vendorToken)
		var updated resdto.OrderStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &updated)
		s.True(updated.IsDelivered)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/mine", nil, studentToken)
		var mine []queries.UserOrderView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &mine)
		require.Len(s.T(), mine, 1)
		s.True(mine[0].IsDelivered)
		s.Equal("Kacchi Biryani", mine[0].ItemName)
	})

	s.Run("item of another vendor is rejected", func() {
		otherVendor := dbtest.CreateTestVendor(s.T(), s.DB, "Tehari Ghar", "tehari@vendors.bd")
		vendorID := dbtest.CreateTestVendor(s.T(), s.DB, "Kacchi Corner", "kacchi@vendors.bd")
		itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, otherVendor, "Beef Tehari", 160)
		_, studentToken := authtest.CreateStudentAndLogin(s.T(), s.DB, s.Router, "farhan@campus.edu")

		reqBody := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.VendorID = vendorID
			b.MenuItemID = itemID
		}).BuildDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", reqBody, studentToken)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "does not belong")
	})

	s.Run("vendor cannot deliver another vendor's order", func() {
		_, otherToken := authtest.CreateVendorAndLogin(s.T(), s.DB, s.Router, "Tehari Ghar", "tehari@vendors.bd")
		vendorID := dbtest.CreateTestVendor(s.T(), s.DB, "Kacchi Corner", "kacchi@vendors.bd")
		itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, vendorID, "Kacchi Biryani", 180)
		studentID := dbtest.CreateTestStudent(s.T(), s.DB, "farhan@campus.edu")
		orderID := dbtest.CreateTestOrder(s.T(), s.DB, studentID, vendorID, itemID, 1, 180)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/orders/"+orderID.String()+"/status",
			map[string]any{"is_delivered": true}, otherToken)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})

	s.Run("students cannot list vendor orders", func() {
		_, studentToken := authtest.CreateStudentAndLogin(s.T(), s.DB, s.Router, "farhan@campus.edu")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/vendor", nil, studentToken)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}
