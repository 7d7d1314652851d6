package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/handler/api"
	"tiffintime-api/internal/handler/middleware"
	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth         *api.AuthHandler
	Vendor       *api.VendorHandler
	Menu         *api.MenuHandler
	Availability *api.AvailabilityHandler
	Order        *api.OrderHandler
	Subscription *api.SubscriptionHandler
	Feedback     *api.FeedbackHandler
	Upload       *api.UploadHandler
	Payment      *api.PaymentHandler

	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if !cfg.App.IsProduction() {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authed := h.AuthMiddleware.RequireAuth()
	student := h.AuthMiddleware.RequireRole(account.RoleStudent)
	vendor := h.AuthMiddleware.RequireRole(account.RoleVendor)
	limited := h.RateLimiter.Middleware()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{limited}},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{limited}},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{authed}},
			})
		}

		addRoutes(apiGroup.Group("/users"), []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.UserDetails, Mw: []gin.HandlerFunc{authed, student}},
		})

		addRoutes(apiGroup.Group("/vendors"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Vendor.List},
			{Method: http.MethodPatch, Path: "/me", Handler: h.Vendor.UpdateMe, Mw: []gin.HandlerFunc{authed, vendor}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Vendor.Get},
			{Method: http.MethodGet, Path: "/:id/menu", Handler: h.Menu.ListByVendor},
			{Method: http.MethodGet, Path: "/:id/ratings/stats", Handler: h.Feedback.Stats},
			{Method: http.MethodGet, Path: "/:id/ratings/me", Handler: h.Feedback.MyRating, Mw: []gin.HandlerFunc{authed, student}},
			{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Feedback.ListReviews},
		})

		addRoutes(apiGroup.Group("/menu"), []route{
			{Method: http.MethodGet, Path: "/today", Handler: h.Menu.Today},
			{Method: http.MethodGet, Path: "/by-date/:date", Handler: h.Menu.ByDate},
			{Method: http.MethodGet, Path: "/items/:id", Handler: h.Menu.Get},
			{Method: http.MethodPost, Path: "/items", Handler: h.Menu.Create, Mw: []gin.HandlerFunc{authed, vendor}},
			{Method: http.MethodPut, Path: "/items/:id", Handler: h.Menu.Update, Mw: []gin.HandlerFunc{authed, vendor}},
			{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Menu.Delete, Mw: []gin.HandlerFunc{authed, vendor}},
		})

		addRoutes(apiGroup.Group("/specials"), []route{
			{Method: http.MethodGet, Path: "/today", Handler: h.Availability.SpecialsToday},
			{Method: http.MethodGet, Path: "/by-date/:date", Handler: h.Availability.SpecialsByDate},
			{Method: http.MethodGet, Path: "/mine", Handler: h.Availability.MySpecials, Mw: []gin.HandlerFunc{authed, vendor}},
			{Method: http.MethodPost, Path: "", Handler: h.Availability.CreateSpecial, Mw: []gin.HandlerFunc{authed, vendor}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Availability.UpdateSpecial, Mw: []gin.HandlerFunc{authed, vendor}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Availability.DeleteSpecial, Mw: []gin.HandlerFunc{authed, vendor}},
		})

		weekly := apiGroup.Group("/weekly-menu")
		weekly.Use(authed, vendor)
		{
			addRoutes(weekly, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Availability.SetWeekly},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Availability.MyWeekly},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authed)
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.Place, Mw: []gin.HandlerFunc{student}},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Order.Mine, Mw: []gin.HandlerFunc{student}},
				{Method: http.MethodGet, Path: "/vendor", Handler: h.Order.ForVendor, Mw: []gin.HandlerFunc{vendor}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Order.UpdateStatus, Mw: []gin.HandlerFunc{vendor}},
			})
		}

		subscriptions := apiGroup.Group("/subscriptions")
		subscriptions.Use(authed)
		{
			addRoutes(subscriptions, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Subscription.Create, Mw: []gin.HandlerFunc{student}},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Subscription.Mine, Mw: []gin.HandlerFunc{student}},
				{Method: http.MethodGet, Path: "/vendor", Handler: h.Subscription.Subscribers, Mw: []gin.HandlerFunc{vendor}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Subscription.Cancel},
			})
		}

		addRoutes(apiGroup.Group("/ratings"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Feedback.Rate, Mw: []gin.HandlerFunc{authed, student}},
		})

		addRoutes(apiGroup.Group("/reviews"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Feedback.CreateReview, Mw: []gin.HandlerFunc{authed, student}},
			{Method: http.MethodPost, Path: "/:id/reply", Handler: h.Feedback.Reply, Mw: []gin.HandlerFunc{authed, vendor}},
		})

		uploads := apiGroup.Group("/uploads")
		uploads.Use(authed, vendor)
		{
			addRoutes(uploads, []route{
				{Method: http.MethodPost, Path: "/menu-image", Handler: h.Upload.MenuImage},
				{Method: http.MethodPost, Path: "/vendor-image", Handler: h.Upload.VendorImage},
			})
		}

		// Gateway callbacks carry no bearer token.
		addRoutes(apiGroup.Group("/payments"), []route{
			{Method: http.MethodPost, Path: "/init", Handler: h.Payment.Init, Mw: []gin.HandlerFunc{limited, authed, student}},
			{Method: http.MethodPost, Path: "/success", Handler: h.Payment.Success},
			{Method: http.MethodPost, Path: "/fail", Handler: h.Payment.Fail},
			{Method: http.MethodPost, Path: "/cancel", Handler: h.Payment.Cancel},
			{Method: http.MethodPost, Path: "/ipn", Handler: h.Payment.IPN},
			{Method: http.MethodGet, Path: "/:tran_id/status", Handler: h.Payment.Status,
				Mw: []gin.HandlerFunc{authed, h.AuthMiddleware.RequireRole(account.RoleStudent, account.RoleAdmin)}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// chainHandlers runs middleware inline. Each step must not rely on c.Next
// to reach the final handler, so it stops at the first abort.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
