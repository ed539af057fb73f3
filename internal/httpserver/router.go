package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	couponrepo "henawys-art/internal/repository/coupon"
	visitrepo "henawys-art/internal/repository/visit"
	cartsvc "henawys-art/internal/service/cart"
	catalogsvc "henawys-art/internal/service/catalog"
	checkoutsvc "henawys-art/internal/service/checkout"
	ordersvc "henawys-art/internal/service/order"
)

// Deps carries the wired services and repositories the routes need.
type Deps struct {
	CatalogSvc  *catalogsvc.Service
	CartSvc     *cartsvc.Service
	CheckoutSvc *checkoutsvc.Service
	OrderSvc    *ordersvc.Service
	CouponRepo  couponrepo.Repository
	VisitRepo   visitrepo.Repository
	Hub         *Hub

	AdminAPIKey    string
	AllowedOrigins []string
}

// buildRouter wires routes for the storefront API, the realtime socket and
// the admin dashboard.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.AllowedOrigins) == 1 && deps.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.AllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, headerSessionID, headerAPIKey)
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.CatalogSvc))
		api.GET("/products/:id", getProductHandler(deps.CatalogSvc))
		api.GET("/categories", listCategoriesHandler)
		api.GET("/addons", listAddonsHandler(deps.CatalogSvc))
		api.GET("/shipping-rates", listShippingRatesHandler(deps.CatalogSvc))
		api.POST("/visits", recordVisitHandler(deps.VisitRepo, logger))
		api.GET("/orders", trackOrdersHandler(deps.OrderSvc))

		sessioned := api.Group("", sessionRequired())
		{
			sessioned.GET("/cart/items", listCartItemsHandler(deps.CartSvc))
			sessioned.POST("/cart/items", addCartItemHandler(deps.CartSvc))
			sessioned.DELETE("/cart/items/:id", removeCartItemHandler(deps.CartSvc))
			sessioned.DELETE("/cart/items", clearCartHandler(deps.CartSvc))
			sessioned.GET("/cart/customer", getCustomerHandler(deps.CartSvc))
			sessioned.PATCH("/cart/customer", updateCustomerHandler(deps.CartSvc))
			sessioned.POST("/cart/coupon/preview", previewCouponHandler(deps.CheckoutSvc))
			sessioned.POST("/checkout", checkoutHandler(deps.CheckoutSvc))
		}
	}

	if deps.Hub != nil {
		router.GET("/ws/orders", ordersSocketHandler(deps.Hub, logger))
	}

	admin := router.Group("/admin", apiKeyRequired(deps.AdminAPIKey))
	{
		admin.GET("/products", adminListProductsHandler(deps.CatalogSvc))
		admin.POST("/products", saveProductHandler(deps.CatalogSvc))
		admin.PATCH("/products/:id/active", setProductActiveHandler(deps.CatalogSvc))

		admin.POST("/addons", saveAddonHandler(deps.CatalogSvc))
		admin.DELETE("/addons/:id", deleteAddonHandler(deps.CatalogSvc))

		admin.GET("/coupons", listCouponsHandler(deps.CouponRepo))
		admin.POST("/coupons", saveCouponHandler(deps.CouponRepo))
		admin.DELETE("/coupons/:code", deleteCouponHandler(deps.CouponRepo))

		admin.POST("/shipping-rates", saveShippingRateHandler(deps.CatalogSvc))
		admin.DELETE("/shipping-rates/:governorate", deleteShippingRateHandler(deps.CatalogSvc))

		admin.GET("/orders", adminListOrdersHandler(deps.OrderSvc))
		admin.GET("/orders/:id", adminGetOrderHandler(deps.OrderSvc))
		admin.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.OrderSvc))

		admin.GET("/stats", statsHandler(deps.VisitRepo, deps.CatalogSvc))
	}

	return router, nil
}
