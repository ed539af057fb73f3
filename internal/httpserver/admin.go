package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"henawys-art/internal/domain"
	couponrepo "henawys-art/internal/repository/coupon"
	visitrepo "henawys-art/internal/repository/visit"
	catalogsvc "henawys-art/internal/service/catalog"
)

func adminListProductsHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.Products(c.Request.Context(), c.Query("category"), true)
		if err != nil {
			respondError(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func saveProductHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		saved, err := svc.SaveProduct(c.Request.Context(), p)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

func setProductActiveHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Active *bool `json:"active" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "active required"})
			return
		}
		if err := svc.SetProductActive(c.Request.Context(), c.Param("id"), *in.Active); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func saveAddonHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var a domain.Addon
		if err := c.ShouldBindJSON(&a); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		saved, err := svc.SaveAddon(c.Request.Context(), a)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

func deleteAddonHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteAddon(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listCouponsHandler(repo couponrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		coupons, err := repo.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if coupons == nil {
			coupons = []domain.Coupon{}
		}
		c.JSON(http.StatusOK, gin.H{"coupons": coupons})
	}
}

func saveCouponHandler(repo couponrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.Coupon
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if in.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code required"})
			return
		}
		switch in.Scope {
		case domain.ScopeItem, domain.ScopeCart:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "scope must be item or cart"})
			return
		}
		switch in.DiscountType {
		case domain.DiscountPercent, domain.DiscountFixed:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "discountType must be percent or fixed"})
			return
		}
		saved, err := repo.Upsert(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

func deleteCouponHandler(repo couponrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.Delete(c.Request.Context(), c.Param("code")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func saveShippingRateHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rate domain.ShippingRate
		if err := c.ShouldBindJSON(&rate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := svc.SaveShippingRate(c.Request.Context(), rate); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, rate)
	}
}

func deleteShippingRateHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteShippingRate(c.Request.Context(), c.Param("governorate")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func statsHandler(visits visitrepo.Repository, catalog *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		total, err := visits.Total(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		last30, err := visits.CountSince(c.Request.Context(), time.Now().AddDate(0, 0, -30))
		if err != nil {
			respondError(c, err)
			return
		}
		products, err := catalog.Products(c.Request.Context(), "", true)
		if err != nil {
			respondError(c, err)
			return
		}
		var sold int64
		for _, p := range products {
			sold += p.SoldCount
		}
		c.JSON(http.StatusOK, gin.H{
			"totalVisits":    total,
			"visitsByDay":    last30,
			"totalItemsSold": sold,
		})
	}
}
