package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"henawys-art/internal/domain"
	visitrepo "henawys-art/internal/repository/visit"
	catalogsvc "henawys-art/internal/service/catalog"
)

func listProductsHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.Products(c.Request.Context(), c.Query("category"), false)
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

func getProductHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Product(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func listCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": domain.KnownCategories})
}

func listAddonsHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		addons, err := svc.Addons(c.Request.Context(), c.Query("category"))
		if err != nil {
			respondError(c, err)
			return
		}
		if addons == nil {
			addons = []domain.Addon{}
		}
		c.JSON(http.StatusOK, gin.H{"addons": addons})
	}
}

func listShippingRatesHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rates, err := svc.ShippingRates(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if rates == nil {
			rates = []domain.ShippingRate{}
		}
		c.JSON(http.StatusOK, gin.H{"shippingRates": rates})
	}
}

// recordVisitHandler bumps the daily visit counter. Failures are logged and
// swallowed: analytics must never break the storefront.
func recordVisitHandler(repo visitrepo.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.Increment(c.Request.Context()); err != nil {
			logger.Printf("visit increment error=%v", err)
		}
		c.Status(http.StatusNoContent)
	}
}
