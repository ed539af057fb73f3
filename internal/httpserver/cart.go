package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"henawys-art/internal/domain"
	cartsvc "henawys-art/internal/service/cart"
	checkoutsvc "henawys-art/internal/service/checkout"
)

func listCartItemsHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Items(c.Request.Context(), sessionID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		if items == nil {
			items = []domain.CartItem{}
		}
		var total int64
		for _, item := range items {
			total += item.Pricing.FinalPriceCents
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "subtotalCents": total})
	}
}

func addCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.AddItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		item, err := svc.AddItem(c.Request.Context(), sessionID(c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func removeCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RemoveItem(c.Request.Context(), sessionID(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func clearCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), sessionID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func getCustomerHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := svc.Customer(c.Request.Context(), sessionID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

func updateCustomerHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch domain.CustomerInfo
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		info, err := svc.UpdateCustomer(c.Request.Context(), sessionID(c), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

func previewCouponHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Code string `json:"code" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code required"})
			return
		}
		preview, err := svc.PreviewCoupon(c.Request.Context(), sessionID(c), in.Code)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, preview)
	}
}

func checkoutHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkoutsvc.SubmitInput
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&in); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
				return
			}
		}
		res, err := svc.Submit(c.Request.Context(), sessionID(c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, res)
	}
}
