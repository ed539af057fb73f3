package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"henawys-art/internal/domain"
	orderrepo "henawys-art/internal/repository/order"
	ordersvc "henawys-art/internal/service/order"
)

// trackOrdersHandler lets a customer follow their own orders by phone, the
// same predicate the realtime socket filters on.
func trackOrdersHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := strings.TrimSpace(c.Query("phone"))
		if phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone query parameter required"})
			return
		}
		orders, err := svc.ListByPhone(c.Request.Context(), phone)
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func adminListOrdersHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := orderrepo.ListFilter{}
		if status := strings.TrimSpace(c.Query("status")); status != "" {
			s := domain.OrderStatus(status)
			filter.Status = &s
		}
		if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
			filter.Limit = limit
		}
		orders, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func adminGetOrderHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func updateOrderStatusHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
			return
		}
		order, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(in.Status))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
