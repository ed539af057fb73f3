package httpserver

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"henawys-art/internal/domain"
)

const (
	headerSessionID = "X-Session-ID"
	headerAPIKey    = "X-API-Key"
)

// sessionRequired rejects cart and checkout requests without the client's
// session id header.
func sessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := strings.TrimSpace(c.GetHeader(headerSessionID))
		if sid == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing " + headerSessionID + " header"})
			return
		}
		c.Set("sessionID", sid)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString("sessionID")
}

// apiKeyRequired guards the admin dashboard routes. An empty configured key
// disables the whole admin surface.
func apiKeyRequired(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" || subtle.ConstantTimeCompare([]byte(c.GetHeader(headerAPIKey)), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
			return
		}
		c.Next()
	}
}

// respondError maps service errors onto HTTP statuses. Coupon rejections
// are client-correctable, so they come back as 422 with the reason.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case isCouponError(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func isCouponError(err error) bool {
	for _, target := range []error{
		domain.ErrCouponInactive,
		domain.ErrCouponScope,
		domain.ErrCouponCategory,
		domain.ErrCouponMinOrder,
		domain.ErrCouponExhausted,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
