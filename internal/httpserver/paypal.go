package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// paypalConfigHandler exposes the gateway client id so the storefront can
// load the payment SDK. The body is the bare id as a JSON string.
func paypalConfigHandler(clientID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, clientID)
	}
}
