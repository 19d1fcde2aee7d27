package httpserver

import (
	"net/http"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	ordersvc "github.com/aleksandar-ristic/StarterStore/internal/service/order"
	"github.com/gin-gonic/gin"
)

func createOrderHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order payload"})
			return
		}
		u := currentUser(c)
		o, err := orders.Create(c.Request.Context(), u.ID, in)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, toOrderResponse(*o))
	}
}

func getOrderHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := orders.Get(c.Request.Context(), currentUser(c), c.Param("id"))
		if err != nil {
			respondError(c, err, "Order not found")
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(*o))
	}
}

func myOrdersHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListMine(c.Request.Context(), currentUser(c).ID)
		if err != nil {
			respondError(c, err, "Orders not found")
			return
		}
		out := make([]orderResponse, 0, len(list))
		for _, o := range list {
			out = append(out, toOrderResponse(o))
		}
		c.JSON(http.StatusOK, out)
	}
}

func payOrderHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var result domain.PaymentResult
		if err := c.ShouldBindJSON(&result); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payment result"})
			return
		}
		o, err := orders.Pay(c.Request.Context(), currentUser(c), c.Param("id"), result)
		if err != nil {
			respondError(c, err, "Order not found")
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(*o))
	}
}

func deliverOrderHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := orders.Deliver(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Order not found")
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(*o))
	}
}
