package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(products productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "Products not found")
			return
		}
		out := make([]productResponse, 0, len(list))
		for _, p := range list {
			out = append(out, toProductResponse(p))
		}
		c.JSON(http.StatusOK, out)
	}
}

func getProductHandler(products productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := products.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Product not found")
			return
		}
		c.JSON(http.StatusOK, toProductResponse(*p))
	}
}

func deleteProductHandler(products productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := products.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err, "Product not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
	}
}
