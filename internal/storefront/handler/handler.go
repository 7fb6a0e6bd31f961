package handler

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/florist-store/florist-api/internal/storefront"
	"github.com/florist-store/florist-api/internal/storefront/service"
	"github.com/florist-store/florist-api/pkg/logger"
)

// maxErrorLen bounds the error text echoed back to clients on 500s.
const maxErrorLen = 200

type productQuery struct {
	Category string `form:"category" json:"category"`
	Q        string `form:"q" json:"q"`
	Limit    int64  `form:"limit,default=100" json:"limit" binding:"gte=0"`
}

type orderQuery struct {
	Limit int64 `form:"limit,default=50" json:"limit" binding:"gte=0"`
}

// RegisterStorefrontRoutes mounts the product and order endpoints under /api.
func RegisterStorefrontRoutes(r gin.IRouter, svc service.Service) {
	storefront.UseJSONFieldNames()

	api := r.Group("/api")

	api.POST("/products", func(c *gin.Context) {
		var req storefront.ProductRequest
		if !bindBody(c, &req) {
			return
		}
		id, err := svc.CreateProduct(c.Request.Context(), req.Product())
		if err != nil {
			respondStoreError(c, "create product", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	api.GET("/products", func(c *gin.Context) {
		var q productQuery
		if !bindQuery(c, &q) {
			return
		}
		list, err := svc.ListProducts(c.Request.Context(), service.ProductFilter{Category: q.Category, Query: q.Q, Limit: q.Limit})
		if err != nil {
			respondStoreError(c, "list products", err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	api.POST("/orders", func(c *gin.Context) {
		var req storefront.OrderRequest
		if !bindBody(c, &req) {
			return
		}
		id, err := svc.CreateOrder(c.Request.Context(), req.Order())
		if err != nil {
			respondStoreError(c, "create order", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	api.GET("/orders", func(c *gin.Context) {
		var q orderQuery
		if !bindQuery(c, &q) {
			return
		}
		list, err := svc.ListOrders(c.Request.Context(), q.Limit)
		if err != nil {
			respondStoreError(c, "list orders", err)
			return
		}
		c.JSON(http.StatusOK, list)
	})
}

// bindBody decodes and validates a JSON body. Constraint failures answer 422
// with field paths; undecodable bodies answer 400.
func bindBody(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	if ve, ok := storefront.AsValidationError(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": ve.Fields})
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	return false
}

func bindQuery(c *gin.Context, dst any) bool {
	err := c.ShouldBindQuery(dst)
	if err == nil {
		return true
	}
	fields := []storefront.FieldError{{Field: "limit", Reason: "must be a non-negative integer"}}
	if ve, ok := storefront.AsValidationError(err); ok {
		fields = ve.Fields
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": fields})
	return false
}

func respondStoreError(c *gin.Context, op string, err error) {
	logger.Errorf("%s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": truncate(err.Error(), maxErrorLen)})
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
