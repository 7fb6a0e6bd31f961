package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers the API documentation endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>florist-api - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "florist-api", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Created": { "type": "object", "properties": { "id": { "type": "string" } } },
      "Error": { "type": "object", "properties": { "error": { "type": "string" } } },
      "ValidationError": { "type": "object", "properties": { "error": { "type": "string" }, "fields": { "type": "array", "items": { "type": "object", "properties": { "field": { "type": "string" }, "reason": { "type": "string" } } } } } },
      "Product": {
        "type": "object",
        "required": ["title", "price", "category"],
        "properties": {
          "id": { "type": "string", "readOnly": true },
          "title": { "type": "string" },
          "description": { "type": "string" },
          "price": { "type": "number", "minimum": 0 },
          "category": { "type": "string" },
          "image_url": { "type": "string" },
          "tags": { "type": "array", "items": { "type": "string" } },
          "in_stock": { "type": "boolean", "default": true },
          "sku": { "type": "string" },
          "stock_qty": { "type": "integer", "minimum": 0 },
          "created_at": { "type": "string", "format": "date-time", "readOnly": true },
          "updated_at": { "type": "string", "format": "date-time", "readOnly": true }
        }
      },
      "OrderItem": {
        "type": "object",
        "required": ["product_id", "title", "price", "quantity"],
        "properties": {
          "product_id": { "type": "string" },
          "title": { "type": "string" },
          "price": { "type": "number", "minimum": 0 },
          "quantity": { "type": "integer", "minimum": 1 },
          "image_url": { "type": "string" }
        }
      },
      "CustomerInfo": {
        "type": "object",
        "required": ["name", "email", "address_line1", "city", "state", "postal_code"],
        "properties": {
          "name": { "type": "string" },
          "email": { "type": "string" },
          "phone": { "type": "string" },
          "address_line1": { "type": "string" },
          "address_line2": { "type": "string" },
          "city": { "type": "string" },
          "state": { "type": "string" },
          "postal_code": { "type": "string" }
        }
      },
      "Order": {
        "type": "object",
        "required": ["items", "customer", "subtotal", "total"],
        "properties": {
          "id": { "type": "string", "readOnly": true },
          "items": { "type": "array", "items": { "$ref": "#/components/schemas/OrderItem" } },
          "customer": { "$ref": "#/components/schemas/CustomerInfo" },
          "notes": { "type": "string" },
          "status": { "type": "string", "default": "pending" },
          "subtotal": { "type": "number", "minimum": 0 },
          "delivery_fee": { "type": "number", "minimum": 0, "default": 0 },
          "total": { "type": "number", "minimum": 0 },
          "created_at": { "type": "string", "format": "date-time", "readOnly": true },
          "updated_at": { "type": "string", "format": "date-time", "readOnly": true }
        }
      }
    }
  },
  "paths": {
    "/": { "get": { "summary": "Liveness message", "responses": { "200": { "description": "running" } } } },
    "/test": { "get": { "summary": "Database diagnostics", "responses": { "200": { "description": "diagnostics snapshot" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "database unavailable" } } } },
    "/api/products": {
      "get": {
        "summary": "List products",
        "parameters": [
          { "name": "category", "in": "query", "schema": { "type": "string" } },
          { "name": "q", "in": "query", "description": "case-insensitive substring of title, description or tags", "schema": { "type": "string" } },
          { "name": "limit", "in": "query", "schema": { "type": "integer", "minimum": 0, "default": 100 } }
        ],
        "responses": {
          "200": { "description": "products", "content": { "application/json": { "schema": { "type": "array", "items": { "$ref": "#/components/schemas/Product" } } } } },
          "422": { "description": "invalid query", "content": { "application/json": { "schema": { "$ref": "#/components/schemas/ValidationError" } } } },
          "500": { "description": "store error", "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Error" } } } }
        }
      },
      "post": {
        "summary": "Create a product",
        "requestBody": { "required": true, "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Product" } } } },
        "responses": {
          "200": { "description": "created", "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Created" } } } },
          "400": { "description": "malformed JSON" },
          "422": { "description": "validation failed", "content": { "application/json": { "schema": { "$ref": "#/components/schemas/ValidationError" } } } },
          "500": { "description": "store error", "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Error" } } } }
        }
      }
    },
    "/api/orders": {
      "get": {
        "summary": "List orders",
        "parameters": [ { "name": "limit", "in": "query", "schema": { "type": "integer", "minimum": 0, "default": 50 } } ],
        "responses": {
          "200": { "description": "orders", "content": { "application/json": { "schema": { "type": "array", "items": { "$ref": "#/components/schemas/Order" } } } } },
          "422": { "description": "invalid query" },
          "500": { "description": "store error" }
        }
      },
      "post": {
        "summary": "Create an order",
        "requestBody": { "required": true, "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Order" } } } },
        "responses": {
          "200": { "description": "created", "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Created" } } } },
          "400": { "description": "malformed JSON" },
          "422": { "description": "validation failed" },
          "500": { "description": "store error" }
        }
      }
    },
    "/api/uploads": {
      "post": {
        "summary": "Upload a product image (only when object storage is configured)",
        "requestBody": { "content": { "multipart/form-data": { "schema": { "type": "object", "properties": { "file": { "type": "string", "format": "binary" } } } } } },
        "responses": {
          "200": { "description": "stored", "content": { "application/json": { "schema": { "type": "object", "properties": { "key": { "type": "string" }, "url": { "type": "string" } } } } } },
          "400": { "description": "missing file" },
          "413": { "description": "larger than 5 MiB" },
          "415": { "description": "not a jpeg, png, webp or gif image" },
          "500": { "description": "storage error" }
        }
      }
    }
  }
}`
