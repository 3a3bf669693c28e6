// main_test.go - Shared test setup for the API handlers
// Run with: go test ./...

package api

import (
	"bytes"             // For building request bodies
	"encoding/json"     // For encoding/decoding JSON
	"net/http/httptest" // HTTP test helpers
	"os"                // For exit codes
	"testing"           // Go's testing package

	"github.com/Cam96stanley/e-com-api/internal/db"         // Database setup
	"github.com/Cam96stanley/e-com-api/internal/domain"     // Domain models
	"github.com/Cam96stanley/e-com-api/internal/validation" // Validation setup

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)          // Quiet router output
	logrus.SetLevel(logrus.ErrorLevel) // Quiet handler logging
	validation.Init()                  // Field names in validation errors
	os.Exit(m.Run())
}

// setupTestDB opens a fresh in-memory SQLite database and migrates the schema.
// The database is named after the test so parallel tests stay isolated, and
// shared cache keeps every pooled connection on the same in-memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		t.Fatalf("failed to migrate test DB: %v", err)
	}
	return database
}

// setupRouter returns a Gin engine with all resource routes for testing
func setupRouter(database *gorm.DB) *gin.Engine {
	r := gin.New()

	r.GET("/users", ListUsersHandler(database))
	r.GET("/users/:id", GetUserHandler(database))
	r.POST("/users", CreateUserHandler(database))
	r.PUT("/users/:id", UpdateUserHandler(database))
	r.DELETE("/users/:id", DeleteUserHandler(database))

	r.GET("/products", ListProductsHandler(database))
	r.GET("/products/:id", GetProductHandler(database))
	r.POST("/products", CreateProductHandler(database))
	r.PUT("/products/:id", UpdateProductHandler(database))
	r.DELETE("/products/:id", DeleteProductHandler(database))

	r.GET("/orders/user/:user_id", ListUserOrdersHandler(database))
	r.GET("/orders/:order_id/products", ListOrderProductsHandler(database))
	r.POST("/orders", CreateOrderHandler(database))
	r.DELETE("/orders/:order_id", DeleteOrderHandler(database))
	r.PUT("/orders/:order_id/add_product/:product_id", AddProductHandler(database))
	r.DELETE("/orders/:order_id/remove_product", RemoveProductHandler(database))

	return r
}

// doRequest performs a request against the router and records the response.
// A nil body sends no payload; anything else is marshaled to JSON.
func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorded JSON response into dest
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// seedUser inserts a user directly, bypassing the HTTP layer
func seedUser(t *testing.T, database *gorm.DB, name, address, email string) domain.User {
	t.Helper()
	user := domain.User{Name: name, Address: address, Email: email}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

// seedProduct inserts a product directly, bypassing the HTTP layer
func seedProduct(t *testing.T, database *gorm.DB, name string, price float64) domain.Product {
	t.Helper()
	product := domain.Product{ProductName: name, Price: price}
	if err := database.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}
