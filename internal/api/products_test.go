// products_test.go - Automated tests for the product handlers

package api

import (
	"fmt"     // For path construction
	"testing" // Go's testing package

	"github.com/Cam96stanley/e-com-api/internal/domain" // Domain models

	"github.com/stretchr/testify/assert" // For assertions
)

// TestProductCRUD round-trips a product through create, fetch, update, delete
func TestProductCRUD(t *testing.T) {
	database := setupTestDB(t)
	router := setupRouter(database)

	// --- Create ---
	price := 19.99
	w := doRequest(router, "POST", "/products", ProductInput{ProductName: "Widget", Price: &price})
	assert.Equal(t, 201, w.Code)
	var created domain.Product
	decodeBody(t, w, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Widget", created.ProductName)
	assert.Equal(t, 19.99, created.Price)

	// --- Fetch ---
	w = doRequest(router, "GET", fmt.Sprintf("/products/%d", created.ID), nil)
	assert.Equal(t, 200, w.Code)
	var fetched domain.Product
	decodeBody(t, w, &fetched)
	assert.Equal(t, created, fetched)

	// --- Update ---
	newPrice := 24.5
	w = doRequest(router, "PUT", fmt.Sprintf("/products/%d", created.ID), ProductInput{
		ProductName: "Widget Pro",
		Price:       &newPrice,
	})
	assert.Equal(t, 200, w.Code)
	var updated domain.Product
	decodeBody(t, w, &updated)
	assert.Equal(t, "Widget Pro", updated.ProductName)
	assert.Equal(t, 24.5, updated.Price)

	// --- Delete ---
	w = doRequest(router, "DELETE", fmt.Sprintf("/products/%d", created.ID), nil)
	assert.Equal(t, 200, w.Code)
	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, fmt.Sprintf("Succesfully deleted product %d", created.ID), body["message"])

	w = doRequest(router, "GET", fmt.Sprintf("/products/%d", created.ID), nil)
	assert.Equal(t, 404, w.Code)
}

// TestListProductsEmpty verifies an empty table yields an empty JSON array
func TestListProductsEmpty(t *testing.T) {
	database := setupTestDB(t)
	router := setupRouter(database)

	w := doRequest(router, "GET", "/products", nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

// TestProductValidation covers required fields and the price bounds
func TestProductValidation(t *testing.T) {
	database := setupTestDB(t)
	router := setupRouter(database)

	// Missing everything
	w := doRequest(router, "POST", "/products", map[string]any{})
	assert.Equal(t, 400, w.Code)
	var fields map[string][]string
	decodeBody(t, w, &fields)
	assert.Contains(t, fields, "product_name")
	assert.Contains(t, fields, "price")

	// Negative price
	w = doRequest(router, "POST", "/products", map[string]any{
		"product_name": "Widget",
		"price":        -1.0,
	})
	assert.Equal(t, 400, w.Code)
	decodeBody(t, w, &fields)
	assert.Equal(t, []string{"Must be greater than or equal to 0."}, fields["price"])

	// A zero price is a valid supplied value
	w = doRequest(router, "POST", "/products", map[string]any{
		"product_name": "Freebie",
		"price":        0,
	})
	assert.Equal(t, 201, w.Code)

	// Non-numeric price is a field-level error, not a blanket failure
	w = doRequest(router, "POST", "/products", map[string]any{
		"product_name": "Widget",
		"price":        "cheap",
	})
	assert.Equal(t, 400, w.Code)
	decodeBody(t, w, &fields)
	assert.Contains(t, fields, "price")
}

// TestDeleteProductCascade verifies association rows vanish with the product
func TestDeleteProductCascade(t *testing.T) {
	database := setupTestDB(t)
	router := setupRouter(database)
	user := seedUser(t, database, "Ana", "1 Main St", "ana@x.com")
	product := seedProduct(t, database, "Widget", 9.99)

	w := doRequest(router, "POST", "/orders", OrderInput{UserID: user.ID})
	assert.Equal(t, 201, w.Code)
	var order domain.Order
	decodeBody(t, w, &order)

	w = doRequest(router, "PUT", fmt.Sprintf("/orders/%d/add_product/%d", order.ID, product.ID), nil)
	assert.Equal(t, 200, w.Code)

	// Delete the product while it sits on the order
	w = doRequest(router, "DELETE", fmt.Sprintf("/products/%d", product.ID), nil)
	assert.Equal(t, 200, w.Code)

	// The order survives, its product list is now empty
	w = doRequest(router, "GET", fmt.Sprintf("/orders/%d/products", order.ID), nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

// TestDeleteProductNotFound verifies a missing product cannot be deleted
func TestDeleteProductNotFound(t *testing.T) {
	database := setupTestDB(t)
	router := setupRouter(database)

	w := doRequest(router, "DELETE", "/products/42", nil)
	assert.Equal(t, 404, w.Code)
	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "Product not found", body["message"])
}
