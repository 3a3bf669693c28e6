package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Order timestamps

	"github.com/Cam96stanley/e-com-api/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// OrderInput represents an order-creation request.
// order_date is never client-controlled; it is assigned on the server.
type OrderInput struct {
	UserID uint `json:"user_id" binding:"required"` // Owning user
}

// RemoveProductInput identifies the product to detach from an order
type RemoveProductInput struct {
	ProductID uint `json:"product_id" binding:"required"` // Product to remove
}

// ListUserOrdersHandler returns all orders belonging to a user
func ListUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "user_id")
		if !ok {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		var user domain.User
		if err := db.First(&user, userID).Error; err != nil {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		orders := []domain.Order{}
		if err := db.Where("user_id = ?", user.ID).Find(&orders).Error; err != nil {
			respondMessage(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// ListOrderProductsHandler returns all products on an order
func ListOrderProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseID(c, "order_id")
		if !ok {
			respondMessage(c, http.StatusNotFound, "Order not found")
			return
		}
		var order domain.Order
		if err := db.First(&order, orderID).Error; err != nil {
			respondMessage(c, http.StatusNotFound, "Order not found")
			return
		}
		products := []domain.Product{}
		if err := db.Model(&order).Association("Products").Find(&products); err != nil {
			respondMessage(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// CreateOrderHandler creates an order for an existing user.
// The order date is stamped server-side in UTC.
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input OrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindingError(c, err)
			return
		}
		// The foreign key must reference an existing user
		var user domain.User
		if err := db.First(&user, input.UserID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"user_id": []string{"User does not exist."}})
			return
		}
		order := domain.Order{UserID: user.ID, OrderDate: time.Now().UTC()}
		if err := db.Create(&order).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": input.UserID,
				"error":   err.Error(),
			}).Error("Failed to create order")
			respondMessage(c, http.StatusInternalServerError, "Failed to create order")
			return
		}
		logrus.WithFields(logrus.Fields{
			"order_id": order.ID,
			"user_id":  order.UserID,
		}).Info("Order created")
		c.JSON(http.StatusCreated, order)
	}
}

// DeleteOrderHandler deletes an order together with its association rows
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseID(c, "order_id")
		if !ok {
			respondMessage(c, http.StatusNotFound, "Order not found")
			return
		}
		var order domain.Order
		if err := db.First(&order, orderID).Error; err != nil {
			respondMessage(c, http.StatusNotFound, "Order not found")
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&domain.OrderProduct{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"order_id": order.ID,
				"error":    err.Error(),
			}).Error("Failed to delete order")
			respondMessage(c, http.StatusInternalServerError, "Failed to delete order")
			return
		}
		logrus.WithFields(logrus.Fields{"order_id": order.ID}).Info("Order deleted")
		respondMessage(c, http.StatusOK, "Succesfully deleted order "+strconv.Itoa(int(order.ID)))
	}
}

// AddProductHandler attaches a product to an order.
// A product can appear on an order at most once; the association row's
// composite primary key backs the duplicate check under concurrency.
func AddProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, okOrder := parseID(c, "order_id")
		productID, okProduct := parseID(c, "product_id")
		if !okOrder || !okProduct {
			respondMessage(c, http.StatusNotFound, "Order or Product not found")
			return
		}
		var order domain.Order
		var product domain.Product
		if db.First(&order, orderID).Error != nil || db.First(&product, productID).Error != nil {
			respondMessage(c, http.StatusNotFound, "Order or Product not found")
			return
		}
		already := product.ProductName + " is already in order number " + strconv.Itoa(int(order.ID))
		var count int64
		if err := db.Model(&domain.OrderProduct{}).
			Where("order_id = ? AND product_id = ?", order.ID, product.ID).
			Count(&count).Error; err == nil && count > 0 {
			respondMessage(c, http.StatusBadRequest, already)
			return
		}
		link := domain.OrderProduct{OrderID: order.ID, ProductID: product.ID}
		if err := db.Create(&link).Error; err != nil {
			// A concurrent add can still hit the composite key
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				respondMessage(c, http.StatusBadRequest, already)
				return
			}
			logrus.WithFields(logrus.Fields{
				"order_id":   order.ID,
				"product_id": product.ID,
				"error":      err.Error(),
			}).Error("Failed to add product to order")
			respondMessage(c, http.StatusInternalServerError, "Failed to add product to order")
			return
		}
		logrus.WithFields(logrus.Fields{
			"order_id":   order.ID,
			"product_id": product.ID,
		}).Info("Product added to order")
		respondMessage(c, http.StatusOK, product.ProductName+" has been added to order number "+strconv.Itoa(int(order.ID)))
	}
}

// RemoveProductHandler detaches a product from an order.
// Only an existing linkage can be removed.
func RemoveProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseID(c, "order_id")
		if !ok {
			respondMessage(c, http.StatusNotFound, "No order found")
			return
		}
		var order domain.Order
		if err := db.First(&order, orderID).Error; err != nil {
			respondMessage(c, http.StatusNotFound, "No order found")
			return
		}
		var input RemoveProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondMessage(c, http.StatusBadRequest, "Missing product_id in request body")
			return
		}
		var product domain.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			respondMessage(c, http.StatusNotFound, "No product found")
			return
		}
		res := db.Where("order_id = ? AND product_id = ?", order.ID, product.ID).
			Delete(&domain.OrderProduct{})
		if res.Error != nil {
			logrus.WithFields(logrus.Fields{
				"order_id":   order.ID,
				"product_id": product.ID,
				"error":      res.Error.Error(),
			}).Error("Failed to remove product from order")
			respondMessage(c, http.StatusInternalServerError, "Failed to remove product from order")
			return
		}
		// No row deleted means the pair was never linked
		if res.RowsAffected == 0 {
			respondMessage(c, http.StatusBadRequest, "Product not associated with this order")
			return
		}
		logrus.WithFields(logrus.Fields{
			"order_id":   order.ID,
			"product_id": product.ID,
		}).Info("Product removed from order")
		respondMessage(c, http.StatusOK, product.ProductName+" removed from order number "+strconv.Itoa(int(order.ID)))
	}
}
