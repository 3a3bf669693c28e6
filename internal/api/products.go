package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/Cam96stanley/e-com-api/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ProductInput represents the writable fields of a product.
// Price is a pointer so a legitimate zero price still satisfies required.
type ProductInput struct {
	ProductName string   `json:"product_name" binding:"required,max=50"` // Product name, max 50 chars
	Price       *float64 `json:"price" binding:"required,gte=0"`         // Unit price, non-negative
}

// ListProductsHandler returns all products
func ListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := []domain.Product{} // Empty slice so an empty table serializes as []
		if err := db.Find(&products).Error; err != nil {
			respondMessage(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductHandler returns a single product by id
func GetProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			respondMessage(c, http.StatusNotFound, "Product not found")
			return
		}
		var product domain.Product
		if err := db.First(&product, id).Error; err != nil {
			respondMessage(c, http.StatusNotFound, "Product not found")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// CreateProductHandler creates a new product
func CreateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindingError(c, err)
			return
		}
		product := domain.Product{ProductName: input.ProductName, Price: *input.Price}
		if err := db.Create(&product).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"product_name": input.ProductName,
				"error":        err.Error(),
			}).Error("Failed to create product")
			respondMessage(c, http.StatusInternalServerError, "Failed to create product")
			return
		}
		logrus.WithFields(logrus.Fields{"product_id": product.ID}).Info("Product created")
		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProductHandler replaces the mutable fields of a product
func UpdateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			respondMessage(c, http.StatusNotFound, "Product not found")
			return
		}
		var product domain.Product
		if err := db.First(&product, id).Error; err != nil {
			respondMessage(c, http.StatusNotFound, "Product not found")
			return
		}
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindingError(c, err)
			return
		}
		product.ProductName = input.ProductName
		product.Price = *input.Price
		if err := db.Save(&product).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"product_id": product.ID,
				"error":      err.Error(),
			}).Error("Failed to update product")
			respondMessage(c, http.StatusInternalServerError, "Failed to update product")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProductHandler deletes a product together with any association rows
// still referencing it
func DeleteProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			respondMessage(c, http.StatusNotFound, "Product not found")
			return
		}
		var product domain.Product
		if err := db.First(&product, id).Error; err != nil {
			respondMessage(c, http.StatusNotFound, "Product not found")
			return
		}
		// Cascade: drop the product from every order before removing it
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).Delete(&domain.OrderProduct{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"product_id": product.ID,
				"error":      err.Error(),
			}).Error("Failed to delete product")
			respondMessage(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}
		logrus.WithFields(logrus.Fields{"product_id": product.ID}).Info("Product deleted")
		respondMessage(c, http.StatusOK, "Succesfully deleted product "+strconv.Itoa(int(product.ID)))
	}
}
