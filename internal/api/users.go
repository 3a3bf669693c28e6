package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/Cam96stanley/e-com-api/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// UserInput represents the writable fields of a user
type UserInput struct {
	Name    string `json:"name" binding:"required,max=30"`        // Full name, max 30 chars
	Address string `json:"address" binding:"required,max=100"`    // Mailing address, max 100 chars
	Email   string `json:"email" binding:"required,email,max=50"` // Email address, unique across users
}

// ListUsersHandler returns all users
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := []domain.User{} // Empty slice so an empty table serializes as []
		if err := db.Find(&users).Error; err != nil {
			respondMessage(c, http.StatusInternalServerError, "Failed to fetch users")
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GetUserHandler returns a single user by id
func GetUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		var user domain.User
		if err := db.First(&user, id).Error; err != nil {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// CreateUserHandler creates a new user
func CreateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UserInput
		// Validate request body
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindingError(c, err)
			return
		}
		user := domain.User{Name: input.Name, Address: input.Address, Email: input.Email}
		if err := db.Create(&user).Error; err != nil {
			// Duplicate email violates the unique constraint
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"email": []string{"Email must be unique."}})
				return
			}
			logrus.WithFields(logrus.Fields{
				"email": input.Email,
				"error": err.Error(),
			}).Error("Failed to create user")
			respondMessage(c, http.StatusInternalServerError, "Failed to create user")
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("User created")
		c.JSON(http.StatusCreated, user)
	}
}

// UpdateUserHandler replaces the mutable fields of a user
func UpdateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		var user domain.User
		if err := db.First(&user, id).Error; err != nil {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		var input UserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindingError(c, err)
			return
		}
		// Full replace of the mutable fields
		user.Name = input.Name
		user.Address = input.Address
		user.Email = input.Email
		if err := db.Save(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"email": []string{"Email must be unique."}})
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Error("Failed to update user")
			respondMessage(c, http.StatusInternalServerError, "Failed to update user")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DeleteUserHandler deletes a user together with their orders and those
// orders' association rows
func DeleteUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		var user domain.User
		if err := db.First(&user, id).Error; err != nil {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		// Cascade: association rows first, then orders, then the user
		err := db.Transaction(func(tx *gorm.DB) error {
			orderIDs := tx.Model(&domain.Order{}).Select("id").Where("user_id = ?", user.ID)
			if err := tx.Where("order_id IN (?)", orderIDs).Delete(&domain.OrderProduct{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", user.ID).Delete(&domain.Order{}).Error; err != nil {
				return err
			}
			return tx.Delete(&user).Error
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Error("Failed to delete user")
			respondMessage(c, http.StatusInternalServerError, "Failed to delete user")
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("User deleted")
		respondMessage(c, http.StatusOK, "Succesfully deleted user "+strconv.Itoa(int(user.ID)))
	}
}
