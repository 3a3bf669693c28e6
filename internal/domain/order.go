package domain

import "time"

// Order Model
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`              // Primary key
	OrderDate time.Time `gorm:"not null" json:"order_date"`        // Server-assigned creation time in UTC, immutable
	UserID    uint      `gorm:"not null" json:"user_id"`           // Foreign key to User
	Products  []Product `gorm:"many2many:order_products" json:"-"` // Distinct products on this order, never serialized
}

// OrderProduct is the order↔product association row.
// The composite primary key guarantees at most one linkage per pair.
type OrderProduct struct {
	OrderID   uint `gorm:"primaryKey"` // Foreign key to Order
	ProductID uint `gorm:"primaryKey"` // Foreign key to Product
}
