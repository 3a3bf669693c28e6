package domain

// Product Model
type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`                 // Primary key
	ProductName string  `gorm:"size:50;not null" json:"product_name"` // Product name, max 50 chars
	Price       float64 `gorm:"not null" json:"price"`                // Unit price
	Orders      []Order `gorm:"many2many:order_products" json:"-"`    // Orders containing this product, never serialized
}
