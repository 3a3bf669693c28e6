package domain

// User Model
type User struct {
	ID      uint    `gorm:"primaryKey" json:"id"`                 // Primary key
	Name    string  `gorm:"size:30;not null" json:"name"`         // Full name, max 30 chars
	Address string  `gorm:"size:100;not null" json:"address"`     // Mailing address, max 100 chars
	Email   string  `gorm:"size:50;unique;not null" json:"email"` // Unique email, max 50 chars
	Orders  []Order `json:"-"`                                    // One-to-many relationship with Order, never serialized
}
