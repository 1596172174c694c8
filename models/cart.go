package models

import "time"

// CartLine is one (user, product) row of unpurchased intent. Uniqueness of the
// pair is enforced by the store: adding an already-carted product increments
// the existing line instead of inserting a second one.
type CartLine struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint    `gorm:"index;not null" json:"user_id"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"` // always >= 1
	AddedAt   time.Time
}
