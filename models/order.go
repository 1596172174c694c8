package models

import "time"

// Order is the immutable record of a completed purchase. It is created only by
// checkout and never mutated afterwards.
type Order struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint        `gorm:"index;not null" json:"user_id"`
	OrderRef      string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	TotalPrice    float64     `gorm:"not null" json:"total_price"`
	Name          string      `gorm:"not null" json:"name"`
	PhoneNumber   string      `gorm:"not null" json:"phone_number"`
	AddressLine1  string      `gorm:"not null" json:"address_line1"`
	AddressLine2  string      `json:"address_line2"`
	City          string      `gorm:"not null" json:"city"`
	State         string      `gorm:"not null" json:"state"`
	Pincode       string      `gorm:"not null" json:"pincode"`
	Landmark      string      `json:"landmark"`
	PaymentMethod string      `gorm:"not null" json:"payment_method"`
	Lines         []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lines"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderLine snapshots one purchased product. Price is the unit price at
// purchase time, never re-read from the catalog.
type OrderLine struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint    `gorm:"index;not null" json:"order_id"`
	ProductID   uint    `gorm:"not null" json:"product_id"`
	ProductName string  `gorm:"not null" json:"product_name"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Price       float64 `gorm:"not null" json:"price"`
}
