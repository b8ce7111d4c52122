package models

import (
	"time"
)

const (
	RoleArtisan  = "artisan"
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Order statuses. New orders always start as pending.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// User serves both customers and artisans. The artisan profile columns are
// additive nullable columns added by the ordered migrations in
// internal/migrations, hence the pointer fields.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null"                 json:"name"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
	IsActive     bool   `gorm:"not null"                 json:"isActive"`

	Bio         *string `gorm:"type:text" json:"bio,omitempty"`
	Location    *string `json:"location,omitempty"`
	Specialties *string `gorm:"type:text" json:"specialties,omitempty"`
	Experience  *string `gorm:"type:text" json:"experience,omitempty"`
	ImageURL    *string `gorm:"column:image_url" json:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Product struct {
	ID                   uint    `gorm:"primaryKey;autoIncrement"    json:"id"`
	Name                 string  `gorm:"not null"                    json:"name"`
	Description          string  `gorm:"type:text;not null"          json:"description"`
	Price                float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Category             string  `gorm:"not null;index"              json:"category"`
	ImageURL             string  `gorm:"column:image_url;not null"   json:"imageUrl"`
	CulturalSignificance *string `gorm:"type:text"                   json:"culturalSignificance,omitempty"`
	Materials            *string `json:"materials,omitempty"`
	ArtisanID            uint    `gorm:"not null;index"              json:"artisanId"`
	Stock                uint    `gorm:"not null;default:0"          json:"stock"`
	IsActive             bool    `gorm:"not null"                    json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Order struct {
	ID              uint        `gorm:"primaryKey;autoIncrement"    json:"id"`
	UserID          uint        `gorm:"not null;index"              json:"userId"`
	Items           []OrderItem `gorm:"foreignKey:OrderID"          json:"items"`
	ShippingAddress string      `gorm:"not null"                    json:"shippingAddress"`
	PaymentMethod   string      `gorm:"not null"                    json:"paymentMethod"`
	Status          string      `gorm:"not null"                    json:"status"`
	Total           float64     `gorm:"type:decimal(10,2);not null" json:"total"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey"                  json:"id"`
	OrderID   uint    `gorm:"not null;index"              json:"orderId"`
	ProductID uint    `gorm:"not null"                    json:"productId"`
	Quantity  uint    `gorm:"not null;check:quantity>0"   json:"quantity"`
	UnitPrice float64 `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
}

// ValidOrderStatus reports whether s is one of the five order states.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
