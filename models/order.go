package models

import (
	"time"
)

// Order is an immutable purchase snapshot: item prices are captured at order
// time and do not follow later product price changes. The only mutation after
// creation is payment confirmation.
type Order struct {
	Id              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"not null;index" json:"user"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID" json:"orderItems"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	TotalPrice      float64         `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	IsPaid          bool            `json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	PaymentResult   PaymentResult   `gorm:"embedded;embeddedPrefix:payment_" json:"paymentResult"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem is a single line of an order. Price is the unit price at the
// time the order was placed.
type OrderItem struct {
	Id        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `gorm:"not null" json:"product"`
	Qty       int     `gorm:"not null" json:"qty"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

type ShippingAddress struct {
	Address    string `gorm:"size:255" json:"address"`
	City       string `gorm:"size:255" json:"city"`
	PostalCode string `gorm:"size:32" json:"postalCode"`
	Country    string `gorm:"size:255" json:"country"`
}

// PaymentResult mirrors what the payment provider reports back on capture.
type PaymentResult struct {
	Reference    string `gorm:"size:255" json:"id"`
	Status       string `gorm:"size:64" json:"status"`
	UpdateTime   string `gorm:"size:64" json:"update_time"`
	EmailAddress string `gorm:"size:255" json:"email_address"`
}

// LineTotal returns qty times the captured unit price.
func (it OrderItem) LineTotal() float64 {
	return float64(it.Qty) * it.Price
}

// ComputeTotal sums the line totals of the given items.
func ComputeTotal(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}
