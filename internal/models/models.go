package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID         int64     `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone,omitempty"`
	Language   string    `json:"language,omitempty"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Version    int       `json:"version"`
}

type Category struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name" validate:"required,max=128"`
	NameRu        string    `json:"name_ru" validate:"required,max=128"`
	Description   string    `json:"description" validate:"max=1024"`
	DescriptionRu *string   `json:"description_ru,omitempty" validate:"omitempty,max=1024"`
	CreatedAt     time.Time `json:"created_at"`
}

type Product struct {
	ID            int64           `json:"id"`
	CategoryID    int64           `json:"category_id" validate:"required,gt=0"`
	Name          string          `json:"name" validate:"required,max=128"`
	NameRu        string          `json:"name_ru" validate:"required,max=128"`
	Description   string          `json:"description" validate:"max=1024"`
	DescriptionRu *string         `json:"description_ru,omitempty" validate:"omitempty,max=1024"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url" validate:"required,url"`
	Stock         int             `json:"stock" validate:"gte=0"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// CartItem is unique per (UserID, ProductID). Product is populated on reads.
type CartItem struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
	Product   *Product  `json:"product,omitempty"`
}

type Order struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	OrderNumber string          `json:"order_number"`
	Status      OrderStatus     `json:"status"`
	PaymentType *PaymentType    `json:"payment_type,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
	Items       []OrderItem     `json:"items,omitempty"`
}

// OrderItem is a snapshot of the product at order creation time.
type OrderItem struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Delivery struct {
	ID             int64          `json:"id"`
	OrderID        int64          `json:"order_id"`
	Latitude       float64        `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64        `json:"longitude" validate:"gte=-180,lte=180"`
	AddressDetails string         `json:"address_details" validate:"max=512"`
	CourierName    *string        `json:"courier_name,omitempty"`
	CourierPhone   *string        `json:"courier_phone,omitempty"`
	DeliveryDate   *time.Time     `json:"delivery_date,omitempty"`
	Status         DeliveryStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type Feedback struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Rating    int       `json:"rating" validate:"min=1,max=5"`
	Comment   string    `json:"comment" validate:"max=1024"`
	CreatedAt time.Time `json:"created_at"`
}

type Promocode struct {
	ID              int64     `json:"id"`
	Code            string    `json:"code" validate:"required,alphanum,max=64"`
	DiscountPercent int       `json:"discount_percent" validate:"min=1,max=100"`
	ValidTill       time.Time `json:"valid_till"`
	CreatedAt       time.Time `json:"created_at"`
}

// Expired reports whether the code can no longer be applied at now.
func (p *Promocode) Expired(now time.Time) bool {
	return now.After(p.ValidTill)
}

// OrderStats totals exclude cancelled orders; ByStatus counts every order.
type OrderStats struct {
	TotalOrders int64                 `json:"total_orders"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	ByStatus    map[OrderStatus]int64 `json:"by_status"`
}

type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusInTransit DeliveryStatus = "in_transit"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusCancelled DeliveryStatus = "cancelled"
)

func ParseDeliveryStatus(s string) (DeliveryStatus, bool) {
	switch status := DeliveryStatus(s); status {
	case DeliveryStatusPending, DeliveryStatusInTransit, DeliveryStatusDelivered, DeliveryStatusCancelled:
		return status, true
	}
	return "", false
}

type PaymentType string

const (
	PaymentTypeClick PaymentType = "click"
	PaymentTypePayme PaymentType = "payme"
)

// PaymentTypes lists the recognized payment types in display order.
var PaymentTypes = []PaymentType{PaymentTypeClick, PaymentTypePayme}

func ParsePaymentType(s string) (PaymentType, bool) {
	for _, pt := range PaymentTypes {
		if string(pt) == s {
			return pt, true
		}
	}
	return "", false
}
