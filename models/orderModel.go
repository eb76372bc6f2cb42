package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "DELIVERY"
	DeliveryTypePickup   DeliveryType = "PICKUP"
)

// ToDeliveryType matches exactly, no case folding: the storefront always
// sends the uppercase value.
func ToDeliveryType(s string) (DeliveryType, error) {
	switch DeliveryType(s) {
	case DeliveryTypeDelivery, DeliveryTypePickup:
		return DeliveryType(s), nil
	}
	return "", errors.New("invalid delivery type")
}

type PaymentMethod string

const (
	PaymentMethodQR   PaymentMethod = "QR"
	PaymentMethodCash PaymentMethod = "CASH"
)

func ToPaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodQR, PaymentMethodCash:
		return PaymentMethod(s), nil
	}
	return "", errors.New("invalid payment method")
}

// Order is the persisted header of a sale. Totals are computed server-side
// at creation and never recomputed; only Status changes afterwards.
type Order struct {
	ID            string          `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Status        OrderStatus     `json:"status" gorm:"size:16"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	DeliveryType  DeliveryType    `json:"deliveryType" gorm:"size:16"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee" gorm:"type:decimal(10,2)"`
	Address       *string         `json:"address"`
	AddressNote   *string         `json:"addressNote"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" gorm:"size:16"`
	Subtotal      decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2)"`
	Total         decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	Items         []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots the product name and price at order time, so a sale
// record keeps reflecting what the customer was charged even after the
// catalog changes or the product is deleted.
type OrderItem struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	OrderID      string          `json:"orderId" gorm:"size:36;index"`
	ProductID    uint            `json:"productId"`
	Quantity     int             `json:"qty"`
	UnitPrice    decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2)"`
	NameSnapshot string          `json:"nameSnap"`
}
