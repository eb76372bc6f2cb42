package models

import (
	"errors"
	"strings"
)

type OrderStatus string

// Every successfully validated order is an immediate sale; there is no
// pending state. Both transitions are allowed so the admin can undo
// mistakes, and re-applying the current status is a no-op.
const (
	OrderStatusSold     OrderStatus = "SOLD"
	OrderStatusCanceled OrderStatus = "CANCELED"
)

var validOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusSold:     {},
	OrderStatusCanceled: {},
}

var ErrInvalidOrderStatus = errors.New("invalid order status")

func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := validOrderStatuses[status]; ok {
		return status, nil
	}
	return "", ErrInvalidOrderStatus
}
