package controllers

import (
	"fmt"
	"strings"

	"github.com/polleria/polleria-api/models"
	"github.com/shopspring/decimal"
)

// createOrderRequest is the checkout payload. Items deliberately carry no
// price field: the client says what it wants, never what it costs.
type createOrderRequest struct {
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	DeliveryType  string             `json:"deliveryType"`
	DeliveryFee   decimal.Decimal    `json:"deliveryFee"`
	Address       string             `json:"address"`
	AddressNote   string             `json:"addressNote"`
	PaymentMethod string             `json:"paymentMethod"`
	Items         []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	ProductID uint `json:"productId"`
	Qty       int  `json:"qty"`
}

// requestError reports input the caller can fix and resubmit.
type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

func invalidRequest(msg string) error { return &requestError{msg: msg} }

// productNotFoundError fails the whole order when the cart references a
// product absent from the catalog.
type productNotFoundError struct{ productID uint }

func (e *productNotFoundError) Error() string {
	return fmt.Sprintf("product %d does not exist", e.productID)
}

// validateOrderRequest checks everything that can be checked without
// touching the catalog and returns a normalized copy of the request:
// trimmed strings, pickup fee forced to zero, pickup address dropped.
func validateOrderRequest(req createOrderRequest) (createOrderRequest, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return req, invalidRequest("customer name is required")
	}

	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	if req.CustomerPhone == "" {
		return req, invalidRequest("customer phone is required")
	}

	deliveryType, err := models.ToDeliveryType(req.DeliveryType)
	if err != nil {
		return req, invalidRequest("invalid delivery type")
	}

	if _, err := models.ToPaymentMethod(req.PaymentMethod); err != nil {
		return req, invalidRequest("invalid payment method")
	}

	if deliveryType == models.DeliveryTypeDelivery {
		req.Address = strings.TrimSpace(req.Address)
		if req.Address == "" {
			return req, invalidRequest("address is required for delivery")
		}
		req.AddressNote = strings.TrimSpace(req.AddressNote)
		if req.DeliveryFee.IsNegative() {
			return req, invalidRequest("delivery fee cannot be negative")
		}
	} else {
		// The client may have sent a fee anyway; a pickup order never
		// pays one.
		req.DeliveryFee = decimal.Zero
		req.Address = ""
		req.AddressNote = ""
	}

	if len(req.Items) == 0 {
		return req, invalidRequest("cart is empty")
	}

	return req, nil
}

// priceOrder resolves every cart line against the given catalog snapshot
// and builds the order with server-authoritative prices. The request must
// already be validated.
func priceOrder(req createOrderRequest, catalog []models.Product) (models.Order, error) {
	products := make(map[uint]models.Product, len(catalog))
	for _, product := range catalog {
		products[product.ID] = product
	}

	subtotal := decimal.Zero
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		product, ok := products[line.ProductID]
		if !ok {
			return models.Order{}, &productNotFoundError{productID: line.ProductID}
		}

		qty := line.Qty
		if qty < 1 {
			qty = 1 // at least one unit per line
		}

		unitPrice := product.Price.Round(2)
		subtotal = subtotal.Add(unitPrice.Mul(decimal.NewFromInt(int64(qty))))

		items = append(items, models.OrderItem{
			ProductID:    product.ID,
			Quantity:     qty,
			UnitPrice:    unitPrice,
			NameSnapshot: product.Name,
		})
	}
	subtotal = subtotal.Round(2)

	deliveryType := models.DeliveryType(req.DeliveryType)

	fee := decimal.Zero
	var address, addressNote *string
	if deliveryType == models.DeliveryTypeDelivery {
		fee = req.DeliveryFee.Round(2)
		address = &req.Address
		if req.AddressNote != "" {
			addressNote = &req.AddressNote
		}
	}

	return models.Order{
		Status:        models.OrderStatusSold,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		DeliveryType:  deliveryType,
		DeliveryFee:   fee,
		Address:       address,
		AddressNote:   addressNote,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		Subtotal:      subtotal,
		Total:         subtotal.Add(fee),
		Items:         items,
	}, nil
}

// distinctProductIDs keeps the catalog fetch to a single IN query even when
// the cart repeats a product.
func distinctProductIDs(items []orderItemRequest) []uint {
	seen := make(map[uint]struct{}, len(items))
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
