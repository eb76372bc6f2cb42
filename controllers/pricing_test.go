package controllers

import (
	"errors"
	"testing"

	"github.com/polleria/polleria-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Combo Clásico", Description: "1/4 pollo + papas + ensalada", Price: decimal.NewFromInt(35), Category: "Combos"},
		{ID: 2, Name: "1/2 Pollo", Description: "Incluye papas y ensalada", Price: decimal.NewFromInt(55), Category: "Pollos"},
		{ID: 3, Name: "Coca-Cola 500ml", Price: decimal.NewFromInt(10), Category: "Bebidas"},
	}
}

func validPickupRequest() createOrderRequest {
	return createOrderRequest{
		CustomerName:  "Maria",
		CustomerPhone: "70000001",
		DeliveryType:  "PICKUP",
		PaymentMethod: "CASH",
		Items:         []orderItemRequest{{ProductID: 1, Qty: 1}},
	}
}

func validDeliveryRequest() createOrderRequest {
	req := validPickupRequest()
	req.DeliveryType = "DELIVERY"
	req.DeliveryFee = decimal.NewFromInt(8)
	req.Address = "Av. Principal 123"
	return req
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func TestValidateOrderRequest(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(req *createOrderRequest)
		wantError string
	}{
		{
			name:   "valid pickup request: ok",
			mutate: func(req *createOrderRequest) {},
		},
		{
			name: "blank customer name: fail",
			mutate: func(req *createOrderRequest) {
				req.CustomerName = "   "
			},
			wantError: "customer name is required",
		},
		{
			name: "blank customer phone: fail",
			mutate: func(req *createOrderRequest) {
				req.CustomerPhone = ""
			},
			wantError: "customer phone is required",
		},
		{
			name: "unknown delivery type: fail",
			mutate: func(req *createOrderRequest) {
				req.DeliveryType = "COURIER"
			},
			wantError: "invalid delivery type",
		},
		{
			name: "lowercase delivery type: fail",
			mutate: func(req *createOrderRequest) {
				req.DeliveryType = "pickup"
			},
			wantError: "invalid delivery type",
		},
		{
			name: "unknown payment method: fail",
			mutate: func(req *createOrderRequest) {
				req.PaymentMethod = "CARD"
			},
			wantError: "invalid payment method",
		},
		{
			name: "delivery without address: fail",
			mutate: func(req *createOrderRequest) {
				req.DeliveryType = "DELIVERY"
				req.DeliveryFee = decimal.NewFromInt(8)
				req.Address = "  "
			},
			wantError: "address is required for delivery",
		},
		{
			name: "delivery with negative fee: fail",
			mutate: func(req *createOrderRequest) {
				req.DeliveryType = "DELIVERY"
				req.Address = "Av. Principal 123"
				req.DeliveryFee = decimal.NewFromInt(-1)
			},
			wantError: "delivery fee cannot be negative",
		},
		{
			name: "empty cart: fail",
			mutate: func(req *createOrderRequest) {
				req.Items = nil
			},
			wantError: "cart is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPickupRequest()
			tt.mutate(&req)

			_, err := validateOrderRequest(req)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateOrderRequest_TrimsFields(t *testing.T) {
	req := validDeliveryRequest()
	req.CustomerName = "  Maria  "
	req.CustomerPhone = " 70000001 "
	req.Address = " Av. Principal 123 "
	req.AddressNote = " portón azul "

	normalized, err := validateOrderRequest(req)
	require.NoError(t, err)

	assert.Equal(t, "Maria", normalized.CustomerName)
	assert.Equal(t, "70000001", normalized.CustomerPhone)
	assert.Equal(t, "Av. Principal 123", normalized.Address)
	assert.Equal(t, "portón azul", normalized.AddressNote)
}

// A pickup order never pays a delivery fee, even when the client claims one.
func TestPriceOrder_PickupIgnoresClientFee(t *testing.T) {
	req := validPickupRequest()
	req.DeliveryFee = decimal.NewFromInt(8)
	req.Items = []orderItemRequest{{ProductID: 1, Qty: 2}}

	req, err := validateOrderRequest(req)
	require.NoError(t, err)

	order, err := priceOrder(req, testCatalog())
	require.NoError(t, err)

	requireDecimal(t, "70", order.Subtotal)
	requireDecimal(t, "0", order.DeliveryFee)
	requireDecimal(t, "70", order.Total)
	assert.Nil(t, order.Address)
	assert.Nil(t, order.AddressNote)
}

func TestPriceOrder_DeliveryAddsFee(t *testing.T) {
	req, err := validateOrderRequest(validDeliveryRequest())
	require.NoError(t, err)

	order, err := priceOrder(req, testCatalog())
	require.NoError(t, err)

	requireDecimal(t, "35", order.Subtotal)
	requireDecimal(t, "8", order.DeliveryFee)
	requireDecimal(t, "43", order.Total)
	require.NotNil(t, order.Address)
	assert.Equal(t, "Av. Principal 123", *order.Address)
}

func TestPriceOrder_UnknownProductFailsWhole(t *testing.T) {
	req := validPickupRequest()
	req.Items = []orderItemRequest{
		{ProductID: 1, Qty: 1},
		{ProductID: 999, Qty: 1},
	}

	req, err := validateOrderRequest(req)
	require.NoError(t, err)

	_, err = priceOrder(req, testCatalog())
	require.EqualError(t, err, "product 999 does not exist")

	var notFound *productNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, uint(999), notFound.productID)
}

func TestPriceOrder_QuantityFlooredToOne(t *testing.T) {
	req := validPickupRequest()
	req.Items = []orderItemRequest{
		{ProductID: 1, Qty: 0},
		{ProductID: 3, Qty: -4},
	}

	req, err := validateOrderRequest(req)
	require.NoError(t, err)

	order, err := priceOrder(req, testCatalog())
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, 1, order.Items[1].Quantity)
	requireDecimal(t, "45", order.Subtotal)
}

// Server-side prices win: the snapshots come from the catalog, and later
// catalog edits must not leak into an already priced order.
func TestPriceOrder_SnapshotsFromCatalog(t *testing.T) {
	catalog := testCatalog()

	req := validPickupRequest()
	req.Items = []orderItemRequest{{ProductID: 2, Qty: 3}}
	req, err := validateOrderRequest(req)
	require.NoError(t, err)

	order, err := priceOrder(req, catalog)
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "1/2 Pollo", order.Items[0].NameSnapshot)
	requireDecimal(t, "55", order.Items[0].UnitPrice)
	requireDecimal(t, "165", order.Subtotal)

	catalog[1].Name = "1/2 Pollo Deluxe"
	catalog[1].Price = decimal.NewFromInt(99)

	assert.Equal(t, "1/2 Pollo", order.Items[0].NameSnapshot)
	requireDecimal(t, "55", order.Items[0].UnitPrice)
}

func TestPriceOrder_RoundsToTwoDecimals(t *testing.T) {
	catalog := []models.Product{
		{ID: 7, Name: "Porción Papas", Price: decimal.RequireFromString("3.555"), Category: "Combos"},
	}

	req := validPickupRequest()
	req.Items = []orderItemRequest{{ProductID: 7, Qty: 2}}
	req, err := validateOrderRequest(req)
	require.NoError(t, err)

	order, err := priceOrder(req, catalog)
	require.NoError(t, err)

	requireDecimal(t, "3.56", order.Items[0].UnitPrice)
	requireDecimal(t, "7.12", order.Subtotal)
	requireDecimal(t, "7.12", order.Total)
}

func TestPriceOrder_DefaultsToSold(t *testing.T) {
	req, err := validateOrderRequest(validPickupRequest())
	require.NoError(t, err)

	order, err := priceOrder(req, testCatalog())
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusSold, order.Status)
}

func TestDistinctProductIDs(t *testing.T) {
	items := []orderItemRequest{
		{ProductID: 1, Qty: 1},
		{ProductID: 2, Qty: 1},
		{ProductID: 1, Qty: 3},
	}

	assert.Equal(t, []uint{1, 2}, distinctProductIDs(items))
}
