package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/polleria/polleria-api/initializers"
	"github.com/polleria/polleria-api/models"
	"github.com/polleria/polleria-api/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateOrder handles checkout. Prices and totals are recomputed here from
// the live catalog; the header and its item snapshots are written in one
// transaction so a failed order leaves no rows behind.
func CreateOrder(ctx *gin.Context) {
	var req createOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, err := validateOrderRequest(req)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var catalog []models.Product
	if result := initializers.DB.Where("id IN ?", distinctProductIDs(req.Items)).Find(&catalog); result.Error != nil {
		log.Println("Failed to load catalog for order:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Internal error creating order")
		return
	}

	order, err := priceOrder(req, catalog)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}
	order.ID = uuid.NewString()

	items := order.Items
	order.Items = nil

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Println("Failed to create order:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Internal error creating order")
		return
	}

	for i := range items {
		items[i].OrderID = order.ID
		if err := tx.Create(&items[i]).Error; err != nil {
			tx.Rollback()
			log.Println("Failed to create order items:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Internal error creating order")
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Failed to commit order:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Internal error creating order")
		return
	}
	order.Items = items

	go utils.NotifyNewOrder(order)

	ctx.JSON(http.StatusOK, order)
}

func GetOrders(ctx *gin.Context) {
	var orders []models.Order
	result := initializers.DB.Preload("Items").Order("created_at desc").Find(&orders)
	if result.Error != nil {
		log.Println("Failed to fetch orders:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetOrderSummary backs the sales report panel: how many orders were sold
// or canceled and for how much money.
func GetOrderSummary(ctx *gin.Context) {
	var rows []struct {
		Status models.OrderStatus
		Count  int64
		Total  decimal.Decimal
	}

	result := initializers.DB.Model(&models.Order{}).
		Select("status, count(*) as count, coalesce(sum(total), 0) as total").
		Group("status").
		Scan(&rows)
	if result.Error != nil {
		log.Println("Failed to summarize orders:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to summarize orders")
		return
	}

	summary := gin.H{
		"soldCount":     int64(0),
		"canceledCount": int64(0),
		"totalSold":     decimal.Zero,
		"totalCanceled": decimal.Zero,
	}
	for _, row := range rows {
		switch row.Status {
		case models.OrderStatusSold:
			summary["soldCount"] = row.Count
			summary["totalSold"] = row.Total
		case models.OrderStatusCanceled:
			summary["canceledCount"] = row.Count
			summary["totalCanceled"] = row.Total
		}
	}

	sendJSONResponse(ctx, http.StatusOK, summary)
}

// UpdateOrderStatus flips an order between SOLD and CANCELED. Both
// directions are allowed and re-applying the current status succeeds.
func UpdateOrderStatus(ctx *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	status, err := models.ToOrderStatus(body.Status)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	orderId := ctx.Param("id")

	var order models.Order
	if err := initializers.DB.Preload("Items").First(&order, "id = ?", orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Failed to fetch order:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch order")
		}
		return
	}

	if err := initializers.DB.Model(&order).Update("status", status).Error; err != nil {
		log.Println("Failed to update order status:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}
	order.Status = status

	ctx.JSON(http.StatusOK, order)
}

func DeleteOrder(ctx *gin.Context) {
	orderId := ctx.Param("id")

	result := initializers.DB.Delete(&models.Order{}, "id = ?", orderId)
	if result.Error != nil {
		log.Println("Failed to delete order:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}
