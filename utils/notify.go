package utils

import (
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/polleria/polleria-api/models"
)

// NotifyNewOrder posts a short summary of a freshly created order to the
// webhook configured via ORDER_WEBHOOK_URL, so the restaurant hears about
// sales right away. Failures are logged and never surfaced to the customer.
func NotifyNewOrder(order models.Order) {
	webhookURL := os.Getenv("ORDER_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}

	resp, err := resty.New().SetTimeout(10 * time.Second).R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"orderId":       order.ID,
			"customerName":  order.CustomerName,
			"customerPhone": order.CustomerPhone,
			"deliveryType":  order.DeliveryType,
			"paymentMethod": order.PaymentMethod,
			"total":         order.Total,
			"itemCount":     len(order.Items),
		}).
		Post(webhookURL)
	if err != nil {
		log.Printf("Order webhook failed for order %s: %v", order.ID, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Order webhook for order %s returned status %d", order.ID, resp.StatusCode())
	}
}
