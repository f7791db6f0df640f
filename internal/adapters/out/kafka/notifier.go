// Package kafka publishes order notifications to Kafka topics. Downstream
// consumers (email sender, ops dashboard) pick the events up from there,
// so "notifying" from this service's point of view means a successful
// publish.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"foodorder/internal/core/domain/model/order"
)

// orderConfirmedEvent is the payload published for customers.
type orderConfirmedEvent struct {
	OrderID           string    `json:"orderId"`
	OrderNumber       string    `json:"orderNumber"`
	Email             string    `json:"email"`
	RestaurantName    string    `json:"restaurantName"`
	TotalAmount       string    `json:"totalAmount"`
	Status            string    `json:"status"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// adminOrderEvent is the payload published for operations staff.
type adminOrderEvent struct {
	OrderID        string `json:"orderId"`
	OrderNumber    string `json:"orderNumber"`
	RestaurantID   string `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
	TotalAmount    string `json:"totalAmount"`
	PaymentMethod  string `json:"paymentMethod"`
	DeliveryType   string `json:"deliveryType"`
}

// Notifier implements ports.Notifier on top of two Kafka topics. Messages
// are keyed by order number so per-order events stay in one partition.
type Notifier struct {
	customerWriter *kafka.Writer
	adminWriter    *kafka.Writer
}

// NewNotifier creates a notifier publishing to the given broker and topics.
func NewNotifier(brokerAddr, customerTopic, adminTopic string) *Notifier {
	return &Notifier{
		customerWriter: newWriter(brokerAddr, customerTopic),
		adminWriter:    newWriter(brokerAddr, adminTopic),
	}
}

func newWriter(brokerAddr, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokerAddr),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
}

// NotifyOrderConfirmed publishes the customer confirmation event.
func (n *Notifier) NotifyOrderConfirmed(ctx context.Context, aggregate *order.Order) error {
	event := orderConfirmedEvent{
		OrderID:           aggregate.ID().String(),
		OrderNumber:       aggregate.OrderNumber().String(),
		Email:             aggregate.NotificationEmail(),
		RestaurantName:    aggregate.RestaurantName(),
		TotalAmount:       aggregate.TotalAmount().String(),
		Status:            aggregate.Status().String(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
	}

	return n.publish(ctx, n.customerWriter, aggregate.OrderNumber().String(), event)
}

// NotifyAdmin publishes the ops event for a new order.
func (n *Notifier) NotifyAdmin(ctx context.Context, aggregate *order.Order) error {
	event := adminOrderEvent{
		OrderID:        aggregate.ID().String(),
		OrderNumber:    aggregate.OrderNumber().String(),
		RestaurantID:   aggregate.RestaurantID().String(),
		RestaurantName: aggregate.RestaurantName(),
		TotalAmount:    aggregate.TotalAmount().String(),
		PaymentMethod:  aggregate.PaymentMethod().String(),
		DeliveryType:   aggregate.DeliveryType().String(),
	}

	return n.publish(ctx, n.adminWriter, aggregate.OrderNumber().String(), event)
}

func (n *Notifier) publish(ctx context.Context, writer *kafka.Writer, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}

// Close closes both underlying writers.
func (n *Notifier) Close() error {
	customerErr := n.customerWriter.Close()
	adminErr := n.adminWriter.Close()
	if customerErr != nil {
		return customerErr
	}
	return adminErr
}
