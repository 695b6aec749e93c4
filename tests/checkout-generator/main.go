package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/handler"

	"github.com/segmentio/kafka-go"
)

var cities = []string{"Dhaka", "Chittagong", "Sylhet", "Khulna"}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateCheckout() handler.CreateOrderRequest {
	items := make([]handler.OrderItem, rand.Intn(3)+1)
	var subtotal float64
	for i := range items {
		price := float64(rand.Intn(9000)+100) / 100
		qty := rand.Intn(3) + 1
		items[i] = handler.OrderItem{
			ProductID: randomString(24),
			Name:      "Item " + randomString(5),
			Price:     price,
			Quantity:  qty,
		}
		subtotal += price * float64(qty)
	}
	tax := subtotal * 0.05
	shipping := float64(rand.Intn(10))

	return handler.CreateOrderRequest{
		Email:     fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
		FirstName: "John",
		LastName:  "Doe",
		Phone:     fmt.Sprintf("+880%09d", rand.Intn(999999999)),
		ShippingAddress: handler.ShippingAddress{
			Address: fmt.Sprintf("House %d, Road %d", rand.Intn(100), rand.Intn(30)),
			City:    cities[rand.Intn(len(cities))],
			ZipCode: fmt.Sprintf("%04d", rand.Intn(9999)),
			Country: "Bangladesh",
		},
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		ShippingCost:  shipping,
		Total:         subtotal + tax + shipping,
		PaymentMethod: "cod",
	}
}

func main() {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "checkout"
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers),
		Topic:                  topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			data, _ := json.Marshal(generateCheckout())
			// every tenth event is broken and should land in the DLQ
			if rand.Intn(10) == 0 {
				data = []byte(`{"email":`)
			}
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Println("failed to publish checkout:", err)
				continue
			}
			log.Println("checkout published")
		case <-ctx.Done():
			return
		}
	}
}
