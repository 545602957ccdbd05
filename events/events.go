// Package events fans completed collection operations out to RabbitMQ.
// Publication is best-effort: callers check Configured and treat publish
// failures as non-fatal.
package events

import (
	"context"
	"fmt"
	"maps"
	"net"
	"os"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange receiving completed collection operations.
const Exchange = "marketing.collection"

// Configured reports whether the RabbitMQ fan-out is enabled for this
// deployment.
func Configured() bool {
	return os.Getenv("RABBITMQ_HOST") != "" &&
		os.Getenv("RABBITMQ_USER") != "" &&
		os.Getenv("RABBITMQ_PASSWORD") != ""
}

// Publish sends one persistent JSON message to the collection exchange and
// closes the connection.
func Publish(ctx context.Context, routingKey string, body []byte, headers amqp.Table) error {
	rHost := os.Getenv("RABBITMQ_HOST")
	rUser := os.Getenv("RABBITMQ_USER")
	rPass := os.Getenv("RABBITMQ_PASSWORD")
	if !(rHost != "" && rUser != "" && rPass != "") {
		return fmt.Errorf("invalid or incomplete RabbitMQ environment variables")
	}

	rUrl := fmt.Sprintf("amqp://%s:%s@%s", rUser, rPass, rHost)
	config := amqp.Config{
		Dial: func(network, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(ctx, network, addr)
		},
	}
	conn, err := amqp.DialConfig(rUrl, config)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ:\n>>> %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open a channel to RabbitMQ:\n>>> %w", err)
	}
	defer ch.Close()

	allHeaders := amqp.Table{}
	maps.Copy(allHeaders, headers)

	err = ch.PublishWithContext(ctx, Exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Headers:      allHeaders,
	})
	if err != nil {
		return fmt.Errorf("failed to publish a message to RabbitMQ:\n>>> %w", err)
	}

	return nil
}
