// Package rabbitmq fans order lifecycle events out to the role displays.
// Each staff role gets its own routing key under a topic exchange, so a
// kitchen display binds pos.kitchen.# and never sees juice bar traffic.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"inatpos/internal/core/domain/model/order"
	"inatpos/internal/core/domain/model/staff"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeName is the topic exchange all order events are published to.
const ExchangeName = "pos.events"

// RabbitNotificationPublisher implements NotificationPublisher on top of a
// RabbitMQ topic exchange. Publishing is best-effort: a broker outage must
// never fail the business operation that produced the event.
type RabbitNotificationPublisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger *slog.Logger

	// amqp channels are not safe for concurrent publishing.
	mu sync.Mutex
}

// NewRabbitNotificationPublisher dials the broker and declares the topic
// exchange.
func NewRabbitNotificationPublisher(url string, logger *slog.Logger) (*RabbitNotificationPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &RabbitNotificationPublisher{
		conn:   conn,
		ch:     ch,
		logger: logger,
	}, nil
}

// envelope is the wire format of a notification message.
type envelope struct {
	Event     string      `json:"event"`
	Data      order.Event `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// Publish sends the event to every role that should see it, one message
// per role. The first broker error is returned after all roles were tried;
// callers treat it as advisory.
func (p *RabbitNotificationPublisher) Publish(ctx context.Context, event order.Event) error {
	body, err := json.Marshal(envelope{
		Event:     event.EventName(),
		Data:      event,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		p.logger.Warn("failed to marshal notification",
			"event", event.EventName(),
			"error", err,
		)
		return fmt.Errorf("marshal %s event: %w", event.EventName(), err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for _, role := range rolesFor(event) {
		key := routingKey(role, event.EventName())
		err := p.ch.PublishWithContext(ctx, ExchangeName, key, false, false, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    time.Now().UTC(),
			Body:         body,
		})
		if err != nil {
			p.logger.Warn("failed to publish notification",
				"event", event.EventName(),
				"routing_key", key,
				"error", err,
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// Close releases the channel and connection.
func (p *RabbitNotificationPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

func routingKey(role staff.Role, eventName string) string {
	return fmt.Sprintf("pos.%s.%s", role.String(), eventName)
}

// rolesFor decides which role displays receive the event. The owner sees
// everything; stations only hear about orders that have lines for them;
// waitresses follow status changes so they know when food is ready to
// carry out.
func rolesFor(event order.Event) []staff.Role {
	switch e := event.(type) {
	case order.CreatedEventPayload:
		roles := make([]staff.Role, 0, 3)
		if e.KitchenStatus != nil {
			roles = append(roles, staff.RoleKitchen)
		}
		if e.JuicebarStatus != nil {
			roles = append(roles, staff.RoleJuicebar)
		}
		return append(roles, staff.RoleOwner)

	case order.StatusUpdatedEventPayload:
		roles := []staff.Role{staff.RoleWaitress, staff.RoleOwner}
		switch e.Station {
		case order.StationKitchen:
			roles = append(roles, staff.RoleKitchen)
		case order.StationJuicebar:
			roles = append(roles, staff.RoleJuicebar)
		}
		return roles

	case order.CompletedEventPayload:
		return []staff.Role{staff.RoleWaitress, staff.RoleOwner}

	default:
		// Unknown events go to the owner only.
		return []staff.Role{staff.RoleOwner}
	}
}
