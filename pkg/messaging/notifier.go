package messaging

import (
	"context"

	"github.com/matst80/gilded-rose/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AmqpNotifier publishes inventory changes to RabbitMQ topic exchanges
// named "<prefix>_<topic>".
type AmqpNotifier struct {
	Prefix     string
	connection *amqp.Connection
}

func NewAmqpNotifier(url, prefix string) (*AmqpNotifier, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Properties: amqp.NewConnectionProperties(),
	})
	if err != nil {
		return nil, err
	}
	n := &AmqpNotifier{
		Prefix:     prefix,
		connection: conn,
	}
	if err := n.defineTopics(); err != nil {
		conn.Close()
		return nil, err
	}
	return n, nil
}

func (n *AmqpNotifier) defineTopics() error {
	ch, err := n.connection.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	for _, topic := range AllTopics {
		if err := DefineTopic(ch, n.Prefix, topic); err != nil {
			return err
		}
	}
	return nil
}

func (n *AmqpNotifier) DayAdvanced(ctx context.Context, event types.DayAdvanced) error {
	return SendChange(ctx, n.connection, n.Prefix, DayAdvancedTopic, event)
}

func (n *AmqpNotifier) InventoryReset(ctx context.Context, event types.InventoryReset) error {
	return SendChange(ctx, n.connection, n.Prefix, InventoryResetTopic, event)
}

// Channel opens a channel for consumers such as ListenToTopic.
func (n *AmqpNotifier) Channel() (*amqp.Channel, error) {
	return n.connection.Channel()
}

func (n *AmqpNotifier) Close() error {
	return n.connection.Close()
}
