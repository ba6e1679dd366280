// Package notify adapts core/notify.Notifier onto an MQTT broker via
// eclipse/paho.mqtt.golang. Unlike a dispatch channel, publishing a run
// summary never waits for an acknowledgement from a subscriber: it is a
// fire-and-forget announcement.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	corelogger "github.com/chrissuu/elastisched/core/logger"
	"github.com/chrissuu/elastisched/core/notify"
)

// Client publishes run summaries to a fixed MQTT topic.
type Client struct {
	client mqtt.Client
	topic  string
	log    corelogger.Logger
}

// Config configures a Client.
type Config struct {
	Broker   string
	ClientID string
	Topic    string
}

// NewClient connects to Config.Broker and returns a Client ready to publish
// to Config.Topic.
func NewClient(cfg Config, log corelogger.Logger) (*Client, error) {
	opts := mqtt.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.SetConnectTimeout(5 * time.Second)

	c := mqtt.NewClient(opts)
	token := c.Connect()
	if !token.WaitTimeout(5*time.Second) || token.Error() != nil {
		if err := token.Error(); err != nil {
			return nil, fmt.Errorf("notify: connect to %s: %w", cfg.Broker, err)
		}
		return nil, fmt.Errorf("notify: connect to %s: timed out", cfg.Broker)
	}
	return &Client{client: c, topic: cfg.Topic, log: log}, nil
}

// Notify publishes summary as JSON to the client's topic. It does not wait
// for a subscriber to acknowledge receipt.
func (c *Client) Notify(ctx context.Context, summary notify.Summary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("notify: marshal summary: %w", err)
	}
	token := c.client.Publish(c.topic, 0, false, payload)
	go func() {
		if token.WaitTimeout(5*time.Second) && token.Error() != nil && c.log != nil {
			c.log.Warnf("notify: publish to %s failed: %v", c.topic, token.Error())
		}
	}()
	return nil
}

// Close disconnects from the broker.
func (c *Client) Close() {
	c.client.Disconnect(250)
}
