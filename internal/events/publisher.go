package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"espana-clima/internal/config"
)

const (
	lookupsTopic   = "weather/lookups"
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
	disconnectMs   = 1000
)

// WeatherLookup summarises one successful weather query
type WeatherLookup struct {
	Coords    string    `json:"coords"`
	Location  string    `json:"location"`
	Region    string    `json:"region,omitempty"`
	Timezone  string    `json:"timezone,omitempty"`
	TempC     float64   `json:"temp_c"`
	Condition string    `json:"condition"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher sends lookup events to an MQTT broker. A disabled Publisher
// accepts every call and does nothing.
type Publisher struct {
	client      mqtt.Client
	topicPrefix string
	enabled     bool
	logger      *slog.Logger
}

func NewPublisher(cfg config.EventsConfig, logger *slog.Logger) (*Publisher, error) {
	logger = logger.With("component", "events-publisher")
	if !cfg.Enabled {
		return &Publisher{enabled: false, logger: logger}, nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			logger.Warn("MQTT connection lost", "error", err)
		}).
		SetOnConnectHandler(func(c mqtt.Client) {
			logger.Info("MQTT connected", "broker", cfg.Broker)
		})

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		// ConnectRetry keeps trying in the background and queues publishes
		logger.Warn("MQTT broker not reachable yet, retrying in background", "broker", cfg.Broker)
	} else if token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return newPublisherWithClient(client, cfg.TopicPrefix, logger), nil
}

func newPublisherWithClient(client mqtt.Client, topicPrefix string, logger *slog.Logger) *Publisher {
	return &Publisher{
		client:      client,
		topicPrefix: topicPrefix,
		enabled:     true,
		logger:      logger,
	}
}

// PublishLookup queues the event and returns immediately. Delivery failures
// are logged, never returned.
func (p *Publisher) PublishLookup(lookup WeatherLookup) {
	if !p.enabled {
		return
	}

	payload, err := json.Marshal(lookup)
	if err != nil {
		p.logger.Error("failed to marshal lookup event", "error", err)
		return
	}

	topic := p.Topic()
	token := p.client.Publish(topic, 0, false, payload)
	go func() {
		if !token.WaitTimeout(publishTimeout) {
			p.logger.Warn("timed out publishing lookup event", "topic", topic)
			return
		}
		if token.Error() != nil {
			p.logger.Error("failed to publish lookup event", "topic", topic, "error", token.Error())
		}
	}()
}

// Topic is where lookup events are published
func (p *Publisher) Topic() string {
	return fmt.Sprintf("%s/%s", p.topicPrefix, lookupsTopic)
}

func (p *Publisher) Enabled() bool {
	return p.enabled
}

func (p *Publisher) IsConnected() bool {
	if !p.enabled {
		return false
	}
	return p.client.IsConnected()
}

func (p *Publisher) Close() {
	if p.enabled && p.client != nil {
		p.client.Disconnect(disconnectMs)
	}
}
