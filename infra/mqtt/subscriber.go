package mqtt

import (
	"encoding/json"
	"fmt"
	"strings"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/kilianp07/renewables/core/session"
	"github.com/kilianp07/renewables/infra/logger"
)

// UpdateHandler receives decoded updates with the topic they arrived on.
type UpdateHandler func(topic string, u session.Update)

// PahoSubscriber follows the updates published under a topic prefix.
type PahoSubscriber struct {
	cli    pahoClient
	topic  string
	logger logger.Logger
}

// NewPahoSubscriber connects and subscribes to every scenario topic under
// cfg.TopicPrefix. The subscription is renewed on reconnect.
func NewPahoSubscriber(cfg Config, handle UpdateHandler) (*PahoSubscriber, error) {
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}
	prefix := strings.TrimSuffix(cfg.TopicPrefix, "/")
	if prefix == "" {
		prefix = DefaultTopicPrefix
	}
	log := logger.New("mqtt_subscriber")
	s := &PahoSubscriber{topic: prefix + "/+", logger: log}
	onMessage := UpdateMessageHandler(handle, log)
	opts.OnConnect = func(c paho.Client) {
		log.Infof("MQTT connected, subscribing to %s", s.topic)
		if token := c.Subscribe(s.topic, cfg.QoS, onMessage); token.Wait() && token.Error() != nil {
			log.Errorf("subscribe error: %v", token.Error())
		}
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	s.cli = c
	return s, nil
}

// Topic returns the subscription filter.
func (s *PahoSubscriber) Topic() string { return s.topic }

// Close disconnects from the broker.
func (s *PahoSubscriber) Close() {
	if s.cli != nil && s.cli.IsConnected() {
		s.cli.Disconnect(250)
	}
}

// UpdateMessageHandler decodes update payloads and hands them to handle.
// Malformed payloads are logged and skipped.
func UpdateMessageHandler(handle UpdateHandler, log logger.Logger) paho.MessageHandler {
	return func(_ paho.Client, msg paho.Message) {
		var u session.Update
		if err := json.Unmarshal(msg.Payload(), &u); err != nil {
			log.Errorf("invalid update on %s: %v", msg.Topic(), err)
			return
		}
		handle(msg.Topic(), u)
	}
}

// FormatUpdate renders an update as a single log line.
func FormatUpdate(u session.Update) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s target=%.0f%% current=%.1f%%", u.Year, u.Scenario, u.Target, u.CurrentPercentage)
	for _, o := range u.Outcomes {
		if !o.Found {
			fmt.Fprintf(&b, " %d=n/a", o.Year)
			continue
		}
		fmt.Fprintf(&b, " %d=%.1f%%/%.1f%%", o.Year, o.Point.RenewablePercentage, o.Point.CO2Reduction)
	}
	return b.String()
}
