package bus

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// connectTimeout bounds how long Connect blocks a startup path; past this
// the bus client gives up and reports an error rather than hanging the
// process.
const connectTimeout = 5 * time.Second

// MessageHandler processes one message delivered on a subscribed topic.
type MessageHandler func(topic string, payload []byte)

// Config is everything needed to reach a broker and address this
// harness's topic namespace.
type Config struct {
	Host     string
	Port     int
	BaseTopic string
	ClientID string
	Username string
	Password string
}

// Client is a thin wrapper over paho.mqtt.golang adding this harness's
// connect-timeout, last-will, and topic-namespace defaults.
type Client struct {
	mq     mqtt.Client
	topics Topics
	log    zerolog.Logger
}

// NewClient connects to the configured broker, registering "offline" as the
// last-will on the status topic so an ungraceful disconnect is still
// observed by anything subscribed to it. Connect blocks at most
// connectTimeout before returning an error.
func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	topics := NewTopics(cfg.BaseTopic)
	log = log.With().Str("component", "bus").Logger()

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "pkmbridge-" + uuid.NewString()[:10]
	}

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.Host, cfg.Port)).
		SetClientID(clientID).
		SetConnectTimeout(connectTimeout).
		SetWill(topics.Status(), "offline", 1, true).
		SetOnConnectHandler(func(mqtt.Client) {
			log.Info().Msg("connected to broker")
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Warn().Err(err).Msg("lost connection to broker")
		})
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	mq := mqtt.NewClient(opts)
	token := mq.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, &TransportError{Op: fmt.Sprintf("connect to %s:%d", cfg.Host, cfg.Port), Err: fmt.Errorf("timed out after %s", connectTimeout)}
	}
	if err := token.Error(); err != nil {
		return nil, &TransportError{Op: fmt.Sprintf("connect to %s:%d", cfg.Host, cfg.Port), Err: err}
	}

	return &Client{mq: mq, topics: topics, log: log}, nil
}

// Topics exposes the resolved topic names for this client's base topic.
func (c *Client) Topics() Topics { return c.topics }

// Publish is best-effort and never blocks the caller beyond handing the
// message to the underlying client's internal queue.
func (c *Client) Publish(topic string, payload []byte, qos byte, retain bool) {
	c.mq.Publish(topic, qos, retain, payload)
}

// Subscribe registers handler for topic. Message callbacks from the
// underlying transport run on its own goroutine; handler must not block or
// touch the emulator directly - only parse, validate, and hand off.
func (c *Client) Subscribe(topic string, handler MessageHandler) error {
	token := c.mq.Subscribe(topic, 1, func(_ mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	token.Wait()
	return token.Error()
}

// Disconnect quiesces the underlying client. quiesce bounds how long
// in-flight messages get to drain before the connection is torn down.
func (c *Client) Disconnect(quiesce time.Duration) {
	c.mq.Disconnect(uint(quiesce.Milliseconds()))
}
