package bus

// Publisher is the subset of *Client every runtime service needs: enough to
// publish and subscribe by topic name. Depending on this rather than the
// concrete *Client lets tests exercise services against a fake bus.
type Publisher interface {
	Topics() Topics
	Publish(topic string, payload []byte, qos byte, retain bool)
	Subscribe(topic string, handler MessageHandler) error
}

var _ Publisher = (*Client)(nil)
