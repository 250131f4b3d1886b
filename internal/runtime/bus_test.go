package runtime

import (
	"sync"

	"github.com/ernesto/pkmbridge/internal/bus"
)

// fakePublisher is an in-memory bus.Publisher: Publish records every
// message, Subscribe stores the handler so a test can invoke it directly to
// simulate an incoming message.
type fakePublisher struct {
	mu sync.Mutex

	topics     bus.Topics
	published  []publishedMsg
	subscribed map[string]bus.MessageHandler
}

type publishedMsg struct {
	topic   string
	payload []byte
	qos     byte
	retain  bool
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{
		topics:     bus.NewTopics("/pkm"),
		subscribed: make(map[string]bus.MessageHandler),
	}
}

func (p *fakePublisher) Topics() bus.Topics { return p.topics }

func (p *fakePublisher) Publish(topic string, payload []byte, qos byte, retain bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, publishedMsg{topic: topic, payload: payload, qos: qos, retain: retain})
}

func (p *fakePublisher) Subscribe(topic string, handler bus.MessageHandler) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribed[topic] = handler
	return nil
}

func (p *fakePublisher) deliver(topic string, payload []byte) {
	p.mu.Lock()
	handler := p.subscribed[topic]
	p.mu.Unlock()
	if handler != nil {
		handler(topic, payload)
	}
}

func (p *fakePublisher) messages() []publishedMsg {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]publishedMsg, len(p.published))
	copy(out, p.published)
	return out
}
