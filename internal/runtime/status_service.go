package runtime

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ernesto/pkmbridge/internal/bus"
)

// StatusService publishes "online" to the status topic once the runtime is
// up, complementing the bus client's own last-will "offline" registered at
// connect time: together the pair lets anything subscribed to the status
// topic always know whether this harness is reachable.
type StatusService struct {
	client bus.Publisher
	log    zerolog.Logger
}

// NewStatusService returns a service that announces liveness through client.
func NewStatusService(client bus.Publisher, log zerolog.Logger) *StatusService {
	return &StatusService{client: client, log: log.With().Str("component", "status").Logger()}
}

func (s *StatusService) Name() string { return "status" }

func (s *StatusService) Start() error {
	s.client.Publish(s.client.Topics().Status(), []byte("online"), 1, true)
	s.log.Debug().Msg("published online status")
	return nil
}

// Tick has nothing periodic to do; status only changes on start/disconnect.
func (s *StatusService) Tick(now time.Time) error { return nil }

func (s *StatusService) Quit() {}
