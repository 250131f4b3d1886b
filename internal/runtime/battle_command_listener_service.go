package runtime

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ernesto/pkmbridge/internal/bus"
)

// BattleCommandListenerService subscribes to the battle-move topic at
// startup and forwards valid commands to whichever scene is currently
// active. It never touches the emulator directly - the bus callback only
// parses, validates, and hands off to the scene's own mutex-protected
// Enqueue.
type BattleCommandListenerService struct {
	client bus.Publisher
	active *ActiveScene
	log    zerolog.Logger
}

// NewBattleCommandListenerService wires a listener over client that
// dispatches to whatever scene active currently points at.
func NewBattleCommandListenerService(client bus.Publisher, active *ActiveScene, log zerolog.Logger) *BattleCommandListenerService {
	return &BattleCommandListenerService{
		client: client,
		active: active,
		log:    log.With().Str("component", "battle_commands").Logger(),
	}
}

func (s *BattleCommandListenerService) Name() string { return "battle_commands" }

func (s *BattleCommandListenerService) Start() error {
	s.log.Debug().Msg("subscribing to battle move commands")
	return s.client.Subscribe(s.client.Topics().BattleMove(), s.onMessage)
}

// Tick is event-driven via onMessage; there is no periodic work.
func (s *BattleCommandListenerService) Tick(now time.Time) error { return nil }

func (s *BattleCommandListenerService) Quit() {}

func (s *BattleCommandListenerService) onMessage(topic string, payload []byte) {
	s.log.Info().Str("topic", topic).Msg("received battle command")

	cmd, err := bus.ParseCommand(payload)
	if err != nil {
		s.log.Warn().Err(err).Msg("dropping malformed battle command")
		return
	}

	sc := s.active.Get()
	if sc == nil {
		s.log.Warn().Err(&SceneInvariantError{Reason: "received battle command but no battle is active"}).Msg("dropping command")
		return
	}
	sc.Enqueue(cmd)
}
