package runtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ernesto/pkmbridge/internal/bus"
	"github.com/ernesto/pkmbridge/internal/memmap"
	"github.com/ernesto/pkmbridge/internal/scene"
)

// ActiveScene is read by BattleCommandListenerService to dispatch incoming
// commands to whichever battle is currently in progress, and swapped by
// SceneManagerService as battles start and end. Guarded by its own mutex
// rather than folded into the emulator-access mutex, since reading the
// pointer never touches the emulator.
type ActiveScene struct {
	mu    sync.RWMutex
	scene *scene.BattleScene
}

// Get returns the current scene, or nil if no battle is active.
func (a *ActiveScene) Get() *scene.BattleScene {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.scene
}

func (a *ActiveScene) set(s *scene.BattleScene) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scene = s
}

// DefaultPollInterval is how often SceneManagerService re-reads the battle
// state and polls the active scene.
const DefaultPollInterval = 500 * time.Millisecond

// SceneManagerService owns the scene lifecycle: it notices when a battle
// starts or ends, drives the active scene's own Update/Tick bookkeeping via
// Update, and publishes a retained snapshot every time the in-game turn
// counter advances.
type SceneManagerService struct {
	r     *memmap.Reader
	cat   memmap.Catalogue
	emuMu *sync.Mutex

	client bus.Publisher
	active *ActiveScene
	queue  scene.ButtonSink
	log    zerolog.Logger

	pollInterval time.Duration
	nextPollAt   time.Time

	lastPublishedTurn int
}

// NewSceneManagerService wires a scene manager over r/cat (guarded by
// emuMu) that publishes through client, drives the active scene's button
// state machine through queue every services tick, and exposes the active
// scene via active for the command listener to reach.
func NewSceneManagerService(r *memmap.Reader, cat memmap.Catalogue, emuMu *sync.Mutex, client bus.Publisher, active *ActiveScene, queue scene.ButtonSink, log zerolog.Logger) *SceneManagerService {
	return &SceneManagerService{
		r:                 r,
		cat:               cat,
		emuMu:             emuMu,
		client:            client,
		active:            active,
		queue:             queue,
		log:               log.With().Str("component", "scene_manager").Logger(),
		pollInterval:      DefaultPollInterval,
		lastPublishedTurn: -1,
	}
}

func (s *SceneManagerService) Name() string { return "scene_manager" }

func (s *SceneManagerService) Start() error {
	body, err := json.Marshal(bus.StartPayload{Msg: "hello from pkmbridge", Timestamp: float64(time.Now().UnixNano()) / 1e9})
	if err != nil {
		return err
	}
	s.client.Publish(s.client.Topics().Start(), body, 1, false)
	s.nextPollAt = time.Now().Add(s.pollInterval)
	return nil
}

func (s *SceneManagerService) Quit() {}

// Tick runs every services-thread tick: it always gives the active scene a
// chance to enqueue its next button (the scene's own cooldown governs how
// often that's actually one), then at the slower poll_interval cadence it
// re-reads battle state and publishes a fresh snapshot if the turn counter
// advanced.
func (s *SceneManagerService) Tick(now time.Time) error {
	if sc := s.active.Get(); sc != nil {
		sc.Tick(now, s.queue)
	}

	if now.Before(s.nextPollAt) {
		return nil
	}
	s.nextPollAt = now.Add(s.pollInterval)
	return s.poll(now)
}

func (s *SceneManagerService) poll(now time.Time) error {
	s.emuMu.Lock()
	battleID := int(s.r.U8(s.cat.Battle.BattleTypeID))
	s.emuMu.Unlock()

	if battleID == 0 {
		s.endBattleIfNeeded()
		return nil
	}

	sc := s.ensureBattleScene(battleID)

	s.emuMu.Lock()
	sc.Update(now)
	s.emuMu.Unlock()

	if !sc.IsReady() {
		s.log.Debug().Int("battle_id", battleID).Msg("scene not ready yet, skipping publish")
		return nil
	}
	s.publishIfNeeded(sc, battleID, now)
	return nil
}

func (s *SceneManagerService) ensureBattleScene(battleID int) *scene.BattleScene {
	cur := s.active.Get()
	if cur != nil && cur.BattleID() == battleID {
		return cur
	}
	s.log.Info().Int("battle_id", battleID).Msg("battle started")
	sc := scene.New(s.r, s.cat, battleID, s.log)
	s.active.set(sc)
	s.lastPublishedTurn = -1
	return sc
}

func (s *SceneManagerService) endBattleIfNeeded() {
	if cur := s.active.Get(); cur != nil {
		s.log.Info().Int("battle_id", cur.BattleID()).Msg("battle ended")
	}
	s.active.set(nil)
	s.lastPublishedTurn = -1
}

func (s *SceneManagerService) publishIfNeeded(sc *scene.BattleScene, battleID int, now time.Time) {
	turn := int(sc.TurnCounter())
	if turn == s.lastPublishedTurn {
		return
	}
	s.lastPublishedTurn = turn

	payload := bus.SnapshotPayload{
		BattleID:  battleID,
		Turn:      turn,
		Timestamp: float64(now.UnixNano()) / 1e9,
		Scene:     sc.ToSnapshot(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to marshal snapshot payload")
		return
	}
	s.client.Publish(s.client.Topics().BattleInfo(), body, 1, true)
	s.log.Info().Int("battle_id", battleID).Int("turn", turn).Msg("published battle update")
}
