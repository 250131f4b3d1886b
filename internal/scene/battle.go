// Package scene drives the in-game battle menu from its observed cursor
// state to a commanded outcome, one button press per scheduling tick.
package scene

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ernesto/pkmbridge/internal/domain"
	"github.com/ernesto/pkmbridge/internal/memmap"
)

// Phase is where a BattleScene is in driving its currently active command.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSelectingMove
	PhasePostDialog
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSelectingMove:
		return "selecting_move"
	case PhasePostDialog:
		return "post_dialog"
	default:
		return "unknown"
	}
}

// DefaultCooldown is the minimum time between two button enqueues from the
// same scene.
const DefaultCooldown = 200 * time.Millisecond

// ButtonSink is the subset of the runtime's button queue a scene needs:
// enough to check "may I enqueue" and to enqueue exactly one button.
type ButtonSink interface {
	QueueLen() int
	Enqueue(Button)
}

// BattleScene is a live view over one in-progress battle: the menu overlay,
// the player's roster and active battler, the opponent, and at most one
// in-flight BattleCommand being driven to completion.
type BattleScene struct {
	mu sync.Mutex

	r   *memmap.Reader
	cat memmap.Catalogue
	log zerolog.Logger

	battleID int
	cooldown time.Duration

	menu domain.MenuState

	phase         Phase
	active        *BattleCommand
	lastEnqueueAt time.Time
	lastCompleted *BattleCommand

	roster  domain.Roster
	player  *domain.ActivePokemon
	enemy   *domain.EnemyPokemon
	battle  domain.BattleContext
}

// New returns a scene for the given battle id, driven over the supplied
// reader/catalogue.
func New(r *memmap.Reader, cat memmap.Catalogue, battleID int, log zerolog.Logger) *BattleScene {
	return &BattleScene{
		r:        r,
		cat:      cat,
		log:      log.With().Str("component", "scene").Int("battle_id", battleID).Logger(),
		battleID: battleID,
		cooldown: DefaultCooldown,
		phase:    PhaseIdle,
	}
}

// BattleID reports which battle this scene was created for.
func (s *BattleScene) BattleID() int { return s.battleID }

// Update re-reads the menu overlay and every domain view from memory. Call
// once per services-thread poll, before Tick.
func (s *BattleScene) Update(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = domain.ReadMenuState(s.r, s.cat)
	s.roster = domain.ReadRoster(s.r, s.cat, s.log)
	s.player = domain.NewActivePokemon(s.r, s.cat, s.log)
	s.enemy = domain.NewEnemyPokemon(s.r, s.cat, s.log)
	s.battle = domain.ReadBattleContext(s.r, s.cat)
}

// IsReady reports whether the scene is in a known-good state to publish a
// snapshot from: the top-level battle menu, nothing selected.
func (s *BattleScene) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readyLocked()
}

func (s *BattleScene) readyLocked() bool {
	return s.cursorLocationLocked() == MainMenuLeft && s.menu.SelectedItemID == 0
}

func (s *BattleScene) cursorLocationLocked() MenuLocation {
	x, y := s.menu.CursorPosTop()
	return MenuLocation{X: x, Y: y}
}

// TurnCounter is the in-game turn counter, used by the SceneManager service
// to decide whether a fresh snapshot needs publishing.
func (s *BattleScene) TurnCounter() byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.battle.TurnCounter
}

// Snapshot projects the scene's current state to the wire shape published
// on the battle-info topic.
type Snapshot struct {
	Enemy  domain.PokemonSnapshot   `json:"enemy"`
	Player domain.PokemonSnapshot   `json:"player"`
	Party  []domain.PokemonSnapshot `json:"party"`
}

// ToSnapshot builds the wire snapshot from the last Update call's views.
func (s *BattleScene) ToSnapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	party := make([]domain.PokemonSnapshot, 0, len(s.roster.Active()))
	for _, p := range s.roster.Active() {
		party = append(party, p.ToSnapshot())
	}
	var enemy, player domain.PokemonSnapshot
	if s.enemy != nil {
		enemy = s.enemy.ToSnapshot()
	}
	if s.player != nil {
		player = s.player.ToSnapshot()
	}
	return Snapshot{Enemy: enemy, Player: player, Party: party}
}

// Enqueue accepts a command to drive to completion. A scene drives one
// command at a time; a command arriving while another is active is dropped
// with a warning, matching how the bus listener drops commands aimed at no
// active scene.
func (s *BattleScene) Enqueue(cmd BattleCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		s.log.Warn().Str("kind", cmd.Kind.String()).Msg("dropping command: another command is already in flight")
		return
	}
	cmdCopy := cmd
	s.active = &cmdCopy
	s.phase = PhaseIdle
}

// Active reports the command currently being driven, or nil.
func (s *BattleScene) Active() *BattleCommand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// LastCompleted reports the most recently completed command, or nil if none
// has completed yet.
func (s *BattleScene) LastCompleted() *BattleCommand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCompleted
}

// Tick runs one scheduling step: if the queue is empty and the cooldown has
// elapsed, it enqueues at most one button, either advancing the active
// command's state machine or running the idle-recovery policy.
func (s *BattleScene) Tick(now time.Time, sink ButtonSink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.canEnqueueLocked(now, sink) {
		return
	}

	if s.active == nil {
		s.runIdleRecoveryLocked(now, sink)
		return
	}

	if s.active.Kind != CommandMove {
		s.log.Warn().Str("kind", s.active.Kind.String()).Msg("unsupported command kind, completing without action")
		s.completeLocked()
		return
	}

	s.stepMoveLocked(now, sink)
}

func (s *BattleScene) canEnqueueLocked(now time.Time, sink ButtonSink) bool {
	if sink.QueueLen() != 0 {
		return false
	}
	return now.Sub(s.lastEnqueueAt) >= s.cooldown
}

func (s *BattleScene) enqueueLocked(now time.Time, sink ButtonSink, btn Button) {
	sink.Enqueue(btn)
	s.lastEnqueueAt = now
}

func (s *BattleScene) completeLocked() {
	done := *s.active
	s.lastCompleted = &done
	s.active = nil
	s.phase = PhaseIdle
}

// runIdleRecoveryLocked keeps the game at a known-good position when no
// command is active.
func (s *BattleScene) runIdleRecoveryLocked(now time.Time, sink ButtonSink) {
	loc := s.cursorLocationLocked()
	switch loc {
	case MainMenuRight:
		s.enqueueLocked(now, sink, Left)
	case MainMenuLeft:
		if s.menu.SelectedItemID > 0 {
			s.enqueueLocked(now, sink, Up)
		}
		// else: already at rest, nothing to do.
	case MovesOrText:
		// Might be mid-transition; do nothing.
	default:
		s.enqueueLocked(now, sink, B)
	}
}

// stepMoveLocked drives the three-phase Move(slot) command.
func (s *BattleScene) stepMoveLocked(now time.Time, sink ButtonSink) {
	slot := s.active.MoveSlot

	switch s.phase {
	case PhaseIdle:
		loc := s.cursorLocationLocked()
		if loc == MovesOrText {
			s.phase = PhaseSelectingMove
			s.selectMoveStepLocked(now, sink, slot)
			return
		}
		if s.readyLocked() {
			s.enqueueLocked(now, sink, A)
			return
		}
		s.runIdleRecoveryLocked(now, sink)

	case PhaseSelectingMove:
		s.selectMoveStepLocked(now, sink, slot)

	case PhasePostDialog:
		if s.readyLocked() {
			s.completeLocked()
			return
		}
		s.enqueueLocked(now, sink, B)
	}
}

func (s *BattleScene) selectMoveStepLocked(now time.Time, sink ButtonSink, slot int) {
	cur := int(s.menu.SelectedItemID)
	target := slot - 1
	switch {
	case cur < target:
		s.enqueueLocked(now, sink, Down)
	case cur > target:
		s.enqueueLocked(now, sink, Up)
	default:
		s.enqueueLocked(now, sink, A)
		s.phase = PhasePostDialog
	}
}
