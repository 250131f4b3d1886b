package runtime

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ernesto/pkmbridge/internal/emulator"
)

// DefaultButtonCooldown is the minimum time between two button presses the
// emulator loop drains from the queue.
const DefaultButtonCooldown = 1 * time.Second

// DefaultServiceTickInterval is how often the services loop re-checks its
// schedule.
const DefaultServiceTickInterval = 100 * time.Millisecond

// shutdownJoinTimeout bounds how long Run waits for the services thread to
// stop once the emulator loop has exited.
const shutdownJoinTimeout = 10 * time.Second

// EmulatorLoop drives an Emulator's tick loop on the calling goroutine while
// a second goroutine ticks every registered Service at its own cadence. The
// two communicate only through queue: services enqueue buttons, the loop
// drains at most one per ButtonCooldown.
type EmulatorLoop struct {
	emu      emulator.Emulator
	queue    *ButtonQueue
	services []Service
	log      zerolog.Logger

	buttonCooldown      time.Duration
	serviceTickInterval time.Duration

	nextButtonAt time.Time
	clock        func() time.Time
}

// NewEmulatorLoop wires an emulator, its button queue, and the services
// that drive it, using the spec's default cooldown and tick interval.
func NewEmulatorLoop(emu emulator.Emulator, queue *ButtonQueue, services []Service, log zerolog.Logger) *EmulatorLoop {
	return &EmulatorLoop{
		emu:                 emu,
		queue:               queue,
		services:            services,
		log:                 log.With().Str("component", "emulator_loop").Logger(),
		buttonCooldown:      DefaultButtonCooldown,
		serviceTickInterval: DefaultServiceTickInterval,
		clock:               time.Now,
	}
}

// Run starts every service, launches the services goroutine under an
// errgroup, then ticks the emulator until Tick reports shutdown (e.g. on an
// OS interrupt, the caller wires that into the fake/real core's Tick). It
// returns once both the emulator loop and the services goroutine have
// stopped.
func (l *EmulatorLoop) Run() {
	for _, svc := range l.services {
		l.startServiceSafely(svc)
	}

	l.log.Info().Msg("starting emulator loop")

	group, ctx := errgroup.WithContext(context.Background())
	servicesCtx, cancelServices := context.WithCancel(ctx)
	group.Go(func() error {
		l.runServicesLoop(servicesCtx)
		return nil
	})

	l.nextButtonAt = l.clock()
	for {
		running := l.emu.Tick()
		now := l.clock()
		if !running {
			l.log.Info().Msg("emulator stopped running")
			break
		}
		l.maybePopButton(now)
	}

	l.log.Info().Msg("emulator loop finished")
	l.queue.Clear()
	cancelServices()

	done := make(chan struct{})
	go func() {
		_ = group.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownJoinTimeout):
		l.log.Warn().Msg("services loop did not stop within the shutdown timeout")
	}

	for _, svc := range l.services {
		l.quitServiceSafely(svc)
	}
}

func (l *EmulatorLoop) runServicesLoop(ctx context.Context) {
	l.log.Info().Msg("starting services loop")
	defer l.log.Info().Msg("services loop stopped")

	nextTick := l.clock()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		now := l.clock()
		if !now.Before(nextTick) {
			for _, svc := range l.services {
				l.tickServiceSafely(svc, now)
			}
			nextTick = now.Add(l.serviceTickInterval)
		}

		time.Sleep(1 * time.Millisecond)
	}
}

func (l *EmulatorLoop) maybePopButton(now time.Time) {
	if now.Before(l.nextButtonAt) {
		return
	}
	btn, ok := l.queue.PopOrNone()
	if !ok {
		l.nextButtonAt = now.Add(l.buttonCooldown)
		return
	}
	l.log.Debug().Str("button", btn.String()).Msg("processing button")
	l.emu.PressButton(btn)
	l.nextButtonAt = now.Add(l.buttonCooldown)
}

// startServiceSafely mirrors the Python loop's broad except inside the
// services thread: startup errors from one service must not prevent the
// others from starting or the emulator loop from running.
func (l *EmulatorLoop) startServiceSafely(svc Service) {
	defer l.recoverService(svc, "start")
	if err := svc.Start(); err != nil {
		l.log.Error().Str("service", svc.Name()).Err(err).Msg("service failed to start")
	}
}

func (l *EmulatorLoop) tickServiceSafely(svc Service, now time.Time) {
	defer l.recoverService(svc, "tick")
	if err := svc.Tick(now); err != nil {
		l.log.Error().Str("service", svc.Name()).Err(err).Msg("error in service tick")
	}
}

func (l *EmulatorLoop) quitServiceSafely(svc Service) {
	defer l.recoverService(svc, "quit")
	svc.Quit()
}

// recoverService is a backstop for an actual panic (a programmer error)
// inside a service, kept separate from ordinary returned errors so one
// misbehaving service still can't take down the services loop.
func (l *EmulatorLoop) recoverService(svc Service, phase string) {
	if r := recover(); r != nil {
		l.log.Error().Str("service", svc.Name()).Str("phase", phase).Interface("panic", r).Msg("service panicked, continuing")
	}
}
