package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ernesto/pkmbridge/internal/bus"
	"github.com/ernesto/pkmbridge/internal/config"
	"github.com/ernesto/pkmbridge/internal/emulator"
	"github.com/ernesto/pkmbridge/internal/memmap"
	"github.com/ernesto/pkmbridge/internal/obslog"
	"github.com/ernesto/pkmbridge/internal/runtime"
	"github.com/ernesto/pkmbridge/internal/variant"
)

// shutdownGracePeriod bounds how long the MQTT client gets to flush its
// last-will/offline status and in-flight publishes once the emulator loop
// has returned.
const shutdownGracePeriod = 2 * time.Second

// run wires config into a Runtime and drives it to completion. It returns
// an error for any fatal startup condition (spec.md §7: ConfigError,
// bus.TransportError at connect time), matching the emulator loop's own
// exit-code contract: 0 on clean shutdown, non-zero here via Execute's
// os.Exit.
func run(cfg config.Config) error {
	log := obslog.New(obslog.Options{Level: cfg.LogLevel, FilePath: cfg.LogFile})

	v, err := variant.ParseVariant(cfg.RomVariant)
	if err != nil {
		return &runtime.ConfigError{Field: "rom-variant", Reason: err.Error()}
	}
	log.Info().Str("variant", v.String()).Msg("resolved rom variant")

	client, err := bus.NewClient(bus.Config{
		Host:      cfg.MQTTBroker,
		Port:      cfg.MQTTPort,
		BaseTopic: cfg.MQTTBaseTopic,
		ClientID:  cfg.MQTTClientID,
		Username:  cfg.MQTTUsername,
		Password:  cfg.MQTTPassword,
	}, log)
	if err != nil {
		return fmt.Errorf("connecting to mqtt broker: %w", err)
	}
	defer client.Disconnect(shutdownGracePeriod)

	// The Game Boy core itself is an external collaborator (spec.md §1);
	// this harness only ever drives it through the Emulator interface. In
	// the absence of a wired-in real core, NewFake backs the loop so the
	// full bus/runtime/scene pipeline runs end to end.
	emu := emulator.NewFake(0)

	cat := memmap.NewCatalogue()

	if !cfg.AutoloadState {
		log.Info().Msg("autoload disabled, starting from a clean emulator state")
	}

	_, _, loop := runtime.Build(emu, v, cat, client, cfg.SaveStatePath, cfg.AutosaveInterval(), cfg.AutoloadState, log)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal, stopping emulator loop")
		emu.RequestStop()
	}()

	loop.Run()
	signal.Stop(sigCh)

	log.Info().Msg("shutdown complete")
	return nil
}
