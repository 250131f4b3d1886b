package main

import (
	"testing"

	"github.com/ernesto/pkmbridge/internal/config"
)

func TestApplyFlagOverridesOnlyTouchesChangedFlags(t *testing.T) {
	cfg = config.Config{
		RomVariant:    "red",
		MQTTBroker:    "test.mosquitto.org",
		MQTTBaseTopic: "/dforirdod/PKM",
	}

	romVariant = "yellow"
	if err := runCmd.Flags().Set("rom-variant", "yellow"); err != nil {
		t.Fatalf("Set(rom-variant): %v", err)
	}
	defer runCmd.Flags().Set("rom-variant", "")

	applyFlagOverrides(runCmd)

	if cfg.RomVariant != "yellow" {
		t.Fatalf("RomVariant = %q, want yellow (flag should override)", cfg.RomVariant)
	}
	if cfg.MQTTBroker != "test.mosquitto.org" {
		t.Fatalf("MQTTBroker = %q, want the env-derived default untouched", cfg.MQTTBroker)
	}
}
