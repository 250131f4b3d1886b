package obslog

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewDefaultsToInfoLevelOnUnknownString(t *testing.T) {
	log := New(Options{Level: "not-a-level"})
	if log.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("GetLevel() = %v, want InfoLevel", log.GetLevel())
	}
}

func TestNewHonorsExplicitLevel(t *testing.T) {
	log := New(Options{Level: "debug"})
	if log.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("GetLevel() = %v, want DebugLevel", log.GetLevel())
	}
}
