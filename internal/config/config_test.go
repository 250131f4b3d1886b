package config

import "testing"

func TestGetEnvFallback(t *testing.T) {
	if got := getEnv("PKMBRIDGE_TEST_DOES_NOT_EXIST", "fallback"); got != "fallback" {
		t.Fatalf("getEnv fallback = %q, want fallback", got)
	}
}

func TestGetEnvIntParsesOrFallsBack(t *testing.T) {
	t.Setenv("PKMBRIDGE_TEST_INT", "42")
	if got := getEnvInt("PKMBRIDGE_TEST_INT", 7); got != 42 {
		t.Fatalf("getEnvInt = %d, want 42", got)
	}
	if got := getEnvInt("PKMBRIDGE_TEST_INT_UNSET", 7); got != 7 {
		t.Fatalf("getEnvInt fallback = %d, want 7", got)
	}
}

func TestGetEnvBoolParsesOrFallsBack(t *testing.T) {
	t.Setenv("PKMBRIDGE_TEST_BOOL", "false")
	if got := getEnvBool("PKMBRIDGE_TEST_BOOL", true); got != false {
		t.Fatalf("getEnvBool = %v, want false", got)
	}
	if got := getEnvBool("PKMBRIDGE_TEST_BOOL_UNSET", true); got != true {
		t.Fatalf("getEnvBool fallback = %v, want true", got)
	}
}

func TestLoadResolvesDefaults(t *testing.T) {
	cfg := Load()
	if cfg.MQTTPort == 0 {
		t.Fatalf("expected a non-zero default MQTT port")
	}
	if cfg.AutosaveInterval().Seconds() <= 0 {
		t.Fatalf("expected a positive autosave interval")
	}
}
