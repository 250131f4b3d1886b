// Package config loads this harness's runtime configuration from the
// environment (optionally seeded from a .env file), the way the teacher's
// task-manager subproject loads its database settings.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is every environment-sourced setting spec.md §6 names.
type Config struct {
	RomBasePath string
	RomRedName  string
	RomBlueName string
	RomYellowName string

	SaveStatePath           string
	AutosaveIntervalSeconds int
	AutoloadState           bool

	MQTTBroker    string
	MQTTPort      int
	MQTTBaseTopic string
	MQTTUsername  string
	MQTTPassword  string
	MQTTClientID  string

	RomVariant string

	LogLevel string
	LogFile  string
}

// Load reads a .env file if present (missing is not an error - production
// deployments set real environment variables instead) and then resolves
// every setting via getEnv, applying the same fallback defaults spec.md's
// service descriptions use.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		// No .env file is the common case outside local development;
		// real environment variables still apply.
	}

	return Config{
		RomBasePath:   getEnv("ROM_BASE_PATH", "."),
		RomRedName:    getEnv("PKM_ROM_RED_NAME", "pokemon_red.gb"),
		RomBlueName:   getEnv("PKM_ROM_BLUE_NAME", "pokemon_blue.gb"),
		RomYellowName: getEnv("PKM_ROM_YELLOW_NAME", "pokemon_yellow.gb"),

		SaveStatePath:           getEnv("SAVE_STATE_PATH", "./ROM.state"),
		AutosaveIntervalSeconds: getEnvInt("AUTOSAVE_INTERVAL_SECONDS", 100),
		AutoloadState:           getEnvBool("AUTOLOAD_STATE", true),

		MQTTBroker:    getEnv("MQTT_BROKER", "test.mosquitto.org"),
		MQTTPort:      getEnvInt("MQTT_PORT", 1883),
		MQTTBaseTopic: getEnv("MQTT_BASE_TOPIC", "/dforirdod/PKM"),
		MQTTUsername:  getEnv("MQTT_USERNAME", ""),
		MQTTPassword:  getEnv("MQTT_PASSWORD", ""),
		MQTTClientID:  getEnv("MQTT_CLIENT_ID", ""),

		RomVariant: getEnv("PKM_ROM_VARIANT", "red"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
	}
}

// AutosaveInterval is AutosaveIntervalSeconds as a time.Duration.
func (c Config) AutosaveInterval() time.Duration {
	return time.Duration(c.AutosaveIntervalSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
