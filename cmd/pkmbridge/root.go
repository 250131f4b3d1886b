package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ernesto/pkmbridge/internal/config"
)

// version is set at build time via -ldflags "-X main.version=...";
// "dev" covers local builds.
var version = "dev"

// Flag variables. Each one binds to the same name as an environment
// variable config.Load reads (spec.md §6), and overrides it when set -
// same idiom as charm-llm/cmd/root.go's package-level flag vars plus
// PreRunE config load.
var (
	romVariant    string
	romBasePath   string
	saveStatePath string
	autosaveSecs  int
	autoloadState bool

	mqttBroker    string
	mqttPort      int
	mqttBaseTopic string
	mqttClientID  string

	logLevel string
	logFile  string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pkmbridge",
	Short: "Real-time introspection and automation harness for Gen-1 Pokémon",
	Long: `pkmbridge drives a Game Boy emulator running a Gen-1 Pokémon cartridge,
decodes its live memory into battle snapshots, publishes them over MQTT,
and injects button presses in response to commands from the bus.`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to the bus and run the emulator loop until shutdown",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		applyFlagOverrides(cmd)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pkmbridge version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pkmbridge " + version)
	},
}

func init() {
	flags := runCmd.Flags()
	flags.StringVar(&romVariant, "rom-variant", "", "cartridge variant: red, blue, or yellow (overrides PKM_ROM_VARIANT)")
	flags.StringVar(&romBasePath, "rom-base-path", "", "directory containing the ROM images (overrides ROM_BASE_PATH)")
	flags.StringVar(&saveStatePath, "save-state-path", "", "path to the canonical snapshot file (overrides SAVE_STATE_PATH)")
	flags.IntVar(&autosaveSecs, "autosave-interval-seconds", 0, "seconds between autosaves, 0 keeps the configured default (overrides AUTOSAVE_INTERVAL_SECONDS)")
	flags.BoolVar(&autoloadState, "autoload-state", false, "load the canonical snapshot on startup (overrides AUTOLOAD_STATE)")

	flags.StringVar(&mqttBroker, "mqtt-broker", "", "MQTT broker host (overrides MQTT_BROKER)")
	flags.IntVar(&mqttPort, "mqtt-port", 0, "MQTT broker port, 0 keeps the configured default (overrides MQTT_PORT)")
	flags.StringVar(&mqttBaseTopic, "mqtt-base-topic", "", "base MQTT topic (overrides MQTT_BASE_TOPIC)")
	flags.StringVar(&mqttClientID, "mqtt-client-id", "", "MQTT client id, random suffix if empty (overrides MQTT_CLIENT_ID)")

	flags.StringVar(&logLevel, "log-level", "", "zerolog level: debug, info, warn, error (overrides LOG_LEVEL)")
	flags.StringVar(&logFile, "log-file", "", "also log JSON lines to this file (overrides LOG_FILE)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// applyFlagOverrides layers any explicitly-set flag on top of the
// environment-derived config, following the same "flags win" precedence
// charm-llm's PreRunE gives its own --provider/--model flags.
func applyFlagOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("rom-variant") {
		cfg.RomVariant = romVariant
	}
	if flags.Changed("rom-base-path") {
		cfg.RomBasePath = romBasePath
	}
	if flags.Changed("save-state-path") {
		cfg.SaveStatePath = saveStatePath
	}
	if flags.Changed("autosave-interval-seconds") {
		cfg.AutosaveIntervalSeconds = autosaveSecs
	}
	if flags.Changed("autoload-state") {
		cfg.AutoloadState = autoloadState
	}
	if flags.Changed("mqtt-broker") {
		cfg.MQTTBroker = mqttBroker
	}
	if flags.Changed("mqtt-port") {
		cfg.MQTTPort = mqttPort
	}
	if flags.Changed("mqtt-base-topic") {
		cfg.MQTTBaseTopic = mqttBaseTopic
	}
	if flags.Changed("mqtt-client-id") {
		cfg.MQTTClientID = mqttClientID
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
}

// Execute runs the root command, exiting non-zero on any error - an unknown
// ROM variant, an unreachable broker, or a bad flag. run does not look for
// the ROM image on disk, so a missing ROM file is not an error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
