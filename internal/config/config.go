// Package config binds the engine's runtime settings to cobra/pflag
// flags and environment variables via viper, following the wiring
// style of the pack's cloudslash-style cobra+viper CLIs.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the fully-resolved runtime configuration for any
// cmd/hexengine subcommand.
type Config struct {
	BoardSize  int
	Difficulty string
	HumanColor string
	ListenAddr string
	LogMode    string
}

// Defaults returns the configuration used when no flag or env var
// overrides it.
func Defaults() Config {
	return Config{
		BoardSize:  11,
		Difficulty: "medium",
		HumanColor: "A",
		ListenAddr: ":8080",
		LogMode:    "production",
	}
}

// BindFlags registers the configurable fields on flags, so a cobra
// command can expose them as --board-size, --difficulty, and so on.
func BindFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.Int("board-size", d.BoardSize, "hex board side length")
	flags.String("difficulty", d.Difficulty, "easy, medium, or hard")
	flags.String("human-color", d.HumanColor, "which color the human plays: A or B")
	flags.String("listen", d.ListenAddr, "address the serve command listens on")
	flags.String("log-mode", d.LogMode, "production or development")
}

// Load resolves a Config from flags, then environment variables
// prefixed HEXENGINE_, then the compiled-in defaults, in that order
// of precedence (viper's standard BindPFlags behavior).
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HEXENGINE")
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("config: binding flags: %w", err)
	}

	return Config{
		BoardSize:  v.GetInt("board-size"),
		Difficulty: v.GetString("difficulty"),
		HumanColor: v.GetString("human-color"),
		ListenAddr: v.GetString("listen"),
		LogMode:    v.GetString("log-mode"),
	}, nil
}
