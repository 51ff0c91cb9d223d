package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUsesDefaultsWithoutOverride(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(flags)

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadHonorsFlagOverride(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(flags)
	require.NoError(t, flags.Set("board-size", "7"))
	require.NoError(t, flags.Set("difficulty", "hard"))

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.BoardSize)
	assert.Equal(t, "hard", cfg.Difficulty)
}
