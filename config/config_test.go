package config_test

import (
	"testing"

	"github.com/katalvlaran/ivlath/config"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	c := config.New()
	require.Equal(t, config.Binary64, c.BoundType())
	require.Equal(t, config.SetBased, c.Flavor())
	require.Equal(t, config.RoundingCorrect, c.Rounding())
	require.Equal(t, config.PowerFast, c.Power())
	require.Equal(t, config.MatMulFast, c.MatMul())
}

func TestNew_Overrides(t *testing.T) {
	t.Parallel()

	c := config.New(
		config.WithBoundType(config.Arbitrary),
		config.WithRounding(config.RoundingNone),
		config.WithPower(config.PowerSlow),
		config.WithMatMul(config.MatMulSlow),
	)
	require.Equal(t, config.Arbitrary, c.BoundType())
	require.Equal(t, config.RoundingNone, c.Rounding())
	require.Equal(t, config.PowerSlow, c.Power())
	require.Equal(t, config.MatMulSlow, c.MatMul())
}

func TestConfig_String(t *testing.T) {
	t.Parallel()

	c := config.New()
	require.Contains(t, c.String(), "binary64")
	require.Contains(t, c.String(), "correct")
}
