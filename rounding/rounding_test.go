package rounding_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ivlath/config"
	"github.com/katalvlaran/ivlath/rounding"
	"github.com/stretchr/testify/require"
)

func TestFor_SelectsBackend(t *testing.T) {
	none := rounding.For(config.New(config.WithRounding(config.RoundingNone)))
	require.True(t, none.NotGuaranteed())

	correct := rounding.For(config.New())
	require.False(t, correct.NotGuaranteed())
}

func TestNoneOps_WidensOutward(t *testing.T) {
	ops := rounding.NoneOps{}
	x, y := 0.1, 0.2
	up := ops.Add(x, y, rounding.RoundUp)
	down := ops.Add(x, y, rounding.RoundDown)
	require.GreaterOrEqual(t, up, x+y)
	require.LessOrEqual(t, down, x+y)
	require.True(t, down <= up)
}

func TestCorrectOps_EnclosesNativeAddition(t *testing.T) {
	ops := rounding.NewCorrectOps()
	// 0.1 + 0.2 is not exactly representable; directed rounds must bracket
	// the float64 nearest result on both sides.
	up := ops.Add(0.1, 0.2, rounding.RoundUp)
	down := ops.Add(0.1, 0.2, rounding.RoundDown)
	require.LessOrEqual(t, down, 0.1+0.2)
	require.GreaterOrEqual(t, up, 0.1+0.2)
}

func TestCorrectOps_SqrtOfNegativeIsNaN(t *testing.T) {
	ops := rounding.NewCorrectOps()
	require.True(t, math.IsNaN(ops.Sqrt(-1, rounding.RoundNearest)))
}

func TestCorrectOps_DivByZeroIsNaN(t *testing.T) {
	ops := rounding.NewCorrectOps()
	require.True(t, math.IsNaN(ops.Div(1, 0, rounding.RoundNearest)))
}

func TestCorrectOps_ExpLogRoundTrip(t *testing.T) {
	ops := rounding.NewCorrectOps()
	x := 1.75
	up := ops.Log(ops.Exp(x, rounding.RoundUp), rounding.RoundUp)
	down := ops.Log(ops.Exp(x, rounding.RoundDown), rounding.RoundDown)
	require.InDelta(t, x, up, 1e-9)
	require.InDelta(t, x, down, 1e-9)
}

func TestCorrectOps_TranscendentalsMissingFromMPFRStillWork(t *testing.T) {
	ops := rounding.NewCorrectOps()
	// Sin, Expm1, Log1p, Log2, Log10 fall back to the bigfloat widen path;
	// they must still produce finite, approximately-correct results.
	require.InDelta(t, math.Sin(1.0), ops.Sin(1.0, rounding.RoundNearest), 1e-9)
	require.InDelta(t, math.Expm1(0.5), ops.Expm1(0.5, rounding.RoundNearest), 1e-9)
	require.InDelta(t, math.Log1p(0.5), ops.Log1p(0.5, rounding.RoundNearest), 1e-9)
	require.InDelta(t, math.Log2(8.0), ops.Log2(8.0, rounding.RoundNearest), 1e-9)
	require.InDelta(t, math.Log10(1000.0), ops.Log10(1000.0, rounding.RoundNearest), 1e-9)
}

func TestCorrectOps_AgreesWithMathWithinTolerance(t *testing.T) {
	ops := rounding.NewCorrectOps()
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"cos", ops.Cos(0.6, rounding.RoundNearest), math.Cos(0.6)},
		{"tan", ops.Tan(0.6, rounding.RoundNearest), math.Tan(0.6)},
		{"atan2", ops.Atan2(1.0, 2.0, rounding.RoundNearest), math.Atan2(1.0, 2.0)},
		{"sinh", ops.Sinh(0.4, rounding.RoundNearest), math.Sinh(0.4)},
		{"cosh", ops.Cosh(0.4, rounding.RoundNearest), math.Cosh(0.4)},
		{"tanh", ops.Tanh(0.4, rounding.RoundNearest), math.Tanh(0.4)},
		{"asin", ops.Asin(0.3, rounding.RoundNearest), math.Asin(0.3)},
		{"acos", ops.Acos(0.3, rounding.RoundNearest), math.Acos(0.3)},
	}
	for _, c := range cases {
		require.InDeltaf(t, c.want, c.got, 1e-8, "%s mismatch", c.name)
	}
}

func TestDirection_Opposite(t *testing.T) {
	require.Equal(t, rounding.RoundDown, rounding.RoundUp.Opposite())
	require.Equal(t, rounding.RoundUp, rounding.RoundDown.Opposite())
	require.Equal(t, rounding.RoundNearest, rounding.RoundNearest.Opposite())
}
