package decoration_test

import (
	"testing"

	"github.com/katalvlaran/ivlath/decoration"
	"github.com/stretchr/testify/require"
)

func TestDecoration_TotalOrder(t *testing.T) {
	require.True(t, decoration.Com < decoration.Dac)
	require.True(t, decoration.Dac < decoration.Def)
	require.True(t, decoration.Def < decoration.Trv)
	require.True(t, decoration.Trv < decoration.Ill)
}

func TestMin(t *testing.T) {
	require.Equal(t, decoration.Dac, decoration.Min(decoration.Com, decoration.Dac))
	require.Equal(t, decoration.Ill, decoration.Min(decoration.Ill, decoration.Com))
	require.Equal(t, decoration.Com, decoration.Min(decoration.Com, decoration.Com))
}

func TestDegrade(t *testing.T) {
	require.Equal(t, decoration.Trv, decoration.Degrade(decoration.Com, decoration.Trv))
	require.Equal(t, decoration.Ill, decoration.Degrade(decoration.Ill, decoration.Com))
}

func TestString(t *testing.T) {
	cases := map[decoration.Decoration]string{
		decoration.Com: "com",
		decoration.Dac: "dac",
		decoration.Def: "def",
		decoration.Trv: "trv",
		decoration.Ill: "ill",
	}
	for d, want := range cases {
		require.Equal(t, want, d.String())
	}
}
