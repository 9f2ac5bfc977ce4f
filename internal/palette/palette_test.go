package palette

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCoversAllRoles(t *testing.T) {
	p := Generate("#33aaff")

	require.Len(t, p, len(Roles))
	for _, role := range Roles {
		require.Contains(t, p, role)
	}
}

func TestGeneratePrimaryIsSeed(t *testing.T) {
	p := Generate("#33AAFF")

	require.Equal(t, RGB{R: 0x33, G: 0xAA, B: 0xFF}, p["Primary"])
}

func TestGenerateBadSeedFallsBack(t *testing.T) {
	fallback := Generate(DefaultSeedHex)

	for _, seed := range []string{"", "nonsense", "#12"} {
		require.Equal(t, fallback, Generate(seed), "seed %q", seed)
	}
}

func TestGenerateAcceptsBareHex(t *testing.T) {
	require.Equal(t, Generate("#FF0000"), Generate("FF0000"))
}

func TestHexFormatting(t *testing.T) {
	require.Equal(t, "#010203", RGB{R: 1, G: 2, B: 3}.Hex())
	require.Equal(t, "#FFFFFF", RGB{R: 255, G: 255, B: 255}.Hex())
}
