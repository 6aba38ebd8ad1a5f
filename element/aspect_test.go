package element

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZs3RoundTrip(t *testing.T) {
	for sym := byte(1); sym <= 16; sym++ {
		sym := sym
		t.Run(fmt.Sprintf("symbol_%d", sym), func(t *testing.T) {
			decoded, err := Zs3FromByte(sym)
			require.NoError(t, err)
			assert.Equal(t, sym, decoded.ToByte())
		})
	}
}

func TestZs3FromByteOffAliases(t *testing.T) {
	for _, raw := range []byte{0x00, 0xFF} {
		decoded, err := Zs3FromByte(raw)
		require.NoError(t, err)
		assert.Equal(t, Zs3Off, decoded)
	}
}

func TestZs3FromByteRejectsOutOfRange(t *testing.T) {
	_, err := Zs3FromByte(0x11)
	require.Error(t, err)
	var target *ErrInvalidAdditionalAspect
	assert.ErrorAs(t, err, &target)
}

func TestSupportedAspectsRequiresEveryField(t *testing.T) {
	supported := NewSupportedAspects([]MainAspect{Ks1}, nil, nil, nil)
	assert.True(t, supported.Supports(FromMain(Ks1)))
	assert.False(t, supported.Supports(FromMain(Hp1)))
	withZs3 := SignalAspect{Main: Ks1, Additional: AdditionalOff, Zs3: 3, Zs3V: Zs3Off}
	assert.False(t, supported.Supports(withZs3))
}
