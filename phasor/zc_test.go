package phasor

import (
	"math"
	"testing"

	"github.com/roseopicta/cvqkd-iq-synth/iq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZC_InvalidLength(t *testing.T) {
	_, err := NewZC(NewLUT(), 0, 5, 0, 1, 2)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestNewZC_RootNotCoprime(t *testing.T) {
	// length=4, root=2 share a factor of 2.
	_, err := NewZC(NewLUT(), 4, 2, 0, 1, 2)
	require.ErrorIs(t, err, ErrRootNotCoprime)
}

func TestZC_FirstChipIsZAt0(t *testing.T) {
	// At initial state, phase=n=2^32-1 so the first advance wraps
	// immediately and the chip index becomes 0.
	zc, err := NewZC(NewLUT(), 11, 5, 0, 1, 2)
	require.NoError(t, err)

	out := make([]iq.Symbol, 1)
	zc.Process(out)
	assert.Equal(t, uint32(0), zc.n)
}

func TestZC_HoldsBetweenWraps(t *testing.T) {
	// rate=1, sampleRate=4: four output samples per chip, held constant.
	zc, err := NewZC(NewLUT(), 5, 3, 0, 1, 4)
	require.NoError(t, err)

	out := make([]iq.Symbol, 8)
	zc.Process(out)
	assert.Equal(t, out[0], out[1])
	assert.Equal(t, out[1], out[2])
	assert.Equal(t, out[2], out[3])
	assert.Equal(t, out[4], out[5])
	assert.NotEqual(t, out[0], out[4], "chip should change after the 4th sample")
}

func TestZC_Autocorrelation(t *testing.T) {
	const length = 31
	const root = 5

	// rate=1, sampleRate=2: each chip is held for two output samples, so
	// the even-indexed samples are one full period of the sequence.
	zc, err := NewZC(NewLUT(), length, root, 0, 1, 2)
	require.NoError(t, err)

	held := make([]iq.Symbol, 2*length)
	zc.Process(held)
	out := make([]iq.Symbol, length)
	for n := range out {
		out[n] = held[2*n]
	}

	toComplex := func(s iq.Symbol) complex128 {
		return complex(float64(s.I), float64(s.Q))
	}

	energy := 0.0
	for _, s := range out {
		v := toComplex(s)
		energy += real(v)*real(v) + imag(v)*imag(v)
	}

	for shift := 0; shift < length; shift++ {
		var acc complex128
		for n := 0; n < length; n++ {
			a := toComplex(out[n])
			b := toComplex(out[(n+shift)%length])
			acc += a * complex(real(b), -imag(b))
		}
		mag := math.Hypot(real(acc), imag(acc))
		if shift == 0 {
			assert.InDelta(t, energy, mag, energy*0.02, "zero-shift autocorrelation should equal total energy")
		} else {
			assert.Less(t, mag, energy*0.05, "off-peak autocorrelation at shift %d should be small", shift)
		}
	}
}
