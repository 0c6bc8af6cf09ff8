package gaussian

import (
	"math"
	"testing"

	"github.com/roseopicta/cvqkd-iq-synth/iq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidScale(t *testing.T) {
	_, err := New(1<<16, 0x7fff, false, 1, 0)
	require.ErrorIs(t, err, ErrInvalidScale)
}

func TestNew_ZeroScaleProducesSilence(t *testing.T) {
	// scale=0 is a legitimate degenerate "no payload noise" config, not
	// an invalid parameter: the data model's sigma range is [0, 2^16).
	shaper, err := New(0, 0x7fff, false, 1, 0)
	require.NoError(t, err)

	samples := make([]iq.Symbol, 100)
	shaper.Fill(samples)
	for _, s := range samples {
		assert.Equal(t, iq.Sample(0), s.I)
		assert.Equal(t, iq.Sample(0), s.Q)
	}
}

func TestShaper_FirstSamples_Statistical(t *testing.T) {
	// The reference scenario from the spec (seed=1, scale=7500,
	// max=0x7fff, clamp=false) is checked here against the
	// statistical properties of a regenerated LUT, not byte-for-byte,
	// per the spec's documented fallback: bundling the original
	// deployment LUT is not possible since it is not one of this
	// module's inputs.
	shaper, err := New(7500, 0x7fff, false, 1, 0)
	require.NoError(t, err)

	const n = 20000
	samples := make([]iq.Symbol, n)
	shaper.Fill(samples)

	var sumI, sumQ, sumI2, sumQ2 float64
	for _, s := range samples {
		fi, fq := float64(s.I), float64(s.Q)
		sumI += fi
		sumQ += fq
		sumI2 += fi * fi
		sumQ2 += fq * fq
	}
	meanI, meanQ := sumI/n, sumQ/n
	stdI := math.Sqrt(sumI2/n - meanI*meanI)
	stdQ := math.Sqrt(sumQ2/n - meanQ*meanQ)

	assert.InDelta(t, 0, meanI, 300, "I mean should be close to zero")
	assert.InDelta(t, 0, meanQ, 300, "Q mean should be close to zero")
	assert.InDelta(t, 7500, stdI, 750, "I stddev should approximate configured scale")
	assert.InDelta(t, 7500, stdQ, 750, "Q stddev should approximate configured scale")
}

func TestShaper_Deterministic(t *testing.T) {
	a, err := New(7500, 0x7fff, false, 1, 0)
	require.NoError(t, err)
	b, err := New(7500, 0x7fff, false, 1, 0)
	require.NoError(t, err)

	bufA := make([]iq.Symbol, 100)
	bufB := make([]iq.Symbol, 100)
	a.Fill(bufA)
	b.Fill(bufB)
	assert.Equal(t, bufA, bufB)
}

func TestShaper_Clamp(t *testing.T) {
	shaper, err := New(7500, 2000, true, 1, 0)
	require.NoError(t, err)

	samples := make([]iq.Symbol, 5000)
	shaper.Fill(samples)
	for _, s := range samples {
		assert.LessOrEqual(t, int(s.I), 2000)
		assert.GreaterOrEqual(t, int(s.I), -2000)
		assert.LessOrEqual(t, int(s.Q), 2000)
		assert.GreaterOrEqual(t, int(s.Q), -2000)
	}
}

func TestIcdfMagnitude_Monotonic(t *testing.T) {
	prev := math.Inf(1)
	for p := 0.001; p <= 0.5; p += 0.001 {
		v := icdfMagnitude(p)
		if v > prev {
			t.Fatalf("icdfMagnitude not monotonically decreasing at p=%v: %v > %v", p, v, prev)
		}
		prev = v
	}
}

func TestIcdfMagnitude_AtMean(t *testing.T) {
	assert.InDelta(t, 0, icdfMagnitude(0.5), 1e-6)
}

func TestBoxMuller_MatchesStatistics(t *testing.T) {
	bm, err := NewBoxMuller(7500, 0x7fff, false, 1, 0)
	require.NoError(t, err)

	const n = 20000
	samples := make([]iq.Symbol, n)
	bm.Fill(samples)

	var sumI2 float64
	for _, s := range samples {
		fi := float64(s.I)
		sumI2 += fi * fi
	}
	stdI := math.Sqrt(sumI2 / n)
	assert.InDelta(t, 7500, stdI, 750)
}
