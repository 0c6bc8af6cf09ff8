package frame

import (
	"testing"

	"github.com/roseopicta/cvqkd-iq-synth/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallOptions() config.Options {
	return config.Options{
		SampleRate:      2000,
		SymbolRate:      1000,
		ZCRate:          500,
		NumSymbols:      50,
		NumNullSymbols:  2,
		ZCLength:        7,
		ZCRoot:          3,
		ZCShift:         0,
		SymbolScale:     100,
		SymbolMaxValue:  0x5fff,
		SymbolClamp:     false,
		RRCRollOff:      0.3,
		ShiftFrequency:  0,
		Pilot1Freq:      100,
		Pilot1Amplitude: 0.1,
		Pilot2Freq:      150,
		Pilot2Amplitude: 0.1,
		Seed:            1,
	}
}

func TestSynthesize_BufferSizes(t *testing.T) {
	opts := smallOptions()
	result, err := Synthesize(opts)
	require.NoError(t, err)

	assert.Equal(t, 28, result.NumSamplesZC)
	assert.Equal(t, 100, result.NumSamplesPayload)
	assert.Equal(t, 4, result.NumSamplesTail)
	assert.Len(t, result.Samples, 132)
	assert.Len(t, result.Symbols, int(opts.NumSymbols)+11)
}

func TestSynthesize_TailSymbolsAreZero(t *testing.T) {
	opts := smallOptions()
	result, err := Synthesize(opts)
	require.NoError(t, err)

	for i := int(opts.NumSymbols); i < len(result.Symbols); i++ {
		assert.Equal(t, int16(0), result.Symbols[i].I)
		assert.Equal(t, int16(0), result.Symbols[i].Q)
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	opts := smallOptions()
	a, err := Synthesize(opts)
	require.NoError(t, err)
	b, err := Synthesize(opts)
	require.NoError(t, err)
	assert.Equal(t, a.Samples, b.Samples)
	assert.Equal(t, a.Symbols, b.Symbols)
}

func TestSynthesize_TailHasOnlyPilotEnergy(t *testing.T) {
	// With shift_frequency amplitude fixed and a zero payload tail, the
	// tail region should carry only the two pilot tones (no payload
	// contribution). With both pilot amplitudes at 0.1 (about 3277 each)
	// every tail sample stays well inside the 20000 magnitude bound.
	opts := smallOptions()
	result, err := Synthesize(opts)
	require.NoError(t, err)

	tailStart := result.NumSamplesZC + result.NumSamplesPayload
	for i := tailStart; i < tailStart+result.NumSamplesTail; i++ {
		s := result.Samples[i]
		assert.Less(t, int(s.I)*int(s.I)+int(s.Q)*int(s.Q), 20000*20000)
	}
}

func TestSynthesize_InvalidRates(t *testing.T) {
	opts := smallOptions()
	opts.SampleRate = 0
	_, err := Synthesize(opts)
	require.Error(t, err)
}

func TestSynthesize_RejectsNonCoprimeZCRoot(t *testing.T) {
	opts := smallOptions()
	opts.ZCLength = 4
	opts.ZCRoot = 2
	_, err := Synthesize(opts)
	require.Error(t, err)
}
