package phasor

import (
	"errors"

	"github.com/roseopicta/cvqkd-iq-synth/iq"
)

// NumPhasors is the number of independent phasors the bank tracks: one
// multiplicative shift phasor plus two additive pilot tones.
const NumPhasors = 3

// dacOutputScale multiplies pilot amplitudes in the fixed-point path. It
// is 1 here (a no-op) and exists only because the float-mode sibling of
// this pipeline uses a nontrivial value; see iq.Scale / SCALE in the
// design notes for the numeric-trait rationale.
const dacOutputScale = 1

// Algorithm selects how the bank combines its three phasors with the
// input stream.
type Algorithm int

const (
	// AlgorithmShiftTwoPilots multiplies the input by phasor 0 and adds
	// phasors 1 and 2 as additive pilot tones: x' = x*P0 + P1 + P2. It
	// is the only algorithm this pipeline implements.
	AlgorithmShiftTwoPilots Algorithm = iota
)

// ErrUnsupportedAlgorithm is returned for any algorithm other than
// AlgorithmShiftTwoPilots.
var ErrUnsupportedAlgorithm = errors.New("phasor: unsupported algorithm")

// ErrInvalidAmplitude is returned when an amplitude is outside [0, 1].
var ErrInvalidAmplitude = errors.New("phasor: amplitude must be in [0, 1]")

// ErrInvalidRate is returned when the sample rate is zero.
var ErrInvalidRate = errors.New("phasor: sample rate must be nonzero")

// Bank mixes an input I/Q stream with a shift phasor and two additive
// pilot tones, all driven by independent phase accumulators over a
// shared cosine/sine LUT.
type Bank struct {
	algorithm      Algorithm
	phase          [NumPhasors]iq.Phase
	phaseIncrement [NumPhasors]iq.Phase
	amplitude      [NumPhasors]iq.Accumulator
	lut            *LUT
}

// NewBank constructs a phasor bank. frequency and amplitude must each
// have length NumPhasors; amplitude values must lie in [0, 1];
// sampleRate must be nonzero. lut is
// filled in place if not already initialized (see FillLUT), so the
// caller may pass either a fresh *LUT or one already shared with a ZC
// generator.
func NewBank(lut *LUT, algorithm Algorithm, frequency [NumPhasors]uint32, amplitude [NumPhasors]float64, sampleRate uint32) (*Bank, error) {
	if algorithm != AlgorithmShiftTwoPilots {
		return nil, ErrUnsupportedAlgorithm
	}
	if sampleRate == 0 {
		return nil, ErrInvalidRate
	}
	for _, a := range amplitude {
		if a < 0 || a > 1 {
			return nil, ErrInvalidAmplitude
		}
	}

	b := &Bank{algorithm: algorithm, lut: lut}
	for i := 0; i < NumPhasors; i++ {
		b.phaseIncrement[i] = iq.Increment(frequency[i], sampleRate)
		b.amplitude[i] = iq.Accumulator(amplitude[i] * iq.SampleMax)
	}
	if algorithm == AlgorithmShiftTwoPilots {
		b.amplitude[1] *= dacOutputScale
		b.amplitude[2] *= dacOutputScale
	}

	FillLUT(lut)
	return b, nil
}

// Reset zeroes every phasor's phase, leaving frequency/amplitude intact.
func (b *Bank) Reset() {
	b.phase = [NumPhasors]iq.Phase{}
}

// Process mixes inOut in place: x' = x*P0 + P1 + P2 for
// AlgorithmShiftTwoPilots. State is copied to a local at entry and
// written back at exit (load-local, write-back), matching the
// processing-loop idiom used throughout this pipeline.
func (b *Bank) Process(inOut []iq.Symbol) {
	s := *b

	for idx := range inOut {
		var phasors [NumPhasors]iq.Symbol
		for i := 0; i < NumPhasors; i++ {
			p := lookup(s.lut, s.phase[i])
			amp := s.amplitude[i]
			phasors[i] = iq.Symbol{
				I: iq.Scale(iq.Accumulator(p.I) * amp),
				Q: iq.Scale(iq.Accumulator(p.Q) * amp),
			}
			s.phase[i] += s.phaseIncrement[i]
		}

		x := inOut[idx]
		if s.algorithm == AlgorithmShiftTwoPilots {
			y := phasors[0]
			mixed := iq.Symbol{
				I: iq.Scale(iq.Accumulator(x.I)*iq.Accumulator(y.I) - iq.Accumulator(x.Q)*iq.Accumulator(y.Q)),
				Q: iq.Scale(iq.Accumulator(x.Q)*iq.Accumulator(y.I) + iq.Accumulator(x.I)*iq.Accumulator(y.Q)),
			}
			x = iq.Symbol{
				I: mixed.I + phasors[1].I + phasors[2].I,
				Q: mixed.Q + phasors[1].Q + phasors[2].Q,
			}
		}
		inOut[idx] = x
	}

	*b = s
}
