package rrc

import (
	"errors"

	"github.com/roseopicta/cvqkd-iq-synth/iq"
)

// ErrInvalidRate is returned when symbolRate or sampleRate is zero.
var ErrInvalidRate = errors.New("rrc: symbol rate and sample rate must be nonzero")

// Filter is an interpolating polyphase RRC filter. Inputs arrive at the
// symbol rate; outputs are produced at the sample rate, with fractional
// resampling handled by the phase accumulator so the ratio need not be
// an integer.
type Filter struct {
	phase          iq.Phase
	phaseIncrement iq.Phase
	history        [NumSymbols]iq.Symbol // history[0] is newest
	lut            *CoeffLUT
}

// New constructs an RRC filter. lut must already hold coefficients from
// BuildCoeffLUT for the desired roll-off; symbolRate and sampleRate set
// the phase increment for the symbol clock.
func New(lut *CoeffLUT, symbolRate, sampleRate uint32) (*Filter, error) {
	if symbolRate == 0 || sampleRate == 0 {
		return nil, ErrInvalidRate
	}
	return &Filter{
		phaseIncrement: iq.Increment(symbolRate, sampleRate),
		lut:            lut,
	}, nil
}

// Reset rewinds the phase and clears the symbol history.
func (f *Filter) Reset() {
	f.phase = 0
	f.history = [NumSymbols]iq.Symbol{}
}

// Process emits len(out) interpolated samples, pulling new symbols from
// in as the phase accumulator wraps. It returns the number of input
// symbols consumed; the caller must ensure in has at least that many
// symbols available (this is the only contract for running out of
// input - the filter never blocks or signals underrun itself).
func (f *Filter) Process(in []iq.Symbol, out []iq.Symbol) int {
	s := *f
	consumed := 0

	for idx := range out {
		phaseIdx := s.phase >> 24
		base := int(phaseIdx) * phaseFactor

		var accI, accQ iq.Accumulator
		for k := 0; k < NumSymbols; k++ {
			coeff := iq.Accumulator(s.lut[base+k*symbolFactor])
			sym := s.history[k]
			accI += coeff * iq.Accumulator(sym.I)
			accQ += coeff * iq.Accumulator(sym.Q)
		}
		out[idx] = iq.Symbol{I: iq.Scale(accI), Q: iq.Scale(accQ)}

		previous := s.phase
		s.phase += s.phaseIncrement
		if iq.Wrapped(previous, s.phase) {
			for k := NumSymbols - 1; k >= 1; k-- {
				s.history[k] = s.history[k-1]
			}
			s.history[0] = in[consumed]
			consumed++
		}
	}

	*f = s
	return consumed
}
