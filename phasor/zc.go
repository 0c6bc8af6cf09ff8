package phasor

import (
	"errors"

	"github.com/roseopicta/cvqkd-iq-synth/iq"
)

// ErrInvalidLength is returned for a zero Zadoff-Chu sequence length.
var ErrInvalidLength = errors.New("phasor: zc length must be nonzero")

// ErrRootNotCoprime is returned when root and length share a common
// factor, which would break the zero-autocorrelation property.
var ErrRootNotCoprime = errors.New("phasor: zc root must be coprime with length")

// ZC synthesizes a Zadoff-Chu sync preamble (block E), reusing the same
// phasor LUT as Bank. It runs at the output sample rate, holding each
// chip value constant (zero-order hold) between phase wraps.
type ZC struct {
	length         uint32
	root           uint32
	shift          uint32
	phase          iq.Phase
	phaseIncrement iq.Phase
	n              uint32
	value          iq.Symbol
	lut            *LUT
}

// NewZC constructs a Zadoff-Chu generator for a sequence of the given
// length, root and cyclic shift, clocked at rate against sampleRate.
// root must be coprime with length (gcd(root, length) == 1) so the
// sequence keeps its zero-autocorrelation property, and sampleRate must
// be nonzero (ErrInvalidRate otherwise). lut is filled in
// place if not already initialized, same idempotent contract as Bank.
func NewZC(lut *LUT, length, root, shift, rate, sampleRate uint32) (*ZC, error) {
	if length == 0 {
		return nil, ErrInvalidLength
	}
	if gcd(root, length) != 1 {
		return nil, ErrRootNotCoprime
	}
	if sampleRate == 0 {
		return nil, ErrInvalidRate
	}

	z := &ZC{
		lut:            lut,
		length:         length,
		root:           root,
		shift:          shift,
		phaseIncrement: iq.Increment(rate, sampleRate),
	}
	FillLUT(lut)
	z.reset()
	return z, nil
}

func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// reset rewinds the generator to its initial state: phase and n both at
// their maximum value so the first advance wraps immediately and the
// first emitted chip is z[0].
func (z *ZC) reset() {
	z.phase = ^iq.Phase(0)
	z.n = ^uint32(0)
	z.value = iq.Symbol{}
}

// Process emits len(out) output samples at the generator's configured
// sample rate, advancing the chip index on every phase wrap.
func (z *ZC) Process(out []iq.Symbol) {
	s := *z

	for idx := range out {
		previous := s.phase
		s.phase += s.phaseIncrement
		if iq.Wrapped(previous, s.phase) {
			l := s.length
			s.n = (s.n + 1) % l
			n := s.n
			u := s.root
			i := u * n * (n + (l % 2) + 2*s.shift)
			i *= (uint32(1) << 31) / l
			v := lookup(s.lut, -i)
			s.value = iq.Symbol{
				I: iq.Sample(int32(v.I) * dacOutputScale),
				Q: iq.Sample(int32(v.Q) * dacOutputScale),
			}
		}
		out[idx] = s.value
	}

	*z = s
}
