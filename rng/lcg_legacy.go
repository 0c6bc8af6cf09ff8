package rng

// LegacySource reproduces the early-prototype RNG formula
// (state*995893231 + 93281; the output is bits 16..30 of state, the low
// 15 bits of its upper half, XORed with the low 15 bits of mask). Its
// multiplier does not satisfy the Hull-Dobell full-period conditions
// (multiplier-1 is not divisible by 4),
// so it is deprecated: kept only so byte-for-byte parity with old logs
// is possible when specifically requested, never used by default.
type LegacySource struct {
	state uint32
	mask  uint32
}

// legacyRandMax is the output range of the legacy generator: 15 bits.
const legacyRandMax uint32 = 0x7fff

// NewLegacy constructs the deprecated RNG variant. seed must be nonzero.
func NewLegacy(seed, mask uint32) (*LegacySource, error) {
	if seed == 0 {
		return nil, ErrInvalidSeed
	}
	return &LegacySource{state: seed, mask: mask}, nil
}

func (s *LegacySource) rawBits() uint32 {
	s.state = s.state*995893231 + 93281
	return ((s.state / 65536) ^ s.mask) & legacyRandMax
}

// Uniform32 shifts the 15-bit raw output left by 17 bits, the legacy
// generator's own fill width (RNG_SHIFT_LEFT=17 in the original source,
// versus 1 for the default generator).
func (s *LegacySource) Uniform32() uint32 {
	return s.rawBits() << 17
}

// Float returns a value in [0, 1] (note: closed interval, unlike the
// default generator's [0, 1) - this is a quirk of the legacy formula
// dividing by RNG_RAND_MAX instead of RNG_RAND_MAX+1).
func (s *LegacySource) Float() float64 {
	return float64(s.rawBits()) / float64(legacyRandMax)
}
