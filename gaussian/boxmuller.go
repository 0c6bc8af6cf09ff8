package gaussian

import (
	"math"

	"github.com/roseopicta/cvqkd-iq-synth/iq"
	"github.com/roseopicta/cvqkd-iq-synth/rng"
	"github.com/roseopicta/cvqkd-iq-synth/util"
)

// BoxMuller is the floating-point reference Gaussian shaper: same
// Fill(out) contract as Shaper, using the classic Box-Muller transform
// (log, sqrt, cos, sin). It is not on the critical path - the ICDF
// shaper is ~2.5x faster - but is useful as a cross-validation oracle
// since it needs no LUT.
type BoxMuller struct {
	src          *rng.Source
	scale        uint32
	maxMagnitude uint32
	clamp        bool
}

// NewBoxMuller constructs the reference shaper with the same parameter
// order as New.
func NewBoxMuller(scale, maxMagnitude uint32, clamp bool, seed, mask uint32) (*BoxMuller, error) {
	if scale >= 1<<16 {
		return nil, ErrInvalidScale
	}
	src, err := rng.New(seed, mask)
	if err != nil {
		return nil, err
	}
	return &BoxMuller{src: src, scale: scale, maxMagnitude: maxMagnitude, clamp: clamp}, nil
}

func (b *BoxMuller) saturate(v float64) iq.Sample {
	lo, hi := int16(-iq.SampleMax), int16(iq.SampleMax)
	if b.clamp {
		max := b.maxMagnitude
		if max > iq.SampleMax {
			max = iq.SampleMax
		}
		lo, hi = -int16(max), int16(max)
	}
	return util.ClampInt16(int32(math.Round(v)), lo, hi)
}

// Fill writes len(out) I/Q samples. Every scalar component (I and Q
// alike) gets its own Box-Muller transform from two fresh uniform draws,
// of which only the cosine output is kept.
func (b *BoxMuller) Fill(out []iq.Symbol) {
	draw := func() float64 {
		u1 := b.src.Float()
		if u1 <= 0 {
			u1 = 1e-300
		}
		u2 := b.src.Float()
		r := math.Sqrt(-2 * math.Log(u1))
		return r * math.Cos(2*math.Pi*u2) * float64(b.scale)
	}
	for i := range out {
		out[i] = iq.Symbol{I: b.saturate(draw()), Q: b.saturate(draw())}
	}
}
