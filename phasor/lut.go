// Package phasor implements the shared cosine/sine phasor table and the
// two blocks that read it: the phasor bank (block D, complex mixing plus
// pilot tone injection) and, in zc.go, the Zadoff-Chu sync generator
// (block E). Both blocks read the same table; exactly one fills it, and
// the fill is idempotent so either call order is safe.
package phasor

import (
	"math"

	"github.com/roseopicta/cvqkd-iq-synth/iq"
)

// LUTLog2Size is log2 of the phasor table size: 2^15 = 32768 entries.
const LUTLog2Size = 15

// LUTSize is the number of entries in the phasor table.
const LUTSize = 1 << LUTLog2Size

// integralShift is the number of low phase bits discarded when indexing
// the table: the top 15 bits of a 32-bit phase select one of LUTSize
// entries, with no interpolation.
const integralShift = 32 - LUTLog2Size

// LUT holds cos/sin sampled over [0, 2*pi) in Q15. It is never mutated
// after first fill; FillLUT is idempotent so block D or block E may
// perform that fill, whichever runs first.
type LUT [LUTSize]iq.Symbol

// NewLUT allocates and fills a phasor table. Used by callers (typically
// the driver) that want to own initialization explicitly rather than
// rely on the idempotent fill inside NewBank/NewZC - see the design note
// on avoiding initialization races under parallel use.
func NewLUT() *LUT {
	lut := &LUT{}
	FillLUT(lut)
	return lut
}

// FillLUT populates lut with a full-turn cosine/sine table, unless it
// has already been initialized. Initialization is detected by checking
// the first entry: an uninitialized table never naturally has
// lut[0] == {SampleMax, 0}, since that's exactly what a real fill
// produces at phase index 0 (cos(0)=1, sin(0)=0).
func FillLUT(lut *LUT) {
	if lut[0].I == iq.SampleMax && lut[0].Q == 0 {
		return
	}
	for i := 0; i < LUTSize; i++ {
		angle := 2 * math.Pi * float64(i) / float64(LUTSize)
		lut[i] = iq.Symbol{
			I: iq.Sample(math.Round(math.Cos(angle) * iq.SampleMax)),
			Q: iq.Sample(math.Round(math.Sin(angle) * iq.SampleMax)),
		}
	}
}

// lookup indexes the table by the top LUTLog2Size bits of phase.
func lookup(lut *LUT, phase iq.Phase) iq.Symbol {
	return lut[phase>>integralShift]
}
