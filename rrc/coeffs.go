// Package rrc implements the polyphase root-raised-cosine interpolating
// filter that turns the symbol-rate payload into sample-rate I/Q output:
// block C of the waveform pipeline.
package rrc

import (
	"errors"
	"math"

	"github.com/roseopicta/cvqkd-iq-synth/iq"
	"github.com/roseopicta/cvqkd-iq-synth/util"
)

// NumSymbols is the number of filter taps (history length).
const NumSymbols = 11

// PointsPerSymbol is the number of polyphase branches (phases) per
// symbol period.
const PointsPerSymbol = 256

// LUTSize is the total coefficient count.
const LUTSize = NumSymbols * PointsPerSymbol

// symbolFactor and phaseFactor choose the interleaved memory layout: the
// NumSymbols taps for one phase lie contiguously, which is what lets the
// per-sample inner loop walk coeff[0..NumSymbols) with a unit stride.
const (
	symbolFactor = 1
	phaseFactor  = NumSymbols
)

// ErrInvalidRollOff is returned for a roll-off factor outside (0, 1).
var ErrInvalidRollOff = errors.New("rrc: roll-off factor must be in (0, 1)")

// CoeffLUT holds the polyphase-interleaved RRC coefficients: for phase p
// and tap k, the coefficient lives at index p*phaseFactor + k*symbolFactor.
type CoeffLUT [LUTSize]iq.Sample

// BuildCoeffLUT computes the RRC impulse response for the given roll-off
// factor and writes it into lut using the closed-form cases: the center
// tap, the L'Hopital-derived singularity at |4*rollOff*t| == 1, and the
// generic formula elsewhere.
func BuildCoeffLUT(lut *CoeffLUT, rollOff float64) error {
	if rollOff <= 0 || rollOff >= 1 {
		return ErrInvalidRollOff
	}

	scale := iq.SampleMax / (1 + rollOff*(4/math.Pi-1))
	midPoint := LUTSize / 2

	for i := 0; i < LUTSize; i++ {
		tap := i / PointsPerSymbol
		phase := i % PointsPerSymbol
		target := tap*symbolFactor + phase*phaseFactor

		t := float64(i-midPoint) / float64(PointsPerSymbol)
		denumScale := 4 * rollOff * t

		var v float64
		switch {
		case i == midPoint:
			v = iq.SampleMax
		case util.Abs(denumScale) == 1:
			v = scale * (rollOff / math.Sqrt2) *
				((1+2/math.Pi)*math.Sin(math.Pi/(4*rollOff)) +
					(1-2/math.Pi)*math.Cos(math.Pi/(4*rollOff)))
		default:
			v = (math.Sin(math.Pi*t*(1-rollOff)) +
				4*rollOff*t*math.Cos(math.Pi*t*(1+rollOff))) /
				(math.Pi * t * (1 - denumScale*denumScale)) * scale
		}

		lut[target] = iq.Sample(math.Round(v))
	}
	return nil
}
