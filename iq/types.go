// Package iq defines the fixed-point data types shared by every DSP block
// in the waveform pipeline: the Q15 sample representation, the 32-bit
// accumulator used for multiply-accumulate chains, and the 32-bit phase
// accumulator used by every oscillator (RRC symbol clock, phasor bank,
// Zadoff-Chu chip clock).
//
// This package exists to break import cycles between the blocks (rng,
// gaussian, rrc, phasor) that all need the same sample and phase types.
package iq

// Sample is a signed 16-bit fixed-point value in Q15 (one sign bit, 15
// fractional bits), representing a real number in [-1, 1).
type Sample = int16

// SampleMax is the saturation ceiling and unit amplitude for a Sample.
// The range of a Sample is [-SampleMax, SampleMax]; -32768 is never
// produced so that negation never overflows.
const SampleMax = 32767

// Accumulator holds the 32-bit intermediate product of a Sample times a
// Sample, or a Sample times an amplitude. Every MAC chain in the
// pipeline is followed by Scale to bring the result back to Q15.
type Accumulator = int32

// Scale rescales an Accumulator back to Q15 by an arithmetic right shift
// of 15 bits, per the pipeline's single "SCALE" convention. It does not
// saturate: callers are responsible for bounding coefficient and
// amplitude magnitudes so the accumulator never overflows int32.
func Scale(acc Accumulator) Sample {
	return Sample(acc >> 15)
}

// Symbol is a pair of Q15 samples representing the complex number i+jq.
type Symbol struct {
	I Sample
	Q Sample
}

// Phase is an unsigned 32-bit fraction of a full turn (modulo 2*pi),
// advanced by a fixed increment every sample period. Wrap is detected by
// unsigned underflow: new < previous.
type Phase = uint32

// Increment computes the phase increment for an oscillator running at
// frequency Hz against a sample clock running at rate Hz:
//
//	floor(frequency * 2^32 / rate)
//
// The multiply is carried out in 64 bits and truncated to avoid
// overflowing a 32-bit intermediate.
// Callers must validate rate != 0 before calling; every block in this
// module does so in its constructor, per the "no partial state" error
// handling contract.
func Increment(frequency, rate uint32) Phase {
	return Phase(uint64(frequency) << 32 / uint64(rate))
}

// Wrapped reports whether advancing from previous to next phase wrapped
// around the 32-bit modulus, i.e. whether a new symbol/chip period began.
func Wrapped(previous, next Phase) bool {
	return next < previous
}
