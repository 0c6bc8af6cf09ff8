// Package frame is the glue that orders blocks A through E into one
// transmit frame: a Zadoff-Chu sync preamble, a pulse-shaped payload of
// Gaussian symbols mixed with two pilot tones, and a silent tail.
package frame

import (
	"fmt"

	"github.com/roseopicta/cvqkd-iq-synth/config"
	"github.com/roseopicta/cvqkd-iq-synth/gaussian"
	"github.com/roseopicta/cvqkd-iq-synth/iq"
	"github.com/roseopicta/cvqkd-iq-synth/phasor"
	"github.com/roseopicta/cvqkd-iq-synth/rrc"
)

// Result holds the two artifacts a frame run produces: the full
// interleaved-ready sample stream (ZC preamble + payload + tail) and
// the pre-filter symbol trace (payload symbols plus the RRC's zero
// tail padding), which together feed the two output writers.
type Result struct {
	Samples []iq.Symbol
	Symbols []iq.Symbol

	NumSamplesZC      int
	NumSamplesPayload int
	NumSamplesTail    int
}

// Synthesize runs the full pipeline for one batch: block A seeds block
// B, block C upsamples and pulse-shapes the result, block D mixes in the
// shift phasor and two pilot tones, and block E independently writes the
// ZC preamble into the same buffer's head. The batch either completes or
// the error is returned with no partial Result - there is no streaming
// and no retry.
func Synthesize(opts config.Options) (Result, error) {
	if opts.SampleRate == 0 || opts.SymbolRate == 0 || opts.ZCRate == 0 {
		return Result{}, fmt.Errorf("frame: sample_rate, symbol_rate and zc_rate must be nonzero")
	}

	numSamplesZC := int(opts.ZCLength) * int(opts.SampleRate/opts.ZCRate)
	numSamplesPayload := int(opts.NumSymbols) * int(opts.SampleRate/opts.SymbolRate)
	numSamplesTail := int(opts.NumNullSymbols) * int(opts.SampleRate/opts.SymbolRate)
	numSamples := numSamplesZC + numSamplesPayload + numSamplesTail

	symbols := make([]iq.Symbol, int(opts.NumSymbols)+rrc.NumSymbols)
	shaper, err := gaussian.New(opts.SymbolScale, opts.SymbolMaxValue, opts.SymbolClamp, opts.Seed, 0)
	if err != nil {
		return Result{}, fmt.Errorf("frame: gaussian shaper: %w", err)
	}
	shaper.Fill(symbols[:opts.NumSymbols])
	// symbols[opts.NumSymbols:] stays zero - the RRC tail padding from
	// spec section 4.C, draining the filter's history with silence
	// instead of garbage.

	var rrcLUT rrc.CoeffLUT
	if err := rrc.BuildCoeffLUT(&rrcLUT, opts.RRCRollOff); err != nil {
		return Result{}, fmt.Errorf("frame: rrc coefficients: %w", err)
	}
	filter, err := rrc.New(&rrcLUT, opts.SymbolRate, opts.SampleRate)
	if err != nil {
		return Result{}, fmt.Errorf("frame: rrc filter: %w", err)
	}

	samples := make([]iq.Symbol, numSamples)

	// Discard an initial transient run of ~6.25 symbol periods into a
	// scratch buffer that is never read again. The original driver
	// reused &samples[numSamplesZC] as the destination for both this
	// call and the kept-payload call below, relying on the second call
	// to overwrite the first; this implementation uses a distinct
	// scratch slice instead; since the transient is discarded either
	// way, the two are behaviorally identical but this avoids depending
	// on write-after-write ordering.
	samplesPerSymbol := int(opts.SampleRate / opts.SymbolRate)
	numFirstSamplesTruncated := samplesPerSymbol * 25 / 4
	transient := make([]iq.Symbol, numFirstSamplesTruncated)
	consumed := filter.Process(symbols, transient)

	consumed += filter.Process(symbols[consumed:], samples[numSamplesZC:numSamplesZC+numSamplesPayload])
	// samples[numSamplesZC+numSamplesPayload:] is left at its zero value:
	// the tail is literal silence before phasor mixing, per spec
	// section 1 ("then a silent tail"). Pilot tones are still mixed
	// into it below so downstream phase/frequency recovery has a
	// reference signal through the tail.

	frequency := [phasor.NumPhasors]uint32{opts.ShiftFrequency, opts.Pilot1Freq, opts.Pilot2Freq}
	amplitude := [phasor.NumPhasors]float64{config.ShiftAmplitude(), opts.Pilot1Amplitude, opts.Pilot2Amplitude}

	lut := phasor.NewLUT()
	bank, err := phasor.NewBank(lut, phasor.AlgorithmShiftTwoPilots, frequency, amplitude, opts.SampleRate)
	if err != nil {
		return Result{}, fmt.Errorf("frame: phasor bank: %w", err)
	}
	bank.Process(samples[numSamplesZC : numSamplesZC+numSamplesPayload+numSamplesTail])

	zc, err := phasor.NewZC(lut, opts.ZCLength, opts.ZCRoot, opts.ZCShift, opts.ZCRate, opts.SampleRate)
	if err != nil {
		return Result{}, fmt.Errorf("frame: zc generator: %w", err)
	}
	zc.Process(samples[:numSamplesZC])

	return Result{
		Samples:           samples,
		Symbols:           symbols,
		NumSamplesZC:      numSamplesZC,
		NumSamplesPayload: numSamplesPayload,
		NumSamplesTail:    numSamplesTail,
	}, nil
}
