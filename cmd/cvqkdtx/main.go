// Command cvqkdtx generates one CV-QKD transmit frame: a Zadoff-Chu sync
// preamble, an RRC-shaped Gaussian payload mixed with two pilot tones, and
// a silent tail, then writes the interleaved I/Q samples and the
// pre-filter symbol trace to disk.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/roseopicta/cvqkd-iq-synth/config"
	"github.com/roseopicta/cvqkd-iq-synth/frame"
	"github.com/roseopicta/cvqkd-iq-synth/iqio"
)

func main() {
	opts := config.Default()
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:   "cvqkdtx",
		Short: "Synthesize a CV-QKD transmit waveform",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cfgPath)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfgPath, "config", "", "YAML file of option overrides, applied after the other flags (file values win)")
	flags.Uint32Var(&opts.SampleRate, "sample-rate", opts.SampleRate, "sample rate in Hz")
	flags.Uint32Var(&opts.SymbolRate, "symbol-rate", opts.SymbolRate, "symbol rate in Hz")
	flags.Uint32Var(&opts.ZCRate, "zc-rate", opts.ZCRate, "Zadoff-Chu chip rate in Hz")
	flags.Uint32Var(&opts.NumSymbols, "num-symbols", opts.NumSymbols, "number of payload symbols")
	flags.Uint32Var(&opts.NumNullSymbols, "num-null-symbols", opts.NumNullSymbols, "number of silent tail symbols")
	flags.Uint32Var(&opts.ZCLength, "zc-length", opts.ZCLength, "Zadoff-Chu sequence length")
	flags.Uint32Var(&opts.ZCRoot, "zc-root", opts.ZCRoot, "Zadoff-Chu root index")
	flags.Uint32Var(&opts.ZCShift, "zc-shift", opts.ZCShift, "Zadoff-Chu cyclic shift")
	flags.Uint32Var(&opts.SymbolScale, "symbol-scale", opts.SymbolScale, "Gaussian symbol scale")
	flags.Uint32Var(&opts.SymbolMaxValue, "symbol-max-value", opts.SymbolMaxValue, "Gaussian symbol saturation magnitude")
	flags.BoolVar(&opts.SymbolClamp, "symbol-clamp", opts.SymbolClamp, "clamp symbols to symbol-max-value (otherwise they only saturate at the Q15 limit)")
	flags.Float64Var(&opts.RRCRollOff, "rrc-roll-off", opts.RRCRollOff, "RRC filter roll-off factor")
	flags.Uint32Var(&opts.ShiftFrequency, "shift-frequency", opts.ShiftFrequency, "multiplicative shift carrier frequency in Hz")
	flags.Uint32Var(&opts.Pilot1Freq, "pilot-1-freq", opts.Pilot1Freq, "pilot tone 1 frequency in Hz")
	flags.Float64Var(&opts.Pilot1Amplitude, "pilot-1-amplitude", opts.Pilot1Amplitude, "pilot tone 1 amplitude")
	flags.Uint32Var(&opts.Pilot2Freq, "pilot-2-freq", opts.Pilot2Freq, "pilot tone 2 frequency in Hz")
	flags.Float64Var(&opts.Pilot2Amplitude, "pilot-2-amplitude", opts.Pilot2Amplitude, "pilot tone 2 amplitude")
	flags.Uint32Var(&opts.Seed, "seed", opts.Seed, "Gaussian shaper RNG seed")
	flags.StringVar(&opts.Output, "output", opts.Output, "output path for the interleaved I/Q sample stream")
	flags.StringVar(&opts.OutputSymbols, "output-symbols", opts.OutputSymbols, "output path for the pre-filter symbol trace")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts config.Options, cfgPath string) error {
	logger := log.Default()

	if cfgPath != "" {
		if err := config.Load(cfgPath, &opts); err != nil {
			return fmt.Errorf("cvqkdtx: %w", err)
		}
		logger.Info("loaded config overrides", "path", cfgPath)
	}

	logger.Info("synthesizing frame",
		"sample_rate", opts.SampleRate, "symbol_rate", opts.SymbolRate,
		"num_symbols", opts.NumSymbols, "zc_length", opts.ZCLength)

	result, err := frame.Synthesize(opts)
	if err != nil {
		return fmt.Errorf("cvqkdtx: %w", err)
	}
	logger.Info("frame synthesized",
		"samples", len(result.Samples), "zc_samples", result.NumSamplesZC,
		"payload_samples", result.NumSamplesPayload, "tail_samples", result.NumSamplesTail)

	// A write failure here is logged, not fatal: the frame itself was
	// synthesized successfully, and the two outputs are independent of
	// each other, so one failing should not hide the other's result.
	if err := iqio.WriteSamples(opts.Output, result.Samples); err != nil {
		logger.Error("failed to write sample stream", "err", err)
	} else {
		logger.Info("wrote sample stream", "path", opts.Output)
	}

	if err := iqio.WriteSymbolTrace(opts.OutputSymbols, result.Symbols); err != nil {
		logger.Error("failed to write symbol trace", "err", err)
	} else {
		logger.Info("wrote symbol trace", "path", opts.OutputSymbols)
	}

	return nil
}
