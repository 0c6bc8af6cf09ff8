// Package config defines the waveform driver's option set: the table of
// recognized CLI flags / YAML keys from spec section 6, with their
// documented defaults.
package config

// Options holds every knob the driver exposes, gathered into a single
// struct the way the original dsp_parameter_t groups them, so flags,
// YAML config files, and defaults can all populate the same value.
type Options struct {
	SampleRate     uint32 `yaml:"sample_rate"`
	SymbolRate     uint32 `yaml:"symbol_rate"`
	ZCRate         uint32 `yaml:"zc_rate"`
	NumSymbols     uint32 `yaml:"num_symbols"`
	NumNullSymbols uint32 `yaml:"num_null_symbols"`

	ZCLength uint32 `yaml:"zc_length"`
	ZCRoot   uint32 `yaml:"zc_root"`
	ZCShift  uint32 `yaml:"zc_shift"`

	SymbolScale    uint32 `yaml:"symbol_scale"`
	SymbolMaxValue uint32 `yaml:"symbol_max_value"`
	SymbolClamp    bool   `yaml:"symbol_clamp"`

	RRCRollOff float64 `yaml:"rrc_roll_off"`

	ShiftFrequency uint32 `yaml:"shift_frequency"`

	Pilot1Freq      uint32  `yaml:"pilot_1_freq"`
	Pilot1Amplitude float64 `yaml:"pilot_1_amplitude"`
	Pilot2Freq      uint32  `yaml:"pilot_2_freq"`
	Pilot2Amplitude float64 `yaml:"pilot_2_amplitude"`

	Output        string `yaml:"output"`
	OutputSymbols string `yaml:"output_symbols"`

	Seed uint32 `yaml:"seed"` // not an original CLI flag; the original driver hardcodes seed=1
}

// shiftAmplitude is the fixed gain applied to the multiplicative shift
// phasor (1/sqrt(2)). There is no user-facing flag for it in spec
// section 6 - the original driver hardcodes it the same way.
const shiftAmplitude = 0.70710678118

// ShiftAmplitude returns the fixed P0 gain.
func ShiftAmplitude() float64 { return shiftAmplitude }

// Default returns the option set with every documented default from
// spec section 6.
func Default() Options {
	return Options{
		SampleRate:      2_000_000_000,
		SymbolRate:      100_000_000,
		ZCRate:          50_000_000,
		NumSymbols:      1_000_000,
		NumNullSymbols:  10,
		ZCLength:        3989,
		ZCRoot:          5,
		ZCShift:         0,
		SymbolScale:     7500,
		SymbolMaxValue:  0x5fff,
		SymbolClamp:     false,
		RRCRollOff:      0.3,
		ShiftFrequency:  0,
		Pilot1Freq:      200_000_000,
		Pilot1Amplitude: 0.16,
		Pilot2Freq:      220_000_000,
		Pilot2Amplitude: 0.16,
		Output:          "out_iq.bin",
		OutputSymbols:   "out_symbols.tsv",
		Seed:            1,
	}
}
