package iqio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/roseopicta/cvqkd-iq-synth/iq"
)

// WriteSymbolTrace writes one "I\tQ\n" line per symbol, the pre-filter
// trace used to verify the Gaussian shaping stage independently of the
// RRC interpolation and phasor mixing that follow it.
func WriteSymbolTrace(path string, symbols []iq.Symbol) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("iqio: create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, s := range symbols {
		if _, err := fmt.Fprintf(w, "%d\t%d\n", s.I, s.Q); err != nil {
			f.Close()
			return fmt.Errorf("iqio: write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("iqio: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("iqio: close %s: %w", path, err)
	}
	return nil
}
