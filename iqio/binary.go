// Package iqio writes a synthesized frame to the two on-disk artifacts a
// downstream receiver consumes: the interleaved I/Q sample stream and the
// pre-filter symbol trace.
package iqio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/roseopicta/cvqkd-iq-synth/iq"
)

// WriteSamples writes samples as little-endian interleaved int16 pairs,
// I0 Q0 I1 Q1 ..., the wire format a downstream receiver demodulates
// directly without any header or framing.
func WriteSamples(path string, samples []iq.Symbol) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("iqio: create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	buf := make([]byte, 4)
	for _, s := range samples {
		binary.LittleEndian.PutUint16(buf[0:2], uint16(s.I))
		binary.LittleEndian.PutUint16(buf[2:4], uint16(s.Q))
		if _, err := w.Write(buf); err != nil {
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
