// This file is part of wmsboard.
//
// wmsboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// wmsboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with wmsboard.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of a capture to disk as a WAV file. Note
// that sample data is buffered in memory in its entirity, and written to disk
// when the WavWriter is closed.
//
// The Read() function is the complement of WavWriter and reads the PCM data
// from a WAV file. Only 8-bit mono files can be read. The Load() function
// reads either a WAV file or a raw capture.
package wavwriter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/logger"
)

// the WAV format value for uncompressed PCM
const pcmFormat = 1

// WavWriter implements the io.WriteCloser interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: invalid sample rate (%d)", sampleRate)
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0),
	}

	return aw, nil
}

// Write implements the io.Writer interface. Each byte is one unsigned 8-bit
// sample.
func (aw *WavWriter) Write(samples []uint8) (int, error) {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
	return len(samples), nil
}

// Close implements the io.Closer interface. The WAV file is written on close.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, 8, 1, pcmFormat)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Read the PCM data from a WAV file. Returns the samples and the sample rate.
func Read(filename string) ([]uint8, int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, curated.Errorf("wavwriter: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, curated.Errorf("wavwriter: not a valid wav file (%s)", filename)
	}

	if dec.BitDepth != 8 || dec.NumChans != 1 {
		return nil, 0, curated.Errorf("wavwriter: only 8-bit mono files are supported (%d-bit, %d channels)", dec.BitDepth, dec.NumChans)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, curated.Errorf("wavwriter: %v", err)
	}

	samples := make([]uint8, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = uint8(v)
	}

	return samples, int(dec.SampleRate), nil
}

// Load reads a capture from disk. Files with the .wav extension are decoded
// with Read(). Any other file is assumed to be raw sample data at the default
// sample rate.
func Load(filename string, defaultSampleRate int) ([]uint8, int, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".wav" {
		return Read(filename)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, 0, curated.Errorf("wavwriter: %v", err)
	}

	return data, defaultSampleRate, nil
}
