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

package regression_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/wmsboard/hardware/pia"
	"github.com/jetsetilly/wmsboard/regression"
	"github.com/jetsetilly/wmsboard/test"
)

// soundROM returns a ROM image that writes value to the DAC on IRQ
func soundROM(value uint8) []uint8 {
	rom := make([]uint8, 0x800)

	put := func(address uint16, bytes ...uint8) {
		copy(rom[address-0xf800:], bytes)
	}

	// LDS #$007f; CLI; BRA *
	put(0xf800, 0x8e, 0x00, 0x7f, 0x0e, 0x20, 0xfe)

	// LDAA #value; STAA $0400; BRA *
	put(0xf806, 0x86, value, 0xb7, 0x04, 0x00, 0x20, 0xfe)

	put(0xfff8, 0xf8, 0x06)
	put(0xfffe, 0xf8, 0x00)

	return rom
}

// setup a resource directory in a temporary working directory
func setup(t *testing.T) string {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".wmsboard", 0700))

	romFile, err := filepath.Abs("sound.rom")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.WriteFile(romFile, soundROM(0x40), 0600))

	return romFile
}

func TestRegression(t *testing.T) {
	romFile := setup(t)

	w := &strings.Builder{}
	test.DemandSuccess(t, regression.RegressList(w))
	test.ExpectEquality(t, w.String(), "database is empty\n")

	reg := &regression.CaptureRegression{
		ROMFile:     romFile,
		SoundCode:   0x19,
		WarmupSteps: 100,
		SampleCount: 1024,
		Model:       pia.Echo,
		Notes:       "test entry",
	}

	w.Reset()
	test.DemandSuccess(t, regression.RegressAdd(w, reg))
	test.ExpectSuccess(t, strings.Contains(w.String(), "added: "))

	w.Reset()
	test.DemandSuccess(t, regression.RegressList(w))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "000 [capture] "))
	test.ExpectSuccess(t, strings.Contains(w.String(), "sfx=19 warmup=100 samples=1024 pia=Echo [test entry]"))

	w.Reset()
	test.DemandSuccess(t, regression.RegressRun(w, true, false, nil))
	test.ExpectSuccess(t, strings.Contains(w.String(), "regression tests: 1 succeed, 0 fail\n"))

	// change the sound that the ROM makes
	test.DemandSuccess(t, os.WriteFile(romFile, soundROM(0x41), 0600))

	w.Reset()
	test.DemandSuccess(t, regression.RegressRun(w, true, false, nil))
	test.ExpectSuccess(t, strings.Contains(w.String(), "regression tests: 0 succeed, 1 fail\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "audio digest does not match"))

	// failed captures are saved in the regression directory
	saved, err := filepath.Glob(filepath.Join(".wmsboard", "regression", "fail_sound_sfx19_*.raw"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(saved), 1)

	// run previous fails only
	w.Reset()
	test.DemandSuccess(t, regression.RegressRun(w, false, false, []string{"FAILS"}))
	test.ExpectSuccess(t, strings.Contains(w.String(), "regression tests: 0 succeed, 1 fail\n"))

	// declining the confirmation leaves the entry in place
	w.Reset()
	test.DemandSuccess(t, regression.RegressDelete(w, strings.NewReader("n\n"), "0"))
	w.Reset()
	test.DemandSuccess(t, regression.RegressList(w))
	test.ExpectSuccess(t, strings.Contains(w.String(), "Total: 1\n"))

	w.Reset()
	test.DemandSuccess(t, regression.RegressDelete(w, strings.NewReader("y\n"), "0"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "deleted test #0"))

	w.Reset()
	test.DemandSuccess(t, regression.RegressList(w))
	test.ExpectEquality(t, w.String(), "database is empty\n")

	test.ExpectFailure(t, regression.RegressDelete(w, strings.NewReader("y\n"), "0"))
	test.ExpectFailure(t, regression.RegressDelete(w, strings.NewReader("y\n"), "zero"))
}

func TestStateDigestOnly(t *testing.T) {
	romFile := setup(t)

	reg := &regression.CaptureRegression{
		ROMFile:     romFile,
		SoundCode:   0x19,
		WarmupSteps: 100,
		SampleCount: 256,
		Model:       pia.FixedZero,
		Mode:        regression.DigestStateOnly,
	}

	w := &strings.Builder{}
	test.DemandSuccess(t, regression.RegressAdd(w, reg))

	w.Reset()
	test.DemandSuccess(t, regression.RegressRun(w, false, false, []string{"0"}))
	test.ExpectSuccess(t, strings.Contains(w.String(), "regression tests: 1 succeed, 0 fail\n"))

	w.Reset()
	test.DemandSuccess(t, regression.RegressList(w))
	test.ExpectSuccess(t, strings.Contains(w.String(), "pia=FixedZero digest=state"))
}

func TestNoPreviousFails(t *testing.T) {
	setup(t)

	w := &strings.Builder{}
	test.DemandSuccess(t, regression.RegressRun(w, false, false, []string{"FAILS"}))
	test.ExpectEquality(t, w.String(), "no previous fails\n")
}

func TestDigestMode(t *testing.T) {
	for _, m := range []regression.DigestMode{regression.DigestAudioOnly, regression.DigestStateOnly, regression.DigestBoth} {
		p, err := regression.ParseDigestMode(m.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, m)
	}
	_, err := regression.ParseDigestMode("video")
	test.ExpectFailure(t, err)
}
