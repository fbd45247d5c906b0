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

package regression

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jetsetilly/wmsboard/capture"
	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/database"
	"github.com/jetsetilly/wmsboard/digest"
	"github.com/jetsetilly/wmsboard/hardware"
	"github.com/jetsetilly/wmsboard/hardware/pia"
	"github.com/jetsetilly/wmsboard/paths"
)

const captureEntryType = "capture"

const (
	captureFieldROMFile int = iota
	captureFieldSoundCode
	captureFieldWarmup
	captureFieldSamples
	captureFieldPIA
	captureFieldDigestMode
	captureFieldNotes
	captureFieldAudioDigest
	captureFieldStateDigest
	numCaptureFields
)

// CaptureRegression is the regression entry type for a single capture.
type CaptureRegression struct {
	ROMFile     string
	SoundCode   uint8
	WarmupSteps int
	SampleCount int
	Model       pia.Model
	Mode        DigestMode
	Notes       string

	audioDigest string
	stateDigest string
}

func deserialiseCaptureEntry(fields database.SerialisedEntry) (database.Entry, error) {
	reg := &CaptureRegression{}

	if len(fields) != numCaptureFields {
		return nil, curated.Errorf("capture: wrong number of fields (%d)", len(fields))
	}

	reg.ROMFile = fields[captureFieldROMFile]
	reg.Notes = fields[captureFieldNotes]
	reg.audioDigest = fields[captureFieldAudioDigest]
	reg.stateDigest = fields[captureFieldStateDigest]

	code, err := strconv.ParseUint(fields[captureFieldSoundCode], 16, 8)
	if err != nil {
		return nil, curated.Errorf("capture: invalid sound code (%s)", fields[captureFieldSoundCode])
	}
	reg.SoundCode = uint8(code)

	reg.WarmupSteps, err = strconv.Atoi(fields[captureFieldWarmup])
	if err != nil {
		return nil, curated.Errorf("capture: invalid warm-up field (%s)", fields[captureFieldWarmup])
	}

	reg.SampleCount, err = strconv.Atoi(fields[captureFieldSamples])
	if err != nil {
		return nil, curated.Errorf("capture: invalid samples field (%s)", fields[captureFieldSamples])
	}

	reg.Model, err = pia.ParseModel(fields[captureFieldPIA])
	if err != nil {
		return nil, curated.Errorf("capture: %v", err)
	}

	reg.Mode, err = ParseDigestMode(fields[captureFieldDigestMode])
	if err != nil {
		return nil, curated.Errorf("capture: %v", err)
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg CaptureRegression) ID() string {
	return captureEntryType
}

// String implements the database.Entry interface.
func (reg CaptureRegression) String() string {
	s := fmt.Sprintf("[%s] %s sfx=%02x warmup=%d samples=%d pia=%s", reg.ID(), reg.ROMFile,
		reg.SoundCode, reg.WarmupSteps, reg.SampleCount, reg.Model)
	if reg.Mode != DigestBoth {
		s = fmt.Sprintf("%s digest=%s", s, reg.Mode)
	}
	if reg.Notes != "" {
		s = fmt.Sprintf("%s [%s]", s, reg.Notes)
	}
	return s
}

// Serialise implements the database.Entry interface.
func (reg *CaptureRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.ROMFile,
		fmt.Sprintf("%02x", reg.SoundCode),
		strconv.Itoa(reg.WarmupSteps),
		strconv.Itoa(reg.SampleCount),
		reg.Model.String(),
		reg.Mode.String(),
		reg.Notes,
		reg.audioDigest,
		reg.stateDigest,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg CaptureRegression) CleanUp() error {
	return nil
}

// regress implements the Regressor interface.
func (reg *CaptureRegression) regress(newRegression bool, output io.Writer, msg string) (bool, string, error) {
	if _, err := io.WriteString(output, msg); err != nil {
		return false, "", err
	}

	data, err := os.ReadFile(reg.ROMFile)
	if err != nil {
		return false, "", curated.Errorf("capture: %v", err)
	}

	m, err := hardware.NewMachine(reg.Model)
	if err != nil {
		return false, "", curated.Errorf("capture: %v", err)
	}

	err = m.LoadROM(data)
	if err != nil {
		return false, "", curated.Errorf("capture: %v", err)
	}

	drv := capture.NewDriver(m, capture.Config{
		WarmupSteps: reg.WarmupSteps,
		SoundCode:   reg.SoundCode,
		SampleCount: reg.SampleCount,
	})

	buffer, err := drv.Capture()
	if err != nil {
		return false, "", curated.Errorf("capture: %v", err)
	}

	audio := digest.AudioHash(buffer)
	state := digest.NewSnapshot(m).Hash()

	if newRegression {
		if reg.Mode == DigestUndefined {
			reg.Mode = DigestBoth
		}
		reg.audioDigest = audio
		reg.stateDigest = state
		return true, "", nil
	}

	var failm string

	switch reg.Mode {
	case DigestAudioOnly:
		if audio != reg.audioDigest {
			failm = "audio digest does not match"
		}
	case DigestStateOnly:
		if state != reg.stateDigest {
			failm = "state digest does not match"
		}
	default:
		if audio != reg.audioDigest {
			failm = "audio digest does not match"
		} else if state != reg.stateDigest {
			failm = "state digest does not match"
		}
	}

	if failm == "" {
		return true, "", nil
	}

	// save the failed capture for inspection
	dir, err := paths.ResourceDir(regressionPath)
	if err != nil {
		return false, failm, nil
	}
	fn := paths.ResourcePath(regressionPath, paths.UniqueFilename("fail", reg.ROMFile, reg.SoundCode)+".raw")
	if err := os.WriteFile(fn, buffer, 0600); err != nil {
		return false, failm, curated.Errorf("capture: %s: %v", dir, err)
	}

	return false, fmt.Sprintf("%s (capture saved to %s)", failm, fn), nil
}
