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

package capture

import (
	"path/filepath"

	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/hardware/pia"
	"github.com/jetsetilly/wmsboard/paths"
	"github.com/jetsetilly/wmsboard/prefs"
)

// DefaultSampleRate is the rate at which a capture is assumed to be played
// back. The capture itself is one sample per CPU cycle and is not resampled.
const DefaultSampleRate = 44100

// Preferences for the capture process.
type Preferences struct {
	dsk *prefs.Disk

	Warmup     prefs.Int
	Sound      prefs.Int
	Samples    prefs.Int
	SampleRate prefs.Int
	PIA        prefs.String

	// write captures as WAV files rather than raw PCM
	WAV prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	dir, err := paths.ResourceDir()
	if err != nil {
		return nil, curated.Errorf("capture: %v", err)
	}
	return newPreferences(filepath.Join(dir, prefs.DefaultPrefsFile))
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// sound code and warm-up steps must be in range
	p.Sound.SetHookPre(func(v prefs.Value) error {
		if c := v.(int); c < 0 || c > 0xff {
			return curated.Errorf("capture: sound code out of range (%#x)", c)
		}
		return nil
	})
	p.Warmup.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf("capture: warm-up steps cannot be negative")
		}
		return nil
	})
	p.Samples.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf("capture: sample count cannot be negative")
		}
		return nil
	})
	p.PIA.SetHookPre(func(v prefs.Value) error {
		_, err := pia.ParseModel(v.(string))
		return err
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("capture.warmup", &p.Warmup)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("capture.sound", &p.Sound)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("capture.samples", &p.Samples)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("capture.samplerate", &p.SampleRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("board.pia", &p.PIA)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("capture.wav", &p.WAV)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Warmup.Set(DefaultWarmupSteps)
	_ = p.Sound.Set(DefaultSoundCode)
	_ = p.Samples.Set(DefaultSampleCount)
	_ = p.SampleRate.Set(DefaultSampleRate)
	_ = p.PIA.Set(pia.Echo.String())
	_ = p.WAV.Set(false)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns a Config from the current preference values.
func (p *Preferences) Config() Config {
	return Config{
		WarmupSteps: p.Warmup.Get().(int),
		SoundCode:   uint8(p.Sound.Get().(int)),
		SampleCount: p.Samples.Get().(int),
	}
}

// Model returns the PIA model named in the preferences.
func (p *Preferences) Model() pia.Model {
	m, err := pia.ParseModel(p.PIA.Get().(string))
	if err != nil {
		return pia.Echo
	}
	return m
}
