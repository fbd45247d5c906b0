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

// Package playback plays a capture through the audio device of the host. It
// is used by the PLAY mode of the command line.
//
// Captures are unsigned 8-bit mono PCM, which is a format supported directly
// by the oto library. No conversion of the sample data is required.
//
// Only one Player can be created during the lifetime of the program. Use
// wavwriter.Load() to read a capture from disk.
package playback

import (
	"bytes"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/logger"
)

// how often to check whether playback has finished
const pollInterval = 10 * time.Millisecond

// Player plays sample data through the host audio device.
type Player struct {
	ctx        *oto.Context
	sampleRate int
}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer(sampleRate int) (*Player, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("playback: invalid sample rate (%d)", sampleRate)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatUnsignedInt8,
	})
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	<-ready

	logger.Logf(logger.Allow, "playback", "audio device ready (%dHz)", sampleRate)

	return &Player{
		ctx:        ctx,
		sampleRate: sampleRate,
	}, nil
}

// Play the samples and wait until playback has finished.
func (p *Player) Play(samples []uint8) error {
	player := p.ctx.NewPlayer(bytes.NewReader(samples))
	player.Play()

	for player.IsPlaying() {
		time.Sleep(pollInterval)
	}

	if err := player.Err(); err != nil {
		_ = player.Close()
		return curated.Errorf("playback: %v", err)
	}

	if err := player.Close(); err != nil {
		return curated.Errorf("playback: %v", err)
	}

	return nil
}

// Duration returns the length of time it takes to play the samples.
func (p *Player) Duration(samples []uint8) time.Duration {
	return duration(len(samples), p.sampleRate)
}

func duration(numSamples int, sampleRate int) time.Duration {
	return time.Duration(numSamples) * time.Second / time.Duration(sampleRate)
}
