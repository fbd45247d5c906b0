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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// the first part of the buffer is reserved for the previous digest
const audioBufferStart = sha1.Size

// Audio is an implementation of Digest for a stream of 8-bit samples.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

// AudioHash returns the digest of a complete sample buffer.
func AudioHash(samples []uint8) string {
	dig := NewAudio()
	_, _ = dig.Write(samples)
	return dig.Hash()
}

// Hash implements Digest. Any incomplete block is included in the hash.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements Digest.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.bufferCt = audioBufferStart
}

// Write implements io.Writer. Every byte is a sample.
func (dig *Audio) Write(samples []uint8) (int, error) {
	for _, s := range samples {
		dig.buffer[dig.bufferCt] = s
		dig.bufferCt++
		if dig.bufferCt >= audioBufferLength {
			dig.flush()
		}
	}
	return len(samples), nil
}

// flush the buffer and chain the new digest to the head of the buffer
func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
