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
	"strings"

	"github.com/jetsetilly/wmsboard/curated"
)

// DigestMode selects the digests compared when a regression entry is run.
type DigestMode int

// List of valid DigestMode values.
const (
	DigestUndefined DigestMode = iota
	DigestAudioOnly
	DigestStateOnly
	DigestBoth
)

var digestModeNames = map[DigestMode]string{
	DigestAudioOnly: "audio",
	DigestStateOnly: "state",
	DigestBoth:      "both",
}

func (mod DigestMode) String() string {
	if s, ok := digestModeNames[mod]; ok {
		return s
	}
	return "undefined"
}

// ParseDigestMode is the inverse of String(). The comparison is case
// insensitive.
func ParseDigestMode(mode string) (DigestMode, error) {
	m := strings.ToLower(strings.TrimSpace(mode))
	for k, v := range digestModeNames {
		if v == m {
			return k, nil
		}
	}
	return DigestUndefined, curated.Errorf("regression: invalid digest mode (%s)", mode)
}
