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

package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Used to generate filenames for captures when no output file has been given
// on the command line.
//
// Format of returned string is:
//
//	prepend_romname_sfxXX_YYYYMMDD_HHMMSS
//
// Where romname is the base name of the ROM file without its extension. If
// there is no ROM name the returned string will be of the format:
//
//	prepend_sfxXX_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, romFilename string, soundCode uint8) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	c := strings.TrimSpace(romFilename)
	if len(c) > 0 {
		c = filepath.Base(c)
		c = strings.TrimSuffix(c, filepath.Ext(c))
	}

	if len(c) > 0 {
		return fmt.Sprintf("%s_%s_sfx%02x_%s", prepend, c, soundCode, timestamp)
	}
	return fmt.Sprintf("%s_sfx%02x_%s", prepend, soundCode, timestamp)
}
