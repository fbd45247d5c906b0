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

// Package regression facilitates the regression testing of the emulation.
// Each entry in the regression database records how a capture was made (the
// ROM file, the sound code, the number of warm-up steps, the number of samples
// and the PIA model) and the digests of the result.
//
// Two digests are recorded. The audio digest is the digest of the captured
// sample buffer. The state digest is the digest of the machine state at the
// end of the capture. The DigestMode of an entry says which of the two
// digests are compared when the regression is run.
//
// The database is stored in the resource directory (see the paths package).
// Keys of entries that fail are saved so that they can be run again with the
// FAILS key.
package regression
