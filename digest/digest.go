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

// Package digest is used to create SHA-1 digests of the state of the
// emulation. The digests are used by the regression package and by the TRACE
// mode of the command line.
//
// The Snapshot type records the cycle count, the registers of the CPU and a
// digest of the memory image of the board. A Trace is a sequence of
// snapshots. Snapshots are never read back into the emulation.
//
// The Audio type creates a digest of a sample stream. Samples are hashed in
// blocks and each block is chained to the digest of the previous block.
package digest

// Digest implementations compute a hash of emulation output or state.
type Digest interface {
	Hash() string
	ResetDigest()
}
