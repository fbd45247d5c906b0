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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// The sound board decodes three regions of the 16 bit address space. The
// regions do not overlap and there are no mirrors. Addresses outside of the
// three regions are illegal and MapAddress() returns the Undefined area for
// them.
//
// Regions are closed intervals computed with wrapping arithmetic. A region
// is checked with the expression:
//
//	address-origin < size
//
// which is correct even for a region that wraps past 0xffff.
package memorymap
