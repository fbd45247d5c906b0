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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Sentinal patterns are stored as const strings in the
// package that raises them. For example, the memory package raises:
//
//	curated.Errorf(cpubus.AddressError, address)
//
// and a caller can test for it with:
//
//	if curated.Is(err, cpubus.AddressError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	e := curated.Errorf(cpubus.AddressError, 0x0200)
//	f := curated.Errorf("capture: %v", e)
//
//	curated.Has(f, cpubus.AddressError) // true
//	curated.Is(f, cpubus.AddressError)  // false
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. Code does not need to worry about whether the
// package prefix has already been added by the function being called. For
// the purposes of this package we think of chains as being composed of parts
// separated by the sub-string ': '. For example:
//
//	part 1: part 2: part 3
package curated
