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

package test

import "bytes"

// CompareWriter implements the io.Writer interface. Use it to capture output
// and to compare that output with an expected string.
type CompareWriter struct {
	buffer bytes.Buffer
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (n int, err error) {
	return cw.buffer.Write(p)
}

// Clear empties the buffer.
func (cw *CompareWriter) Clear() {
	cw.buffer.Reset()
}

// Compare buffered output with the expected string.
func (cw *CompareWriter) Compare(s string) bool {
	return s == cw.buffer.String()
}

// Lines returns the number of complete lines in the buffer.
func (cw *CompareWriter) Lines() int {
	return bytes.Count(cw.buffer.Bytes(), []byte{'\n'})
}

func (cw *CompareWriter) String() string {
	return cw.buffer.String()
}
