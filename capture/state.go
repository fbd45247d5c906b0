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

// State of the capture driver.
type State int

// List of valid State values. A Driver moves through the states in order.
const (
	Uninitialised State = iota
	WarmingUp
	AwaitingInterrupt
	Capturing
	Done
)

func (s State) String() string {
	switch s {
	case Uninitialised:
		return "uninitialised"
	case WarmingUp:
		return "warming up"
	case AwaitingInterrupt:
		return "awaiting interrupt"
	case Capturing:
		return "capturing"
	case Done:
		return "done"
	}
	return "unknown state"
}
