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

// Package capture drives the sound board to produce a sound effect and
// captures the output of the DAC as 8-bit unsigned mono PCM.
//
// The Driver resets the machine and runs a number of warm-up steps so that
// the sound ROM can initialise itself. The sound code is then written to the
// sound selector and an IRQ is raised. Capture starts with the step that
// follows, so the latency of the interrupt is part of the capture.
//
// Samples are produced one per CPU cycle. The DAC is read once after each
// step and the value is appended to the buffer once for every cycle consumed
// by the step. The final step is clipped so that the length of the buffer is
// exactly the requested number of samples.
//
// Preferences for the capture process are handled by the Preferences type.
// Values can be set on the command line with the usual prefs syntax:
//
//	capture.warmup::200; capture.sound::0x1a
package capture
