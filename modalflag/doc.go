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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of calling flag.Parse(), the Modes.Parse() method
// returns a ParseResult that tells the caller how to proceed.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
// The main difference is the ability to handle modes. A mode is a special
// command line argument that, when found, selects the path through the
// program. Modes are listed with AddSubModes(), the first being the default:
//
//	md.AddSubModes("capture", "play", "run", "trace", "memviz", "regress")
//
// After parsing, Mode() returns the selected mode in upper case. Further
// flags and sub-modes for the selected mode are defined after a call to
// NewMode() and parsed with another call to Parse():
//
//	switch md.Mode() {
//	case "REGRESS":
//		md.NewMode()
//		md.AddSubModes("run", "list", "delete", "add")
//		...
//	}
//
// Path() returns every mode selected so far, separated by a forward slash.
// For example, "REGRESS/ADD".
package modalflag
