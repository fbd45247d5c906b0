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

// Package paths contains functions to prepare paths to wmsboard resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the regression database:
//
//	d := paths.ResourcePath("regressionDB")
//
// If the base resource path, ".wmsboard", is present in the program's current
// directory then that is the base path that will be used. If it is not present
// then the user's config directory is used, as reported by os.UserConfigDir().
//
// On a modern Linux system, the path returned for the example above will be:
//
//	/home/user/.config/wmsboard/regressionDB
package paths
