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

// Package database is a flat file store for entries of arbitrary type. The
// regression package uses it to store regression entries.
//
// Use of a database requires starting a session with StartSession(), coupled
// with an EndSession() once we're done. For example (error handling removed
// for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The activity argument says what will happen during the session. With
// ActivityCreating the database file is created if it does not exist. Otherwise
// ActivityCreating is the same as ActivityModifying. A database opened with
// ActivityReading cannot be changed and EndSession() will not write to disk.
//
// The initialisation function registers the entry types that might be found
// in the database:
//
//	func initDBSession(db *database.Session) error {
//		return db.RegisterEntryType("capture", deserialiseCaptureEntry)
//	}
//
// A deserialiser receives the fields of the entry, not including the key or
// the entry type, and returns a value that satisfies the Entry interface.
//
//	func deserialiseCaptureEntry(fields database.SerialisedEntry) (database.Entry, error) {
//		ent := &CaptureEntry{}
//		ent.ROMFile = fields[0]
//		...
//		return ent, nil
//	}
//
// Each entry is stored on a single line. The first field is the key and the
// second is the entry type. Fields are comma separated and quoted when
// necessary.
package database
