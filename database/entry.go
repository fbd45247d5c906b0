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

package database

import "github.com/jetsetilly/wmsboard/curated"

// SerialisedEntry is an Entry as a list of fields, one field per column of
// the database file.
type SerialisedEntry []string

// Entry is implemented by every type stored in the database.
type Entry interface {
	// the entry type. written to the database file so that the correct
	// deserialiser can be chosen when the file is read
	ID() string

	// human readable description used by List()
	String() string

	// the fields of the entry. the database adds the key and ID
	Serialise() (SerialisedEntry, error)

	// called when the entry is deleted. for example, to remove files
	// associated with the entry
	CleanUp() error
}

// creates an Entry from the fields that follow the key and ID of a record
type deserialiser func(fields SerialisedEntry) (Entry, error)

// RegisterEntryType associates an entry ID with the function that recreates
// entries of that type from the database file. Each ID can only be registered
// once per session.
func (db *Session) RegisterEntryType(id string, des deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return curated.Errorf("database: duplicate entry type (%s)", id)
	}
	db.entryTypes[id] = des
	return nil
}
