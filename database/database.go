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

import (
	"fmt"
	"io"
	"slices"

	"github.com/jetsetilly/wmsboard/curated"
)

// keys are allocated from zero. the lowest free key is always used.
const keyLimit = 1000

// every record starts with the key and the entry type. the entry's own
// fields follow.
const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

func recordHeader(key int, id string) []string {
	return []string{fmt.Sprintf("%03d", key), id}
}

// NumEntries returns the number of entries in the database.
func (db Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns the database keys in ascending order.
func (db Session) SortedKeyList() []int {
	keys := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// List writes one line per entry, in key order, followed by a total.
func (db Session) List(output io.Writer) error {
	if len(db.entries) == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.SortedKeyList() {
		if _, err := fmt.Fprintf(output, "%03d %s\n", key, db.entries[key]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", len(db.entries))
	return err
}

func (db *Session) writable(op string) error {
	if db.activity == ActivityReading {
		return curated.Errorf("database: cannot %s in a read only session", op)
	}
	return nil
}

// Add an entry to the database using the lowest unused key.
func (db *Session) Add(ent Entry) error {
	if err := db.writable("add"); err != nil {
		return err
	}

	for key := 0; key < keyLimit; key++ {
		if _, used := db.entries[key]; !used {
			db.entries[key] = ent
			return nil
		}
	}

	return curated.Errorf("database: maximum entries exceeded (max %d)", keyLimit)
}

// Delete the entry with the specified key. The entry's CleanUp() function is
// called before it is removed.
func (db *Session) Delete(key int) error {
	if err := db.writable("delete"); err != nil {
		return err
	}

	ent, ok := db.entries[key]
	if !ok {
		return curated.Errorf("database: key not available (%d)", key)
	}

	if err := ent.CleanUp(); err != nil {
		return curated.Errorf("database: %v", err)
	}
	delete(db.entries, key)

	return nil
}
