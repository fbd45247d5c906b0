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
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/jetsetilly/wmsboard/curated"
)

// Activity is used to specify the type of activity that will be performed
// during the database session.
type Activity int

// List of valid Activity values. The values are ordered so that
// ActivityCreating implies ActivityModifying, which implies ActivityReading.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session keeps track of a database session.
type Session struct {
	dbfile   string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]deserialiser
}

// StartSession starts/initialises a new database session. The init argument
// is used to register the entry types that may be found in the database.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		dbfile:     path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]deserialiser),
	}

	err := init(db)
	if err != nil {
		return nil, curated.Errorf("database: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) || activity != ActivityCreating {
			return nil, curated.Errorf("database: %v", err)
		}
		return db, nil
	}
	defer f.Close()

	err = db.readEntries(f)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// EndSession closes the database session. If commitChanges is true and the
// session was not started with ActivityReading, the entries are written to
// disk.
func (db *Session) EndSession(commitChanges bool) error {
	if !commitChanges || db.activity == ActivityReading {
		return nil
	}

	f, err := os.Create(db.dbfile)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	err = db.writeEntries(f)
	if err != nil {
		_ = f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

func (db *Session) readEntries(r io.Reader) error {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		if len(rec) < numLeaderFields {
			return curated.Errorf("database: invalid entry (too few fields)")
		}

		key, err := strconv.Atoi(rec[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: invalid key (%s)", rec[leaderFieldKey])
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key (%d)", key)
		}

		des, ok := db.entryTypes[rec[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type (%s)", rec[leaderFieldID])
		}

		ent, err := des(rec[numLeaderFields:])
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		db.entries[key] = ent
	}

	return nil
}

func (db *Session) writeEntries(w io.Writer) error {
	csvw := csv.NewWriter(w)

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		ser, err := ent.Serialise()
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		rec := make([]string, 0, numLeaderFields+len(ser))
		rec = append(rec, recordHeader(key, ent.ID())...)
		rec = append(rec, ser...)

		err = csvw.Write(rec)
		if err != nil {
			return curated.Errorf("database: %v", err)
		}
	}

	csvw.Flush()
	if err := csvw.Error(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}
