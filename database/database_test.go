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

package database_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/wmsboard/database"
	"github.com/jetsetilly/wmsboard/test"
)

type fooEntry struct {
	name    string
	count   string
	cleaned *int
}

func (ent *fooEntry) ID() string {
	return "foo"
}

func (ent *fooEntry) String() string {
	return fmt.Sprintf("%s [%s]", ent.name, ent.count)
}

func (ent *fooEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.name, ent.count}, nil
}

func (ent *fooEntry) CleanUp() error {
	if ent.cleaned != nil {
		*ent.cleaned++
	}
	return nil
}

func initDBSession(db *database.Session) error {
	return db.RegisterEntryType("foo", func(fields database.SerialisedEntry) (database.Entry, error) {
		if len(fields) != 2 {
			return nil, fmt.Errorf("wrong number of fields")
		}
		return &fooEntry{name: fields[0], count: fields[1]}, nil
	})
}

func TestDatabase(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	// the database does not exist so reading must fail
	_, err := database.StartSession(pth, database.ActivityReading, initDBSession)
	test.ExpectFailure(t, err)

	db, err := database.StartSession(pth, database.ActivityCreating, initDBSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 0)

	test.ExpectSuccess(t, db.Add(&fooEntry{name: "a, with comma", count: "1"}))
	test.ExpectSuccess(t, db.Add(&fooEntry{name: "b", count: "2"}))
	test.ExpectSuccess(t, db.EndSession(true))

	db, err = database.StartSession(pth, database.ActivityModifying, initDBSession)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, db.NumEntries(), 2)

	w := &strings.Builder{}
	test.ExpectSuccess(t, db.List(w))
	test.ExpectEquality(t, w.String(), "000 a, with comma [1]\n001 b [2]\nTotal: 2\n")

	cleaned := 0
	ent, err := db.SelectKeys(func(ent database.Entry) error {
		ent.(*fooEntry).cleaned = &cleaned
		return nil
	}, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ent.(*fooEntry).name, "a, with comma")

	test.ExpectSuccess(t, db.Delete(0))
	test.ExpectEquality(t, cleaned, 1)
	test.ExpectFailure(t, db.Delete(0))

	_, err = db.SelectKeys(nil, 0)
	test.ExpectFailure(t, err)

	// the free key is reused
	test.ExpectSuccess(t, db.Add(&fooEntry{name: "c", count: "3"}))
	test.ExpectSuccess(t, db.EndSession(true))

	db, err = database.StartSession(pth, database.ActivityReading, initDBSession)
	test.DemandSuccess(t, err)
	n := 0
	_, err = db.SelectAll(func(ent database.Entry) error {
		n++
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectFailure(t, db.Add(&fooEntry{name: "d", count: "4"}))
}

func TestUnrecognisedEntryType(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("000,bar,x\n"), 0600))

	_, err := database.StartSession(pth, database.ActivityReading, initDBSession)
	test.ExpectFailure(t, err)
}

func TestDuplicateEntryType(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")
	_, err := database.StartSession(pth, database.ActivityCreating, func(db *database.Session) error {
		if err := initDBSession(db); err != nil {
			return err
		}
		return initDBSession(db)
	})
	test.ExpectFailure(t, err)
}
