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

// SelectAll calls onSelect for every entry in key order. onSelect can be nil.
// The last entry visited is returned. An error from onSelect stops the
// selection and is returned with the entry that caused it.
func (db Session) SelectAll(onSelect func(Entry) error) (Entry, error) {
	return db.selectFrom(db.SortedKeyList(), onSelect)
}

// SelectKeys is like SelectAll but visits only the listed keys, in the order
// given. An empty key list selects every entry. A key with no entry is an
// error, as is a selection that visits nothing.
func (db Session) SelectKeys(onSelect func(Entry) error, keys ...int) (Entry, error) {
	if len(keys) == 0 {
		keys = db.SortedKeyList()
	}

	ent, err := db.selectFrom(keys, onSelect)
	if err != nil {
		return ent, err
	}
	if ent == nil {
		return nil, curated.Errorf("database: select empty")
	}

	return ent, nil
}

func (db Session) selectFrom(keys []int, onSelect func(Entry) error) (Entry, error) {
	var last Entry

	for _, k := range keys {
		ent, ok := db.entries[k]
		if !ok {
			return nil, curated.Errorf("database: key not available (%d)", k)
		}
		last = ent

		if onSelect == nil {
			continue // for loop
		}
		if err := onSelect(ent); err != nil {
			return ent, err
		}
	}

	return last, nil
}
