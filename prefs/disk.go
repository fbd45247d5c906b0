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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// Sentinal error patterns.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
)

// separates key and value in a prefs file.
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. The key value
// is used to identify the preference in the prefs file. It must not contain
// the key separator or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(keySep)) || strings.ContainsAny(key, "\n\r") {
		return curated.Errorf("prefs: illegal key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// keys returns the sorted list of keys in the Disk instance.
func (dsk Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file that do not
// belong to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data := make(map[string]string)

	// load existing data from the prefs file. a missing file is not an error
	// in this context
	err := dsk.load(func(k string, v string) error {
		data[k] = v
		return nil
	})
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, v := range dsk.entries {
		data[k] = v.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	_, _ = fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "%s%s%s\n", k, keySep, data[k])
	}
	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. If saveOnFirstUse is true and the prefs
// file does not exist then the current values are saved and no error is
// returned.
//
// Once the file has been read, any value for a key in the top group of the
// command line stack overrides the value from the file.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	err := dsk.load(func(k string, v string) error {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
		return nil
	})

	if err != nil {
		if !curated.Is(err, NoPrefsFile) || !saveOnFirstUse {
			return err
		}
		if err := dsk.Save(); err != nil {
			return err
		}
	}

	return dsk.applyCommandLine()
}

// applyCommandLine sets any value in the top group of the command line stack
// that has a key in the Disk instance.
func (dsk *Disk) applyCommandLine() error {
	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
			logger.Logf(logger.Allow, "prefs", "%s set from command line (%v)", k, v)
		}
	}
	return nil
}

// load the prefs file and call f for every key/value pair.
func (dsk *Disk) load(f func(k string, v string) error) error {
	fh, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer fh.Close()

	scanner := bufio.NewScanner(fh)

	// check boilerplate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return curated.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		l := scanner.Text()
		if strings.TrimSpace(l) == "" {
			continue
		}
		kv := strings.SplitN(l, keySep, 2)
		if len(kv) != 2 {
			logger.Logf(logger.Allow, "prefs", "ignoring malformed line (%s)", l)
			continue
		}
		if err := f(kv[0], kv[1]); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}
