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

package regression

import (
	"bufio"
	"errors"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/paths"
)

// keys of the entries that failed in the most recent run are kept in this
// file, one per line
const failsFile = "fails"

// the pseudo-key that selects the entries in the fails file
const failsKey = "FAILS"

// normaliseKeys sorts and removes duplicates and blank keys
func normaliseKeys(keys []string) []string {
	keys = slices.DeleteFunc(keys, func(s string) bool {
		return strings.TrimSpace(s) == ""
	})
	slices.Sort(keys)
	return slices.Compact(keys)
}

func saveFails(keys []string) error {
	if _, err := paths.ResourceDir(regressionPath); err != nil {
		return curated.Errorf("save fails: %v", err)
	}

	var s strings.Builder
	for _, k := range normaliseKeys(keys) {
		s.WriteString(k)
		s.WriteString("\n")
	}

	if err := os.WriteFile(paths.ResourcePath(regressionPath, failsFile), []byte(s.String()), 0600); err != nil {
		return curated.Errorf("save fails: %v", err)
	}

	return nil
}

// loadFails returns an empty list if there is no fails file
func loadFails() ([]string, error) {
	f, err := os.Open(paths.ResourcePath(regressionPath, failsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, curated.Errorf("load fails: %v", err)
	}
	defer f.Close()

	var keys []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		keys = append(keys, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("load fails: %v", err)
	}

	return normaliseKeys(keys), nil
}

var errNoPreviousFails = errors.New("no previous fails")

// addFailsToKeys replaces the FAILS pseudo-key with the keys that failed in
// the previous run. If FAILS is requested but there were no failures then
// errNoPreviousFails is returned.
func addFailsToKeys(keys []string) ([]string, error) {
	keys = normaliseKeys(keys)

	n := slices.IndexFunc(keys, func(s string) bool {
		return strings.EqualFold(s, failsKey)
	})
	if n < 0 {
		return keys, nil
	}
	keys = slices.Delete(keys, n, n+1)

	prev, err := loadFails()
	if err != nil {
		return keys, err
	}
	if len(prev) == 0 {
		return keys, errNoPreviousFails
	}

	return normaliseKeys(append(keys, prev...)), nil
}
