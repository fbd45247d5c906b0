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
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/database"
	"github.com/jetsetilly/wmsboard/logger"
	"github.com/jetsetilly/wmsboard/paths"
)

// the location of the regression database and associated files in the
// resource directory
const (
	regressionPath   = "regression"
	regressionDBFile = "db"
)

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag is for convenience really (or "logical binding", as the structured
	// programmers would have it)
	//
	// message is the string that is to be printed during the regression
	//
	// returns the success value and a failure message if the test failed
	regress(newRegression bool, output io.Writer, message string) (bool, string, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(captureEntryType, deserialiseCaptureEntry)
}

func dbPath() (string, error) {
	_, err := paths.ResourceDir(regressionPath)
	if err != nil {
		return "", curated.Errorf("regression: %v", err)
	}
	return paths.ResourcePath(regressionPath, regressionDBFile), nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	if output == nil {
		return curated.Errorf("regression: list: io.Writer should not be nil (use a nopWriter)")
	}

	pth, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(pth, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("regression: list: %v", err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new regression handler to the database.
func RegressAdd(output io.Writer, reg Regressor) error {
	if output == nil {
		return curated.Errorf("regression: add: io.Writer should not be nil (use a nopWriter)")
	}

	pth, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(pth, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("regression: add: %v", err)
	}

	msg := fmt.Sprintf("adding: %s", reg)
	_, _, err = reg.regress(true, output, msg)
	if err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("regression: add: %v", err)
	}

	fmt.Fprintf(output, "\radded: %s\n", reg)

	err = db.Add(reg)
	if err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("regression: add: %v", err)
	}

	logger.Logf(logger.Allow, "regression", "added: %s", reg)

	return db.EndSession(true)
}

// RegressDelete removes an entry from the regression database. The user is
// asked for confirmation on the output writer and the answer is read from the
// confirmation reader.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	if output == nil {
		return curated.Errorf("regression: delete: io.Writer should not be nil (use a nopWriter)")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: delete: invalid key [%s]", key)
	}

	pth, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(pth, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf("regression: delete: %v", err)
	}

	ent, err := db.SelectKeys(nil, v)
	if err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("regression: delete: %v", err)
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm, err := bufio.NewReader(confirmation).ReadString('\n')
	if err != nil && err != io.EOF {
		_ = db.EndSession(false)
		return curated.Errorf("regression: delete: %v", err)
	}

	confirm = strings.ToLower(strings.TrimSpace(confirm))
	if confirm != "y" && confirm != "yes" {
		return db.EndSession(false)
	}

	err = db.Delete(v)
	if err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("regression: delete: %v", err)
	}

	fmt.Fprintf(output, "deleted test #%s from regression database\n", key)
	logger.Logf(logger.Allow, "regression", "deleted: %s", ent)

	return db.EndSession(true)
}

// RegressRun runs the tests in the regression database. The filterKeys list
// specifies which entries to test. An empty list means that every entry
// should be tested. The special key FAILS adds the entries that failed in the
// previous run.
//
// The failOnError flag stops the run at the first entry that causes an error.
// A failed test is not an error.
func RegressRun(output io.Writer, verbose bool, failOnError bool, filterKeys []string) error {
	if output == nil {
		return curated.Errorf("regression: run: io.Writer should not be nil (use a nopWriter)")
	}

	filterKeys, err := addFailsToKeys(filterKeys)
	if err != nil {
		if err == errNoPreviousFails {
			fmt.Fprintf(output, "%v\n", err)
			return nil
		}
		return curated.Errorf("regression: run: %v", err)
	}

	pth, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(pth, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("regression: run: %v", err)
	}
	defer db.EndSession(false)

	keysV := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf("regression: run: invalid key [%s]", k)
		}
		keysV = append(keysV, v)
	}
	sort.Ints(keysV)

	if len(keysV) == 0 {
		keysV = db.SortedKeyList()
	}

	numSucceed := 0
	numFail := 0
	numError := 0

	var failedKeys []string

	for _, key := range keysV {
		ent, err := db.SelectKeys(nil, key)
		if err != nil {
			numError++
			fmt.Fprintf(output, " ERROR: key %d not in database\n", key)
			if failOnError {
				break
			}
			continue
		}

		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: run: database entry does not satisfy Regressor interface")
		}

		msg := fmt.Sprintf("running: %s", reg)
		ok, failm, err := reg.regress(false, output, msg)

		if err != nil {
			numError++
			failedKeys = append(failedKeys, strconv.Itoa(key))
			fmt.Fprintf(output, "\r ERROR: %s\n", reg)
			if verbose {
				fmt.Fprintf(output, "  ^^ %v\n", err)
			}
			if failOnError {
				break
			}
		} else if !ok {
			numFail++
			failedKeys = append(failedKeys, strconv.Itoa(key))
			fmt.Fprintf(output, "\rfailure: %s\n", reg)
			if verbose && failm != "" {
				fmt.Fprintf(output, "  ^^ %s\n", failm)
			}
		} else {
			numSucceed++
			fmt.Fprintf(output, "\rsucceed: %s\n", reg)
		}
	}

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		fmt.Fprintf(output, " [with %d errors]", numError)
	}
	fmt.Fprintln(output)

	logger.Logf(logger.Allow, "regression", "%d succeed, %d fail, %d errors", numSucceed, numFail, numError)

	err = saveFails(failedKeys)
	if err != nil {
		return curated.Errorf("regression: run: %v", err)
	}

	return nil
}
