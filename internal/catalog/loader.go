package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/avoronkov/maxcalories/internal/knapsack"
)

// Catalog files are caret-delimited: description^weight^calories, one item
// per row, with a header row first.
const fieldSeparator = "^"

const fieldsPerRecord = 3

// ErrMalformedRecord is returned when a row does not have exactly three
// fields. A wrong field count aborts the whole load; partial catalogs are
// never returned. Rows whose fields merely fail to parse are skipped instead.
var ErrMalformedRecord = errors.New("catalog record has wrong field count")

// LoadFile loads a menu from the catalog file at path.
func LoadFile(path string) (knapsack.Menu, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	menu, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return menu, nil
}

// Load parses a menu from caret-delimited catalog data. The first row is a
// header and is skipped. Rows with an unparseable weight or calorie field,
// an empty description, or a non-positive weight are skipped silently.
func Load(r io.Reader) (knapsack.Menu, error) {
	menu := knapsack.Menu{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}

		fields := strings.Split(scanner.Text(), fieldSeparator)
		if len(fields) != fieldsPerRecord {
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d", ErrMalformedRecord, line, len(fields), fieldsPerRecord)
		}

		weight, werr := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		calories, cerr := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if werr != nil || cerr != nil {
			continue
		}

		item, err := knapsack.NewItem(fields[0], weight, calories)
		if err != nil {
			continue
		}
		menu = append(menu, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return menu, nil
}
