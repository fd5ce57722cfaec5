package power

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadTable parses a two-column (wavenumber, power) text table. Blank lines
// and lines starting with '#' are skipped; columns beyond the second are
// ignored. The resulting rows must satisfy the Table invariants.
func ReadTable(r io.Reader) (*Table, error) {
	var ks, ps []float64

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: need 2 columns, have %d", ErrBadTable, line, len(fields))
		}

		k, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad wavenumber %q", ErrBadTable, line, fields[0])
		}

		p, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad power %q", ErrBadTable, line, fields[1])
		}

		ks = append(ks, k)
		ps = append(ps, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("power: read table: %w", err)
	}

	return NewTable(ks, ps)
}

// ReadTableFile reads a spectrum table from a file path.
func ReadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("power: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
