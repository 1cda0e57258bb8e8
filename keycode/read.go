// SPDX-License-Identifier: MIT

package keycode

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/coactive/errkind"
)

var (
	// ErrNoRegions indicates that an input produced no region columns or files.
	ErrNoRegions = fmt.Errorf("keycode: no regions in input: %w", errkind.ErrInvalidInputShape)

	// ErrShortRow indicates a workspace row with fewer than six columns.
	ErrShortRow = errors.New("keycode: workspace row has fewer than 6 columns")
)

const (
	wsFlagCol  = 0
	wsStudyCol = 1
	wsCondCol  = 5
)

// Regions is a parsed input: one keycode set per region plus region names
// in the same order.
type Regions struct {
	Names []string
	Sets  []Set
}

// ReadExcelCSV parses the column-per-region layout.
//
// The header row names the regions; every non-blank cell below a header is
// a keycode of that region. Integral numeric cells are normalized ("12.0"
// becomes "12") so spreadsheet exports agree with workspace keycodes.
func ReadExcelCSV(r io.Reader) (*Regions, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoRegions
	}
	if err != nil {
		return nil, fmt.Errorf("keycode: read header: %w", err)
	}
	if len(header) == 0 {
		return nil, ErrNoRegions
	}

	out := &Regions{Names: make([]string, len(header)), Sets: make([]Set, len(header))}
	for i, name := range header {
		out.Names[i] = strings.TrimSpace(name)
		out.Sets[i] = make(Set)
	}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("keycode: line %d: %w", line, err)
		}
		for col, cell := range rec {
			if col >= len(header) {
				break
			}
			if id := normalize(cell); id != "" {
				out.Sets[col].Add(id)
			}
		}
	}

	return out, nil
}

// ReadWorkspace parses one region's workspace export. Rows whose first
// column is a number > 0 contribute the keycode formed by concatenating
// columns 1 and 5.
func ReadWorkspace(r io.Reader) (Set, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	s := make(Set)
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("keycode: line %d: %w", line, err)
		}
		if len(rec) <= wsCondCol {
			return nil, fmt.Errorf("keycode: line %d: %w", line, ErrShortRow)
		}
		flag, err := strconv.ParseFloat(strings.TrimSpace(rec[wsFlagCol]), 64)
		if err != nil || flag <= 0 {
			continue // header or inactive row
		}
		s.Add(normalize(rec[wsStudyCol]) + normalize(rec[wsCondCol]))
	}

	return s, nil
}

// ReadWorkspaceDir reads every *.csv file of dir (sorted by name) as one
// region; region names are the file names.
func ReadWorkspaceDir(dir string) (*Regions, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("keycode: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("keycode: %s: %w", dir, ErrNoRegions)
	}
	sort.Strings(paths)

	out := &Regions{}
	for _, p := range paths {
		s, err := readWorkspaceFile(p)
		if err != nil {
			return nil, err
		}
		out.Names = append(out.Names, filepath.Base(p))
		out.Sets = append(out.Sets, s)
	}

	return out, nil
}

func readWorkspaceFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("keycode: %w", err)
	}
	defer f.Close()
	s, err := ReadWorkspace(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return s, nil
}

// normalize trims a cell and renders integral numbers without a fraction.
func normalize(cell string) string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}

	return cell
}
