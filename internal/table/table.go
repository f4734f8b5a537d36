// Package table reads and writes the simulation output table: a "#"
// header naming the columns, then one space-separated line per snapshot.
package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/orbitlab/internal/sim"
)

// Write emits the snapshot sequence, oldest first. The header names
// T[yr] and dE/E, then m, x, y, z, vx, vy, vz per body. Units are MSun,
// AU, and 2π·AU/yr.
func Write(w io.Writer, result *sim.Result) error {
	bw := bufio.NewWriter(w)

	nbodies := 0
	if len(result.Snapshots) > 0 {
		nbodies = len(result.Snapshots[0].Coords) / 7
	}

	header := []string{"# T[yr]", "dE/E"}
	for i := 0; i < nbodies; i++ {
		for _, col := range []string{"m", "x", "y", "z", "vx", "vy", "vz"} {
			header = append(header, fmt.Sprintf("%s%d", col, i))
		}
	}
	if _, err := fmt.Fprintln(bw, strings.Join(header, " ")); err != nil {
		return err
	}

	for _, snap := range result.Snapshots {
		row := make([]string, 0, 2+len(snap.Coords))
		row = append(row,
			strconv.FormatFloat(snap.Time, 'g', -1, 64),
			strconv.FormatFloat(snap.Drift, 'g', -1, 64),
		)
		for _, v := range snap.Coords {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if _, err := fmt.Fprintln(bw, strings.Join(row, " ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile writes the table to path, truncating any existing file.
func WriteFile(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Write(f, result); err != nil {
		return err
	}
	return f.Sync()
}

// Read parses a table back into snapshot records. Lines starting with
// "#" and blank lines are skipped; malformed fields are an error.
func Read(r io.Reader) ([]sim.Snapshot, error) {
	var snaps []sim.Snapshot

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("table: line %d: want at least 2 columns, got %d", line, len(fields))
		}

		vals := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("table: line %d: column %d: %w", line, i+1, err)
			}
			vals[i] = v
		}

		snaps = append(snaps, sim.Snapshot{
			Time:   vals[0],
			Drift:  vals[1],
			Coords: vals[2:],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return snaps, nil
}

// ReadFile parses the table at path.
func ReadFile(path string) ([]sim.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
