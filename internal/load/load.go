// Package load parses process descriptions from CSV input.
package load

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"schedsim/internal/sched"
)

// Processes reads CSV rows of the form pid,burst,arrival[,priority] into
// process records. Semantic validation (positive bursts, unique pids) is
// left to the schedulers.
func Processes(r io.Reader) ([]sched.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	processes := make([]sched.Process, len(rows))
	for i := range rows {
		if len(rows[i]) < 3 {
			return nil, fmt.Errorf("row %d: want at least pid, burst, arrival, got %d fields", i+1, len(rows[i]))
		}
		if processes[i].PID, err = parseField(rows[i][0], i, "pid"); err != nil {
			return nil, err
		}
		if processes[i].BurstDuration, err = parseField(rows[i][1], i, "burst"); err != nil {
			return nil, err
		}
		if processes[i].ArrivalTime, err = parseField(rows[i][2], i, "arrival"); err != nil {
			return nil, err
		}
		if len(rows[i]) >= 4 {
			if processes[i].Priority, err = parseField(rows[i][3], i, "priority"); err != nil {
				return nil, err
			}
		}
	}

	return processes, nil
}

func parseField(s string, row int, name string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: bad %s %q: %w", row+1, name, s, err)
	}
	return v, nil
}
