package loader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"schedsim/internal/requests"
)

// ErrFormat reports a malformed record source.
var ErrFormat = errors.New("invalid record format")

// LoadProcesses reads process records from CSV. Rows carry either 3 columns
// (arrival,burst,priority), in which case pids are assigned sequentially
// from 1, or 4 columns (pid,arrival,burst,priority). A leading header row
// is skipped.
func LoadProcesses(r io.Reader) ([]requests.Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	var jobs []requests.Job
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		job, err := parseRow(row, len(jobs)+1)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func isHeader(row []string) bool {
	for _, field := range row {
		if _, err := strconv.Atoi(strings.TrimSpace(field)); err != nil {
			return true
		}
	}
	return false
}

func parseRow(row []string, nextPid int) (requests.Job, error) {
	vals := make([]int, len(row))
	for i, field := range row {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return requests.Job{}, fmt.Errorf("%w: %q is not an integer", ErrFormat, field)
		}
		vals[i] = v
	}
	switch len(vals) {
	case 3:
		return requests.Job{ProcessId: nextPid, ArrivalTime: vals[0], BurstTime: vals[1], Priority: vals[2]}, nil
	case 4:
		return requests.Job{ProcessId: vals[0], ArrivalTime: vals[1], BurstTime: vals[2], Priority: vals[3]}, nil
	default:
		return requests.Job{}, fmt.Errorf("%w: expected 3 or 4 columns, got %d", ErrFormat, len(vals))
	}
}

// ReadConsole prompts for process descriptors interactively, assigning pids
// sequentially from 1 like the 3-column CSV form.
func ReadConsole(in io.Reader, out io.Writer) ([]requests.Job, error) {
	scanner := bufio.NewScanner(in)
	n, err := promptInt(scanner, out, "Enter number of processes: ")
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: process count must be positive", ErrFormat)
	}

	jobs := make([]requests.Job, 0, n)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(out, "=== Process %d ===\n", i)
		arrival, err := promptInt(scanner, out, "Arrival time: ")
		if err != nil {
			return nil, err
		}
		burst, err := promptInt(scanner, out, "Burst time  : ")
		if err != nil {
			return nil, err
		}
		priority, err := promptInt(scanner, out, "Priority    : ")
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, requests.Job{
			ProcessId:   i,
			ArrivalTime: arrival,
			BurstTime:   burst,
			Priority:    priority,
		})
	}
	return jobs, nil
}

func promptInt(scanner *bufio.Scanner, out io.Writer, prompt string) (int, error) {
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(out, "Invalid input. Enter an integer.")
			continue
		}
		return v, nil
	}
}
