// Package solomon - benchmark text parsing.
package solomon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors returned by the parser and the instance builder.
var (
	// ErrMissingSection indicates an absent VEHICLE or CUSTOMER header, or a
	// header with no body lines after it.
	ErrMissingSection = errors.New("solomon: required section missing")

	// ErrBadFormat indicates a section row that does not parse.
	ErrBadFormat = errors.New("solomon: malformed benchmark line")

	// ErrBadCount indicates a non-positive requested customer count.
	ErrBadCount = errors.New("solomon: customer count must be positive")

	// ErrTooFewCustomers indicates a file with fewer customers than requested.
	ErrTooFewCustomers = errors.New("solomon: file holds fewer customers than requested")

	// ErrBadDuals indicates a dual-price slice whose length does not match
	// the benchmark's node count.
	ErrBadDuals = errors.New("solomon: dual prices do not match node count")
)

// customerFields is the column count of one CUSTOMER section row.
const customerFields = 7

// Node is one parsed row of the CUSTOMER section: the depot, a customer, or
// the appended depot copy.
type Node struct {
	ID      int     // original row id (the depot copy gets a fresh id)
	X, Y    float64 // plane coordinates
	Demand  float64 // load demand
	Ready   float64 // time-window lower bound
	Due     float64 // time-window upper bound
	Service float64 // on-site service duration
}

// Benchmark is one parsed Solomon instance, trimmed to the requested
// customer count and closed with a depot copy as the end node.
type Benchmark struct {
	Name     string  // instance name (first non-blank line)
	Vehicles int     // fleet size from the VEHICLE section
	Capacity float64 // vehicle capacity from the VEHICLE section
	Nodes    []Node  // index 0 = start depot, last = end depot copy
}

// Parse reads a Solomon benchmark from r and keeps the depot plus the first
// n customers. See the package docs for the expected layout.
func Parse(r io.Reader, n int) (*Benchmark, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadCount, n)
	}

	// Slurp lines once; the format is line-oriented with positional headers.
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	b := &Benchmark{}
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			b.Name = s
			break
		}
	}

	// VEHICLE section: header, column titles, then "number capacity".
	idx := sectionIndex(lines, "VEHICLE")
	if idx < 0 || idx+2 >= len(lines) {
		return nil, fmt.Errorf("%w: VEHICLE", ErrMissingSection)
	}
	fields := strings.Fields(lines[idx+2])
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: vehicle line %q", ErrBadFormat, lines[idx+2])
	}
	vehicles, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: vehicle count %q", ErrBadFormat, fields[0])
	}
	capacity, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: capacity %q", ErrBadFormat, fields[1])
	}
	b.Vehicles = vehicles
	b.Capacity = capacity

	// CUSTOMER section: header, column titles, then one row per node.
	idx = sectionIndex(lines, "CUSTOMER")
	if idx < 0 || idx+2 >= len(lines) {
		return nil, fmt.Errorf("%w: CUSTOMER", ErrMissingSection)
	}
	var node Node
	for _, line := range lines[idx+2:] {
		fields = strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != customerFields {
			continue // footer or ruler line
		}
		if node, err = parseNode(fields); err != nil {
			return nil, err
		}
		b.Nodes = append(b.Nodes, node)
		if len(b.Nodes) == n+1 { // depot + n customers
			break
		}
	}
	if len(b.Nodes) < n+1 {
		have := len(b.Nodes) - 1 // exclude the depot row
		if have < 0 {
			have = 0
		}

		return nil, fmt.Errorf("%w: want %d, have %d", ErrTooFewCustomers, n, have)
	}

	// Close the instance with a depot copy as the end node.
	end := b.Nodes[0]
	end.ID = n + 1
	b.Nodes = append(b.Nodes, end)

	return b, nil
}

// ParseFile is the file-path convenience wrapper around Parse.
func ParseFile(path string, n int) (*Benchmark, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("solomon: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, n)
}

// sectionIndex returns the index of the first line whose trimmed prefix is
// the given header, or -1.
func sectionIndex(lines []string, header string) int {
	var i int
	for i = range lines {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), header) {
			return i
		}
	}

	return -1
}

// parseNode converts one 7-column CUSTOMER row.
func parseNode(fields []string) (Node, error) {
	vals := make([]float64, customerFields)
	var (
		i   int
		err error
	)
	for i = range fields {
		if vals[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
			return Node{}, fmt.Errorf("%w: field %q", ErrBadFormat, fields[i])
		}
	}

	return Node{
		ID:      int(vals[0]),
		X:       vals[1],
		Y:       vals[2],
		Demand:  vals[3],
		Ready:   vals[4],
		Due:     vals[5],
		Service: vals[6],
	}, nil
}
