package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vadimeg/ElTable/contracts"
)

var TableHeaderError = errors.New("incorrect table header")

// ReadGrid parses the tab-delimited table format: a header line with the
// row and column counts, then one line of raw cells per row. Extra lines
// and columns are dropped; missing ones read as empty cells.
func ReadGrid(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing header line", TableHeaderError)
	}

	rows, cols, err := parseTableHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	grid, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	for row := 0; row < rows && scanner.Scan(); row++ {
		fields := strings.Split(scanner.Text(), "\t")
		for col := 0; col < cols && col < len(fields); col++ {
			grid.SetRawCell(contracts.Coords{Row: row, Col: col}, fields[col])
		}
	}

	return grid, scanner.Err()
}

func parseTableHeader(line string) (rows int, cols int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected `rows cols`, got %q", TableHeaderError, line)
	}

	rows, err = strconv.Atoi(fields[0])
	if err == nil {
		cols, err = strconv.Atoi(fields[1])
	}
	if err != nil {
		return 0, 0, fmt.Errorf("%w: expected `rows cols`, got %q", TableHeaderError, line)
	}

	return rows, cols, nil
}
