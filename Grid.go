package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vadimeg/ElTable/contracts"
)

var GridBoundsError = errors.New("grid dimensions are out of range")

// Grid is the in-memory raw table. Cells are set during load and stay
// immutable for the duration of an evaluation pass.
type Grid struct {
	rows  int
	cols  int
	cells [][]string

	formulas []contracts.FormulaRecord
}

func NewGrid(rows int, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", GridBoundsError, rows, cols)
	}
	if cols > contracts.MaxColumns {
		return nil, fmt.Errorf("%w: at most %d columns are supported, got %d", GridBoundsError, contracts.MaxColumns, cols)
	}
	if rows > contracts.MaxRows {
		return nil, fmt.Errorf("%w: at most %d rows are supported, got %d", GridBoundsError, contracts.MaxRows, rows)
	}

	cells := make([][]string, rows)
	for row := range cells {
		cells[row] = make([]string, cols)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// SetRawCell stores raw text during load. Out-of-range coords are dropped,
// matching the reader's truncation of oversized input.
func (g *Grid) SetRawCell(coords contracts.Coords, raw string) {
	if coords.Row < 0 || coords.Row >= g.rows || coords.Col < 0 || coords.Col >= g.cols {
		return
	}
	g.cells[coords.Row][coords.Col] = raw
	g.formulas = nil
}

func (g *Grid) RawCell(coords contracts.Coords) string {
	return g.cells[coords.Row][coords.Col]
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

// FormulaRecords returns the resolution driver's work list in natural
// (top-to-bottom, left-to-right) order, with formula markers stripped.
func (g *Grid) FormulaRecords() []contracts.FormulaRecord {
	if g.formulas != nil {
		return g.formulas
	}

	g.formulas = make([]contracts.FormulaRecord, 0)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			raw := g.cells[row][col]
			if contracts.Classify(raw) == contracts.CellFormula {
				g.formulas = append(g.formulas, contracts.FormulaRecord{
					Coords:  contracts.Coords{Row: row, Col: col},
					Formula: strings.TrimPrefix(raw, contracts.FormulaPrefix),
				})
			}
		}
	}

	return g.formulas
}
