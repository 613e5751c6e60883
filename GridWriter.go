package main

import (
	"fmt"
	"io"
	"strings"

	json "github.com/bytedance/sonic"

	"github.com/vadimeg/ElTable/contracts"
)

// UnknownCellMarker is displayed for raw cells that classify as invalid.
const UnknownCellMarker = "#E_UNKNOWN"

// WriteGrid renders the evaluated grid tab-delimited, one line per row.
func WriteGrid(w io.Writer, grid contracts.Grid, evaluator contracts.SheetEvaluator) error {
	fields := make([]string, grid.Cols())

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			fields[col] = displayCell(grid, evaluator, contracts.Coords{Row: row, Col: col})
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}

	return nil
}

// WriteGridJSON renders the evaluated grid as a JSON object keyed by cell
// identity, empty cells omitted.
func WriteGridJSON(w io.Writer, grid contracts.Grid, evaluator contracts.SheetEvaluator) error {
	payload, err := json.Marshal(EvaluatedCellList(grid, evaluator))
	if err != nil {
		return err
	}

	_, err = w.Write(payload)
	return err
}

// EvaluatedCellList collects every non-empty cell with its raw text and
// display value.
func EvaluatedCellList(grid contracts.Grid, evaluator contracts.SheetEvaluator) contracts.CellList {
	cells := contracts.CellList{}

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			coords := contracts.Coords{Row: row, Col: col}
			raw := grid.RawCell(coords)
			if raw == "" {
				continue
			}
			cells[contracts.CellId(coords)] = &contracts.Cell{
				Value:  raw,
				Result: displayCell(grid, evaluator, coords),
			}
		}
	}

	return cells
}

func displayCell(grid contracts.Grid, evaluator contracts.SheetEvaluator, coords contracts.Coords) string {
	raw := grid.RawCell(coords)

	switch contracts.Classify(raw) {
	case contracts.CellFormula:
		return evaluator.DisplayValue(coords)
	case contracts.CellString:
		return strings.TrimPrefix(raw, contracts.StringLiteralPrefix)
	case contracts.CellInvalid:
		return UnknownCellMarker
	default:
		return raw
	}
}
