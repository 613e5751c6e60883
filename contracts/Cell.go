package contracts

import (
	"errors"
	"strconv"
)

// Cell is one evaluated grid position as exposed by the service surface:
// the raw text plus its display value after an evaluation pass.
type Cell struct {
	Value  string `json:"value"`
	Result string `json:"result"`
}

// CellList maps canonical cell ids to evaluated cells.
type CellList map[string]*Cell

var CellNotFoundError = errors.New("cell not found")

var SheetNotFoundError = errors.New("sheet not found")

var CellIdError = errors.New("malformed cell id")

// CellId returns the canonical cache key for coords, e.g. {0,0} => "A1".
// The row part is 1-based.
func CellId(coords Coords) string {
	return string(columnLetter(coords.Col)) + strconv.Itoa(coords.Row+1)
}

// ParseCellId is the inverse of CellId. Case is significant: 'A' and 'a'
// address different column blocks.
func ParseCellId(cellId string) (Coords, error) {
	if len(cellId) < 2 {
		return Coords{}, CellIdError
	}

	col := ColumnByLetter(cellId[0])
	if col < 0 {
		return Coords{}, CellIdError
	}

	row, err := strconv.Atoi(cellId[1:])
	if err != nil || row < 1 {
		return Coords{}, CellIdError
	}

	return Coords{Row: row - 1, Col: col}, nil
}
