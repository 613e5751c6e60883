package contracts

import "strings"

const FormulaPrefix = "="

const StringLiteralPrefix = "'"

// MaxColumns bounds the two-block column-letter encoding: 'A'-'Z' address
// columns 0-25 and 'a'-'z' columns 26-51. Wider grids are unsupported.
const MaxColumns = 52

// MaxRows bounds the row count to what the persisted cell records can
// represent: rows are stored as uint16.
const MaxRows = 65535

type Coords struct {
	Row int
	Col int
}

type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellString
	CellFormula
	CellInvalid
)

// Grid is the raw-cell collaborator the engine reads from. RawCell is pure;
// cells do not change during an evaluation pass.
type Grid interface {
	RawCell(coords Coords) string
	Rows() int
	Cols() int
	FormulaRecords() []FormulaRecord
}

// FormulaRecord is one entry of the resolution driver's work list, collected
// at grid-load time in natural (top-to-bottom, left-to-right) order.
type FormulaRecord struct {
	Coords  Coords
	Formula string // formula body, leading marker already stripped
}

// Classify tags raw cell text with exactly one category.
func Classify(raw string) CellKind {
	switch {
	case raw == "":
		return CellEmpty
	case strings.HasPrefix(raw, FormulaPrefix):
		return CellFormula
	case strings.HasPrefix(raw, StringLiteralPrefix):
		return CellString
	case isDigits(raw):
		return CellNumber
	default:
		return CellInvalid
	}
}

// isDigits reports whether s is a non-empty run of decimal digits; only
// positive integer literals are supported.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// ColumnByLetter decodes a column letter, or -1 when c is not one.
func ColumnByLetter(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c >= 'a' && c <= 'z':
		return 26 + int(c-'a')
	}
	return -1
}

// columnLetter is the inverse of ColumnByLetter; callers guarantee
// col < MaxColumns.
func columnLetter(col int) byte {
	if col < 26 {
		return byte('A' + col)
	}
	return byte('a' + col - 26)
}
