package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, CellEmpty, Classify(""))

	assert.Equal(t, CellNumber, Classify("0"))
	assert.Equal(t, CellNumber, Classify("12345"))

	assert.Equal(t, CellString, Classify("'"))
	assert.Equal(t, CellString, Classify("'Sample"))

	assert.Equal(t, CellFormula, Classify("="))
	assert.Equal(t, CellFormula, Classify("=A1+1"))

	// negative numbers, floats and free text are not supported literals
	for _, raw := range []string{"-5", "1.5", "12a", "plain", "#E_UNKNOWN", " 12"} {
		assert.Equal(t, CellInvalid, Classify(raw), "raw: %q", raw)
	}
}

func TestColumnByLetter(t *testing.T) {
	assert.Equal(t, 0, ColumnByLetter('A'))
	assert.Equal(t, 25, ColumnByLetter('Z'))
	assert.Equal(t, 26, ColumnByLetter('a'))
	assert.Equal(t, 51, ColumnByLetter('z'))
	assert.Equal(t, -1, ColumnByLetter('1'))
	assert.Equal(t, -1, ColumnByLetter('+'))
}

func TestCellId(t *testing.T) {
	assert.Equal(t, "A1", CellId(Coords{Row: 0, Col: 0}))
	assert.Equal(t, "Z10", CellId(Coords{Row: 9, Col: 25}))
	assert.Equal(t, "a1", CellId(Coords{Row: 0, Col: 26}))
	assert.Equal(t, "z42", CellId(Coords{Row: 41, Col: 51}))
}

func TestParseCellId(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		for _, coords := range []Coords{
			{Row: 0, Col: 0},
			{Row: 9, Col: 25},
			{Row: 0, Col: 26},
			{Row: 41, Col: 51},
		} {
			parsed, err := ParseCellId(CellId(coords))
			assert.NoError(t, err)
			assert.Equal(t, coords, parsed)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, cellId := range []string{"", "A", "1A", "AA1", "A0", "A-1", "A1.5", "+1"} {
			_, err := ParseCellId(cellId)
			assert.ErrorIs(t, err, CellIdError, "cellId: %q", cellId)
		}
	})
}
