package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vadimeg/ElTable/contracts"
)

func TestReadGrid(t *testing.T) {
	t.Run("reference_table", func(t *testing.T) {
		input := "3\t4\n" +
			"12\t=C2\t3\t'Sample\n" +
			"=A1+B1*C1/5\t=A2*B1\t=B3-C3\t'Spread\n" +
			"'Test\t=4-3\t5\t'Sheet\n"

		grid, err := ReadGrid(strings.NewReader(input))
		assert.NoError(t, err)
		assert.Equal(t, 3, grid.Rows())
		assert.Equal(t, 4, grid.Cols())

		assert.Equal(t, "12", grid.RawCell(contracts.Coords{Row: 0, Col: 0}))
		assert.Equal(t, "=A2*B1", grid.RawCell(contracts.Coords{Row: 1, Col: 1}))
		assert.Equal(t, "'Sheet", grid.RawCell(contracts.Coords{Row: 2, Col: 3}))
		assert.Len(t, grid.FormulaRecords(), 5)
	})

	t.Run("header_with_spaces", func(t *testing.T) {
		grid, err := ReadGrid(strings.NewReader("2 3\n1\t2\t3\n"))
		assert.NoError(t, err)
		assert.Equal(t, 2, grid.Rows())
		assert.Equal(t, 3, grid.Cols())
	})

	t.Run("missing_lines_become_empty_cells", func(t *testing.T) {
		grid, err := ReadGrid(strings.NewReader("2\t2\n1\t2\n"))
		assert.NoError(t, err)
		assert.Equal(t, "", grid.RawCell(contracts.Coords{Row: 1, Col: 0}))
	})

	t.Run("missing_columns_become_empty_cells", func(t *testing.T) {
		grid, err := ReadGrid(strings.NewReader("1\t3\n1\n"))
		assert.NoError(t, err)
		assert.Equal(t, "1", grid.RawCell(contracts.Coords{Row: 0, Col: 0}))
		assert.Equal(t, "", grid.RawCell(contracts.Coords{Row: 0, Col: 1}))
	})

	t.Run("extra_lines_and_columns_are_dropped", func(t *testing.T) {
		grid, err := ReadGrid(strings.NewReader("1\t1\na\tb\nc\td\n"))
		assert.NoError(t, err)
		assert.Equal(t, 1, grid.Rows())
		assert.Equal(t, 1, grid.Cols())
		assert.Equal(t, "a", grid.RawCell(contracts.Coords{Row: 0, Col: 0}))
	})

	t.Run("empty_input", func(t *testing.T) {
		_, err := ReadGrid(strings.NewReader(""))
		assert.ErrorIs(t, err, TableHeaderError)
	})

	t.Run("malformed_header", func(t *testing.T) {
		_, err := ReadGrid(strings.NewReader("three four\n"))
		assert.ErrorIs(t, err, TableHeaderError)

		_, err = ReadGrid(strings.NewReader("3\n"))
		assert.ErrorIs(t, err, TableHeaderError)
	})

	t.Run("non_positive_dimensions", func(t *testing.T) {
		_, err := ReadGrid(strings.NewReader("0\t4\n"))
		assert.ErrorIs(t, err, GridBoundsError)
	})

	t.Run("too_many_columns", func(t *testing.T) {
		_, err := ReadGrid(strings.NewReader("1\t53\n"))
		assert.ErrorIs(t, err, GridBoundsError)
	})

	t.Run("too_many_rows", func(t *testing.T) {
		_, err := ReadGrid(strings.NewReader("70000\t4\n"))
		assert.ErrorIs(t, err, GridBoundsError)
	})
}
