package main

import (
	"bytes"
	"fmt"
	"strings"

	"go.etcd.io/bbolt"

	"github.com/vadimeg/ElTable/contracts"
)

// SheetRepository stores raw grids in bbolt, one bucket per sheet id, and
// evaluates them on read. Keys are canonical cell ids plus the reserved
// dimensions record.
type SheetRepository struct {
	db         *bbolt.DB
	serializer contracts.GridSerializer
	sink       contracts.DiagnosticSink
	maxDepth   int
}

func NewSheetRepository(db *bbolt.DB, serializer contracts.GridSerializer, sink contracts.DiagnosticSink, maxDepth int) *SheetRepository {
	return &SheetRepository{
		db:         db,
		serializer: serializer,
		sink:       sink,
		maxDepth:   maxDepth,
	}
}

// SaveSheet replaces the sheet's stored grid wholesale; empty cells are not
// persisted.
func (s *SheetRepository) SaveSheet(sheetId string, grid contracts.Grid) error {
	sheetIdByte := []byte(strings.ToLower(sheetId))

	return s.db.Batch(func(tx *bbolt.Tx) error {
		err := tx.DeleteBucket(sheetIdByte)
		if err != nil && err != bbolt.ErrBucketNotFound {
			return err
		}

		bucket, err := tx.CreateBucket(sheetIdByte)
		if err != nil {
			return err
		}

		err = bucket.Put(dimsKey, s.serializer.MarshalDims(grid.Rows(), grid.Cols()))
		if err != nil {
			return err
		}

		for row := 0; row < grid.Rows(); row++ {
			for col := 0; col < grid.Cols(); col++ {
				coords := contracts.Coords{Row: row, Col: col}
				raw := grid.RawCell(coords)
				if raw == "" {
					continue
				}

				err = bucket.Put([]byte(contracts.CellId(coords)), s.serializer.MarshalCell(coords, raw))
				if err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// GetSheet loads the sheet, runs one evaluation pass and returns every
// non-empty cell with its display value.
func (s *SheetRepository) GetSheet(sheetId string) (contracts.CellList, error) {
	var cells contracts.CellList

	err := s.db.View(func(tx *bbolt.Tx) error {
		grid, err := s.loadGrid(tx, sheetId)
		if err != nil {
			return err
		}

		evaluator := NewSheetEvaluator(grid, s.sink, s.maxDepth)
		evaluator.Run()

		cells = EvaluatedCellList(grid, evaluator)
		return nil
	})

	return cells, err
}

func (s *SheetRepository) GetCell(sheetId string, cellId string) (*contracts.Cell, error) {
	coords, err := contracts.ParseCellId(cellId)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cellId, err)
	}

	var cell *contracts.Cell

	err = s.db.View(func(tx *bbolt.Tx) error {
		grid, err := s.loadGrid(tx, sheetId)
		if err != nil {
			return err
		}

		if coords.Row >= grid.Rows() || coords.Col >= grid.Cols() {
			return fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
		}

		evaluator := NewSheetEvaluator(grid, s.sink, s.maxDepth)
		evaluator.Run()

		cell = &contracts.Cell{
			Value:  grid.RawCell(coords),
			Result: displayCell(grid, evaluator, coords),
		}
		return nil
	})

	return cell, err
}

// SetCell overwrites one cell's raw text inside the sheet's declared
// bounds; an empty value clears the cell. The returned cell carries the
// display value after re-evaluation.
func (s *SheetRepository) SetCell(sheetId string, cellId string, value string) (*contracts.Cell, error) {
	coords, err := contracts.ParseCellId(cellId)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cellId, err)
	}

	sheetIdByte := []byte(strings.ToLower(sheetId))
	canonicalKey := []byte(contracts.CellId(coords))

	err = s.db.Batch(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(sheetIdByte)
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		rows, cols, err := s.serializer.UnmarshalDims(bucket.Get(dimsKey))
		if err != nil {
			return err
		}
		if coords.Row >= rows || coords.Col >= cols {
			return fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
		}

		if value == "" {
			return bucket.Delete(canonicalKey)
		}
		return bucket.Put(canonicalKey, s.serializer.MarshalCell(coords, value))
	})
	if err != nil {
		return nil, err
	}

	return s.GetCell(sheetId, cellId)
}

func (s *SheetRepository) loadGrid(tx *bbolt.Tx, sheetId string) (*Grid, error) {
	bucket := tx.Bucket([]byte(strings.ToLower(sheetId)))
	if bucket == nil {
		return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	rows, cols, err := s.serializer.UnmarshalDims(bucket.Get(dimsKey))
	if err != nil {
		return nil, err
	}

	grid, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	c := bucket.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		if bytes.Equal(k, dimsKey) {
			continue
		}

		coords, raw, err := s.serializer.UnmarshalCell(v)
		if err != nil {
			// a corrupt record loses one cell, not the sheet
			continue
		}
		grid.SetRawCell(coords, raw)
	}

	return grid, nil
}
