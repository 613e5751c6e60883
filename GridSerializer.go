package main

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/vadimeg/ElTable/contracts"
)

var SerializerError = errors.New("invalid serialized data")

// dimsKey is the reserved bucket key holding the grid dimensions; cell
// identity keys always start with a column letter, never 0x00.
var dimsKey = []byte{0x00}

// GridBinarySerializer encodes cell records as uint16 row + uint16 col +
// raw text, and the dimensions record as uint16 rows + uint16 cols.
type GridBinarySerializer struct {
}

func NewGridBinarySerializer() *GridBinarySerializer {
	return &GridBinarySerializer{}
}

func (s *GridBinarySerializer) MarshalCell(coords contracts.Coords, raw string) []byte {
	data := make([]byte, 0, 4+len(raw))

	data = binary.LittleEndian.AppendUint16(data, uint16(coords.Row))
	data = binary.LittleEndian.AppendUint16(data, uint16(coords.Col))
	data = append(data, raw...)
	return data
}

func (s *GridBinarySerializer) UnmarshalCell(data []byte) (contracts.Coords, string, error) {
	if len(data) < 4 {
		return contracts.Coords{}, "", fmt.Errorf("%w: cell record shorter than 4 bytes (data: %v)", SerializerError, data)
	}

	coords := contracts.Coords{
		Row: int(binary.LittleEndian.Uint16(data)),
		Col: int(binary.LittleEndian.Uint16(data[2:])),
	}
	return coords, string(data[4:]), nil
}

func (s *GridBinarySerializer) MarshalDims(rows int, cols int) []byte {
	data := make([]byte, 0, 4)

	data = binary.LittleEndian.AppendUint16(data, uint16(rows))
	data = binary.LittleEndian.AppendUint16(data, uint16(cols))
	return data
}

func (s *GridBinarySerializer) UnmarshalDims(data []byte) (rows int, cols int, err error) {
	if len(data) != 4 {
		return 0, 0, fmt.Errorf("%w: dimensions record should be 4 bytes (data: %v)", SerializerError, data)
	}

	rows = int(binary.LittleEndian.Uint16(data))
	cols = int(binary.LittleEndian.Uint16(data[2:]))
	return rows, cols, nil
}
