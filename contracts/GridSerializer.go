package contracts

type GridSerializer interface {
	MarshalCell(coords Coords, raw string) []byte
	UnmarshalCell(data []byte) (Coords, string, error)
	MarshalDims(rows int, cols int) []byte
	UnmarshalDims(data []byte) (rows int, cols int, err error)
}
