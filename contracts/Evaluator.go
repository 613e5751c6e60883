package contracts

// SheetEvaluator runs one evaluation pass over a grid's formula cells and
// exposes their resolved display values afterwards.
type SheetEvaluator interface {
	Run()
	DisplayValue(coords Coords) string
}
