package main

import "github.com/vadimeg/ElTable/contracts"

// Run resolves every formula cell of the grid in its natural order. Cells
// already resolved as dependencies of an earlier record are skipped. Domain
// errors become the cell's display text; internal errors go to the
// diagnostic sink and leave the entry Pending, while the rest of the grid
// keeps evaluating.
func (e *SheetEvaluator) Run() {
	for _, record := range e.grid.FormulaRecords() {
		cellId := contracts.CellId(record.Coords)

		if _, ok := e.cache.Lookup(cellId); ok {
			continue
		}
		e.cache.Reserve(cellId)

		token, err := e.evaluateExpression(record.Formula, 0)
		if err != nil {
			evalErr := contracts.AsEvalError(err)
			if evalErr == nil {
				e.sink.Report(cellId, err)
				continue
			}
			token = contracts.TextToken(evalErr.Code)
		}

		e.cache.Commit(cellId, token)
	}
}

// DisplayValue returns the resolved textual form of a formula cell after
// Run: integer rendering for numbers, the payload for text and error codes,
// an empty string for the internal-error Pending gap.
func (e *SheetEvaluator) DisplayValue(coords contracts.Coords) string {
	token, _ := e.cache.Lookup(contracts.CellId(coords))
	return token.String()
}
