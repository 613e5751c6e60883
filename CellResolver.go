package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vadimeg/ElTable/contracts"
)

// resolveReference consumes one cell reference starting at expression[start]
// and returns its token plus the index of the reference's last character.
// Already-resolved cells short-circuit through the cache; a Pending entry
// means the chain looped back into a cell still being computed.
func (e *SheetEvaluator) resolveReference(expression string, start int, depth int) (contracts.Token, int, error) {
	col := contracts.ColumnByLetter(expression[start])

	rowNumber, last, err := scanNumber(expression, start+1)
	row := rowNumber - 1
	if err != nil || row < 0 || row >= e.grid.Rows() {
		return contracts.Token{}, 0, contracts.InvalidReferenceError
	}

	coords := contracts.Coords{Row: row, Col: col}
	cellId := contracts.CellId(coords)

	if token, ok := e.cache.Lookup(cellId); ok {
		if token.IsPending() {
			return contracts.Token{}, 0, contracts.CrossReferenceError
		}
		return token, last, nil
	}

	token, err := e.resolveCell(coords, depth+1)
	if err != nil {
		return contracts.Token{}, 0, err
	}

	return token, last, nil
}

// resolveCell computes the token for one cell and commits it. The Pending
// entry must not exist yet: cached and in-flight cells are filtered out by
// the reference scan before resolveCell is called, so a prior entry means
// the reserve-before-recurse protocol was broken.
//
// Domain errors raised by the cell's own formula are converted to a Text
// token here, at the cell's resolution boundary: a bad dependency displays
// its own error code while the referencing formula still gets a usable
// operand. An unclassifiable cell propagates WrongReferenceTargetError to
// the caller instead, leaving the entry Pending.
func (e *SheetEvaluator) resolveCell(coords contracts.Coords, depth int) (contracts.Token, error) {
	if depth > e.maxDepth {
		return contracts.Token{}, contracts.ReferenceDepthError
	}

	cellId := contracts.CellId(coords)
	if e.cache.Reserve(cellId) {
		return contracts.Token{}, fmt.Errorf("%w: cell %s resolved twice", contracts.InternalError, cellId)
	}

	raw := e.grid.RawCell(coords)

	var token contracts.Token
	switch contracts.Classify(raw) {
	case contracts.CellFormula:
		var err error
		token, err = e.evaluateExpression(strings.TrimPrefix(raw, contracts.FormulaPrefix), depth)
		if err != nil {
			evalErr := contracts.AsEvalError(err)
			if evalErr == nil {
				return contracts.Token{}, err
			}
			token = contracts.TextToken(evalErr.Code)
		}

	case contracts.CellNumber:
		value, _ := strconv.Atoi(raw)
		token = contracts.NumberToken(float64(value))

	case contracts.CellString:
		token = contracts.TextToken(strings.TrimPrefix(raw, contracts.StringLiteralPrefix))

	case contracts.CellEmpty:
		token = contracts.TextToken("")

	default:
		return contracts.Token{}, contracts.WrongReferenceTargetError
	}

	e.cache.Commit(cellId, token)
	return token, nil
}
