package main

import (
	"math"

	"github.com/vadimeg/ElTable/contracts"
)

// DefaultMaxReferenceDepth caps the reference recursion so a deeply chained
// grid degrades to an error cell instead of exhausting the call stack.
const DefaultMaxReferenceDepth = 1000

type operator int

const (
	opNone operator = iota
	opAdd
	opSub
	opMul
	opDiv
	opUnknown
)

// SheetEvaluator parses and reduces a grid's formula cells, resolving
// cross-cell references through a ReferenceCache shared by the whole pass.
type SheetEvaluator struct {
	grid     contracts.Grid
	cache    *ReferenceCache
	sink     contracts.DiagnosticSink
	maxDepth int
}

func NewSheetEvaluator(grid contracts.Grid, sink contracts.DiagnosticSink, maxDepth int) *SheetEvaluator {
	if sink == nil {
		sink = NopDiagnosticSink{}
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxReferenceDepth
	}

	return &SheetEvaluator{
		grid:     grid,
		cache:    NewReferenceCache(),
		sink:     sink,
		maxDepth: maxDepth,
	}
}

func operatorBySymbol(c byte) operator {
	switch c {
	case '+':
		return opAdd
	case '-':
		return opSub
	case '*':
		return opMul
	case '/':
		return opDiv
	default:
		return opUnknown
	}
}

func isOperatorSymbol(c byte) bool {
	return operatorBySymbol(c) != opUnknown
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isReferenceCandidate reports whether c starts a cell reference, i.e. is a
// column letter addressing a column below the grid's column count.
func (e *SheetEvaluator) isReferenceCandidate(c byte) bool {
	col := contracts.ColumnByLetter(c)
	return col >= 0 && col < e.grid.Cols()
}

// evaluateExpression reduces one formula body with the flat reduced
// reverse-Polish rule: no precedence, no grouping. As soon as two operands
// sit on the stack with an operator pending they are reduced immediately,
// which keeps evaluation strictly left to right.
//
// The scan is strict: a dangling operator, an empty body or an unreduced
// operand pair at end of scan is an UnexpectedSymbolError.
func (e *SheetEvaluator) evaluateExpression(expression string, depth int) (contracts.Token, error) {
	operands := make([]contracts.Token, 0, 2)
	pending := opNone

	for i := 0; i < len(expression); i++ {
		c := expression[i]

		switch {
		case isOperatorSymbol(c):
			if pending != opNone || len(operands) == 0 {
				return contracts.Token{}, contracts.UnexpectedSymbolError
			}
			pending = operatorBySymbol(c)

		case isDigit(c):
			value, last, err := scanNumber(expression, i)
			if err != nil {
				return contracts.Token{}, err
			}
			i = last
			operands = append(operands, contracts.NumberToken(float64(value)))

		case e.isReferenceCandidate(c):
			token, last, err := e.resolveReference(expression, i, depth)
			if err != nil {
				return contracts.Token{}, err
			}
			i = last
			operands = append(operands, token)

		default:
			return contracts.Token{}, contracts.UnexpectedSymbolError
		}

		if len(operands) == 2 && pending != opNone {
			token, err := applyOperator(operands[0], operands[1], pending)
			if err != nil {
				return contracts.Token{}, err
			}
			operands = append(operands[:0], token)
			pending = opNone
		}
	}

	if len(operands) != 1 || pending != opNone {
		return contracts.Token{}, contracts.UnexpectedSymbolError
	}

	return operands[0], nil
}

// applyOperator reduces two operands with op. Every binary step truncates
// its numeric result toward zero, so intermediate values are always
// integer-valued. Division is checked after the fact for a non-finite float
// result, which is how a zero divisor shows up.
func applyOperator(left contracts.Token, right contracts.Token, op operator) (contracts.Token, error) {
	if left.Type != contracts.TokenNumber || right.Type != contracts.TokenNumber {
		return contracts.Token{}, contracts.UnexpectedOperandError
	}

	var value float64
	switch op {
	case opAdd:
		value = left.Number + right.Number
	case opSub:
		value = left.Number - right.Number
	case opMul:
		value = left.Number * right.Number
	case opDiv:
		value = left.Number / right.Number
		if math.IsInf(value, 0) || math.IsNaN(value) {
			return contracts.Token{}, contracts.DivisionNonFiniteError
		}
	default:
		return contracts.Token{}, contracts.UnknownOperatorError
	}

	return contracts.NumberToken(math.Trunc(value)), nil
}

// scanNumber consumes the maximal digit run starting at start and returns
// its value plus the index of the run's last digit. A run whose value does
// not fit an int fails the scan instead of wrapping.
func scanNumber(s string, start int) (value int, last int, err error) {
	i := start
	for i < len(s) && isDigit(s[i]) {
		digit := int(s[i] - '0')
		if value > (math.MaxInt-digit)/10 {
			return 0, 0, contracts.UnexpectedSymbolError
		}
		value = value*10 + digit
		i++
	}
	return value, i - 1, nil
}
