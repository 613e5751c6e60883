package contracts

import "errors"

// ExpressionError is the root of all recoverable evaluation errors. They are
// caught at the resolution boundary of the cell being computed and turned
// into a Text token carrying the error's display code, so one bad formula
// never aborts the rest of the grid.
var ExpressionError = errors.New("expression error")

// InternalError marks a broken resolution protocol (a cell reserved twice
// outside the cycle-check path). It is never converted to display text; it
// goes to the diagnostic sink and leaves the cell's cache entry Pending.
var InternalError = errors.New("internal error")

// EvalError is a recoverable evaluation failure. Code is what the failing
// cell displays instead of a value.
type EvalError struct {
	Code   string
	reason string
}

func (e *EvalError) Error() string {
	return e.Code + ": " + e.reason
}

func (e *EvalError) Unwrap() error {
	return ExpressionError
}

var (
	UnexpectedSymbolError     = &EvalError{Code: "#E_UNEXP_SYMBOL", reason: "unexpected symbol in formula"}
	InvalidReferenceError     = &EvalError{Code: "#E_INVALID_REF", reason: "reference is out of grid bounds"}
	WrongReferenceTargetError = &EvalError{Code: "#E_WRONG_REF", reason: "referenced cell holds an unsupported value"}
	CrossReferenceError       = &EvalError{Code: "#E_CROSS_REF", reason: "circular reference detected"}
	UnexpectedOperandError    = &EvalError{Code: "#E_UNEXP_EXPR", reason: "arithmetic on a non-numeric operand"}
	DivisionNonFiniteError    = &EvalError{Code: "#E_INFINITE", reason: "division produced a non-finite result"}
	UnknownOperatorError      = &EvalError{Code: "#E_UNKNOWN_OP", reason: "operator is not supported"}
	ReferenceDepthError       = &EvalError{Code: "#E_REF_DEPTH", reason: "reference chain is too deep"}
)

// AsEvalError returns the recoverable evaluation error inside err, or nil
// when err is an internal or structural failure.
func AsEvalError(err error) *EvalError {
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		return evalErr
	}
	return nil
}
