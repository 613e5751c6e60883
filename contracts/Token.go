package contracts

import "strconv"

type TokenType int

const (
	// TokenPending marks a cell whose resolution is still in progress.
	// Observing it through a reference means the chain looped back into a
	// cell that is currently on the call stack.
	TokenPending TokenType = iota
	TokenNumber
	TokenText
)

// Token is the tagged result of resolving a cell or sub-expression. Number
// payloads are kept as float64 for the division check but are always
// integer-valued after arithmetic. Text carries both genuine string results
// and error display codes.
type Token struct {
	Type   TokenType
	Number float64
	Text   string
}

func PendingToken() Token {
	return Token{Type: TokenPending}
}

func NumberToken(value float64) Token {
	return Token{Type: TokenNumber, Number: value}
}

func TextToken(value string) Token {
	return Token{Type: TokenText, Text: value}
}

func (t Token) IsPending() bool {
	return t.Type == TokenPending
}

// String renders the token for display: Number as a truncated integer, Text
// as its payload, Pending as an empty string.
func (t Token) String() string {
	if t.Type == TokenNumber {
		return strconv.Itoa(int(t.Number))
	}
	return t.Text
}
