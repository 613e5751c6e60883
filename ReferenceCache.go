package main

import "github.com/vadimeg/ElTable/contracts"

// ReferenceCache memoizes resolved cells and doubles as the cycle detector.
// An entry is inserted Pending strictly before its cell's formula recursion
// starts, so a Pending token seen through Lookup means the reference chain
// has looped back into a cell still on the call stack.
//
// The cache lives for one evaluation pass, grows monotonically and has a
// single owner; no locking is needed.
type ReferenceCache struct {
	tokens map[string]contracts.Token
}

func NewReferenceCache() *ReferenceCache {
	return &ReferenceCache{tokens: map[string]contracts.Token{}}
}

// Reserve inserts a Pending entry for cellId if absent and reports whether
// an entry already existed. It must be called before any recursive
// evaluation of that cell's formula.
func (c *ReferenceCache) Reserve(cellId string) bool {
	if _, ok := c.tokens[cellId]; ok {
		return true
	}
	c.tokens[cellId] = contracts.PendingToken()
	return false
}

func (c *ReferenceCache) Lookup(cellId string) (contracts.Token, bool) {
	token, ok := c.tokens[cellId]
	return token, ok
}

// Commit overwrites the entry for cellId with the final token. Every
// resolution path commits at most once, after Reserve.
func (c *ReferenceCache) Commit(cellId string, token contracts.Token) {
	c.tokens[cellId] = token
}

func (c *ReferenceCache) Len() int {
	return len(c.tokens)
}
