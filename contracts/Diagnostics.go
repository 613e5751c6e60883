package contracts

// DiagnosticSink receives internal errors that must not become cell text.
// The resolution driver reports through it and keeps evaluating the rest of
// the grid.
type DiagnosticSink interface {
	Report(cellId string, err error)
}
