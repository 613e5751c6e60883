package main

import (
	"fmt"
	"io"
)

// WriterDiagnosticSink writes internal errors as one line per report, e.g.
// to stderr. It replaces ad-hoc error printing inside the resolution logic.
type WriterDiagnosticSink struct {
	out io.Writer
}

func NewWriterDiagnosticSink(out io.Writer) *WriterDiagnosticSink {
	return &WriterDiagnosticSink{out: out}
}

func (s *WriterDiagnosticSink) Report(cellId string, err error) {
	_, _ = fmt.Fprintf(s.out, "diagnostic: cell %s: %s\n", cellId, err)
}

type NopDiagnosticSink struct{}

func (NopDiagnosticSink) Report(string, error) {}
