package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

// RunApp starts the sheet evaluation HTTP service.
func RunApp(config *Config) error {
	gin.SetMode(gin.ReleaseMode)

	serviceContainer, err := BuildServiceContainer(config)

	if err == nil {
		defer serviceContainer.Database.Close()

		err = http.ListenAndServe(config.ListenAddress, serviceContainer.Router)
	}

	return err
}

// EvaluateTable runs one full evaluation pass over the table read from in
// and renders it to out; internal diagnostics go to diag.
func EvaluateTable(in io.Reader, out io.Writer, diag io.Writer, asJSON bool, maxDepth int) error {
	grid, err := ReadGrid(in)
	if err != nil {
		return err
	}

	evaluator := NewSheetEvaluator(grid, NewWriterDiagnosticSink(diag), maxDepth)
	evaluator.Run()

	if asJSON {
		return WriteGridJSON(out, grid, evaluator)
	}
	return WriteGrid(out, grid, evaluator)
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
