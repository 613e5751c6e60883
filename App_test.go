package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateTable(t *testing.T) {
	input := "3\t4\n" +
		"12\t=C2\t3\t'Sample\n" +
		"=A1+B1*C1/5\t=A2*B1\t=B3-C3\t'Spread\n" +
		"'Test\t=4-3\t5\t'Sheet\n"

	t.Run("tab_delimited", func(t *testing.T) {
		var out, diag bytes.Buffer

		err := EvaluateTable(strings.NewReader(input), &out, &diag, false, 0)
		assert.NoError(t, err)

		expected := "12\t-4\t3\tSample\n" +
			"4\t-16\t-4\tSpread\n" +
			"Test\t1\t5\tSheet\n"
		assert.Equal(t, expected, out.String())
		assert.Empty(t, diag.String())
	})

	t.Run("json", func(t *testing.T) {
		var out, diag bytes.Buffer

		err := EvaluateTable(strings.NewReader(input), &out, &diag, true, 0)
		assert.NoError(t, err)
		assert.Contains(t, out.String(), `"B1":{"value":"=C2","result":"-4"}`)
	})

	t.Run("malformed_input", func(t *testing.T) {
		var out, diag bytes.Buffer

		err := EvaluateTable(strings.NewReader("nope"), &out, &diag, false, 0)
		assert.ErrorIs(t, err, TableHeaderError)
	})
}

func TestRunApp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config := DefaultConfig()
		config.DatabasePath = filepath.Join(t.TempDir(), "app.db")
		config.ListenAddress = "localhost:18080"

		var appErr error
		go func() {
			appErr = RunApp(config)
		}()
		runtime.Gosched()

		var err error
		var res *http.Response
		for i := 0; i < 3; i++ {
			if appErr != nil {
				t.Errorf("RunApp() error = %v", appErr)
				break
			}

			time.Sleep(50 * time.Millisecond)
			client := http.Client{
				Timeout: time.Second * 2,
			}
			res, err = client.Get("http://localhost:18080/healthcheck")
			if err == nil {
				break
			}
		}

		assert.NoError(t, err)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		body, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		assert.Equal(t, "health", string(body))
	})

	t.Run("unusable_database_path", func(t *testing.T) {
		config := DefaultConfig()
		config.DatabasePath = filepath.Join(t.TempDir(), "missing", "app.db")

		var err error
		done := make(chan struct{})
		go func() {
			err = RunApp(config)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("RunApp did not return")
		}
		assert.Error(t, err)
	})
}

func TestHandleExitError(t *testing.T) {
	var actualExitCode int
	var out bytes.Buffer

	testCases := map[error]int{
		errors.New("dummy error"): ExitCodeMainError,
		nil:                       0,
	}

	for err, expectedCode := range testCases {
		out.Reset()
		actualExitCode = HandleExitError(&out, err)

		assert.Equal(t, expectedCode, actualExitCode)
		if err == nil {
			assert.Empty(t, out.String(), "Error is not empty")
		} else {
			assert.Contains(t, out.String(), err.Error(), "error output hasn't error description")
		}
	}
}

func TestRootCommand(t *testing.T) {
	inputPath := filepath.Join(t.TempDir(), "table.elt")
	assert.NoError(t, os.WriteFile(inputPath, []byte("1\t2\n=21*2\t'ok\n"), 0600))

	os.Setenv(envConfigPath, filepath.Join(t.TempDir(), "absent.yml"))
	defer os.Unsetenv(envConfigPath)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{inputPath})

	assert.NoError(t, rootCmd.Execute())
	assert.Equal(t, "42\tok\n", out.String())
}
