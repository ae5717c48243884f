package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := NewExitError(ExitFailure, "assertions failed")
		assert.Equal(t, "assertions failed", err.Error())
		assert.Equal(t, ExitFailure, err.Code)
	})

	t.Run("wrapped error", func(t *testing.T) {
		cause := fmt.Errorf("no such file")
		err := WrapExitError(ExitCommandError, "load scenario", cause)
		assert.Equal(t, "load scenario: no such file", err.Error())
		assert.ErrorIs(t, err, cause)
	})
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain error")))

	wrapped := fmt.Errorf("outer: %w", NewExitError(ExitCommandError, "inner"))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
}

func TestFormatterJSON(t *testing.T) {
	t.Run("writes in json mode", func(t *testing.T) {
		buf := &bytes.Buffer{}
		f := &OutputFormatter{Format: "json", Writer: buf}

		wrote, err := f.JSON(map[string]int{"count": 3})
		require.NoError(t, err)
		assert.True(t, wrote)

		var resp CLIResponse
		require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.NotNil(t, resp.Data)
	})

	t.Run("silent in text mode", func(t *testing.T) {
		buf := &bytes.Buffer{}
		f := &OutputFormatter{Format: "text", Writer: buf}

		wrote, err := f.JSON("ignored")
		require.NoError(t, err)
		assert.False(t, wrote)
		assert.Empty(t, buf.String())
	})
}

func TestFormatterError(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		f := &OutputFormatter{Format: "text", Writer: buf}

		require.NoError(t, f.Error(ErrCodeNotFound, "no product with id 9", nil))
		assert.Equal(t, "Error [E005]: no product with id 9\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		f := &OutputFormatter{Format: "json", Writer: buf}

		require.NoError(t, f.Error(ErrCodeScenario, "assertion failed", nil))

		var resp CLIResponse
		require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
		require.NotNil(t, resp.Error)
		assert.Equal(t, ErrCodeScenario, resp.Error.Code)
		assert.Equal(t, "assertion failed", resp.Error.Message)
	})
}

func TestVerboseLog(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	f := &OutputFormatter{Format: "text", Writer: out, ErrWriter: errOut, Verbose: false}
	f.VerboseLog("hidden %d", 1)
	assert.Empty(t, errOut.String())

	f.Verbose = true
	f.VerboseLog("shown %d", 2)
	assert.Equal(t, "shown 2\n", errOut.String())
	assert.Empty(t, out.String(), "verbose output never corrupts stdout")
}
