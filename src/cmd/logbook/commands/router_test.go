// FILE: logbook/src/cmd/logbook/commands/router_test.go
package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"logbook/src/internal/config"
	"logbook/src/internal/format"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRuntime(stdin string) (*Runtime, *bytes.Buffer) {
	var out bytes.Buffer
	rt := &Runtime{
		Config: &config.Config{
			Logging: config.DefaultLogConfig(),
			Store:   &config.StoreConfig{TimestampFormat: "2006-01-02T15:04:05.000000"},
			IO:      &config.IOConfig{Format: "txt"},
			Shell:   &config.ShellConfig{ShowMenu: true},
		},
		Logger: log.NewLogger(),
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: &out,
	}
	return rt, &out
}

func writeLogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const sampleLog = "t1 [INFO] start\n" +
	"t2 [ERROR] disk full\n" +
	"t3 [ERROR] disk full\n" +
	"t4 [WARNING] low mem\n"

func TestCommandRouter_Analyze(t *testing.T) {
	rt, out := newTestRuntime("")
	router := NewCommandRouter(rt)

	require.NoError(t, router.Route([]string{"analyze", writeLogFile(t, sampleLog)}, false))
	assert.Equal(t, "disk full: 2\n", out.String())
}

func TestCommandRouter_Summary(t *testing.T) {
	rt, out := newTestRuntime("")
	router := NewCommandRouter(rt)

	require.NoError(t, router.Route([]string{"summary", writeLogFile(t, sampleLog)}, false))
	assert.Equal(t, "total_entries: 4\nerror_count: 2\nwarning_count: 1\n", out.String())
}

func TestCommandRouter_AnalyzeMalformed(t *testing.T) {
	rt, _ := newTestRuntime("")
	router := NewCommandRouter(rt)

	err := router.Route([]string{"analyze", writeLogFile(t, "t1 [INFO] ok\nbroken\n")}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrMalformedLine)
	assert.NotErrorIs(t, err, ErrUsage)
}

func TestCommandRouter_UsageErrors(t *testing.T) {
	rt, _ := newTestRuntime("")
	router := NewCommandRouter(rt)

	testCases := []struct {
		name string
		args []string
	}{
		{"UnknownCommand", []string{"frobnicate"}},
		{"AnalyzeWithoutFile", []string{"analyze"}},
		{"SummaryTooManyFiles", []string{"summary", "a", "b"}},
		{"ShellTooManyFiles", []string{"shell", "a", "b"}},
		{"ConfigWithoutSave", []string{"config", "load", "x"}},
		{"HelpUnknownCommand", []string{"help", "nope"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := router.Route(tc.args, false)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}
}

func TestCommandRouter_DefaultIsShell(t *testing.T) {
	rt, out := newTestRuntime("1\nERROR\ndisk full\n6\n0\n")
	router := NewCommandRouter(rt)

	require.NoError(t, router.Route(nil, false))
	assert.Contains(t, out.String(), "error_count: 1")
	assert.NotContains(t, out.String(), "Menu:", "menu is only shown when interactive")
}

func TestShellCommand_LoadsFile(t *testing.T) {
	rt, out := newTestRuntime("2\n0\n")
	rt.Interactive = true
	router := NewCommandRouter(rt)

	require.NoError(t, router.Route([]string{"shell", writeLogFile(t, sampleLog)}, false))
	output := out.String()
	assert.Contains(t, output, "Loaded 4 entries")
	assert.Contains(t, output, "Menu:")
	assert.Contains(t, output, "t4 [WARNING] low mem\n")
}

func TestShellCommand_LoadsPartialFile(t *testing.T) {
	rt, out := newTestRuntime("2\n0\n")
	router := NewCommandRouter(rt)

	path := writeLogFile(t, "t1 [INFO] start\nt2 [ERROR] disk full\nbroken line\nt4 [INFO] never read\n")
	require.NoError(t, router.Route([]string{"shell", path}, false))

	output := out.String()
	assert.Contains(t, output, "Error importing logs: ")
	assert.Contains(t, output, "line 3")
	assert.Contains(t, output, "2 entries imported before the error were kept.\n")
	assert.NotContains(t, output, "Loaded")
	assert.Contains(t, output, "t2 [ERROR] disk full\n")
	assert.NotContains(t, output, "never read")
}

func TestShellCommand_FirstLineMalformed(t *testing.T) {
	rt, out := newTestRuntime("0\n")
	router := NewCommandRouter(rt)

	require.NoError(t, router.Route([]string{"shell", writeLogFile(t, "garbage\n")}, false))
	assert.Contains(t, out.String(), "Error importing logs: ")
	assert.NotContains(t, out.String(), "were kept")
}

func TestCommandRouter_Help(t *testing.T) {
	t.Run("General", func(t *testing.T) {
		rt, out := newTestRuntime("")
		require.NoError(t, NewCommandRouter(rt).Route(nil, true))
		assert.Contains(t, out.String(), "LogBook: an interactive log entry manager.")
		assert.Contains(t, out.String(), "  analyze  ")
		assert.Contains(t, out.String(), "  version  ")
	})

	t.Run("CommandFlag", func(t *testing.T) {
		rt, out := newTestRuntime("")
		require.NoError(t, NewCommandRouter(rt).Route([]string{"analyze"}, true))
		assert.True(t, strings.HasPrefix(out.String(), "Analyze Command"))
	})

	t.Run("HelpCommand", func(t *testing.T) {
		rt, out := newTestRuntime("")
		require.NoError(t, NewCommandRouter(rt).Route([]string{"help", "summary"}, false))
		assert.True(t, strings.HasPrefix(out.String(), "Summary Command"))
	})
}

func TestVersionCommand(t *testing.T) {
	rt, out := newTestRuntime("")
	require.NoError(t, NewCommandRouter(rt).Route([]string{"version"}, false))
	assert.Contains(t, out.String(), "dev")
}
