package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vskvj3/nbtkit/internal/codederr"
	"github.com/vskvj3/nbtkit/internal/utils"
)

// executeCommand runs the CLI with no config file and HOME pointed at a
// temp dir, so the default log file lands there.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return executeWithConfig(t, filepath.Join(t.TempDir(), "missing.yaml"), stdin, args...)
}

func executeWithConfig(t *testing.T, cfgPath, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { utils.CloseLogger() })

	buf := new(bytes.Buffer)
	root := newRootCmd()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "nbtkit version")
}

func TestCodesCommand(t *testing.T) {
	out, err := executeCommand(t, "", "codes")
	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "Malformed Message")
	assert.Regexp(t, `1000\s+Warning\s+warning`, out)

	out, err = executeCommand(t, "", "codes", "smb")
	require.NoError(t, err)
	assert.Contains(t, out, "SMB Protocol Mismatch")
	assert.NotContains(t, out, "Malformed Message")

	_, err = executeCommand(t, "", "codes", "dns")
	assert.True(t, errors.Is(err, codederr.ErrUnknownSuite))
}

func TestDescribeCommand(t *testing.T) {
	out, err := executeCommand(t, "", "describe", "1002")
	require.NoError(t, err)
	assert.Equal(t, "NBT Semantic Error\n", out)

	out, err = executeCommand(t, "", "--suite", "smb", "describe", "1002")
	require.NoError(t, err)
	assert.Equal(t, "SMB Semantic Error\n", out)

	_, err = executeCommand(t, "", "describe", "1006")
	assert.True(t, errors.Is(err, codederr.ErrUndefinedCode))

	_, err = executeCommand(t, "", "describe", "abc")
	assert.Error(t, err)
}

func TestRaiseCommand(t *testing.T) {
	out, err := executeCommand(t, "", "raise", "1005", "short read")
	require.Error(t, err)
	assert.Contains(t, out, "1005: Malformed Message; short read.")
	assert.Contains(t, out, "grpc: InvalidArgument")
	assert.Contains(t, out, "[ERROR]")

	out, err = executeCommand(t, "", "raise", "1000")
	require.NoError(t, err, "warnings must not fail the command")
	assert.Contains(t, out, "1000: Warning.")
	assert.Contains(t, out, "grpc: FailedPrecondition")
	assert.Contains(t, out, "[WARN]")
}

func TestHexdumpCommand(t *testing.T) {
	out, err := executeCommand(t, "0123456789ABCDEFHello, Whirled", "hexdump", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "000000:  30 31 32 33 34 35 36 37  38 39 41 42 43 44 45 46  |0123456789ABCDEF|")
	assert.Contains(t, out, "|Hello, Whirled  |")

	path := filepath.Join(t.TempDir(), "capture.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x81, 0x00}, 0o644))
	out, err = executeCommand(t, "", "hexdump", path)
	require.NoError(t, err)
	assert.Contains(t, out, "000000:  81 00")

	_, err = executeCommand(t, "", "hexdump", filepath.Join(t.TempDir(), "nope.bin"))
	assert.Error(t, err)
}

func TestHexstrCommand(t *testing.T) {
	out, err := executeCommand(t, "", "hexstr", "--width", "4", "gooberry")
	require.NoError(t, err)
	assert.Equal(t, "goob\nerry\n", out)

	out, err = executeCommand(t, "", "hexstr", "\tOcelot\nBanana")
	require.NoError(t, err)
	assert.Equal(t, "\\x09Ocelot\\x0ABanana\n", out)

	_, err = executeCommand(t, "", "hexstr", "--width", "3", "abc")
	assert.Error(t, err)
}

func TestLogFileFromConfig(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "cli.log")
	cfgPath := filepath.Join(dir, "nbtkit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_file: "+logPath+"\ndebug: true\ncolor: never\n"), 0o644))

	out, err := executeWithConfig(t, cfgPath, "", "raise", "1003")
	require.Error(t, err)
	assert.Contains(t, out, "[DEBUG] config loaded")

	// the failed command skips PersistentPostRunE
	require.NoError(t, utils.CloseLogger())
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] config loaded path="+cfgPath)
	assert.Contains(t, string(data), "[ERROR] 1003: Label String Pointer.")
}

func TestDefaultLogFile(t *testing.T) {
	home := t.TempDir()
	buf := new(bytes.Buffer)
	root := newRootCmd()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"--config", filepath.Join(home, "missing.yaml"), "raise", "1000", "late"})
	t.Setenv("HOME", home)
	t.Cleanup(func() { utils.CloseLogger() })

	require.NoError(t, root.Execute())
	data, err := os.ReadFile(filepath.Join(home, ".nbtkit", "nbtkit.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[WARN] 1000: Warning; late.")
}

func TestCodesNTStatus(t *testing.T) {
	out, err := executeCommand(t, "", "codes", "NTSTATUS")
	require.NoError(t, err)
	assert.Contains(t, out, "SEVERITY")
	assert.Regexp(t, `0x00000000\s+STATUS_SUCCESS\s+Success`, out)
	assert.Regexp(t, `0x80000005\s+STATUS_BUFFER_OVERFLOW\s+Warning`, out)
	assert.Regexp(t, `0xC0000022\s+STATUS_ACCESS_DENIED\s+Error`, out)
}

func TestNTStatusCommand(t *testing.T) {
	out, err := executeCommand(t, "", "ntstatus", "0xC0000467")
	require.NoError(t, err)
	assert.Contains(t, out, "0xC0000467 STATUS_FILE_NOT_AVAILABLE\nThe file is temporarily unavailable.\n")
	assert.Contains(t, out, "severity=Error customer=0 reserved=0 facility=0 subcode=1127")

	out, err = executeCommand(t, "", "ntstatus", "status_success")
	require.NoError(t, err)
	assert.Contains(t, out, "0x00000000 STATUS_SUCCESS")
	assert.Contains(t, out, "severity=Success")

	out, err = executeCommand(t, "", "ntstatus", "0x60123456")
	require.NoError(t, err)
	assert.Contains(t, out, "0x60123456 (not in table)")
	assert.Contains(t, out, "severity=Info customer=1 reserved=0 facility=18 subcode=13398")

	_, err = executeCommand(t, "", "ntstatus", "STATUS_FELDSPAR")
	assert.True(t, errors.Is(err, errUnknownStatus))
}
