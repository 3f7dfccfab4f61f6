package file

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTemp writes a source file and returns its path.
func writeTemp(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

// runFile executes a path and returns (code, stdout, stderr).
func runFile(t *testing.T, path string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(path, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Success(t *testing.T) {
	path := writeTemp(t, "ok.zen", "set x 42\nprint x\n")
	code, stdout, stderr := runFile(t, path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "42\n", stdout)
	assert.Empty(t, stderr)
}

func TestRun_ZnExtensionRecognized(t *testing.T) {
	path := writeTemp(t, "ok.zn", "print \"hi\"\n")
	code, stdout, _ := runFile(t, path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hi\n", stdout)
}

func TestRun_UnrecognizedExtension(t *testing.T) {
	path := writeTemp(t, "ok.txt", "print 1\n")
	code, _, stderr := runFile(t, path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, ".zen")
}

func TestRun_MissingFile(t *testing.T) {
	code, _, stderr := runFile(t, filepath.Join(t.TempDir(), "absent.zen"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "cannot read file")
}

func TestRun_ParseErrorDiagnosticFormat(t *testing.T) {
	path := writeTemp(t, "bad.zen", "set 5 5\n")
	code, stdout, stderr := runFile(t, path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	// PATH:LINE:COL: KIND: MESSAGE
	assert.Contains(t, stderr, path+":1:5: UnexpectedToken:")
}

func TestRun_RecoveredProgramIsNotExecuted(t *testing.T) {
	path := writeTemp(t, "bad.zen", "set 1 1\nprint \"must not run\"\nset 2 2\n")
	code, stdout, stderr := runFile(t, path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "2 syntax errors")
}

func TestRun_RuntimeErrorDiagnosticFormat(t *testing.T) {
	path := writeTemp(t, "boom.zen", "print 1\nboom\n")
	code, stdout, stderr := runFile(t, path)
	assert.Equal(t, 1, code)
	assert.Equal(t, "1\n", stdout) // output before the failure is kept
	assert.Contains(t, stderr, path+":2:1: UndefinedName:")
}

func TestRun_LexicalErrorDiagnosticFormat(t *testing.T) {
	path := writeTemp(t, "lex.zen", "set s \"oops\n")
	code, _, stderr := runFile(t, path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "UnterminatedString")
}

func TestRun_FreshGlobalScopePerFile(t *testing.T) {
	first := writeTemp(t, "a.zen", "set shared 1\nprint shared\n")
	second := writeTemp(t, "b.zen", "print shared\n")

	code, stdout, _ := runFile(t, first)
	assert.Equal(t, 0, code)
	assert.Equal(t, "1\n", stdout)

	code, _, stderr := runFile(t, second)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "UndefinedName")
}

func TestRunSource_ReplLabel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := RunSource("<repl>", "boom", &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "<repl>:1:1: UndefinedName:")
}
