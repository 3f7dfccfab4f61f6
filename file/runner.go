// Package file executes ZEN source files: read, tokenize, parse, evaluate
// in a fresh global scope, and report diagnostics in the standard
// PATH:LINE:COL: KIND: MESSAGE form.
package file

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/akaoio/zen/eval"
	"github.com/akaoio/zen/parser"
	"github.com/akaoio/zen/values"
)

// Extensions lists the recognized ZEN source extensions.
var Extensions = []string{".zen", ".zn"}

var errColor = color.New(color.FgRed)

// Run executes one source file. Program output (print) goes to stdout,
// diagnostics go to stderr. The returned code is 0 on success and 1 on an
// unreadable file or any lexical, parse, or runtime error. Each call
// evaluates in a fresh global scope.
func Run(path string, stdout, stderr io.Writer) int {
	if !recognized(path) {
		errColor.Fprintf(stderr, "%s: not a ZEN source file (expected %s)\n", path, strings.Join(Extensions, " or "))
		return 1
	}
	src, err := os.ReadFile(path)
	if err != nil {
		errColor.Fprintf(stderr, "%s: cannot read file: %v\n", path, err)
		return 1
	}
	return RunSource(path, string(src), stdout, stderr)
}

// RunSource executes source text under the given path label. Tests reuse it
// with synthetic labels such as <repl>.
func RunSource(path, src string, stdout, stderr io.Writer) int {
	par := parser.NewParser(src)
	root := par.Parse()

	// A program that needed error recovery parses to a partial tree; it is
	// reported in full and never executed.
	if par.HasErrors() {
		for _, perr := range par.GetErrors() {
			errColor.Fprintf(stderr, "%s:%s\n", path, perr.Error())
		}
		if n := par.RecoveredErrors(); n > 1 {
			errColor.Fprintf(stderr, "%s: %d syntax errors\n", path, n)
		}
		return 1
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(stdout)
	result := evaluator.Eval(root)
	if errVal, isErr := result.(*values.Error); isErr {
		errColor.Fprintf(stderr, "%s\n", Diagnostic(path, errVal))
		return 1
	}
	return 0
}

// Diagnostic formats a runtime error as PATH:LINE:COL: KIND: MESSAGE.
func Diagnostic(path string, errVal *values.Error) string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", path, errVal.Line, errVal.Column, errVal.Kind, errVal.Message)
}

// recognized reports whether the path carries a ZEN source extension.
func recognized(path string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
