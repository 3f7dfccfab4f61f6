// Package repl implements the interactive Read-Eval-Print Loop of the ZEN
// interpreter. The REPL reads one logical line at a time — continuing the
// read while a bracket is unclosed, a trailing comma is pending, or a block
// header awaits its indented body — evaluates it in a persistent global
// scope, and prints the result unless it is null.
//
// Line editing and history come from the readline library; colored output
// from fatih/color.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akaoio/zen/eval"
	"github.com/akaoio/zen/parser"
	"github.com/akaoio/zen/values"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the configuration of one interactive session.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
	More    string // continuation prompt
}

// NewRepl creates a REPL with the standard prompts.
func NewRepl(version string) *Repl {
	return &Repl{
		Banner:  "ZEN",
		Version: version,
		Prompt:  "zen> ",
		More:    "...> ",
	}
}

// printBanner writes the greeting and usage hints.
func (r *Repl) printBanner(writer io.Writer) {
	greenColor.Fprintf(writer, "%s %s\n", r.Banner, r.Version)
	cyanColor.Fprintln(writer, "Type `help` for help, `exit` to leave.")
}

// Start runs the loop until exit/quit or EOF. All evaluation happens in one
// persistent global scope so definitions survive across inputs.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "cannot initialize line editing: %v\n", err)
		return
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		input, ok := r.readLogicalLine(rl)
		if !ok {
			fmt.Fprintln(writer, "bye")
			return
		}
		line := strings.TrimSpace(input)
		if line == "" {
			continue
		}

		switch line {
		case "exit", "quit":
			fmt.Fprintln(writer, "bye")
			return
		case "help":
			r.printHelp(writer)
			continue
		case "clear":
			fmt.Fprint(writer, "\033[2J\033[H")
			continue
		}

		rl.SaveHistory(input)
		r.execute(writer, input, evaluator)
	}
}

// readLogicalLine reads one logical input: the first physical line plus
// continuation lines while the input is syntactically open. A block is
// closed by an empty line. Returns ok=false on EOF.
func (r *Repl) readLogicalLine(rl *readline.Instance) (string, bool) {
	rl.SetPrompt(r.Prompt)
	line, err := rl.Readline()
	if err != nil {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString(line)
	inBlock := blockHeader(line)

	for {
		src := sb.String()
		if !inBlock && !openBrackets(src) && !trailingComma(src) {
			return src, true
		}
		rl.SetPrompt(r.More)
		next, err := rl.Readline()
		if err != nil {
			return sb.String(), true
		}
		if inBlock && strings.TrimSpace(next) == "" {
			return sb.String(), true
		}
		sb.WriteByte('\n')
		sb.WriteString(next)
		if blockHeader(next) {
			inBlock = true
		}
	}
}

// blockHeader reports whether a line opens an indented block: a compound
// statement header without a single-line `then`, a class or function
// header, or a `set NAME` with no initializer (the multi-line object form).
func blockHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "function", "class", "else", "method":
		return true
	case "if", "elif", "while", "for":
		return !strings.Contains(trimmed, " then ") && !strings.HasSuffix(trimmed, " then")
	case "set":
		return len(fields) == 2 // `set NAME` alone opens an object block
	}
	return false
}

// openBrackets reports whether the source has more openers than closers
// outside string literals.
func openBrackets(src string) bool {
	depth := 0
	inString := false
	escaped := false
	for _, ch := range src {
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '#':
			return depth > 0 // rest of line is comment
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}
	}
	return depth > 0
}

// trailingComma reports whether the last non-space character is a comma.
func trailingComma(src string) bool {
	return strings.HasSuffix(strings.TrimRight(src, " \t"), ",")
}

// execute parses and evaluates one logical line, printing diagnostics with
// the <repl> path. Unlike file mode the session continues after errors.
func (r *Repl) execute(writer io.Writer, src string, evaluator *eval.Evaluator) {
	par := parser.NewParser(src)
	root := par.Parse()
	if par.HasErrors() {
		for _, perr := range par.GetErrors() {
			redColor.Fprintf(writer, "<repl>:%s\n", perr.Error())
		}
		return
	}

	result := evaluator.Eval(root)
	if errVal, isErr := result.(*values.Error); isErr {
		redColor.Fprintf(writer, "<repl>:%d:%d: %s: %s\n", errVal.Line, errVal.Column, errVal.Kind, errVal.Message)
		return
	}
	if result.GetType() != values.NullType {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
}

// printHelp writes the command summary.
func (r *Repl) printHelp(writer io.Writer) {
	cyanColor.Fprintln(writer, "ZEN interactive interpreter")
	blueColor.Fprintln(writer, "  exit, quit   leave the session")
	blueColor.Fprintln(writer, "  help         show this text")
	blueColor.Fprintln(writer, "  clear        clear the screen")
	blueColor.Fprintln(writer, "Enter code to evaluate it; block headers read")
	blueColor.Fprintln(writer, "continuation lines until an empty line.")
}
