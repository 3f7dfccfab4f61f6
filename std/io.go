package std

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akaoio/zen/values"
)

// ioMethods are the file and console host functions. They are provided for
// programs that need them but are not part of the interpreter's core
// contract; failures surface as IOError values.
var ioMethods = []*Builtin{
	{Name: "read_file", Callback: readFileFunc},
	{Name: "write_file", Callback: writeFileFunc},
	{Name: "input", Callback: inputFunc},
}

func init() {
	Builtins = append(Builtins, ioMethods...)
}

// readFileFunc reads a file as UTF-8 and returns its contents as a string.
func readFileFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 1 {
		return createError("read_file expects 1 argument, got %d", len(args))
	}
	path, err := argString(args, 0, "read_file")
	if err != nil {
		return err
	}
	data, rerr := os.ReadFile(path)
	if rerr != nil {
		return values.NewError(values.IOError, "cannot read %s: %v", path, rerr)
	}
	return &values.String{Value: string(data)}
}

// writeFileFunc writes the string conversion of a value to a file,
// returning Null.
func writeFileFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 2 {
		return createError("write_file expects 2 arguments, got %d", len(args))
	}
	path, err := argString(args, 0, "write_file")
	if err != nil {
		return err
	}
	if werr := os.WriteFile(path, []byte(args[1].ToString()), 0o644); werr != nil {
		return values.NewError(values.IOError, "cannot write %s: %v", path, werr)
	}
	return &values.Null{}
}

// inputFunc reads one line from the interpreter's input reader, printing an
// optional prompt first. The trailing newline is stripped.
func inputFunc(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) > 1 {
		return createError("input expects at most 1 argument, got %d", len(args))
	}
	if len(args) == 1 {
		fmt.Fprint(writer, args[0].ToString())
	}
	line, err := rt.GetInputReader().ReadString('\n')
	if err != nil && line == "" {
		return values.NewError(values.IOError, "cannot read input: %v", err)
	}
	return &values.String{Value: strings.TrimRight(line, "\r\n")}
}
