// Package errors implements Lox's four-kind error taxonomy: ScanError,
// ParseError, ResolverError, and RuntimeError, each carrying a message and a
// source-line attribution, formatted with a caret pointing into the
// offending source line the way the rest of the toolchain formats
// diagnostics.
package errors

import (
	"fmt"
	"strings"

	"github.com/loxlang/glox/internal/lexer"
)

// Kind identifies which of the four reportable error categories a LoxError
// belongs to. The kind determines the process exit code (see ExitCode).
type Kind int

const (
	ScanError Kind = iota
	ParseError
	ResolverError
	RuntimeError
)

func (k Kind) String() string {
	switch k {
	case ScanError:
		return "ScanError"
	case ParseError:
		return "ParseError"
	case ResolverError:
		return "ResolverError"
	case RuntimeError:
		return "RuntimeError"
	default:
		return "Error"
	}
}

// LoxError is a single reportable diagnostic with position and source
// context. The control-flow signal used internally to implement `return`
// (see interp.returnSignal) is never surfaced as a LoxError.
type LoxError struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

func New(kind Kind, pos lexer.Position, message string) *LoxError {
	return &LoxError{Kind: kind, Pos: pos, Message: message}
}

func (e *LoxError) Error() string {
	return e.Format(false)
}

// Format renders the error with a source excerpt and caret, the way the
// rest of the toolchain's CompilerError does. If color is true, ANSI codes
// highlight the caret and message.
func (e *LoxError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("[%s] %s:%d:%d\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("[%s] line %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column))
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+max(e.Pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *LoxError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// Report formats a batch of errors, one per diagnostic, for printing to
// stderr before the process exits.
func Report(errs []*LoxError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s):\n\n", len(errs)))
	for i, e := range errs {
		sb.WriteString(e.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// ExitCode maps a batch of errors to the CLI exit code: 65 for scan/parse/
// resolver errors, 70 for runtime errors, 0 if errs is empty.
func ExitCode(errs []*LoxError) int {
	if len(errs) == 0 {
		return 0
	}
	for _, e := range errs {
		if e.Kind == RuntimeError {
			return 70
		}
	}
	return 65
}
