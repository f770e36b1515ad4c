package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/loxlang/glox/internal/builtins"
	"github.com/loxlang/glox/internal/errors"
	"github.com/loxlang/glox/internal/interp"
	"github.com/loxlang/glox/internal/lexer"
	"github.com/loxlang/glox/internal/parser"
	"github.com/loxlang/glox/internal/resolver"
	"github.com/loxlang/glox/pkg/printer"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	noColor  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lox file, an inline expression, or start a REPL",
	Long: `Execute a Lox program from a file, an inline expression, or interactively.

With no arguments and no -e flag, run starts a REPL: it reads a line, runs
it, and repeats until EOF (Ctrl-D) or an interrupt.

Examples:
  # Run a script file
  lox run script.lox

  # Evaluate an inline expression
  lox run -e "print 1 + 2;"

  # Print the parsed AST instead of running
  lox run --ast script.lox

  # Start a REPL
  lox run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "ast", false, "print the parsed AST instead of running")
	runCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored error output")
}

func runScript(_ *cobra.Command, args []string) error {
	if evalExpr == "" && len(args) == 0 {
		return runREPL()
	}

	if evalExpr == "" {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			return runBatch(args[0])
		}
	}

	input, filename, err := readSource(args)
	if err != nil {
		return err
	}

	if errs := runSource(input, filename); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, errors.Report(errs, !noColor))
		os.Exit(errors.ExitCode(errs))
	}
	return nil
}

// runBatch runs every .lox file in dir, in natural sort order (so Test2.lox
// runs before Test10.lox), reporting each file's errors without letting one
// failing script stop the rest. It exits with the worst exit code seen.
func runBatch(dir string) error {
	scripts, err := filepath.Glob(filepath.Join(dir, "*.lox"))
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}
	sort.Slice(scripts, func(i, j int) bool { return natural.Less(scripts[i], scripts[j]) })

	worst := 0
	for _, path := range scripts {
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			worst = max(worst, 70)
			continue
		}
		fmt.Printf("=== %s ===\n", path)
		if errs := runSource(string(content), path); len(errs) > 0 {
			fmt.Fprintln(os.Stderr, errors.Report(errs, !noColor))
			worst = max(worst, errors.ExitCode(errs))
		}
	}
	os.Exit(worst)
	return nil
}

// readSource resolves the file-path/-e precedence shared by run and lex:
// an inline -e expression wins, otherwise the single positional file
// argument is read from disk.
func readSource(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}

// runREPL reads lines from stdin, running each as its own program, until
// EOF. Per-line errors are reported but don't end the session; only a
// single file or -e run exits on them.
func runREPL() error {
	fmt.Println("lox REPL. Press Ctrl-D to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return nil
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if errs := runSource(line, "<stdin>"); len(errs) > 0 {
			fmt.Fprintln(os.Stderr, errors.Report(errs, !noColor))
		}
	}
}

// runSource lexes and parses src, then either prints its AST (with --ast,
// skipping resolution and execution) or resolves and executes it, returning
// any diagnostics produced along the way. Scan, parse, and
// resolver errors all end the pipeline before execution starts; a runtime
// error is the only kind that can follow partial output.
func runSource(src, filename string) []*errors.LoxError {
	l := lexer.New(src)
	tokens, lexErrs := l.ScanTokens()
	if len(lexErrs) > 0 {
		out := make([]*errors.LoxError, len(lexErrs))
		for i, e := range lexErrs {
			le := errors.New(errors.ScanError, e.Pos, e.Message)
			le.Source = src
			le.File = filename
			out[i] = le
		}
		return out
	}

	p := parser.New(tokens, src, filename)
	program := p.ParseProgram()
	if perrs := p.Errors(); len(perrs) > 0 {
		return perrs
	}

	if dumpAST {
		fmt.Println(printer.Print(program))
		return nil
	}

	r := resolver.New(src, filename)
	locals, rerrs := r.Resolve(program)
	if len(rerrs) > 0 {
		return rerrs
	}

	in := interp.New(os.Stdout, src, filename)
	builtins.Register(in.Globals())
	return in.Interpret(program, locals)
}
