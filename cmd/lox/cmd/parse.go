package cmd

import (
	"fmt"
	"os"

	"github.com/loxlang/glox/internal/errors"
	"github.com/loxlang/glox/internal/lexer"
	"github.com/loxlang/glox/internal/parser"
	"github.com/loxlang/glox/internal/resolver"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Check a Lox file for scan, parse, and resolver errors",
	Long: `Run the scanner, parser, and resolver over a Lox program and report any
errors, without executing it. Useful for validating a script (or checking
for a clean resolve) in editor integrations and CI.

Examples:
  lox parse script.lox
  lox parse -e "fun f() { return; }"`,
	Args: cobra.MaximumNArgs(1),
	RunE: checkParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "check inline code instead of reading from file")
}

func checkParse(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	tokens, lexErrs := l.ScanTokens()
	if len(lexErrs) > 0 {
		out := make([]*errors.LoxError, len(lexErrs))
		for i, e := range lexErrs {
			le := errors.New(errors.ScanError, e.Pos, e.Message)
			le.Source = input
			le.File = filename
			out[i] = le
		}
		fmt.Fprintln(os.Stderr, errors.Report(out, !noColor))
		os.Exit(errors.ExitCode(out))
	}

	p := parser.New(tokens, input, filename)
	program := p.ParseProgram()
	if perrs := p.Errors(); len(perrs) > 0 {
		fmt.Fprintln(os.Stderr, errors.Report(perrs, !noColor))
		os.Exit(errors.ExitCode(perrs))
	}

	r := resolver.New(input, filename)
	_, rerrs := r.Resolve(program)
	if len(rerrs) > 0 {
		fmt.Fprintln(os.Stderr, errors.Report(rerrs, !noColor))
		os.Exit(errors.ExitCode(rerrs))
	}

	fmt.Println("OK")
	return nil
}
